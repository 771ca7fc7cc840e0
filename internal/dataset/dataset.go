package dataset

import (
	"sort"
	"strings"

	"github.com/derinolu/estate-insights/internal/models"
)

// Dataset is the cleaned, in-memory listings table. It is never mutated
// after construction, so it is safe for any number of concurrent readers.
type Dataset struct {
	rows        []models.Listing
	categories  []string
	categorySet map[string]struct{}
}

// New materializes cleaned rows as a Dataset and derives the category
// catalog: the sorted set of distinct non-empty category labels.
func New(rows []models.Listing) *Dataset {
	set := make(map[string]struct{})
	var categories []string
	for _, row := range rows {
		if row.Category == "" {
			continue
		}
		key := strings.ToLower(row.Category)
		if _, ok := set[key]; ok {
			continue
		}
		set[key] = struct{}{}
		categories = append(categories, row.Category)
	}
	sort.Strings(categories)

	return &Dataset{
		rows:        rows,
		categories:  categories,
		categorySet: set,
	}
}

// Rows returns the cleaned listings. Callers must not modify the slice.
func (d *Dataset) Rows() []models.Listing {
	return d.rows
}

func (d *Dataset) Len() int {
	return len(d.rows)
}

// Categories returns the sorted catalog of known category labels.
func (d *Dataset) Categories() []string {
	return d.categories
}

// HasCategory reports whether the label is in the catalog, ignoring case.
func (d *Dataset) HasCategory(label string) bool {
	_, ok := d.categorySet[strings.ToLower(label)]
	return ok
}
