package services

import (
	"strings"

	"github.com/derinolu/estate-insights/internal/dataset"
	"github.com/derinolu/estate-insights/internal/models"
)

// Selector is the user-supplied filter pair. A field is considered unset
// when empty after trimming.
type Selector struct {
	Region   string
	Category string
}

func (s Selector) region() string   { return strings.TrimSpace(s.Region) }
func (s Selector) category() string { return strings.TrimSpace(s.Category) }

// IsEmpty reports whether neither filter is set.
func (s Selector) IsEmpty() bool {
	return s.region() == "" && s.category() == ""
}

// Filter returns the rows matching the selector. Matching is
// case-insensitive but otherwise exact. An unknown category is a user
// error and yields InvalidSelectorError; zero matching rows is not.
// The dataset is never modified.
func Filter(ds *dataset.Dataset, sel Selector) ([]models.Listing, error) {
	region := sel.region()
	category := sel.category()

	if category != "" && !ds.HasCategory(category) {
		return nil, &InvalidSelectorError{Value: category, Allowed: ds.Categories()}
	}

	rows := ds.Rows()
	if region == "" && category == "" {
		return rows, nil
	}

	out := make([]models.Listing, 0, len(rows))
	for _, row := range rows {
		if region != "" && !strings.EqualFold(row.Region, region) {
			continue
		}
		if category != "" && !strings.EqualFold(row.Category, category) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
