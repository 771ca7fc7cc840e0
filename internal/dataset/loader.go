package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/derinolu/estate-insights/internal/models"
)

// LoadOptions is the cleaning policy applied during load.
type LoadOptions struct {
	// Closed plausible-price interval; rows outside it are dropped.
	PriceBandMin float64
	PriceBandMax float64
}

// Load reads the raw CSV from src, normalizes each row and materializes
// the immutable Dataset. Rows failing normalization are dropped silently;
// an unreadable source is the only fatal condition.
func Load(ctx context.Context, src Source, opts LoadOptions) (*Dataset, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := columnIndex(header)
	if cols.price < 0 {
		return nil, fmt.Errorf("dataset %s has no price column", src.Describe())
	}

	var rows []models.Listing
	total := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		total++

		price, ok := NormalizePrice(field(record, cols.price))
		if !ok || price <= 0 {
			continue
		}
		if price < opts.PriceBandMin || price > opts.PriceBandMax {
			continue
		}

		raw := field(record, cols.addedDate)
		if strings.TrimSpace(raw) == "" {
			raw = field(record, cols.updatedDate)
		}
		added, ok := NormalizeDate(raw)
		if !ok {
			continue
		}

		rows = append(rows, models.Listing{
			Region:      strings.TrimSpace(field(record, cols.region)),
			Category:    strings.TrimSpace(field(record, cols.category)),
			Price:       price,
			AddedOn:     added,
			MonthBucket: MonthBucket(added),
		})
	}

	ds := New(rows)
	log.Printf("Loaded %d/%d listings from %s (%d categories)",
		ds.Len(), total, src.Describe(), len(ds.Categories()))

	return ds, nil
}

type columns struct {
	price       int
	addedDate   int
	updatedDate int
	region      int
	category    int
}

func columnIndex(header []string) columns {
	cols := columns{price: -1, addedDate: -1, updatedDate: -1, region: -1, category: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "price":
			cols.price = i
		case "added_date":
			cols.addedDate = i
		case "updated_date":
			cols.updatedDate = i
		case "region", "state":
			cols.region = i
		case "category", "property_type":
			cols.category = i
		}
	}
	return cols
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
