package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/derinolu/estate-insights/internal/dataset"
	"github.com/derinolu/estate-insights/internal/models"
)

func listing(region, category string, price float64, month string) models.Listing {
	added, _ := time.Parse("2006-01", month)
	return models.Listing{
		Region:      region,
		Category:    category,
		Price:       price,
		AddedOn:     added,
		MonthBucket: month,
	}
}

func fixtureDataset() *dataset.Dataset {
	return dataset.New([]models.Listing{
		listing("Lagos", "house", 5000000, "2024-03"),
		listing("Lagos", "land", 3000000, "2024-03"),
		listing("Abuja", "house", 8000000, "2024-04"),
		listing("Oyo", "flat/apartment", 1500000, "2024-04"),
	})
}

func TestFilterNoSelectorsReturnsAll(t *testing.T) {
	ds := fixtureDataset()
	rows, err := Filter(ds, Selector{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != ds.Len() {
		t.Errorf("got %d rows, want %d", len(rows), ds.Len())
	}
}

func TestFilterRegionCaseInsensitive(t *testing.T) {
	rows, err := Filter(fixtureDataset(), Selector{Region: "LAGOS"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Region != "Lagos" {
			t.Errorf("unexpected region %q", row.Region)
		}
	}
}

func TestFilterCategoryCaseInsensitive(t *testing.T) {
	rows, err := Filter(fixtureDataset(), Selector{Category: "House"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
}

func TestFilterCombinedSelectors(t *testing.T) {
	rows, err := Filter(fixtureDataset(), Selector{Region: "lagos", Category: "house"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Price != 5000000 {
		t.Errorf("got price %.0f, want 5000000", rows[0].Price)
	}
}

func TestFilterUnknownCategory(t *testing.T) {
	for _, region := range []string{"", "Lagos", "nowhere"} {
		_, err := Filter(fixtureDataset(), Selector{Region: region, Category: "castle"})
		var invalid *InvalidSelectorError
		if !errors.As(err, &invalid) {
			t.Fatalf("region %q: expected InvalidSelectorError, got %v", region, err)
		}
		want := []string{"flat/apartment", "house", "land"}
		if !reflect.DeepEqual(invalid.Allowed, want) {
			t.Errorf("Allowed: got %v, want %v", invalid.Allowed, want)
		}
	}
}

func TestFilterUnknownRegionIsEmptyNotError(t *testing.T) {
	rows, err := Filter(fixtureDataset(), Selector{Region: "Kano"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestFilterDoesNotMutateDataset(t *testing.T) {
	ds := fixtureDataset()
	before := make([]models.Listing, ds.Len())
	copy(before, ds.Rows())

	if _, err := Filter(ds, Selector{Region: "Lagos"}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, ds.Rows()) {
		t.Error("Filter mutated the dataset")
	}
}
