package services

import (
	"reflect"
	"testing"

	"github.com/derinolu/estate-insights/internal/models"
)

func rowsWithPrices(prices ...float64) []models.Listing {
	rows := make([]models.Listing, len(prices))
	for i, p := range prices {
		rows[i] = listing("Lagos", "house", p, "2024-03")
	}
	return rows
}

func prices(rows []models.Listing) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = row.Price
	}
	return out
}

func TestRemoveOutliersFencesExtreme(t *testing.T) {
	rows := rowsWithPrices(1, 2, 3, 4, 5, 100)
	got := prices(RemoveOutliers(rows))
	want := []float64{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRemoveOutliersPreservesOrder(t *testing.T) {
	rows := rowsWithPrices(5, 1, 100, 3, 2, 4)
	got := prices(RemoveOutliers(rows))
	want := []float64{5, 1, 3, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRemoveOutliersSmallSubsetPassesThrough(t *testing.T) {
	rows := rowsWithPrices(1, 1000000, 2)
	got := RemoveOutliers(rows)
	if len(got) != 3 {
		t.Errorf("small subsets must pass through, got %d rows", len(got))
	}
}

func TestRemoveOutliersEmpty(t *testing.T) {
	if got := RemoveOutliers(nil); len(got) != 0 {
		t.Errorf("got %d rows, want 0", len(got))
	}
}

func TestRemoveOutliersUniformKeepsAll(t *testing.T) {
	rows := rowsWithPrices(10, 10, 10, 10, 10)
	if got := RemoveOutliers(rows); len(got) != 5 {
		t.Errorf("got %d rows, want 5", len(got))
	}
}

func TestRemoveOutliersDoesNotMutateInput(t *testing.T) {
	rows := rowsWithPrices(5, 1, 100, 3, 2, 4)
	before := make([]models.Listing, len(rows))
	copy(before, rows)

	RemoveOutliers(rows)
	if !reflect.DeepEqual(before, rows) {
		t.Error("RemoveOutliers mutated its input")
	}
}
