package services

import (
	"sort"

	"github.com/derinolu/estate-insights/internal/models"
)

// Subsets smaller than this pass through RemoveOutliers unchanged;
// quartiles over a handful of points are degenerate.
const minOutlierSample = 4

// RemoveOutliers drops rows whose price falls outside the interquartile
// fences Q1-1.5*IQR and Q3+1.5*IQR (inclusive bounds). The input order is
// preserved and the input slice is not modified.
func RemoveOutliers(rows []models.Listing) []models.Listing {
	if len(rows) < minOutlierSample {
		return rows
	}

	prices := make([]float64, len(rows))
	for i, row := range rows {
		prices[i] = row.Price
	}
	sort.Float64s(prices)

	q1 := quantile(prices, 0.25)
	q3 := quantile(prices, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	out := make([]models.Listing, 0, len(rows))
	for _, row := range rows {
		if row.Price >= lower && row.Price <= upper {
			out = append(out, row)
		}
	}
	return out
}

// quantile linearly interpolates q in [0,1] over an already sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// median returns the middle price, averaging the central pair for even
// lengths. The input is not modified.
func median(rows []models.Listing) float64 {
	prices := make([]float64, len(rows))
	for i, row := range rows {
		prices[i] = row.Price
	}
	sort.Float64s(prices)

	n := len(prices)
	if n == 0 {
		return 0
	}
	if n%2 == 0 {
		return (prices[n/2-1] + prices[n/2]) / 2.0
	}
	return prices[n/2]
}
