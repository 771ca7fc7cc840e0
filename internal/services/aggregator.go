package services

import (
	"math"
	"sort"

	"github.com/derinolu/estate-insights/internal/dataset"
	"github.com/derinolu/estate-insights/internal/models"
)

// Aggregator computes price statistics over filtered, outlier-suppressed
// subsets of the dataset. The "average" statistic is the median: it is
// more robust to the skewed price distributions that survive IQR fencing.
type Aggregator struct {
	// MinSampleSize is the floor below which no statistic is released.
	MinSampleSize int
}

func NewAggregator(minSampleSize int) *Aggregator {
	return &Aggregator{MinSampleSize: minSampleSize}
}

// AveragePrice runs the full pipeline for a point statistic:
// filter, outlier-suppress, then median over the surviving rows.
func (a *Aggregator) AveragePrice(ds *dataset.Dataset, sel Selector) (models.AggregateResult, error) {
	rows, err := Filter(ds, sel)
	if err != nil {
		return models.AggregateResult{}, err
	}
	rows = RemoveOutliers(rows)

	if len(rows) < a.MinSampleSize {
		return models.AggregateResult{}, ErrInsufficientData
	}

	return models.AggregateResult{
		Region:       sel.region(),
		Category:     sel.category(),
		AveragePrice: round2(median(rows)),
		Count:        len(rows),
	}, nil
}

// Trend runs the pipeline and groups the surviving rows by calendar
// month. Months below the sample-size floor are dropped; a fully
// unfiltered trend is rejected outright since a dataset-wide monthly
// median is not meaningful.
func (a *Aggregator) Trend(ds *dataset.Dataset, sel Selector) ([]models.TrendPoint, error) {
	if sel.IsEmpty() {
		return nil, ErrSelectorRequired
	}

	rows, err := Filter(ds, sel)
	if err != nil {
		return nil, err
	}
	rows = RemoveOutliers(rows)
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	groups := make(map[string][]models.Listing)
	for _, row := range rows {
		groups[row.MonthBucket] = append(groups[row.MonthBucket], row)
	}

	points := make([]models.TrendPoint, 0, len(groups))
	for month, group := range groups {
		if len(group) < a.MinSampleSize {
			continue
		}
		points = append(points, models.TrendPoint{
			Month:        month,
			AveragePrice: round2(median(group)),
			Count:        len(group),
		})
	}
	if len(points) == 0 {
		return nil, ErrInsufficientData
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})
	return points, nil
}

// round2 rounds to 2 decimal places, applied only at the output boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
