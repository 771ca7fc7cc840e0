package models

import (
	"time"
)

// Listing represents one cleaned real-estate listing. Rows only reach this
// type after normalization: Price is always positive and AddedOn resolvable.
type Listing struct {
	Region      string    `json:"region"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	AddedOn     time.Time `json:"added_on"`
	MonthBucket string    `json:"month_bucket"`
}

// AggregateResult is the response body for a point-statistic query.
// Selector fields are echoed back only when they were supplied.
type AggregateResult struct {
	Region       string  `json:"region,omitempty"`
	Category     string  `json:"category,omitempty"`
	AveragePrice float64 `json:"average_price"`
	Count        int     `json:"count"`
}

// TrendPoint is one month of a price trend, emitted only when the month
// cleared the sample-size floor.
type TrendPoint struct {
	Month        string  `json:"month"`
	AveragePrice float64 `json:"average_price"`
	Count        int     `json:"count"`
}
