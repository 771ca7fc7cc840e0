package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSelectorRequired is returned when a trend is requested with no
	// region or category filter.
	ErrSelectorRequired = errors.New("at least one of region or category is required")

	// ErrNoData is returned when the filtered subset is empty.
	ErrNoData = errors.New("no data for the given filters")

	// ErrInsufficientData is returned when matching rows exist but fall
	// below the sample-size floor.
	ErrInsufficientData = errors.New("not enough data for the given filters")
)

// InvalidSelectorError reports an unknown category label together with
// the labels the dataset actually contains.
type InvalidSelectorError struct {
	Value   string
	Allowed []string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid category %q; allowed: %s", e.Value, strings.Join(e.Allowed, ", "))
}
