package plot

import (
	"errors"
	"fmt"
)

// ErrEmptySeriesList is returned when a request names no primary Y columns.
var ErrEmptySeriesList = errors.New("no primary y columns given; at least one is required")

// AxisOverlapError reports a column requested for both Y axes.
type AxisOverlapError struct {
	Column string
}

func (e *AxisOverlapError) Error() string {
	return fmt.Sprintf("column %q appears in both primary and secondary y lists", e.Column)
}

// DateParseError reports a date column that no accepted layout parses in
// full. Value is the first cell that defeated the best candidate layout.
type DateParseError struct {
	Column string
	Value  string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("date column %q: cannot parse value %q under any accepted format", e.Column, e.Value)
}
