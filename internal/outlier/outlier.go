// Package outlier computes z-score row-exclusion masks over numeric columns.
package outlier

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

// InvalidThresholdError reports a non-positive z-score threshold.
type InvalidThresholdError struct {
	Threshold float64
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("outlier threshold must be positive, got %g", e.Threshold)
}

// Mask returns a row-inclusion mask for t: a row survives only if, for every
// evaluated column, its cell is null or within threshold standard deviations
// of the column mean. Non-numeric columns contribute no exclusions, as does
// a constant column (zero deviation). Null cells never exclude a row.
//
// The z-score uses the population standard deviation, so a single extreme
// value in a small column is judged against the spread it is part of.
func Mask(t *table.Table, columns []string, threshold float64) ([]bool, error) {
	if threshold <= 0 {
		return nil, &InvalidThresholdError{Threshold: threshold}
	}
	mask := make([]bool, t.RowCount())
	for i := range mask {
		mask[i] = true
	}
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if seen[name] {
			continue
		}
		seen[name] = true
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if col.Kind != table.KindNumeric {
			continue
		}
		mean, std := populationStats(col)
		if std == 0 {
			continue
		}
		for i := 0; i < col.Len(); i++ {
			v, ok := col.Float(i)
			if !ok {
				continue
			}
			if math.Abs(v-mean)/std > threshold {
				mask[i] = false
			}
		}
	}
	return mask, nil
}

func populationStats(col *table.Column) (mean, std float64) {
	var sum float64
	n := 0
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	mean = sum / float64(n)
	var sq float64
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			d := v - mean
			sq += d * d
		}
	}
	return mean, math.Sqrt(sq / float64(n))
}
