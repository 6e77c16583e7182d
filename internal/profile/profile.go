// Package profile computes per-column summary statistics on demand.
package profile

import (
	"math"
	"sort"

	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

// ColumnStats is a read-only snapshot of one column. For text columns the
// statistical fields are NaN rather than zero, so a missing summary is never
// mistaken for a real one.
type ColumnStats struct {
	Column string
	Kind   table.Kind
	Rows   int // total cells
	Count  int // non-null cells
	Nulls  int

	Mean   float64
	StdDev float64 // sample standard deviation
	Min    float64
	Max    float64
	Q1     float64
	Median float64
	Q3     float64
}

// Column profiles the named column of t.
func Column(t *table.Table, name string) (ColumnStats, error) {
	col, err := t.Column(name)
	if err != nil {
		return ColumnStats{}, err
	}
	s := ColumnStats{
		Column: col.Name,
		Kind:   col.Kind,
		Rows:   col.Len(),
		Nulls:  col.Nulls(),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Q1:     math.NaN(),
		Median: math.NaN(),
		Q3:     math.NaN(),
	}
	s.Count = s.Rows - s.Nulls
	if col.Kind != table.KindNumeric {
		return s, nil
	}

	// Welford accumulation over non-null cells; values are kept for quartiles.
	var (
		n    int
		mean float64
		m2   float64
		vals []float64
	)
	min := math.Inf(1)
	max := math.Inf(-1)
	for i := 0; i < col.Len(); i++ {
		x, ok := col.Float(i)
		if !ok {
			continue
		}
		n++
		delta := x - mean
		mean += delta / float64(n)
		m2 += delta * (x - mean)
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
		vals = append(vals, x)
	}
	if n == 0 {
		return s, nil
	}
	s.Mean = mean
	s.Min = min
	s.Max = max
	if n > 1 {
		s.StdDev = math.Sqrt(m2 / float64(n-1))
	} else {
		s.StdDev = 0
	}
	sort.Float64s(vals)
	s.Q1 = quantile(vals, 0.25)
	s.Median = quantile(vals, 0.5)
	s.Q3 = quantile(vals, 0.75)
	return s, nil
}

// quantile interpolates linearly between order statistics of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
