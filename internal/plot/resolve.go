package plot

import (
	"time"

	"github.com/KaramelBytes/chartloom-cli/internal/outlier"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

// Resolve validates the request against t and produces one prepared series
// per requested Y column, outlier mask applied, in input order (primary
// columns first). Downsampling and metadata are the orchestrator's job.
func Resolve(t *table.Table, req Request) (*Result, error) {
	if len(req.YPrimary) == 0 {
		return nil, ErrEmptySeriesList
	}
	primary := make(map[string]bool, len(req.YPrimary))
	for _, name := range req.YPrimary {
		primary[name] = true
	}
	for _, name := range req.YSecondary {
		if primary[name] {
			return nil, &AxisOverlapError{Column: name}
		}
	}

	// Existence checks fail fast on the first missing name.
	names := make([]string, 0, len(req.YPrimary)+len(req.YSecondary)+2)
	names = append(names, req.XColumn)
	names = append(names, req.YPrimary...)
	names = append(names, req.YSecondary...)
	if req.TimeSeries {
		names = append(names, req.DateColumn)
	}
	for _, name := range names {
		if _, err := t.Column(name); err != nil {
			return nil, err
		}
	}

	res := &Result{
		TimeSeries:   req.TimeSeries,
		TotalRows:    t.RowCount(),
		RowsIncluded: t.RowCount(),
	}

	var (
		times  []time.Time
		timeOK []bool
		xcol   *table.Column
		err    error
	)
	if req.TimeSeries {
		// The date column is the effective X axis; XColumn is display-only.
		dcol, _ := t.Column(req.DateColumn)
		times, timeOK, err = parseDateColumn(dcol)
		if err != nil {
			return nil, err
		}
	} else {
		xcol, _ = t.Column(req.XColumn)
	}

	mask := make([]bool, t.RowCount())
	for i := range mask {
		mask[i] = true
	}
	if req.RemoveOutliers {
		evaluated := append([]string{req.XColumn}, names[1:]...)
		mask, err = outlier.Mask(t, evaluated, req.Threshold())
		if err != nil {
			return nil, err
		}
		removed := 0
		for _, keep := range mask {
			if !keep {
				removed++
			}
		}
		res.OutliersRemoved = removed
		res.RowsIncluded = res.TotalRows - removed
	}

	build := func(name string, axis Axis) error {
		ycol, err := t.Column(name)
		if err != nil {
			return err
		}
		s := Series{Name: name, Axis: axis}
		for i := 0; i < t.RowCount(); i++ {
			if !mask[i] {
				continue
			}
			y, ok := ycol.Float(i)
			if !ok {
				continue // series are independently null-filtered
			}
			if req.TimeSeries {
				if !timeOK[i] {
					continue
				}
				s.T = append(s.T, times[i])
			} else {
				x, ok := xcol.Float(i)
				if !ok {
					continue
				}
				s.X = append(s.X, x)
			}
			s.Y = append(s.Y, y)
		}
		res.Series = append(res.Series, s)
		return nil
	}
	for _, name := range req.YPrimary {
		if err := build(name, AxisPrimary); err != nil {
			return nil, err
		}
	}
	for _, name := range req.YSecondary {
		if err := build(name, AxisSecondary); err != nil {
			return nil, err
		}
	}
	return res, nil
}
