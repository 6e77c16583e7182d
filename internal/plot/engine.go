package plot

import (
	"strings"
	"time"

	"github.com/KaramelBytes/chartloom-cli/internal/downsample"
	"github.com/KaramelBytes/chartloom-cli/internal/store"
)

// Engine orchestrates one plot request: dataset lookup, series resolution,
// and conditional downsampling. It never mutates the stored table.
type Engine struct {
	store     *store.Store
	maxPoints int
}

// NewEngine wires an engine to a dataset store. maxPoints caps per-series
// point counts for large-dataset requests; 0 means DefaultMaxPoints.
func NewEngine(st *store.Store, maxPoints int) *Engine {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	return &Engine{store: st, maxPoints: maxPoints}
}

// Prepare runs the full pipeline for req and returns the finished series
// set plus renderer metadata. Failures are terminal and carry the offending
// identifier; no partial series set is ever returned.
func (e *Engine) Prepare(req Request) (*Result, error) {
	t, err := e.store.Get(req.Dataset)
	if err != nil {
		return nil, err
	}
	res, err := Resolve(t, req)
	if err != nil {
		return nil, err
	}
	if req.LargeDataset {
		for i := range res.Series {
			s := &res.Series[i]
			if s.Len() <= e.maxPoints {
				continue
			}
			keep := downsample.Indices(s.Y, e.maxPoints)
			y := make([]float64, len(keep))
			for j, idx := range keep {
				y[j] = s.Y[idx]
			}
			if res.TimeSeries {
				ts := make([]time.Time, len(keep))
				for j, idx := range keep {
					ts[j] = s.T[idx]
				}
				s.T = ts
			} else {
				xs := make([]float64, len(keep))
				for j, idx := range keep {
					xs[j] = s.X[idx]
				}
				s.X = xs
			}
			s.Y = y
		}
	}
	res.Meta = metadata(req)
	return res, nil
}

func metadata(req Request) Metadata {
	xLabel := req.XColumn
	if req.TimeSeries && xLabel == "" {
		xLabel = req.DateColumn
	}
	m := Metadata{
		Title:        req.Title,
		XLabel:       xLabel,
		PrimaryLabel: strings.Join(req.YPrimary, ", "),
	}
	if m.Title == "" {
		m.Title = m.PrimaryLabel + " vs " + xLabel
	}
	if len(req.YSecondary) > 0 {
		m.SecondaryLabel = strings.Join(req.YSecondary, ", ")
	}
	return m
}
