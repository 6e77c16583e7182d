// Package plot turns a stored table plus a declarative request into a
// validated, chart-ready set of series with axis assignments.
package plot

import "time"

// Defaults applied when the caller leaves the corresponding field unset.
const (
	// DefaultOutlierThreshold is the z-score cutoff used when a request
	// enables outlier removal without naming a threshold.
	DefaultOutlierThreshold = 4.0
	// DefaultMaxPoints is the per-series point budget for large datasets;
	// beyond it client-side interactive rendering degrades.
	DefaultMaxPoints = 10000
)

// Axis assigns a series to the left or right Y scale.
type Axis int

const (
	AxisPrimary Axis = iota
	AxisSecondary
)

func (a Axis) String() string {
	if a == AxisSecondary {
		return "secondary"
	}
	return "primary"
}

// Request describes one chart. It is built and validated once at the CLI
// boundary; the engine never re-checks primitive shapes.
type Request struct {
	Dataset    string
	XColumn    string
	YPrimary   []string
	YSecondary []string

	// TimeSeries makes DateColumn the effective X axis; XColumn becomes
	// display-only.
	TimeSeries bool
	DateColumn string

	RemoveOutliers   bool
	OutlierThreshold float64 // 0 means DefaultOutlierThreshold

	LargeDataset bool
	Title        string
}

// Threshold returns the effective z-score threshold for the request.
func (r Request) Threshold() float64 {
	if r.OutlierThreshold == 0 {
		return DefaultOutlierThreshold
	}
	return r.OutlierThreshold
}

// Series is one Y column prepared for charting: aligned (x, y) pairs with
// the row mask already applied. X holds numeric x values; T holds parsed
// dates instead when the request was time-series.
type Series struct {
	Name string
	Axis Axis
	X    []float64
	T    []time.Time
	Y    []float64
}

// Len returns the point count.
func (s Series) Len() int { return len(s.Y) }

// Metadata is the axis/title block handed to the renderer.
type Metadata struct {
	Title          string
	XLabel         string
	PrimaryLabel   string
	SecondaryLabel string // empty when no secondary series exist
}

// Result is the finished series set for one request.
type Result struct {
	Series     []Series
	Meta       Metadata
	TimeSeries bool

	TotalRows       int
	RowsIncluded    int // rows surviving the outlier mask
	OutliersRemoved int
}
