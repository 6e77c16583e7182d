// Package render draws a prepared series set to a PNG buffer.
package render

import (
	"bytes"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/KaramelBytes/chartloom-cli/internal/plot"
)

// Error wraps a chart rendering failure; the series engine treats it as
// opaque.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("render chart: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Options sizes the output image.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions matches the interactive chart dimensions of the original
// plotting layout.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 700}
}

// PNG renders the result to a PNG image. Time-series results draw as
// lines with markers; plain numeric results as markers only.
func PNG(res *plot.Result, opt Options) ([]byte, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		def := DefaultOptions()
		if opt.Width <= 0 {
			opt.Width = def.Width
		}
		if opt.Height <= 0 {
			opt.Height = def.Height
		}
	}

	var series []chart.Series
	for i, s := range res.Series {
		if s.Len() == 0 {
			continue
		}
		style := seriesStyle(i, res.TimeSeries)
		yaxis := chart.YAxisPrimary
		if s.Axis == plot.AxisSecondary {
			yaxis = chart.YAxisSecondary
		}
		if res.TimeSeries {
			xs, ys := padTimePoints(s.T, s.Y)
			series = append(series, chart.TimeSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style:   style,
				YAxis:   yaxis,
			})
		} else {
			xs, ys := padPoints(s.X, s.Y)
			series = append(series, chart.ContinuousSeries{
				Name:    s.Name,
				XValues: xs,
				YValues: ys,
				Style:   style,
				YAxis:   yaxis,
			})
		}
	}
	if len(series) == 0 {
		return nil, &Error{Err: fmt.Errorf("no series with data points")}
	}

	ch := chart.Chart{
		Title:  res.Meta.Title,
		Width:  opt.Width,
		Height: opt.Height,
		XAxis:  chart.XAxis{Name: res.Meta.XLabel},
		YAxis:  chart.YAxis{Name: res.Meta.PrimaryLabel},
		Series: series,
	}
	if res.Meta.SecondaryLabel != "" {
		ch.YAxisSecondary = chart.YAxis{Name: res.Meta.SecondaryLabel}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, &Error{Err: err}
	}
	return buf.Bytes(), nil
}

func seriesStyle(i int, timeSeries bool) chart.Style {
	color := chart.GetDefaultColor(i)
	style := chart.Style{
		DotWidth: 4,
		DotColor: color,
	}
	if timeSeries {
		style.StrokeWidth = 1.5
		style.StrokeColor = color
	} else {
		style.StrokeWidth = chart.Disabled
	}
	return style
}

// go-chart refuses series with fewer than two points; duplicate a lone
// point one step to the right so single-row datasets still render.
func padPoints(xs, ys []float64) ([]float64, []float64) {
	if len(ys) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
}

func padTimePoints(ts []time.Time, ys []float64) ([]time.Time, []float64) {
	if len(ys) != 1 {
		return ts, ys
	}
	return []time.Time{ts[0], ts[0].Add(24 * time.Hour)}, []float64{ys[0], ys[0]}
}
