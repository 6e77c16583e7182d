package profile_test

import (
	"errors"
	"math"
	"testing"

	"github.com/KaramelBytes/chartloom-cli/internal/profile"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNumericColumnStats(t *testing.T) {
	tbl, err := table.New(
		[]string{"V"},
		[][]string{{"1"}, {"2"}, {""}, {"3"}, {"4"}, {"5"}},
	)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	s, err := profile.Column(tbl, "V")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if s.Rows != 6 || s.Count != 5 || s.Nulls != 1 {
		t.Errorf("counts = %d/%d/%d, want 6/5/1", s.Rows, s.Count, s.Nulls)
	}
	if !approx(s.Mean, 3) {
		t.Errorf("Mean = %v, want 3", s.Mean)
	}
	if !approx(s.StdDev, math.Sqrt(2.5)) {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(2.5))
	}
	if !approx(s.Min, 1) || !approx(s.Max, 5) {
		t.Errorf("Min/Max = %v/%v, want 1/5", s.Min, s.Max)
	}
	if !approx(s.Q1, 2) || !approx(s.Median, 3) || !approx(s.Q3, 4) {
		t.Errorf("quartiles = %v/%v/%v, want 2/3/4", s.Q1, s.Median, s.Q3)
	}
}

func TestTextColumnStatsAreUndefined(t *testing.T) {
	tbl, err := table.New(
		[]string{"Name"},
		[][]string{{"alpha"}, {""}, {"beta"}},
	)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	s, err := profile.Column(tbl, "Name")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if s.Count != 2 || s.Nulls != 1 {
		t.Errorf("counts = %d/%d, want 2/1", s.Count, s.Nulls)
	}
	// Statistical fields must read as undefined, not zero.
	for name, v := range map[string]float64{
		"Mean": s.Mean, "StdDev": s.StdDev, "Min": s.Min, "Max": s.Max,
		"Q1": s.Q1, "Median": s.Median, "Q3": s.Q3,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s = %v, want NaN for text column", name, v)
		}
	}
}

func TestSingleValueColumn(t *testing.T) {
	tbl, _ := table.New([]string{"V"}, [][]string{{"42"}})
	s, err := profile.Column(tbl, "V")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if !approx(s.StdDev, 0) {
		t.Errorf("StdDev = %v, want 0 for single value", s.StdDev)
	}
	if !approx(s.Median, 42) {
		t.Errorf("Median = %v, want 42", s.Median)
	}
}

func TestUnknownColumn(t *testing.T) {
	tbl, _ := table.New([]string{"V"}, [][]string{{"1"}})
	_, err := profile.Column(tbl, "missing")
	var nf *table.ColumnNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ColumnNotFoundError", err)
	}
	if nf.Column != "missing" {
		t.Errorf("error carries %q, want %q", nf.Column, "missing")
	}
}
