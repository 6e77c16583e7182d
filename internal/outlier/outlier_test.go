package outlier_test

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/chartloom-cli/internal/outlier"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
)

func mustTable(t *testing.T, names []string, rows [][]string) *table.Table {
	t.Helper()
	tbl, err := table.New(names, rows)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

func TestMaskExcludesExtreme(t *testing.T) {
	// mean = 257.5, population stddev ~= 428.7: z(1000) ~= 1.73, z(10) ~= 0.58
	tbl := mustTable(t, []string{"V"}, [][]string{{"10"}, {"10"}, {"10"}, {"1000"}})
	mask, err := outlier.Mask(tbl, []string{"V"}, 1.0)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	want := []bool{true, true, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v", i, mask[i], want[i])
		}
	}
}

func TestMaskConstantColumnNeverExcludes(t *testing.T) {
	tbl := mustTable(t, []string{"C"}, [][]string{{"5"}, {"5"}, {"5"}})
	mask, err := outlier.Mask(tbl, []string{"C"}, 0.001)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	for i, keep := range mask {
		if !keep {
			t.Errorf("row %d excluded by constant column", i)
		}
	}
}

func TestMaskNullCellsNeverExclude(t *testing.T) {
	tbl := mustTable(t, []string{"V"}, [][]string{{"10"}, {""}, {"10"}, {"1000"}})
	mask, err := outlier.Mask(tbl, []string{"V"}, 1.0)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	if !mask[1] {
		t.Errorf("null row excluded")
	}
	if mask[3] {
		t.Errorf("extreme row kept")
	}
}

func TestMaskSkipsNonNumericColumns(t *testing.T) {
	tbl := mustTable(t, []string{"Label", "V"}, [][]string{
		{"a", "1"}, {"b", "1"}, {"c", "1"},
	})
	mask, err := outlier.Mask(tbl, []string{"Label", "V"}, 2.0)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	for i, keep := range mask {
		if !keep {
			t.Errorf("row %d excluded", i)
		}
	}
}

func TestMaskCombinesColumns(t *testing.T) {
	// Row 3 is extreme on A, row 0 extreme on B; survivors must be within
	// threshold on every evaluated column.
	tbl := mustTable(t, []string{"A", "B"}, [][]string{
		{"10", "900"},
		{"10", "5"},
		{"10", "5"},
		{"1000", "5"},
	})
	mask, err := outlier.Mask(tbl, []string{"A", "B"}, 1.0)
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	want := []bool{false, true, true, false}
	for i := range want {
		if mask[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v", i, mask[i], want[i])
		}
	}
}

func TestInvalidThreshold(t *testing.T) {
	tbl := mustTable(t, []string{"V"}, [][]string{{"1"}})
	for _, thr := range []float64{0, -1.5} {
		_, err := outlier.Mask(tbl, []string{"V"}, thr)
		var inv *outlier.InvalidThresholdError
		if !errors.As(err, &inv) {
			t.Fatalf("threshold %g: err = %v, want InvalidThresholdError", thr, err)
		}
		if inv.Threshold != thr {
			t.Errorf("error carries threshold %g, want %g", inv.Threshold, thr)
		}
	}
}

func TestMaskUnknownColumn(t *testing.T) {
	tbl := mustTable(t, []string{"V"}, [][]string{{"1"}})
	_, err := outlier.Mask(tbl, []string{"W"}, 1.0)
	var nf *table.ColumnNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ColumnNotFoundError", err)
	}
}
