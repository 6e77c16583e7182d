package downsample_test

import (
	"testing"

	"github.com/KaramelBytes/chartloom-cli/internal/downsample"
)

func TestShortSeriesKeptWhole(t *testing.T) {
	ys := []float64{1, 2, 3}
	keep := downsample.Indices(ys, 10)
	if len(keep) != 3 {
		t.Fatalf("len = %d, want 3", len(keep))
	}
	for i, idx := range keep {
		if idx != i {
			t.Errorf("keep[%d] = %d, want %d", i, idx, i)
		}
	}
}

func TestBudgetNeverExceeded(t *testing.T) {
	for _, n := range []int{11, 100, 1001, 9999} {
		ys := make([]float64, n)
		for i := range ys {
			ys[i] = float64(i % 17)
		}
		for _, budget := range []int{2, 10, 100} {
			keep := downsample.Indices(ys, budget)
			if len(keep) > budget {
				t.Errorf("n=%d budget=%d: kept %d points", n, budget, len(keep))
			}
		}
	}
}

func TestExtremesSurvive(t *testing.T) {
	// A spike and a dip buried mid-bucket must both appear in the output.
	ys := make([]float64, 100)
	for i := range ys {
		ys[i] = 10
	}
	ys[37] = 500  // spike
	ys[73] = -500 // dip
	keep := downsample.Indices(ys, 10)
	var spike, dip bool
	for _, idx := range keep {
		if idx == 37 {
			spike = true
		}
		if idx == 73 {
			dip = true
		}
	}
	if !spike || !dip {
		t.Fatalf("spike kept = %v, dip kept = %v; want both", spike, dip)
	}
}

func TestBucketMinMaxBothKept(t *testing.T) {
	ys := []float64{5, 1, 9, 2, 8, 3, 7, 0, 6, 4}
	keep := downsample.Indices(ys, 4) // two buckets of five
	kept := map[int]bool{}
	for _, idx := range keep {
		kept[idx] = true
	}
	// bucket [0,5): min at 1, max at 2; bucket [5,10): min at 7, max at 6
	for _, idx := range []int{1, 2, 6, 7} {
		if !kept[idx] {
			t.Errorf("index %d (bucket extreme) missing from output", idx)
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	ys := make([]float64, 1000)
	for i := range ys {
		ys[i] = float64((i * 31) % 97)
	}
	keep := downsample.Indices(ys, 50)
	for i := 1; i < len(keep); i++ {
		if keep[i] <= keep[i-1] {
			t.Fatalf("indices not strictly increasing at %d: %d then %d", i, keep[i-1], keep[i])
		}
	}
}
