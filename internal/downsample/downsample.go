// Package downsample reduces series length for rendering while keeping the
// local extremes that naive stride sampling would drop.
package downsample

// Indices returns the positions of ys to keep so that at most maxPoints
// survive. The series is partitioned into contiguous buckets sized so that
// keeping the minimum and maximum of each bucket stays within the budget;
// both extremes of every bucket appear in the output (once, if they
// coincide), in original order. Series already within the budget are
// returned whole.
func Indices(ys []float64, maxPoints int) []int {
	n := len(ys)
	if maxPoints < 2 {
		maxPoints = 2
	}
	if n <= maxPoints {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}
	// Two points per bucket, so buckets hold ceil(2n/maxPoints) values each.
	bucket := (2*n + maxPoints - 1) / maxPoints
	keep := make([]int, 0, maxPoints)
	for start := 0; start < n; start += bucket {
		end := start + bucket
		if end > n {
			end = n
		}
		minIdx, maxIdx := start, start
		for i := start + 1; i < end; i++ {
			if ys[i] < ys[minIdx] {
				minIdx = i
			}
			if ys[i] > ys[maxIdx] {
				maxIdx = i
			}
		}
		first, second := minIdx, maxIdx
		if first > second {
			first, second = second, first
		}
		keep = append(keep, first)
		if second != first {
			keep = append(keep, second)
		}
	}
	return keep
}
