package entropy

import "math"

// SampleStd returns the sample standard deviation of seq (divisor N−1).
// Sequences with fewer than two elements have no spread and yield 0.
//
// The 0.2·SampleStd convention is the customary tolerance for Approximate
// and Sample entropy; callers compute it once per sequence.
//
// Complexity: O(N).
func SampleStd(seq []float64) float64 {
	n := len(seq)
	if n < 2 {
		return 0
	}

	var mean float64
	for _, v := range seq {
		mean += v
	}
	mean /= float64(n)

	var ss float64
	for _, v := range seq {
		d := v - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(n-1))
}

// chebyshev returns the maximum absolute coordinate difference between two
// equal-length windows.
func chebyshev(a, b []float64) float64 {
	var max float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > max {
			max = d
		}
	}

	return max
}

// embed returns every contiguous length-m window of seq as a slice into the
// backing array. Returns nil when no window fits.
func embed(seq []float64, m int) [][]float64 {
	n := len(seq) - m + 1
	if n <= 0 {
		return nil
	}

	windows := make([][]float64, n)
	for i := range windows {
		windows[i] = seq[i : i+m]
	}

	return windows
}
