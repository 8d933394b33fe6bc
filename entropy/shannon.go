package entropy

import (
	"math"
	"sort"
)

// Shannon computes the Shannon entropy of seq in the given logarithm base.
//
// Each distinct value's empirical probability is its count divided by the
// sequence length; the result is -Σ p·log_base(p) over values with p > 0.
// A constant sequence yields 0; a sequence uniform over k distinct values
// yields log_base(k).
//
// Distinct values are accumulated in sorted order so the floating-point sum
// is identical across runs.
//
// Errors:
//   - ErrEmptySequence  — seq has no elements.
//   - ErrInvalidLogBase — base ≤ 0 or base == 1.
//
// Complexity: O(N log N) from the deterministic value ordering.
func Shannon(seq []float64, base float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	if base <= 0 || base == 1 {
		return 0, ErrInvalidLogBase
	}

	counts := make(map[float64]int, len(seq))
	for _, v := range seq {
		counts[v]++
	}
	values := make([]float64, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Float64s(values)

	var (
		n       = float64(len(seq))
		logBase = math.Log(base)
		h       float64
	)
	for _, v := range values {
		p := float64(counts[v]) / n
		h -= p * math.Log(p) / logBase
	}

	return h, nil
}
