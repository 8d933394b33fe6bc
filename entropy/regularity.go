package entropy

import "math"

// Approximate — Approximate Entropy (ApEn)
//
// Description:
//
//	ApEn quantifies the regularity of a sequence: low values mean that
//	patterns of length m tend to repeat at length m+1, high values mean
//	new information keeps appearing.
//
// Algorithm Outline:
//  1. Let N = len(seq). Build all length-m contiguous windows
//     (N−m+1 of them).
//  2. For each window i, count how many windows j (including j = i) satisfy
//     Chebyshev(window_i, window_j) < r.
//  3. φ(m) = (1/(N−m+1)) · Σ_i log(count_i / (N−m+1)).
//  4. Repeat at dimension m+1 and return |φ(m) − φ(m+1)|.
//
// The customary tolerance is r = 0.2·SampleStd(seq). With r = 0 no window
// matches under the strict < comparison and log(0) drives the result
// non-finite; the formula itself never raises.
//
// Errors:
//   - ErrEmptySequence    — seq has no elements.
//   - ErrInvalidEmbedding — m < 1.
//   - ErrNegativeTolerance — r < 0.
//   - ErrSequenceTooShort — no window fits at dimension m+1 (N < m+1).
//
// Complexity: O(N²·m) time, O(N) extra space.
func Approximate(seq []float64, m int, r float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	if m < 1 {
		return 0, ErrInvalidEmbedding
	}
	if r < 0 {
		return 0, ErrNegativeTolerance
	}
	if len(seq) < m+1 {
		return 0, ErrSequenceTooShort
	}

	return math.Abs(phi(seq, m, r) - phi(seq, m+1, r)), nil
}

// phi averages the logarithm of relative Chebyshev-match counts over all
// length-m windows. Self-matches are counted, so every count is at least 1
// whenever r > 0.
func phi(seq []float64, m int, r float64) float64 {
	windows := embed(seq, m)
	n := len(windows)

	var sum float64
	for i := 0; i < n; i++ {
		count := 0
		for j := 0; j < n; j++ {
			if chebyshev(windows[i], windows[j]) < r {
				count++
			}
		}
		sum += math.Log(float64(count) / float64(n))
	}

	return sum / float64(n)
}

// Sample — Sample Entropy (SampEn)
//
// Description:
//
//	SampEn refines ApEn by excluding self-matches: B counts ordered window
//	pairs (i, j), i ≠ j, within tolerance at dimension m, A the same at
//	dimension m+1, and the result is −ln(A/B).
//
// A = 0 or B = 0 yields +Inf — the designed reading of maximal
// irregularity or undersampling, returned as a value, never as an error.
//
// The customary tolerance is r = 0.2·SampleStd(seq).
//
// Errors:
//   - ErrEmptySequence     — seq has no elements.
//   - ErrInvalidEmbedding  — m < 1.
//   - ErrNegativeTolerance — r < 0.
//
// Complexity: O(N²·m) time, O(N) extra space.
func Sample(seq []float64, m int, r float64) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	if m < 1 {
		return 0, ErrInvalidEmbedding
	}
	if r < 0 {
		return 0, ErrNegativeTolerance
	}

	b := matchedPairs(embed(seq, m), r)
	a := matchedPairs(embed(seq, m+1), r)
	if a == 0 || b == 0 {
		return math.Inf(1), nil
	}

	return -math.Log(float64(a) / float64(b)), nil
}

// matchedPairs counts ordered window pairs (i, j), i ≠ j, whose Chebyshev
// distance is strictly below r.
func matchedPairs(windows [][]float64, r float64) int {
	count := 0
	for i := range windows {
		for j := range windows {
			if i != j && chebyshev(windows[i], windows[j]) < r {
				count++
			}
		}
	}

	return count
}
