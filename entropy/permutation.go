package entropy

import (
	"math"
	"sort"
)

// Permutation — Permutation Entropy (Bandt–Pompe)
//
// Description:
//
//	For every start index, take `order` samples spaced `delay` apart and
//	record their rank-order pattern (the permutation that sorts them).
//	The result is the base-2 Shannon entropy of the pattern-frequency
//	distribution across all windows.
//
// Ties between equal samples keep their original position order (stable
// ranking), so the result is deterministic.
//
// A sequence too short to fit a single window has no patterns to tally and
// yields 0.
//
// Errors:
//   - ErrEmptySequence — seq has no elements.
//   - ErrInvalidOrder  — order < 2.
//   - ErrInvalidDelay  — delay < 1.
//
// Complexity: O(N·order·log order) time, O(N) pattern tallies worst case.
func Permutation(seq []float64, order, delay int) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	if order < 2 {
		return 0, ErrInvalidOrder
	}
	if delay < 1 {
		return 0, ErrInvalidDelay
	}

	// A window spans delay·(order−1)+1 positions.
	span := delay * (order - 1)
	if len(seq) <= span {
		return 0, nil
	}

	var (
		counts  = make(map[string]int)
		pattern = make([]int, order)
		total   = len(seq) - span
	)
	for start := 0; start < total; start++ {
		rankPattern(seq, start, delay, pattern)
		counts[patternKey(pattern)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var h float64
	for _, k := range keys {
		p := float64(counts[k]) / float64(total)
		h -= p * math.Log2(p)
	}

	return h, nil
}

// rankPattern fills dst with the index permutation that sorts the window of
// len(dst) samples starting at start, spaced delay apart. The sort is
// stable: equal samples rank by position.
func rankPattern(seq []float64, start, delay int, dst []int) {
	for i := range dst {
		dst[i] = i
	}
	sort.SliceStable(dst, func(a, b int) bool {
		return seq[start+dst[a]*delay] < seq[start+dst[b]*delay]
	})
}

// patternKey packs a rank pattern into a map key; orders are small, so one
// byte per rank suffices.
func patternKey(pattern []int) string {
	key := make([]byte, len(pattern))
	for i, v := range pattern {
		key[i] = byte(v)
	}

	return string(key)
}
