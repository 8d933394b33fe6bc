// Package entropy implements information-theoretic estimators over numeric
// sequences.
//
// 🚀 What is entropy?
//
//	Five deterministic estimators of sequence unpredictability:
//	  • Shannon     — empirical-distribution entropy in any valid log base
//	  • Approximate — ApEn, regularity of embedded windows (Pincus)
//	  • Sample      — SampEn, self-match-free regularity (Richman & Moorman)
//	  • Permutation — entropy of rank-order patterns (Bandt & Pompe)
//	  • Multiscale  — SampEn across coarse-grained scales (Costa et al.)
//
// ✨ Conventions:
//   - Window comparisons use the Chebyshev distance (maximum absolute
//     coordinate difference) with a strict `< r` match.
//   - The customary tolerance is r = 0.2·SampleStd(seq); SampleStd uses the
//     N−1 divisor and is exported for exactly that purpose.
//   - Sample entropy returns +Inf when no window pairs match — a valid
//     reading of maximal irregularity, not an error.
//
// ⚙️ Usage:
//
//	import "github.com/adipat/chaos/entropy"
//
//	r := 0.2 * entropy.SampleStd(seq)
//	apen, err := entropy.Approximate(seq, 2, r)
//	if err != nil {
//	  // handle ErrSequenceTooShort, ErrInvalidEmbedding, ...
//	}
//
// Performance:
//
//   - Shannon, Permutation: O(N) and O(N·order·log order) respectively
//   - Approximate, Sample:  O(N²·m) — every pair of embedded windows is compared
//   - Multiscale:           scaleRange sample-entropy runs over shrinking inputs
package entropy
