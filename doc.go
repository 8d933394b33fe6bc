// Package chaos is a minimal toolkit for measuring the entropy of text —
// from raw encodings to information-theoretic estimators and a one-call
// analysis report.
//
// 🚀 What is chaos?
//
//	A small, deterministic library that brings together:
//		• Encodings: ordinal, one-hot, frequency & binary text→numeric transforms
//		• Estimators: Shannon, Approximate (ApEn), Sample (SampEn),
//		  Permutation & Multiscale entropy
//		• Orchestration: validate a selection, run the full
//		  (encoding × algorithm) cross product, collect finite results
//
// ✨ Why choose chaos?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, no hidden state, stable output order
//   - Pure Go – no cgo, no numerics runtime
//   - Strict error contracts – sentinel errors you can branch on, never parse
//
// Everything is organized under three subpackages:
//
//	encode/  — text → numeric sequence under a closed set of schemes
//	entropy/ — entropy estimators over []float64 plus shared statistics
//	order/   — validated cross-product analysis with a stable JSON shape
//
// Quick example:
//
//	results, err := order.Analyze("hello, entropy!", nil)
//	if err != nil {
//	  // handle validation or computation failure
//	}
//	for _, r := range results {
//	  fmt.Println(r.Encoding, r.Algorithm, r.Entropy)
//	}
//
// Heads-up on cost: Approximate and Sample entropy compare every pair of
// embedded windows and are O(N²) in sequence length; one-hot encoding
// multiplies length by the alphabet size before that comparison runs.
//
//	go get github.com/adipat/chaos
package chaos
