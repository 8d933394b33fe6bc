// Package order runs validated entropy analysis over the full
// (encoding × algorithm) cross product of a request.
//
// 🚀 What is order?
//
//	The orchestration layer of chaos:
//	  • validates a selection of encoding schemes and algorithms fail-fast
//	  • encodes the text once per scheme, in request order
//	  • computes every selected estimator with its conventional parameters
//	  • aggregates finite results, or fails the whole call
//
// ✨ Guarantees:
//   - All-or-nothing: validation errors surface before any computation, and
//     any computation failure aborts the call — no partial result sets.
//   - Finite results only: a NaN or infinite entropy fails the call with a
//     ComputationError whose cause is ErrNonFiniteResult; it is never
//     silently dropped or substituted.
//   - Stable order: results follow the requested encoding order, and within
//     each encoding the requested algorithm order.
//   - Stable names: Result fields use the canonical wire names
//     ("frequency", "shannon_entropy", …); ResponseSchema pins the shape.
//
// ⚙️ Usage:
//
//	import "github.com/adipat/chaos/order"
//
//	// Defaults: Frequency encoding × {Shannon, Approximate, Sample, Permutation}.
//	results, err := order.Analyze("some text to analyze", nil)
//
//	// Explicit selection, JSON document out.
//	opts := order.Options{
//	  Encodings:  []encode.Scheme{encode.Ordinal, encode.Binary},
//	  Algorithms: []order.Algorithm{order.Shannon, order.Sample},
//	}
//	doc, err := order.AnalyzeJSON("some text to analyze", &opts)
//
// Multiscale entropy is deliberately outside the validated set: it returns
// one value per scale and cannot fill the scalar entropy field of a Result.
// Call entropy.Multiscale directly when you need the profile.
//
// Cost note: Approximate and Sample entropy are O(N²) in the encoded
// sequence length, and one-hot encoding multiplies text length by alphabet
// size first. Every (encoding, algorithm) computation is independent and
// side-effect free, so callers may shard requests if they need parallelism.
package order
