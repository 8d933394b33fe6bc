// Package order - unified entry points for entropy analysis.
//
// This file drives the (encoding × algorithm) cross product:
//
//   - Analyze: validate the request, encode the text once per scheme, run
//     every selected estimator with its conventional parameters, and return
//     the ordered result records.
//   - AnalyzeJSON: same pipeline, shaped as a JSON document.
//
// Design principles:
//   - All-or-nothing per call: the first failure aborts and nothing
//     partially built escapes.
//   - Finite results only: NaN/±Inf fail the call via ComputationError with
//     cause ErrNonFiniteResult.
//   - Deterministic: stable result order, no shared state across calls.
package order

import (
	"encoding/json"
	"math"

	"github.com/adipat/chaos/encode"
	"github.com/adipat/chaos/entropy"
)

// Conventional parameters applied to every (encoding, algorithm) pair.
const (
	shannonBase      = 2
	embeddingDim     = 2
	toleranceFactor  = 0.2
	permutationOrder = 3
	permutationDelay = 1
)

// Analyze computes entropy for the requested cross product of encodings and
// algorithms over text.
//
// A nil opts (or a nil slice inside opts) selects the defaults: the
// Frequency encoding crossed with {Shannon, Approximate, Sample,
// Permutation}. Results follow the requested encoding order and, within
// each encoding, the requested algorithm order.
//
// Errors:
//   - ErrEmptyText, ErrDuplicateSelection, ErrUnsupportedEncoding,
//     ErrUnsupportedAlgorithm — validation, raised before any computation.
//   - *ComputationError — an encoding or estimator failed, or produced a
//     non-finite value (cause ErrNonFiniteResult).
//   - ErrEmptyResult — explicitly empty selections produced no results.
func Analyze(text string, opts *Options) ([]Result, error) {
	encodings, algorithms, err := validateRequest(text, opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(encodings)*len(algorithms))
	for _, scheme := range encodings {
		seq, err := encode.Encode(text, scheme)
		if err != nil {
			return nil, &ComputationError{Encoding: scheme, Algorithm: algorithmNone, Err: err}
		}

		for _, alg := range algorithms {
			value, err := compute(seq, alg)
			if err != nil {
				return nil, &ComputationError{Encoding: scheme, Algorithm: alg, Err: err}
			}
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, &ComputationError{Encoding: scheme, Algorithm: alg, Err: ErrNonFiniteResult}
			}

			results = append(results, Result{
				Encoding:  scheme.String(),
				Algorithm: alg.String(),
				Entropy:   value,
			})
		}
	}

	if len(results) == 0 {
		return nil, ErrEmptyResult
	}

	return results, nil
}

// AnalyzeJSON runs Analyze and shapes the outcome as a JSON document with
// one object per result, fields named per the wire contract
// (encoding, algorithm, entropy).
func AnalyzeJSON(text string, opts *Options) ([]byte, error) {
	results, err := Analyze(text, opts)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Response{Results: results})
}

// compute routes alg to its estimator with the conventional parameters.
//
// A constant sequence has zero sample deviation, which makes the
// 0.2·std tolerance zero; no window then matches under the strict <
// comparison. A constant sequence is maximally regular, so the windowed
// estimators report 0 instead of running into log(0).
func compute(seq []float64, alg Algorithm) (float64, error) {
	switch alg {
	case Shannon:
		return entropy.Shannon(seq, shannonBase)

	case Approximate, Sample:
		std := entropy.SampleStd(seq)
		if std == 0 {
			return 0, nil
		}
		if alg == Approximate {
			return entropy.Approximate(seq, embeddingDim, toleranceFactor*std)
		}

		return entropy.Sample(seq, embeddingDim, toleranceFactor*std)

	case Permutation:
		return entropy.Permutation(seq, permutationOrder, permutationDelay)

	default:
		// Unreachable after validateAlgorithms; kept so a future enum value
		// without a handler fails loudly instead of returning garbage.
		return 0, ErrUnsupportedAlgorithm
	}
}
