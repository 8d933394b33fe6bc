// Package order defines the algorithm enumeration, result shapes, options
// and error values of the analysis orchestrator.
package order

import (
	"errors"
	"fmt"

	"github.com/adipat/chaos/encode"
)

// Sentinel errors for request validation and result policy.
var (
	// ErrEmptyText is returned when the input text is empty.
	ErrEmptyText = errors.New("order: input text must be a non-empty string")

	// ErrDuplicateSelection is returned when an encoding or algorithm
	// selection contains repeated entries.
	ErrDuplicateSelection = errors.New("order: selection contains duplicate entries")

	// ErrUnsupportedEncoding is returned when a selection references a value
	// outside the declared encoding schemes.
	ErrUnsupportedEncoding = errors.New("order: unsupported encoding scheme")

	// ErrUnsupportedAlgorithm is returned when a selection references an
	// algorithm outside the validated set {Shannon, Approximate, Sample,
	// Permutation}. Multiscale is outside that set: it yields a vector, not
	// a scalar, and cannot fill a Result.
	ErrUnsupportedAlgorithm = errors.New("order: algorithm not in the validated set")

	// ErrNonFiniteResult is the cause carried by a ComputationError when a
	// computed entropy value is NaN or infinite.
	ErrNonFiniteResult = errors.New("order: computed entropy is not finite")

	// ErrEmptyResult is returned when the cross product produced no results
	// despite passing validation (explicitly empty selections).
	ErrEmptyResult = errors.New("order: no entropy results were produced")
)

// Algorithm identifies an entropy estimator.
type Algorithm int

const (
	// Shannon is empirical-distribution entropy in base 2.
	Shannon Algorithm = iota

	// Approximate is approximate entropy (ApEn) at m=2, r=0.2·std.
	Approximate

	// Sample is sample entropy (SampEn) at m=2, r=0.2·std.
	Sample

	// Permutation is permutation entropy at order 3, delay 1.
	Permutation

	// Multiscale is multiscale entropy. It is callable through the entropy
	// package but not selectable here; see ErrUnsupportedAlgorithm.
	Multiscale
)

// algorithmNone marks a ComputationError raised before any algorithm ran
// (the encoding stage itself failed).
const algorithmNone Algorithm = -1

// String returns the canonical wire name of the algorithm. These names are
// a stable contract for downstream consumers of analysis results.
func (a Algorithm) String() string {
	switch a {
	case Shannon:
		return "shannon_entropy"
	case Approximate:
		return "approximate_entropy"
	case Sample:
		return "sample_entropy"
	case Permutation:
		return "permutation_entropy"
	case Multiscale:
		return "multiscale_entropy"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Result is one computed entropy value for an (encoding, algorithm) pair.
// Field names and their string values are the wire contract.
type Result struct {
	Encoding  string  `json:"encoding"`
	Algorithm string  `json:"algorithm"`
	Entropy   float64 `json:"entropy"`
}

// Response is the JSON document shape produced by AnalyzeJSON.
type Response struct {
	Results []Result `json:"results"`
}

// ComputationError reports a failed or non-finite entropy computation. It
// names the offending (encoding, algorithm) pair and wraps the original
// cause, so callers branch with errors.Is/errors.As rather than parsing
// messages.
type ComputationError struct {
	// Encoding is the scheme whose sequence was being analyzed.
	Encoding encode.Scheme

	// Algorithm is the estimator that failed. It is negative when the
	// encoding stage itself failed, before any estimator ran.
	Algorithm Algorithm

	// Err is the original cause (an encode/entropy sentinel, or
	// ErrNonFiniteResult).
	Err error
}

// Error renders the pair and cause.
func (e *ComputationError) Error() string {
	if e.Algorithm < 0 {
		return fmt.Sprintf("order: %s encoding failed: %v", e.Encoding, e.Err)
	}

	return fmt.Sprintf("order: %s over %s encoding failed: %v", e.Algorithm, e.Encoding, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ComputationError) Unwrap() error { return e.Err }

// Options selects which encodings and algorithms Analyze computes. A nil
// slice selects the documented default for that dimension; an explicitly
// empty slice selects nothing and surfaces ErrEmptyResult.
type Options struct {
	// Encodings to apply, in request order. Default: [encode.Frequency].
	Encodings []encode.Scheme

	// Algorithms to run per encoding, in request order.
	// Default: [Shannon, Approximate, Sample, Permutation].
	Algorithms []Algorithm
}

// DefaultOptions returns the documented defaults: the Frequency encoding
// crossed with the full validated algorithm set.
func DefaultOptions() Options {
	return Options{
		Encodings:  []encode.Scheme{encode.Frequency},
		Algorithms: []Algorithm{Shannon, Approximate, Sample, Permutation},
	}
}
