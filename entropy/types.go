// Package entropy defines the sentinel errors shared by the estimators.
package entropy

import "errors"

// Sentinel errors for estimator inputs. All parameter validation surfaces
// one of these values; the estimators never panic on user input.
var (
	// ErrEmptySequence indicates the input sequence has no elements.
	ErrEmptySequence = errors.New("entropy: input sequence must be non-empty")

	// ErrInvalidLogBase indicates a logarithm base that is not strictly
	// positive or equals 1.
	ErrInvalidLogBase = errors.New("entropy: logarithm base must be positive and not 1")

	// ErrInvalidEmbedding indicates an embedding dimension below 1.
	ErrInvalidEmbedding = errors.New("entropy: embedding dimension must be at least 1")

	// ErrNegativeTolerance indicates a negative match tolerance.
	ErrNegativeTolerance = errors.New("entropy: tolerance must be non-negative")

	// ErrSequenceTooShort indicates the sequence cannot accommodate a single
	// window at the requested embedding dimension.
	ErrSequenceTooShort = errors.New("entropy: sequence too short for embedding dimension")

	// ErrInvalidOrder indicates a permutation order below 2.
	ErrInvalidOrder = errors.New("entropy: permutation order must be at least 2")

	// ErrInvalidDelay indicates a permutation delay below 1.
	ErrInvalidDelay = errors.New("entropy: delay must be at least 1")

	// ErrInvalidScaleRange indicates a multiscale range below 1.
	ErrInvalidScaleRange = errors.New("entropy: scale range must be at least 1")
)
