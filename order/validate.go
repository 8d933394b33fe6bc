// Package order - request validation staged ahead of any computation.
//
// Design principles:
//   - Fail-fast: every validation error surfaces before the first encoding
//     or entropy computation; a rejected call performs no work.
//   - Strict sentinels: only errors from types.go, optionally wrapped with
//     the offending value via %w.
//   - Deterministic, side-effect free helpers.
package order

import (
	"fmt"

	"github.com/adipat/chaos/encode"
)

// validateRequest checks the text and both selections, substituting the
// documented defaults for nil slices. It returns the effective selections.
//
// Complexity: O(e + a) over the selection lengths.
func validateRequest(text string, opts *Options) ([]encode.Scheme, []Algorithm, error) {
	if text == "" {
		return nil, nil, ErrEmptyText
	}

	defaults := DefaultOptions()
	encodings := defaults.Encodings
	algorithms := defaults.Algorithms
	if opts != nil && opts.Encodings != nil {
		encodings = opts.Encodings
	}
	if opts != nil && opts.Algorithms != nil {
		algorithms = opts.Algorithms
	}

	if err := validateEncodings(encodings); err != nil {
		return nil, nil, err
	}
	if err := validateAlgorithms(algorithms); err != nil {
		return nil, nil, err
	}

	return encodings, algorithms, nil
}

// validateEncodings enforces that every scheme is a declared constant and
// appears at most once.
func validateEncodings(schemes []encode.Scheme) error {
	seen := make(map[encode.Scheme]struct{}, len(schemes))
	for _, s := range schemes {
		switch s {
		case encode.Ordinal, encode.OneHot, encode.Frequency, encode.Binary:
			// recognized
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, s)
		}
		if _, ok := seen[s]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSelection, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// validateAlgorithms enforces membership in the validated set and
// uniqueness. Multiscale and unknown values both land on
// ErrUnsupportedAlgorithm.
func validateAlgorithms(algorithms []Algorithm) error {
	seen := make(map[Algorithm]struct{}, len(algorithms))
	for _, a := range algorithms {
		switch a {
		case Shannon, Approximate, Sample, Permutation:
			// validated set
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
		}
		if _, ok := seen[a]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSelection, a)
		}
		seen[a] = struct{}{}
	}

	return nil
}
