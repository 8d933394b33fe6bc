// Package encode defines the encoding schemes and error values shared by
// the text→numeric transforms.
package encode

import (
	"errors"
	"fmt"
)

// Sentinel errors for text encoding.
var (
	// ErrEmptyText is returned when the input text has no characters.
	ErrEmptyText = errors.New("encode: input text must be non-empty")

	// ErrUnsupportedScheme is returned when a scheme is not one of the
	// declared Scheme constants.
	ErrUnsupportedScheme = errors.New("encode: unsupported encoding scheme")
)

// Scheme identifies a text→numeric encoding transform.
//
//   - Ordinal   — each character's Unicode code point, in original order.
//   - OneHot    — one boolean row per character over the sorted distinct
//     characters of the text, flattened row-major.
//   - Frequency — each character's occurrence count divided by text length.
//   - Binary    — each character's code point as fixed-width binary digits,
//     one element per bit, concatenated in character order.
type Scheme int

const (
	// Ordinal encodes each character as its Unicode code point.
	Ordinal Scheme = iota

	// OneHot encodes each character as a one-hot row over the text's
	// alphabet, flattened into a single sequence.
	OneHot

	// Frequency encodes each character as its relative frequency in the text.
	Frequency

	// Binary encodes each character as fixed-width binary digits.
	Binary
)

// String returns the canonical wire name of the scheme. These names are a
// stable contract for downstream consumers of analysis results.
func (s Scheme) String() string {
	switch s {
	case Ordinal:
		return "ordinal"
	case OneHot:
		return "one_hot"
	case Frequency:
		return "frequency"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}
