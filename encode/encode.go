package encode

import (
	"math/bits"
	"sort"
)

// Encode maps text onto a numeric sequence under the given scheme.
//
// The result is never empty for non-empty text. Encoding is deterministic:
// the same (text, scheme) pair always yields the same sequence.
//
// Errors:
//   - ErrEmptyText          — text has no characters.
//   - ErrUnsupportedScheme  — scheme is not a declared Scheme constant.
func Encode(text string, scheme Scheme) ([]float64, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}

	switch scheme {
	case Ordinal:
		return ordinalEncode(text), nil
	case OneHot:
		return oneHotEncode(text), nil
	case Frequency:
		return frequencyEncode(text), nil
	case Binary:
		return binaryEncode(text), nil
	default:
		return nil, ErrUnsupportedScheme
	}
}

// ordinalEncode emits one code point per character, in original order.
func ordinalEncode(text string) []float64 {
	seq := make([]float64, 0, len(text))
	for _, r := range text {
		seq = append(seq, float64(r))
	}

	return seq
}

// oneHotEncode builds one row per character position over the sorted set of
// distinct characters, then flattens row-major. A length-L text with k
// distinct characters yields exactly L·k elements with a single 1 per row.
func oneHotEncode(text string) []float64 {
	runes := []rune(text)

	rank := make(map[rune]int, len(runes))
	for _, r := range runes {
		rank[r] = 0
	}
	alphabet := make([]rune, 0, len(rank))
	for r := range rank {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	for i, r := range alphabet {
		rank[r] = i
	}

	k := len(alphabet)
	seq := make([]float64, len(runes)*k)
	for i, r := range runes {
		seq[i*k+rank[r]] = 1
	}

	return seq
}

// frequencyEncode emits, for each character position, the occurrence count
// of that character across the whole text divided by the text length.
// Every element lies in (0, 1].
func frequencyEncode(text string) []float64 {
	runes := []rune(text)

	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		counts[r]++
	}

	total := float64(len(runes))
	seq := make([]float64, len(runes))
	for i, r := range runes {
		seq[i] = float64(counts[r]) / total
	}

	return seq
}

// binaryEncode emits each character's code point as zero-padded binary
// digits, one element per bit, concatenated in character order.
//
// The field width is fixed once per text: 8 bits, widened to the bit length
// of the largest code point when the text contains characters beyond U+00FF.
// Widening (rather than truncating to the low 8 bits) keeps distinct
// characters distinct and every character block the same width; ASCII-only
// text always gets exactly 8 bits per character.
func binaryEncode(text string) []float64 {
	runes := []rune(text)

	width := 8
	for _, r := range runes {
		if w := bits.Len32(uint32(r)); w > width {
			width = w
		}
	}

	seq := make([]float64, 0, len(runes)*width)
	for _, r := range runes {
		for b := width - 1; b >= 0; b-- {
			seq = append(seq, float64((uint32(r)>>uint(b))&1))
		}
	}

	return seq
}
