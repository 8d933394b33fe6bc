package encode_test

import (
	"testing"

	"github.com/adipat/chaos/encode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_EmptyText verifies that every scheme rejects empty input
// with ErrEmptyText.
func TestEncode_EmptyText(t *testing.T) {
	for _, scheme := range []encode.Scheme{
		encode.Ordinal, encode.OneHot, encode.Frequency, encode.Binary,
	} {
		_, err := encode.Encode("", scheme)
		assert.ErrorIs(t, err, encode.ErrEmptyText, "scheme %s must reject empty text", scheme)
	}
}

// TestEncode_UnsupportedScheme verifies that a value outside the closed
// enum yields ErrUnsupportedScheme.
func TestEncode_UnsupportedScheme(t *testing.T) {
	_, err := encode.Encode("abc", encode.Scheme(42))
	assert.ErrorIs(t, err, encode.ErrUnsupportedScheme)
}

// TestEncode_Ordinal checks that ordinal encoding emits one code point per
// character, in original order.
func TestEncode_Ordinal(t *testing.T) {
	seq, err := encode.Encode("abca", encode.Ordinal)
	require.NoError(t, err)
	assert.Equal(t, []float64{97, 98, 99, 97}, seq)
}

// TestEncode_Ordinal_Unicode checks that characters are runes, not bytes.
func TestEncode_Ordinal_Unicode(t *testing.T) {
	seq, err := encode.Encode("aπ", encode.Ordinal)
	require.NoError(t, err)
	assert.Equal(t, []float64{97, 960}, seq, "two runes must yield two elements")
}

// TestEncode_OneHot verifies the L·k shape, 0/1 elements, and exactly one 1
// per length-k block, with alphabet ranks taken from the sorted distinct
// characters.
func TestEncode_OneHot(t *testing.T) {
	// "bab": alphabet [a b], rows b=[0 1], a=[1 0], b=[0 1].
	seq, err := encode.Encode("bab", encode.OneHot)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0, 0, 1}, seq)
}

// TestEncode_OneHot_Shape checks the L·k length and one-hot block property
// on a longer text.
func TestEncode_OneHot_Shape(t *testing.T) {
	text := "mississippi" // L=11, alphabet {i m p s} => k=4
	seq, err := encode.Encode(text, encode.OneHot)
	require.NoError(t, err)
	require.Len(t, seq, 11*4)

	for block := 0; block < 11; block++ {
		ones := 0.0
		for i := 0; i < 4; i++ {
			v := seq[block*4+i]
			assert.Contains(t, []float64{0, 1}, v, "elements must be 0 or 1")
			ones += v
		}
		assert.Equal(t, 1.0, ones, "block %d must contain exactly one 1", block)
	}
}

// TestEncode_OneHot_SingleCharacter covers the degenerate k=1 case: a
// single-character text encodes to the single-element sequence [1].
func TestEncode_OneHot_SingleCharacter(t *testing.T) {
	seq, err := encode.Encode("x", encode.OneHot)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, seq)
}

// TestEncode_Frequency checks per-position relative frequencies.
func TestEncode_Frequency(t *testing.T) {
	// "aab": a appears 2/3, b appears 1/3.
	seq, err := encode.Encode("aab", encode.Frequency)
	require.NoError(t, err)
	require.Len(t, seq, 3)
	assert.InDelta(t, 2.0/3.0, seq[0], 1e-15)
	assert.InDelta(t, 2.0/3.0, seq[1], 1e-15)
	assert.InDelta(t, 1.0/3.0, seq[2], 1e-15)
}

// TestEncode_Frequency_Constant verifies that a one-symbol text collapses
// to the constant sequence of ones.
func TestEncode_Frequency_Constant(t *testing.T) {
	seq, err := encode.Encode("aaaa", encode.Frequency)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, seq)
}

// TestEncode_Binary_ASCII verifies that a single ASCII character yields
// exactly 8 elements matching its code point's binary digits.
func TestEncode_Binary_ASCII(t *testing.T) {
	// 'A' = 65 = 0b01000001
	seq, err := encode.Encode("A", encode.Binary)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 0, 0, 0, 0, 1}, seq)
}

// TestEncode_Binary_Concatenation checks character order and the 8·L length
// for ASCII text.
func TestEncode_Binary_Concatenation(t *testing.T) {
	seq, err := encode.Encode("ab", encode.Binary)
	require.NoError(t, err)
	require.Len(t, seq, 16)
	// 'a' = 97 = 0b01100001, 'b' = 98 = 0b01100010
	assert.Equal(t, []float64{0, 1, 1, 0, 0, 0, 0, 1}, seq[:8])
	assert.Equal(t, []float64{0, 1, 1, 0, 0, 0, 1, 0}, seq[8:])
}

// TestEncode_Binary_WidensForNonASCII verifies the widening policy: the
// field width grows to the bit length of the largest code point, and every
// character block shares that width.
func TestEncode_Binary_WidensForNonASCII(t *testing.T) {
	// 'π' = U+03C0 = 960, bit length 10, so width 10 for the whole text.
	seq, err := encode.Encode("aπ", encode.Binary)
	require.NoError(t, err)
	require.Len(t, seq, 20)
	// 'a' = 97 = 0b0001100001 at width 10.
	assert.Equal(t, []float64{0, 0, 0, 1, 1, 0, 0, 0, 0, 1}, seq[:10])
	// 'π' = 960 = 0b1111000000.
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0, 0, 0}, seq[10:])
}
