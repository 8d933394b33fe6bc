// Package encode turns text into numeric sequences suitable for entropy
// estimation.
//
// 🚀 What is encode?
//
//	A closed set of deterministic text→numeric transforms:
//	  • Ordinal   — each character's Unicode code point, in order
//	  • OneHot    — one-hot rows over the sorted alphabet, flattened row-major
//	  • Frequency — each character's relative frequency in the whole text
//	  • Binary    — fixed-width binary digits of each code point, one per element
//
// ✨ Key properties:
//   - Characters are Unicode code points (runes), never raw bytes
//   - Output length is a pure function of the input: Ordinal and Frequency
//     produce one element per character, OneHot produces len(text)·|alphabet|,
//     Binary produces width·len(text) with a single width per text
//   - Binary widens beyond 8 bits only when the text contains code points
//     above U+00FF, so ASCII text always yields exactly 8 bits per character
//
// ⚙️ Usage:
//
//	import "github.com/adipat/chaos/encode"
//
//	seq, err := encode.Encode("hello", encode.Ordinal)
//	if err != nil {
//	  // handle ErrEmptyText or ErrUnsupportedScheme
//	}
//
// Complexity: O(n) for Ordinal, Frequency and Binary; O(n·k) for OneHot
// where k is the number of distinct characters.
package encode
