// Package bigint: hexadecimal rendering and parsing.
// String is the diagnostic form (it exposes the raw carrier, not a minimal
// numeral); ParseHex is its exact inverse.

package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the carrier as 8 lowercase hex digits per word, most
// significant word first, with no separators and no 0x prefix. Negative
// values therefore appear in their two's-complement form, e.g. -2 as
// "fffffffe". Complexity: O(n).
func (x Int) String() string {
	w := x.words()
	var sb strings.Builder
	sb.Grow(len(w) * hexDigitsPerWord)
	for _, d := range w {
		fmt.Fprintf(&sb, "%08x", d)
	}
	return sb.String()
}

// ParseHex converts the output of String back into an Int.
//
// The input may carry a single optional "0x"/"0X" prefix; the remaining
// digits are case-insensitive hex and their count must be a positive
// multiple of 8 so that every word is fully specified and the sign bit of
// the leading word is unambiguous. The parsed carrier is canonicalized.
//
// Returns ErrHexLength for an empty or odd-width input and ErrInvalidHex
// for a non-hex character. Complexity: O(n).
func ParseHex(s string) (Int, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s = rest
	} else if rest, ok = strings.CutPrefix(s, "0X"); ok {
		s = rest
	}
	if len(s) == 0 || len(s)%hexDigitsPerWord != 0 {
		return Int{}, ErrHexLength
	}
	words := make([]uint32, len(s)/hexDigitsPerWord)
	for i := range words {
		chunk := s[i*hexDigitsPerWord : (i+1)*hexDigitsPerWord]
		v, err := strconv.ParseUint(chunk, 16, wordBits)
		if err != nil {
			return Int{}, fmt.Errorf("word %d (%q): %w", i, chunk, ErrInvalidHex)
		}
		words[i] = uint32(v)
	}
	return Int{carrier: truncate(words)}, nil
}
