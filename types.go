// Package bigint: the Int value type and carrier-level constants.
// This file declares Int, the word-level constants shared by the arithmetic
// routines, and the read-only carrier accessors.

package bigint

const (
	// wordBits is the width of a single carrier word.
	wordBits = 32

	// signMask selects the sign bit of a word.
	signMask uint32 = 1 << (wordBits - 1)

	// extNeg is the word prepended when sign-extending a negative value.
	extNeg uint32 = ^uint32(0)

	// extPos is the word prepended when sign-extending a non-negative value.
	extPos uint32 = 0

	// hexDigitsPerWord is the length of one word rendered by String.
	hexDigitsPerWord = 8
)

// zeroCarrier backs the zero value of Int. It is shared and must never be
// written to.
var zeroCarrier = []uint32{0}

// Int is a signed integer of unbounded precision.
//
// The carrier holds the two's-complement representation, most-significant
// word first, and is never empty. The stored form is canonical after every
// exported constructor and operation: no leading word can be removed without
// changing the represented sign or value.
//
// The zero value of Int is a usable representation of 0.
type Int struct {
	carrier []uint32
}

// words returns the internal carrier, substituting the canonical zero
// carrier for an uninitialized Int. Callers must treat the result as
// read-only.
func (x Int) words() []uint32 {
	if len(x.carrier) == 0 {
		return zeroCarrier
	}
	return x.carrier
}

// Words returns a copy of the carrier, most-significant word first.
// Complexity: O(n).
func (x Int) Words() []uint32 {
	w := x.words()
	out := make([]uint32, len(w))
	copy(out, w)
	return out
}

// Len reports the number of words in the carrier. Canonical values use the
// fewest words able to hold the value and its sign, so Len is also the
// storage cost of x. Complexity: O(1).
func (x Int) Len() int {
	return len(x.words())
}

// extWord returns the word that sign-extends a carrier whose leading word
// is w: all ones for negative values, all zeros otherwise.
func extWord(w uint32) uint32 {
	if w&signMask != 0 {
		return extNeg
	}
	return extPos
}
