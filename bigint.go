// Package bigint: constructors and conversions.
// This file declares the ways to obtain an Int (from a single word, a whole
// carrier, or an int64) and the exact conversion back to int64.

package bigint

import "fmt"

// New returns an Int holding the single word w.
//
// The carrier is one word, so w is read as a 32-bit two's-complement value:
// words with the top bit set (w ≥ 2^31) produce a negative Int. Use
// FromInt64 when w should be taken as an unsigned magnitude instead.
// Complexity: O(1).
func New(w uint32) Int {
	return Int{carrier: []uint32{w}}
}

// FromWords returns an Int whose value is the two's-complement reading of
// words, most-significant word first. The input is copied and canonicalized,
// so the result may use fewer words than were supplied.
// Returns ErrEmptyCarrier if words is empty.
// Complexity: O(n).
func FromWords(words []uint32) (Int, error) {
	if len(words) == 0 {
		return Int{}, ErrEmptyCarrier
	}
	c := make([]uint32, len(words))
	copy(c, words)
	return Int{carrier: truncate(c)}, nil
}

// MustFromWords is like FromWords but panics on error. It simplifies the
// construction of package-level constants and test fixtures from carriers
// that are known to be valid.
func MustFromWords(words []uint32) Int {
	x, err := FromWords(words)
	if err != nil {
		panic(fmt.Sprintf("bigint: MustFromWords(%v) failed: %v", words, err))
	}
	return x
}

// FromInt64 returns an Int with the value v. The 64-bit two's-complement
// pattern of v is split into two words and canonicalized, so small values
// end up in a single word. Complexity: O(1).
func FromInt64(v int64) Int {
	u := uint64(v)
	return Int{carrier: truncate([]uint32{uint32(u >> wordBits), uint32(u)})}
}

// Int64 returns the value of x as an int64. The second result reports
// whether the conversion was exact; it is false when x needs more than 64
// bits. Complexity: O(1).
func (x Int) Int64() (int64, bool) {
	w := x.words()
	switch len(w) {
	case 1:
		return int64(uint64(extWord(w[0]))<<wordBits | uint64(w[0])), true
	case 2:
		return int64(uint64(w[0])<<wordBits | uint64(w[1])), true
	default:
		return 0, false
	}
}

// Sign reports the sign of x: -1 if negative, 0 if zero, +1 if positive.
// Complexity: O(n) (zero needs a full scan).
func (x Int) Sign() int {
	w := x.words()
	if w[0]&signMask != 0 {
		return -1
	}
	for _, d := range w {
		if d != 0 {
			return 1
		}
	}
	return 0
}

// IsZero reports whether x represents 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}
