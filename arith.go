// Package bigint: carrier arithmetic.
// This file implements sign extension, two's-complement negation, canonical
// truncation, and the Add/Sub/Neg/Cmp surface built on them.
//
// Algorithm outline (Add):
//  1. Sign-extend both carriers to the longer length n.
//  2. Add word-by-word from the least-significant end, carrying upward.
//  3. If both inputs share a sign and the n-word sum reports the opposite
//     sign, the magnitude outgrew n words: prepend one extension word of
//     the inputs' sign to repair the value.
//  4. Truncate to canonical form.
//
// Operands of differing signs can never outgrow n words, so step 3 grows
// the carrier by at most one word per addition.

package bigint

import "math/bits"

// signExtend widens w to n words by prepending extension words of w's sign.
// When n <= len(w) the input is returned unchanged; the result is therefore
// read-only either way. Complexity: O(n).
func signExtend(w []uint32, n int) []uint32 {
	if n <= len(w) {
		return w
	}
	ext := extWord(w[0])
	out := make([]uint32, n)
	pad := n - len(w)
	for i := 0; i < pad; i++ {
		out[i] = ext
	}
	copy(out[pad:], w)
	return out
}

// twoComplement negates w in two's-complement form: every word is inverted,
// then 1 is added at the least-significant word with the carry rippling
// upward. The result keeps the width of w, so negating the minimum value of
// that width wraps onto itself; callers needing exact negation must widen
// first (see Neg and Sub). Complexity: O(n).
func twoComplement(w []uint32) []uint32 {
	out := make([]uint32, len(w))
	carry := uint32(1)
	for i := len(w) - 1; i >= 0; i-- {
		out[i], carry = bits.Add32(^w[i], 0, carry)
	}
	return out
}

// truncate trims w to canonical form: the leading word is dropped while at
// least two words remain and the leading word matches the extension word
// implied by the next word's sign bit. Dropping stops as soon as removal
// would flip the represented sign. The result is never empty.
// Complexity: O(n).
func truncate(w []uint32) []uint32 {
	for len(w) > 1 && w[0] == extWord(w[1]) {
		w = w[1:]
	}
	return w
}

// Add returns the sum x + y.
//
// The carriers are aligned by sign extension, summed with a rippling carry,
// grown by one word if the magnitude outgrew the common width, and trimmed
// to canonical form. Add never wraps and never fails.
// Complexity: O(n) time and memory, n = max(x.Len(), y.Len()).
func (x Int) Add(y Int) Int {
	xw, yw := x.words(), y.words()
	n := max(len(xw), len(yw))
	a := signExtend(xw, n)
	b := signExtend(yw, n)
	aNeg := a[0]&signMask != 0
	bNeg := b[0]&signMask != 0

	sum := make([]uint32, n)
	var carry uint32
	for i := n - 1; i >= 0; i-- {
		sum[i], carry = bits.Add32(a[i], b[i], carry)
	}

	// Same-sign operands whose sum reports the opposite sign have outgrown
	// n words; one extension word of the operands' sign repairs the value.
	if aNeg == bNeg && (sum[0]&signMask != 0) != aNeg {
		fix := extPos
		if aNeg {
			fix = extNeg
		}
		sum = append([]uint32{fix}, sum...)
	}

	return Int{carrier: truncate(sum)}
}

// Sub returns the difference x - y, computed as x + (-y).
//
// y is sign-extended by one word before negation so that negating the
// minimum value of its width is exact rather than wrapping onto itself;
// truncation inside Add trims the spare word whenever it is redundant.
// Complexity: O(n).
func (x Int) Sub(y Int) Int {
	yw := y.words()
	return x.Add(Int{carrier: twoComplement(signExtend(yw, len(yw)+1))})
}

// Neg returns -x. Like Sub, it widens before complementing so the minimum
// value of any width negates exactly. Complexity: O(n).
func (x Int) Neg() Int {
	w := x.words()
	return Int{carrier: truncate(twoComplement(signExtend(w, len(w)+1)))}
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, +1 if x > y.
//
// Signs are compared first; equal-signed values are aligned by sign
// extension and compared as unsigned words from the most-significant end,
// which orders two's-complement values correctly once the signs agree.
// Complexity: O(n).
func (x Int) Cmp(y Int) int {
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	}
	xw, yw := x.words(), y.words()
	n := max(len(xw), len(yw))
	a := signExtend(xw, n)
	b := signExtend(yw, n)
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}
