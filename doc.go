// Package bigint implements a signed integer of unbounded precision,
// stored as a carrier of 32-bit words interpreted in two's-complement form.
//
// What:
//
//   - Int wraps a non-empty []uint32 carrier, most-significant word first,
//     representing a signed value over 32×len(carrier) bits.
//   - The sign of the whole value is the top bit of the leading word.
//   - Arithmetic never wraps: when a sum outgrows its current width the
//     carrier grows by one word, and redundant leading words are trimmed
//     back to the shortest (canonical) form after every operation.
//   - Int is an immutable value type: every operation returns a new Int,
//     so values may be shared across goroutines without synchronization.
//
// Why:
//
//   - Accounting and counters that must never silently overflow.
//   - Protocol fields and checksums wider than 64 bits.
//   - A compact, dependency-free alternative to math/big when only
//     addition, subtraction and negation are needed.
//
// Supported operations:
//
//   - Construction: New, FromWords, MustFromWords, FromInt64, ParseHex
//   - Arithmetic:   Add, Sub, Neg
//   - Inspection:   Sign, IsZero, Cmp, Equal, Words, Len, Int64
//   - Rendering:    String (8 lowercase hex digits per word, MSW first)
//
// Complexity:
//
//   - Add / Sub / Neg / Cmp: O(n) time, O(n) memory, n = word count.
//   - String / ParseHex:     O(n).
//
// Errors:
//
//   - ErrEmptyCarrier — FromWords called with an empty slice.
//   - ErrHexLength    — ParseHex input is empty or not whole words.
//   - ErrInvalidHex   — ParseHex input contains a non-hex digit.
//
// Out of scope: multiplication, division, decimal-string conversion and
// exponentiation. For those, use math/big.
package bigint
