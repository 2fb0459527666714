// Package bigint: sentinel error set.
// All fallible constructors MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors surfaced
// through the Must* helpers.

package bigint

import "errors"

var (
	// ErrEmptyCarrier indicates that a carrier with zero words was supplied.
	// Every Int needs at least one word, if only to carry the sign bit.
	ErrEmptyCarrier = errors.New("bigint: carrier must be non-empty")

	// ErrHexLength indicates that a hex string is empty or its digit count
	// is not a multiple of 8, leaving the sign bit of the leading word
	// undefined.
	ErrHexLength = errors.New("bigint: hex length must be a positive multiple of 8")

	// ErrInvalidHex indicates a character outside [0-9a-fA-F] in a hex string.
	ErrInvalidHex = errors.New("bigint: invalid hexadecimal digit")
)
