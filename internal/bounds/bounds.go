// Package bounds answers width and range questions about integer type
// parameters without reflection.
//
// This package is internal to numconv.
package bounds

import (
	"unsafe"

	"github.com/wippyai/numconv"
)

// Bits returns the width of T in bits.
func Bits[T numconv.Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// Signed reports whether T can hold negative values.
func Signed[T numconv.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Max returns the largest value of T widened to uint64.
func Max[T numconv.Integer]() uint64 {
	if Signed[T]() {
		return ^uint64(0) >> (65 - Bits[T]())
	}
	return ^uint64(0) >> (64 - Bits[T]())
}

// Magnitude returns |v| in uint64. Negation happens after widening, so the
// minimum value of a signed type maps to its true magnitude.
func Magnitude[T numconv.Integer](v T) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// Wide reports whether T needs the 64-bit ladder.
func Wide[T numconv.Integer]() bool {
	return Bits[T]() > 32
}
