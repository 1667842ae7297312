package parse

import (
	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/codec"
)

// Int parses an optionally '-'-prefixed run of digits.
func Int[T numconv.Signed, S numconv.Text](s S) T {
	if s[0] == '-' {
		return -codec.DecodeSpan[T](s[1:])
	}
	return codec.DecodeSpan[T](s)
}

// PositiveInt parses digits with no sign.
func PositiveInt[T numconv.Signed, S numconv.Text](s S) T {
	return codec.DecodeSpan[T](s)
}

// NegativeInt parses digits preceded by '-'. s[0] is skipped unread.
func NegativeInt[T numconv.Signed, S numconv.Text](s S) T {
	return -codec.DecodeSpan[T](s[1:])
}

// Uint parses digits with no sign.
func Uint[T numconv.Unsigned, S numconv.Text](s S) T {
	return codec.DecodeSpan[T](s)
}

func Int32(s string) int32         { return Int[int32](s) }
func PositiveInt32(s string) int32 { return PositiveInt[int32](s) }
func NegativeInt32(s string) int32 { return NegativeInt[int32](s) }
func Uint32(s string) uint32       { return Uint[uint32](s) }

func Int64(s string) int64         { return Int[int64](s) }
func PositiveInt64(s string) int64 { return PositiveInt[int64](s) }
func NegativeInt64(s string) int64 { return NegativeInt[int64](s) }
func Uint64(s string) uint64       { return Uint[uint64](s) }
