package codec

import (
	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/internal/bounds"
)

// Worst-case rendered lengths, sign included, terminator excluded.
const (
	MaxLenInt32  = 11 // -2147483648
	MaxLenUint32 = 10 // 4294967295
	MaxLenInt64  = 20 // -9223372036854775808
	MaxLenUint64 = 20 // 18446744073709551615
)

// Buffer sizes for PutTerminated.
const (
	TerminatedLenInt32  = MaxLenInt32 + 1
	TerminatedLenUint32 = MaxLenUint32 + 1
	TerminatedLenInt64  = MaxLenInt64 + 1
	TerminatedLenUint64 = MaxLenUint64 + 1
)

// Len returns the number of bytes Put writes for v.
func Len[T numconv.Integer](v T) int {
	n := 0
	if v < 0 {
		n = 1
	}

	u := bounds.Magnitude(v)
	if bounds.Wide[T]() {
		return n + width(u, rungs64[:])
	}
	return n + width(uint32(u), rungs32[:])
}

// MaxLen returns the longest rendering of any value of T.
func MaxLen[T numconv.Integer]() int {
	if bounds.Signed[T]() {
		return 1 + width(bounds.Max[T]()+1, rungs64[:])
	}
	return width(bounds.Max[T](), rungs64[:])
}
