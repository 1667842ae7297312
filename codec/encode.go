package codec

import (
	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/internal/bounds"
)

// Put writes the decimal form of v into buf starting at index 0 and returns
// the number of bytes written. No terminator is written.
//
// buf must hold at least Len(v) bytes (MaxLen[T]() always suffices).
// A shorter buffer panics with an index error; Put never reports errors.
func Put[T numconv.Integer](buf []byte, v T) int {
	n := 0
	if v < 0 {
		buf[0] = '-'
		n = 1
	}

	u := bounds.Magnitude(v)
	if bounds.Wide[T]() {
		return n + climb(buf[n:], u, rungs64[:])
	}
	return n + climb(buf[n:], uint32(u), rungs32[:])
}

// PutTerminated is Put followed by a 0 sentinel byte. The returned count
// excludes the sentinel, so buf must hold Len(v)+1 bytes.
func PutTerminated[T numconv.Integer](buf []byte, v T) int {
	n := Put(buf, v)
	buf[n] = 0
	return n
}

func PutInt32(buf []byte, v int32) int   { return Put(buf, v) }
func PutUint32(buf []byte, v uint32) int { return Put(buf, v) }
func PutInt64(buf []byte, v int64) int   { return Put(buf, v) }
func PutUint64(buf []byte, v uint64) int { return Put(buf, v) }

// Append appends the decimal form of v to dst. It only allocates when dst
// lacks capacity.
func Append[T numconv.Integer](dst []byte, v T) []byte {
	var scratch [MaxLenUint64]byte
	n := Put(scratch[:], v)
	return append(dst, scratch[:n]...)
}

// Format returns the decimal form of v as a new string of exactly Len(v)
// bytes. The string's storage is the only allocation.
func Format[T numconv.Integer](v T) string {
	buf := make([]byte, Len(v))
	Put(buf, v)
	return bytesToString(buf)
}

func FormatInt32(v int32) string   { return Format(v) }
func FormatUint32(v uint32) string { return Format(v) }
func FormatInt64(v int64) string   { return Format(v) }
func FormatUint64(v uint64) string { return Format(v) }
