package codec

import "github.com/wippyai/numconv"

// DigitValue returns the numeric value of the ASCII digit c.
// c is not validated; a non-digit yields c-'0' in T's arithmetic.
func DigitValue[T numconv.Integer](c byte) T {
	return T(c) - '0'
}

func CharToInt32(c byte) int32   { return DigitValue[int32](c) }
func CharToUint32(c byte) uint32 { return DigitValue[uint32](c) }
func CharToInt64(c byte) int64   { return DigitValue[int64](c) }
func CharToUint64(c byte) uint64 { return DigitValue[uint64](c) }

// PositiveDigitToChar returns the ASCII digit for d in [0, 9].
func PositiveDigitToChar(d int) byte {
	return byte(d + '0')
}

// DecodeSpan returns the value of a span made only of ASCII digits, with no
// sign and no terminator. Each digit is scaled by building its power of ten
// with repeated multiplication, most significant digit first. Spans are
// short, so the quadratic cost is accepted.
//
// Nothing is validated: non-digits produce unspecified values and overflow
// wraps in T.
func DecodeSpan[T numconv.Integer, S numconv.Text](s S) T {
	n := len(s)
	var total T
	for i := 0; i < n; i++ {
		d := T(s[i]) - '0'
		for j := i + 1; j < n; j++ {
			d *= 10
		}
		total += d
	}
	return total
}

// DecodeTerminated decodes buf up to its first 0 byte, the sentinel written
// by PutTerminated. Without a sentinel the whole buffer is decoded.
func DecodeTerminated[T numconv.Integer](buf []byte) T {
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return DecodeSpan[T](buf[:n])
}
