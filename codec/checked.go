package codec

import (
	"fmt"

	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/errors"
	"github.com/wippyai/numconv/internal/bounds"
)

// PutChecked is Put with a capacity check. A short buffer is left untouched
// and reported as KindOutOfBounds.
func PutChecked[T numconv.Integer](buf []byte, v T) (int, error) {
	need := Len(v)
	if len(buf) < need {
		return 0, tooSmall[T](need, len(buf))
	}
	return Put(buf, v), nil
}

// PutTerminatedChecked is PutTerminated with a capacity check that accounts
// for the sentinel byte.
func PutTerminatedChecked[T numconv.Integer](buf []byte, v T) (int, error) {
	need := Len(v) + 1
	if len(buf) < need {
		return 0, tooSmall[T](need, len(buf))
	}
	return PutTerminated(buf, v), nil
}

// DigitValueChecked is DigitValue that rejects bytes outside '0'..'9'.
func DigitValueChecked[T numconv.Integer](c byte) (T, error) {
	if c < '0' || c > '9' {
		return 0, errors.InvalidDigit(errors.PhaseDecode, 0, c)
	}
	return T(c - '0'), nil
}

// DecodeSpanChecked is DecodeSpan for untrusted input. It rejects empty
// spans, non-digit bytes and values that do not fit in T.
func DecodeSpanChecked[T numconv.Integer, S numconv.Text](s S) (T, error) {
	if len(s) == 0 {
		return 0, errors.InvalidInput(errors.PhaseDecode, "empty digit span")
	}

	limit := bounds.Max[T]()
	var u uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.InvalidDigit(errors.PhaseDecode, i, c)
		}
		d := uint64(c - '0')
		if u > (limit-d)/10 {
			return 0, errors.Overflow(errors.PhaseDecode, nil, string(s), typeName[T]())
		}
		u = u*10 + d
	}
	return T(u), nil
}

func tooSmall[T numconv.Integer](need, have int) *errors.Error {
	return errors.New(errors.PhaseEncode, errors.KindOutOfBounds).
		GoType(typeName[T]()).
		Value(need).
		Detail("buffer of %d bytes, need %d", have, need).
		Build()
}

func typeName[T numconv.Integer]() string {
	var v T
	return fmt.Sprintf("%T", v)
}
