package parse

import (
	"fmt"
	"math"

	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/errors"
	"github.com/wippyai/numconv/internal/bounds"
)

// IntChecked parses the grammar of Int and rejects anything else: empty
// input, a lone sign, non-digit bytes and values outside T.
func IntChecked[T numconv.Signed, S numconv.Text](s S) (T, error) {
	start, err := signEnd(s)
	if err != nil {
		return 0, err
	}

	limit := bounds.Max[T]()
	neg := start == 1
	if neg {
		limit++
	}

	u, err := accumulate[T](s, start, limit)
	if err != nil {
		return 0, err
	}
	if neg {
		return -T(u), nil
	}
	return T(u), nil
}

// UintChecked parses the grammar of Uint. A sign is an invalid digit.
func UintChecked[T numconv.Unsigned, S numconv.Text](s S) (T, error) {
	if len(s) == 0 {
		return 0, errors.InvalidInput(errors.PhaseParse, "empty input")
	}
	u, err := accumulate[T](s, 0, bounds.Max[T]())
	if err != nil {
		return 0, err
	}
	return T(u), nil
}

// FloatChecked parses the grammar of Float with the same arithmetic, so a
// valid input yields exactly what Float returns. It rejects a second '.',
// non-digit bytes, input without digits and results that overflow to Inf.
func FloatChecked[F numconv.Float, S numconv.Text](s S) (F, error) {
	start, err := signEnd(s)
	if err != nil {
		return 0, err
	}

	dot := -1
	digits := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.':
			if dot >= 0 {
				return 0, errors.InvalidSyntax(errors.PhaseParse, i, "second decimal point")
			}
			dot = i
		case c >= '0' && c <= '9':
			digits++
		default:
			return 0, errors.InvalidDigit(errors.PhaseParse, i, c)
		}
	}
	if digits == 0 {
		return 0, errors.InvalidInput(errors.PhaseParse, "no digits")
	}

	v := decimal[F](s, start)
	if start == 1 {
		v = -v
	}
	if math.IsInf(float64(v), 0) {
		return 0, errors.Overflow(errors.PhaseParse, nil, string(s), fmt.Sprintf("%T", v))
	}
	return v, nil
}

// signEnd returns the index of the first digit after an optional '-'.
func signEnd[S numconv.Text](s S) (int, error) {
	if len(s) == 0 {
		return 0, errors.InvalidInput(errors.PhaseParse, "empty input")
	}
	if s[0] != '-' {
		return 0, nil
	}
	if len(s) == 1 {
		return 0, errors.InvalidInput(errors.PhaseParse, "sign without digits")
	}
	return 1, nil
}

// accumulate reads the digits of s[start:] into a magnitude no larger than limit.
func accumulate[T numconv.Integer, S numconv.Text](s S, start int, limit uint64) (uint64, error) {
	var u uint64
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.InvalidDigit(errors.PhaseParse, i, c)
		}
		d := uint64(c - '0')
		if u > (limit-d)/10 {
			var v T
			return 0, errors.Overflow(errors.PhaseParse, nil, string(s), fmt.Sprintf("%T", v))
		}
		u = u*10 + d
	}
	return u, nil
}
