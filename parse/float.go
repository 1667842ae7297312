package parse

import "github.com/wippyai/numconv"

// Float parses an optionally '-'-prefixed decimal with at most one '.'.
func Float[F numconv.Float, S numconv.Text](s S) F {
	if s[0] == '-' {
		return -decimal[F](s, 1)
	}
	return decimal[F](s, 0)
}

// PositiveFloat parses a decimal with no sign.
func PositiveFloat[F numconv.Float, S numconv.Text](s S) F {
	return decimal[F](s, 0)
}

// NegativeFloat parses a decimal preceded by '-'. s[0] is skipped unread.
func NegativeFloat[F numconv.Float, S numconv.Text](s S) F {
	return -decimal[F](s, 1)
}

// decimal accumulates s[start:] in F. The fraction is summed from its last
// digit towards the point so the smallest terms are added first.
func decimal[F numconv.Float, S numconv.Text](s S, start int) F {
	n := len(s)
	dot := start
	for dot < n && s[dot] != '.' {
		dot++
	}

	var total F
	for i := start; i < dot; i++ {
		d := F(s[i]) - '0'
		for j := i + 1; j < dot; j++ {
			d *= 10
		}
		total += d
	}

	var tenth F = 0.1
	for i := n - 1; i > dot; i-- {
		d := F(s[i]) - '0'
		for j := dot; j < i; j++ {
			d *= tenth
		}
		total += d
	}
	return total
}

func Float64(s string) float64         { return Float[float64](s) }
func PositiveFloat64(s string) float64 { return PositiveFloat[float64](s) }
func NegativeFloat64(s string) float64 { return NegativeFloat[float64](s) }

func Float32(s string) float32         { return Float[float32](s) }
func PositiveFloat32(s string) float32 { return PositiveFloat[float32](s) }
func NegativeFloat32(s string) float32 { return NegativeFloat[float32](s) }
