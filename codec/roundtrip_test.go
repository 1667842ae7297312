package codec_test

import (
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/codec"
)

// decodeSigned strips the sign Put may have written and decodes the digits.
func decodeSigned[T numconv.Integer](b []byte) T {
	if len(b) > 0 && b[0] == '-' {
		return -codec.DecodeSpan[T](b[1:])
	}
	return codec.DecodeSpan[T](b)
}

func roundTrip[T numconv.Integer](t *testing.T, v T, reference string) {
	t.Helper()
	var buf [codec.MaxLenUint64]byte
	n := codec.Put(buf[:], v)
	if got := string(buf[:n]); got != reference {
		t.Errorf("Put(%v) = %q, want %q", v, got, reference)
	}
	if n != codec.Len(v) {
		t.Errorf("Put(%v) wrote %d bytes, Len reports %d", v, n, codec.Len(v))
	}
	if got := decodeSigned[T](buf[:n]); got != v {
		t.Errorf("round trip of %v gave %v", v, got)
	}
}

// edges returns powers of ten and their neighbours up to limit.
func edges(limit uint64) []uint64 {
	out := []uint64{0, 1, 9, limit, limit - 1}
	for p := uint64(10); ; p *= 10 {
		out = append(out, p-1, p, p+1)
		if p > limit/10 {
			break
		}
	}
	var kept []uint64
	for _, v := range out {
		if v <= limit {
			kept = append(kept, v)
		}
	}
	return kept
}

func TestRoundTrip_Edges(t *testing.T) {
	for _, u := range edges(math.MaxUint64) {
		roundTrip(t, u, strconv.FormatUint(u, 10))
	}
	for _, u := range edges(math.MaxUint32) {
		roundTrip(t, uint32(u), strconv.FormatUint(u, 10))
	}
	for _, u := range edges(math.MaxInt64) {
		v := int64(u)
		roundTrip(t, v, strconv.FormatInt(v, 10))
		roundTrip(t, -v, strconv.FormatInt(-v, 10))
	}
	for _, u := range edges(math.MaxInt32) {
		v := int32(u)
		roundTrip(t, v, strconv.FormatInt(int64(v), 10))
		roundTrip(t, -v, strconv.FormatInt(int64(-v), 10))
	}
	roundTrip(t, int32(math.MinInt32), "-2147483648")
	roundTrip(t, int64(math.MinInt64), "-9223372036854775808")
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20000; i++ {
		u := rng.Uint64() >> rng.UintN(64)
		roundTrip(t, u, strconv.FormatUint(u, 10))
		roundTrip(t, uint32(u), strconv.FormatUint(uint64(uint32(u)), 10))
		roundTrip(t, int64(u), strconv.FormatInt(int64(u), 10))
		roundTrip(t, int32(u), strconv.FormatInt(int64(int32(u)), 10))
	}
}

func FuzzRoundTripInt64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-42))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, v int64) {
		roundTrip(t, v, strconv.FormatInt(v, 10))
	})
}

func FuzzRoundTripUint64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1e19))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, v uint64) {
		roundTrip(t, v, strconv.FormatUint(v, 10))
	})
}
