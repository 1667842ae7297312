package codec_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/wippyai/numconv/codec"
)

func TestPut_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		put  func([]byte) int
		want string
	}{
		{"uint32 seven", func(b []byte) int { return codec.PutUint32(b, 7) }, "7"},
		{"int32 minus 42", func(b []byte) int { return codec.PutInt32(b, -42) }, "-42"},
		{"int64 max", func(b []byte) int { return codec.PutInt64(b, math.MaxInt64) }, "9223372036854775807"},
		{"uint64 max", func(b []byte) int { return codec.PutUint64(b, math.MaxUint64) }, "18446744073709551615"},
		{"uint32 max", func(b []byte) int { return codec.PutUint32(b, math.MaxUint32) }, "4294967295"},
		{"int32 max", func(b []byte) int { return codec.PutInt32(b, math.MaxInt32) }, "2147483647"},
		{"uint64 top rung", func(b []byte) int { return codec.PutUint64(b, 1e19) }, "10000000000000000000"},
		{"uint32 top rung", func(b []byte) int { return codec.PutUint32(b, 1e9) }, "1000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf [codec.MaxLenUint64]byte
			n := tt.put(buf[:])
			if got := string(buf[:n]); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPut_Zero(t *testing.T) {
	var buf [codec.MaxLenUint64]byte
	checks := []struct {
		name string
		n    int
	}{
		{"int32", codec.PutInt32(buf[:], 0)},
		{"uint32", codec.PutUint32(buf[:], 0)},
		{"int64", codec.PutInt64(buf[:], 0)},
		{"uint64", codec.PutUint64(buf[:], 0)},
		{"int8", codec.Put(buf[:], int8(0))},
		{"uint", codec.Put(buf[:], uint(0))},
	}
	for _, c := range checks {
		if c.n != 1 || buf[0] != '0' {
			t.Errorf("%s: got %q", c.name, buf[:c.n])
		}
	}
}

func TestPut_InteriorZeros(t *testing.T) {
	values := []uint64{10, 100, 105, 1001, 10203, 1000000007, 9000000000000000001, 10000000000000000000}
	for _, v := range values {
		var buf [codec.MaxLenUint64]byte
		n := codec.PutUint64(buf[:], v)
		want := strconv.FormatUint(v, 10)
		if got := string(buf[:n]); got != want {
			t.Errorf("PutUint64(%d) = %q, want %q", v, got, want)
		}

		if v <= math.MaxUint32 {
			n = codec.PutUint32(buf[:], uint32(v))
			if got := string(buf[:n]); got != want {
				t.Errorf("PutUint32(%d) = %q, want %q", v, got, want)
			}
		}
	}
}

// The minimum signed values have no positive counterpart in their own type.
// The ladder negates after widening to uint64, so they render exactly.
func TestPut_SignedMinimum(t *testing.T) {
	var buf [codec.MaxLenInt64]byte

	n := codec.PutInt32(buf[:], math.MinInt32)
	if got := string(buf[:n]); got != "-2147483648" {
		t.Errorf("PutInt32(MinInt32) = %q", got)
	}
	if n != codec.MaxLenInt32 {
		t.Errorf("PutInt32(MinInt32) wrote %d bytes, want %d", n, codec.MaxLenInt32)
	}

	n = codec.PutInt64(buf[:], math.MinInt64)
	if got := string(buf[:n]); got != "-9223372036854775808" {
		t.Errorf("PutInt64(MinInt64) = %q", got)
	}
	if n != codec.MaxLenInt64 {
		t.Errorf("PutInt64(MinInt64) wrote %d bytes, want %d", n, codec.MaxLenInt64)
	}
}

func TestPut_NamedTypes(t *testing.T) {
	type port uint16
	type offset int64

	var buf [codec.MaxLenInt64]byte
	n := codec.Put(buf[:], port(8080))
	if got := string(buf[:n]); got != "8080" {
		t.Errorf("got %q", got)
	}
	n = codec.Put(buf[:], offset(-1))
	if got := string(buf[:n]); got != "-1" {
		t.Errorf("got %q", got)
	}
	n = codec.Put(buf[:], int8(math.MinInt8))
	if got := string(buf[:n]); got != "-128" {
		t.Errorf("got %q", got)
	}
}

func TestPut_ShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a buffer shorter than the rendered length")
		}
	}()
	buf := make([]byte, 3)
	codec.PutUint32(buf, 12345)
}

func TestPutTerminated(t *testing.T) {
	buf := []byte("xxxxxxxxxxxx")
	n := codec.PutTerminated(buf, int32(-905))
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	if got := string(buf[:n]); got != "-905" {
		t.Errorf("digits = %q", got)
	}
	if buf[n] != 0 {
		t.Errorf("sentinel = %q, want 0", buf[n])
	}
	if buf[n+1] != 'x' {
		t.Errorf("PutTerminated wrote past the sentinel")
	}

	var wide [codec.TerminatedLenUint64]byte
	n = codec.PutTerminated(wide[:], uint64(math.MaxUint64))
	if n != codec.MaxLenUint64 || wide[n] != 0 {
		t.Errorf("n = %d, last byte = %d", n, wide[len(wide)-1])
	}
}

func TestAppend(t *testing.T) {
	dst := []byte("id=")
	dst = codec.Append(dst, int64(-77))
	dst = append(dst, ',')
	dst = codec.Append(dst, uint64(math.MaxUint64))
	if got := string(dst); got != "id=-77,18446744073709551615" {
		t.Errorf("got %q", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{codec.FormatInt32(-42), "-42"},
		{codec.FormatUint32(7), "7"},
		{codec.FormatInt64(math.MinInt64), "-9223372036854775808"},
		{codec.FormatUint64(0), "0"},
		{codec.Format(uint8(255)), "255"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
		if len(tt.got) != len(tt.want) {
			t.Errorf("len(%q) = %d, want exact length %d", tt.got, len(tt.got), len(tt.want))
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		got  int
		want int
	}{
		{codec.Len(int32(0)), 1},
		{codec.Len(int32(-1)), 2},
		{codec.Len(int32(math.MinInt32)), 11},
		{codec.Len(uint32(9)), 1},
		{codec.Len(uint32(10)), 2},
		{codec.Len(uint32(math.MaxUint32)), 10},
		{codec.Len(int64(math.MinInt64)), 20},
		{codec.Len(uint64(math.MaxUint64)), 20},
		{codec.Len(uint64(9999999999999999999)), 19},
	}
	for i, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("case %d: got %d, want %d", i, tt.got, tt.want)
		}
	}
}

func TestMaxLen(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"int32", codec.MaxLen[int32](), codec.MaxLenInt32},
		{"uint32", codec.MaxLen[uint32](), codec.MaxLenUint32},
		{"int64", codec.MaxLen[int64](), codec.MaxLenInt64},
		{"uint64", codec.MaxLen[uint64](), codec.MaxLenUint64},
		{"int8", codec.MaxLen[int8](), 4},
		{"uint16", codec.MaxLen[uint16](), 5},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestPut_NoAllocations(t *testing.T) {
	var buf [codec.MaxLenUint64]byte
	allocs := testing.AllocsPerRun(100, func() {
		codec.PutInt64(buf[:], math.MinInt64)
		codec.PutUint64(buf[:], math.MaxUint64)
		codec.PutTerminated(buf[:], int32(-12345))
	})
	if allocs != 0 {
		t.Errorf("Put allocated %.0f times per run", allocs)
	}
}

func TestFormat_SingleAllocation(t *testing.T) {
	var sink string
	allocs := testing.AllocsPerRun(100, func() {
		sink = codec.FormatUint64(math.MaxUint64)
	})
	if allocs != 1 {
		t.Errorf("Format allocated %.0f times per run, want 1", allocs)
	}
	_ = sink
}
