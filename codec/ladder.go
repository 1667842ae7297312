package codec

// 10^19 only fits the unsigned table.
var rungs64 = [20]uint64{
	1e19, 1e18, 1e17, 1e16, 1e15, 1e14, 1e13, 1e12, 1e11, 1e10,
	1e9, 1e8, 1e7, 1e6, 1e5, 1e4, 1e3, 1e2, 1e1, 1,
}

var rungs32 = [10]uint32{
	1e9, 1e8, 1e7, 1e6, 1e5, 1e4, 1e3, 1e2, 1e1, 1,
}

// climb writes u into buf most significant digit first and returns the
// number of digits. Rungs above u are skipped; every rung after the leading
// digit emits, zeros included. The ones digit is always written.
func climb[U uint32 | uint64](buf []byte, u U, rungs []U) int {
	last := len(rungs) - 1
	i := 0
	for i < last && u < rungs[i] {
		i++
	}

	n := 0
	for ; i < last; i++ {
		r := rungs[i]
		buf[n] = '0' + byte(u/r)
		u %= r
		n++
	}
	buf[n] = '0' + byte(u)
	return n + 1
}

// width returns the number of digits climb writes for u.
func width[U uint32 | uint64](u U, rungs []U) int {
	last := len(rungs) - 1
	i := 0
	for i < last && u < rungs[i] {
		i++
	}
	return len(rungs) - i
}
