package codec

import "unsafe"

// bytesToString converts b to a string without copying.
// b must not be modified afterwards.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
