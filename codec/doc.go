// Package codec converts integers to and from decimal ASCII digits without
// heap allocation.
//
// # Ladder Encoding
//
// Encoding walks a fixed table of powers of ten from the type's top rung down
// to 1. Rungs above the value are skipped by comparison; from the leading
// digit down, every rung emits one digit and reduces the value:
//
//	rung     value        emitted
//	──────────────────────────────
//	1000     1205  →  205   '1'
//	100      205   →  5     '2'
//	10       5     →  5     '0'
//	1        5             '5'
//
// Digits come out most significant first, so nothing is reversed afterwards,
// and the number of steps is bounded by the type's digit count rather than by
// a division loop. The ladder runs on the unsigned counterpart of the value:
// 32-bit types climb from 10^9, 64-bit types from 10^19, which does not fit
// in int64.
//
// # Buffer Sizes
//
// Callers own the buffer. Worst-case sizes, sign included:
//
//	Type     MaxLen   Terminated
//	────────────────────────────
//	int32    11       12
//	uint32   10       11
//	int64    20       21
//	uint64   20       21
//
// # Checked Variants
//
// Put, PutTerminated, DigitValue and DecodeSpan trust their input. A short
// buffer is a caller bug and surfaces as a runtime index panic; a non-digit
// byte decodes to an unspecified value; overflow wraps. PutChecked,
// PutTerminatedChecked, DigitValueChecked and DecodeSpanChecked validate and
// return *errors.Error instead.
//
// # Thread Safety
//
// All functions are pure. Concurrent calls are safe with distinct buffers.
package codec
