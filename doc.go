// Package numconv provides allocation-free conversions between integers,
// floats and their decimal ASCII text.
//
// The library is organized into a few small packages:
//
//	numconv/           Root package with the shared type constraints and Memory interface
//	├── codec/         Fixed-width integer codec: ladder encoding, digit and span decoding
//	├── parse/         Naive decimal parser for signed, unsigned and floating point text
//	├── errors/        Structured error types used by the checked variants
//	├── host/          wazero host module exposing codec and parse to WASM guests
//	├── internal/      Integer bounds helpers and the trampoline guest encoder
//	├── examples/      Runnable walkthrough
//	└── cmd/numconv/   Command line front end and interactive converter
//
// # Quick Start
//
// Encode into a caller-owned buffer:
//
//	var buf [codec.MaxLenInt64]byte
//	n := codec.PutInt64(buf[:], -9001)
//	os.Stdout.Write(buf[:n]) // "-9001"
//
// Decode a digit span and parse text:
//
//	v := codec.DecodeSpan[uint32]("12345") // 12345
//	f := parse.Float64("3.14")             // ~3.14
//
// # Checked and Unchecked
//
// Every hot-path function trusts its input. Buffers that are too small panic
// with a runtime index error, non-digit bytes produce unspecified values and
// integer overflow wraps. Functions with a Checked suffix validate the same
// input and return structured errors instead. The two are never merged under
// one name.
//
// # Thread Safety
//
// All conversion functions are pure and safe for concurrent use as long as
// each call writes to its own buffer.
package numconv
