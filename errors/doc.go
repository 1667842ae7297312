// Package errors provides structured error types for numconv.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the input position, Go/WIT type names, the offending
// value and a cause chain.
//
// Only the Checked variants of codec and parse, and the host module, build
// these errors. The unchecked hot paths never allocate one.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidDigit).
//		Path("3").
//		GoType("int32").
//		Value('x').
//		Detail("unexpected byte %q", 'x').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseEncode, nil, 11, 4)
//	err := errors.Overflow(errors.PhaseDecode, nil, "99999999999", "uint32")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
