// Package parse turns decimal text into integers and floats with a single
// straightforward pass and no allocation.
//
// Each numeric kind comes in three shapes:
//
//	Int / Float                   looks at s[0] for '-' and dispatches
//	PositiveInt / PositiveFloat   caller knows there is no sign
//	NegativeInt / NegativeFloat   caller knows s[0] is '-' and skips it
//
// The Positive and Negative forms only save the sign test; they compute the
// same values.
//
// Integers are accumulated with positional powers of ten built by repeated
// multiplication, the same arithmetic as codec.DecodeSpan. Floats split at
// the decimal point: the integer part is accumulated the same way and the
// fraction right to left, each digit multiplied by 0.1 once per place. 0.1
// has no exact binary representation, so results can differ from
// strconv.ParseFloat in the last bits. That error is part of the contract.
//
// There is no exponent syntax, no NaN or Inf, no digit limit and no overflow
// detection. Input is trusted: an empty string panics, stray bytes produce
// unspecified values. IntChecked, UintChecked and FloatChecked validate the
// same grammar and return *errors.Error.
package parse
