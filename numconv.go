package numconv

import "golang.org/x/exp/constraints"

// Integer is the set of integer types the codec and parser accept.
type Integer = constraints.Integer

// Signed is the set of signed integer types.
type Signed = constraints.Signed

// Unsigned is the set of unsigned integer types.
type Unsigned = constraints.Unsigned

// Float is the set of floating point types the parser accepts.
type Float = constraints.Float

// Text is anything that can be indexed byte by byte without conversion.
type Text interface {
	~string | ~[]byte
}

// Memory is a fixed-capacity byte region owned by someone else, such as
// WASM linear memory. Views alias the region; writes through them are visible
// to the owner.
type Memory interface {
	View(offset uint32, length uint32) ([]byte, error)
	Size() uint32
}
