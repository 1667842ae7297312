package host

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/numconv/codec"
	"github.com/wippyai/numconv/errors"
	"github.com/wippyai/numconv/parse"
)

// ModuleName is the import module guests use for numconv functions.
const ModuleName = "numconv"

// Param is a named function parameter.
type Param struct {
	Type wit.Type
	Name string
}

// Func describes one host export.
type Func struct {
	bind    func(c *config) api.GoModuleFunc
	Name    string
	Doc     string
	Params  []Param
	Results []wit.Type
}

// ParamTypes returns the core wasm parameter types.
func (f Func) ParamTypes() []api.ValueType {
	out := make([]api.ValueType, len(f.Params))
	for i, p := range f.Params {
		out[i] = CoreType(p.Type)
	}
	return out
}

// ResultTypes returns the core wasm result types.
func (f Func) ResultTypes() []api.ValueType {
	out := make([]api.ValueType, len(f.Results))
	for i, t := range f.Results {
		out[i] = CoreType(t)
	}
	return out
}

// ParamNames returns the parameter names in order.
func (f Func) ParamNames() []string {
	out := make([]string, len(f.Params))
	for i, p := range f.Params {
		out[i] = p.Name
	}
	return out
}

// CoreType flattens a WIT primitive to its core wasm value type. Types
// narrower than 32 bits travel as i32.
func CoreType(t wit.Type) api.ValueType {
	switch t.(type) {
	case wit.S64, wit.U64:
		return api.ValueTypeI64
	case wit.F32:
		return api.ValueTypeF32
	case wit.F64:
		return api.ValueTypeF64
	default:
		return api.ValueTypeI32
	}
}

var spanParams = []Param{{Name: "ptr", Type: wit.U32{}}, {Name: "len", Type: wit.U32{}}}

func encodeParams(t wit.Type) []Param {
	return []Param{{Name: "value", Type: t}, {Name: "ptr", Type: wit.U32{}}}
}

// Exports returns the functions the host module exports, in export order.
func Exports() []Func {
	return []Func{
		{
			Name:    "encode-s32",
			Doc:     "write the decimal digits of value and a 0 byte at ptr; returns the digit count",
			Params:  encodeParams(wit.S32{}),
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return encodeFunc(c, "encode-s32", api.DecodeI32)
			},
		},
		{
			Name:    "encode-u32",
			Doc:     "write the decimal digits of value and a 0 byte at ptr; returns the digit count",
			Params:  encodeParams(wit.U32{}),
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return encodeFunc(c, "encode-u32", api.DecodeU32)
			},
		},
		{
			Name:    "encode-s64",
			Doc:     "write the decimal digits of value and a 0 byte at ptr; returns the digit count",
			Params:  encodeParams(wit.S64{}),
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return encodeFunc(c, "encode-s64", decodeI64)
			},
		},
		{
			Name:    "encode-u64",
			Doc:     "write the decimal digits of value and a 0 byte at ptr; returns the digit count",
			Params:  encodeParams(wit.U64{}),
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return encodeFunc(c, "encode-u64", raw)
			},
		},
		{
			Name:    "decode-digit",
			Doc:     "value of one ASCII digit",
			Params:  []Param{{Name: "c", Type: wit.U32{}}},
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return func(_ context.Context, _ api.Module, stack []uint64) {
					b := api.DecodeU32(stack[0])
					if !c.checked {
						stack[0] = api.EncodeU32(codec.DigitValue[uint32](byte(b)))
						return
					}
					if b > 0xff {
						c.trap("decode-digit", errors.Overflow(errors.PhaseDecode, nil, b, "byte"))
					}
					d, err := codec.DigitValueChecked[uint32](byte(b))
					if err != nil {
						c.trap("decode-digit", err)
					}
					stack[0] = api.EncodeU32(d)
				}
			},
		},
		{
			Name:    "decode-span-u32",
			Doc:     "value of the unsigned digit span [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "decode-span-u32", codec.DecodeSpan[uint32, []byte], codec.DecodeSpanChecked[uint32, []byte], api.EncodeU32)
			},
		},
		{
			Name:    "decode-span-u64",
			Doc:     "value of the unsigned digit span [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.U64{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "decode-span-u64", codec.DecodeSpan[uint64, []byte], codec.DecodeSpanChecked[uint64, []byte], raw)
			},
		},
		{
			Name:    "parse-s32",
			Doc:     "parse an optionally signed integer from [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.S32{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "parse-s32", parse.Int[int32, []byte], parse.IntChecked[int32, []byte], api.EncodeI32)
			},
		},
		{
			Name:    "parse-s64",
			Doc:     "parse an optionally signed integer from [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.S64{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "parse-s64", parse.Int[int64, []byte], parse.IntChecked[int64, []byte], api.EncodeI64)
			},
		},
		{
			Name:    "parse-u32",
			Doc:     "parse an unsigned integer from [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.U32{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "parse-u32", parse.Uint[uint32, []byte], parse.UintChecked[uint32, []byte], api.EncodeU32)
			},
		},
		{
			Name:    "parse-u64",
			Doc:     "parse an unsigned integer from [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.U64{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "parse-u64", parse.Uint[uint64, []byte], parse.UintChecked[uint64, []byte], raw)
			},
		},
		{
			Name:    "parse-f32",
			Doc:     "parse an optionally signed decimal from [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.F32{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "parse-f32", parse.Float[float32, []byte], parse.FloatChecked[float32, []byte], api.EncodeF32)
			},
		},
		{
			Name:    "parse-f64",
			Doc:     "parse an optionally signed decimal from [ptr, ptr+len)",
			Params:  spanParams,
			Results: []wit.Type{wit.F64{}},
			bind: func(c *config) api.GoModuleFunc {
				return spanFunc(c, "parse-f64", parse.Float[float64, []byte], parse.FloatChecked[float64, []byte], api.EncodeF64)
			},
		},
	}
}

// Lookup returns the export called name.
func Lookup(name string) (Func, bool) {
	for _, f := range Exports() {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}

func raw(v uint64) uint64 { return v }

func decodeI64(v uint64) int64 { return int64(v) }

// encodeFunc writes the value and its terminator at ptr. The view is sized
// exactly, so a pointer too close to the end of memory traps.
func encodeFunc[T int32 | uint32 | int64 | uint64](c *config, name string, dec func(uint64) T) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		v := dec(stack[0])
		buf, err := c.memory(name, mod).View(api.DecodeU32(stack[1]), uint32(codec.Len(v)+1))
		if err != nil {
			c.trap(name, err)
		}
		stack[0] = api.EncodeU32(uint32(codec.PutTerminated(buf, v)))
	}
}

func spanFunc[T any](c *config, name string, unchecked func([]byte) T, checked func([]byte) (T, error), enc func(T) uint64) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		m := c.memory(name, mod)
		span, err := m.View(api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
		if err != nil {
			c.trap(name, err)
		}
		if !c.checked {
			stack[0] = enc(unchecked(span))
			return
		}
		v, err := checked(span)
		if err != nil {
			c.trap(name, err)
		}
		stack[0] = enc(v)
	}
}
