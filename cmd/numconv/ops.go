package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/numconv/codec"
	"github.com/wippyai/numconv/errors"
	"github.com/wippyai/numconv/host"
	"github.com/wippyai/numconv/parse"
)

// convert runs one conversion in-process for -op.
func convert(op, typ, value string, checked bool) (string, error) {
	switch op {
	case "encode":
		return encodeValue(typ, value)
	case "decode":
		return decodeValue(typ, value, checked)
	case "parse":
		return parseValue(typ, value, checked)
	default:
		return "", errors.Unsupported(errors.PhaseParse, "operation "+strconv.Quote(op))
	}
}

// encodeValue reads value with the checked parser and renders it with the codec.
func encodeValue(typ, value string) (string, error) {
	switch typ {
	case "s32":
		v, err := parse.IntChecked[int32](value)
		return codec.FormatInt32(v), err
	case "u32":
		v, err := parse.UintChecked[uint32](value)
		return codec.FormatUint32(v), err
	case "s64":
		v, err := parse.IntChecked[int64](value)
		return codec.FormatInt64(v), err
	case "u64":
		v, err := parse.UintChecked[uint64](value)
		return codec.FormatUint64(v), err
	}
	return "", errors.Unsupported(errors.PhaseEncode, "type "+typ)
}

func decodeValue(typ, value string, checked bool) (string, error) {
	switch typ {
	case "u32":
		if checked {
			v, err := codec.DecodeSpanChecked[uint32](value)
			return codec.Format(v), err
		}
		return codec.Format(codec.DecodeSpan[uint32](value)), nil
	case "u64":
		if checked {
			v, err := codec.DecodeSpanChecked[uint64](value)
			return codec.Format(v), err
		}
		return codec.Format(codec.DecodeSpan[uint64](value)), nil
	}
	return "", errors.Unsupported(errors.PhaseDecode, "type "+typ)
}

func parseValue(typ, value string, checked bool) (string, error) {
	if !checked && value == "" {
		return "", errors.InvalidInput(errors.PhaseParse, "empty input")
	}
	switch typ {
	case "s32":
		if checked {
			v, err := parse.IntChecked[int32](value)
			return codec.Format(v), err
		}
		return codec.Format(parse.Int32(value)), nil
	case "s64":
		if checked {
			v, err := parse.IntChecked[int64](value)
			return codec.Format(v), err
		}
		return codec.Format(parse.Int64(value)), nil
	case "u32":
		if checked {
			v, err := parse.UintChecked[uint32](value)
			return codec.Format(v), err
		}
		return codec.Format(parse.Uint32(value)), nil
	case "u64":
		if checked {
			v, err := parse.UintChecked[uint64](value)
			return codec.Format(v), err
		}
		return codec.Format(parse.Uint64(value)), nil
	case "f32":
		if checked {
			v, err := parse.FloatChecked[float32](value)
			return strconv.FormatFloat(float64(v), 'g', -1, 32), err
		}
		return strconv.FormatFloat(float64(parse.Float32(value)), 'g', -1, 32), nil
	case "f64":
		if checked {
			v, err := parse.FloatChecked[float64](value)
			return strconv.FormatFloat(v, 'g', -1, 64), err
		}
		return strconv.FormatFloat(parse.Float64(value), 'g', -1, 64), nil
	}
	return "", errors.Unsupported(errors.PhaseParse, "type "+typ)
}

// paramInfo is one user-facing argument of a host export.
type paramInfo struct {
	name    string
	witType wit.Type
	typeStr string
}

type funcInfo struct {
	fn         host.Func
	resultType string
	params     []paramInfo
}

// isSpan reports whether f reads a (ptr, len) span of guest memory.
func isSpan(f host.Func) bool {
	return len(f.Params) == 2 && f.Params[0].Name == "ptr" && f.Params[1].Name == "len"
}

// isEncode reports whether f writes text at a guest pointer.
func isEncode(f host.Func) bool {
	return len(f.Params) == 2 && f.Params[1].Name == "ptr"
}

// describe maps an export to the arguments a person types: text for spans,
// a value for encoders and a character for decode-digit.
func describe(f host.Func) funcInfo {
	fi := funcInfo{fn: f}
	switch {
	case isSpan(f):
		fi.params = []paramInfo{{name: "text", witType: wit.String{}}}
	case isEncode(f):
		fi.params = []paramInfo{{name: f.Params[0].Name, witType: f.Params[0].Type}}
	case f.Name == "decode-digit":
		fi.params = []paramInfo{{name: "c", witType: wit.Char{}}}
	default:
		for _, p := range f.Params {
			fi.params = append(fi.params, paramInfo{name: p.Name, witType: p.Type})
		}
	}
	for i := range fi.params {
		fi.params[i].typeStr = witTypeStr(fi.params[i].witType)
	}
	if isEncode(f) {
		fi.resultType = "string"
	} else if len(f.Results) > 0 {
		fi.resultType = witTypeStr(f.Results[0])
	}
	return fi
}

func describeAll() []funcInfo {
	funcs := host.Exports()
	out := make([]funcInfo, len(funcs))
	for i, f := range funcs {
		out[i] = describe(f)
	}
	return out
}

// convertArg reads value as t and flattens it to a core wasm value.
func convertArg(value string, t wit.Type) (uint64, error) {
	switch t.(type) {
	case wit.U8, wit.U16, wit.U32:
		v, err := parse.UintChecked[uint32](value)
		return api.EncodeU32(v), err
	case wit.S8, wit.S16, wit.S32:
		v, err := parse.IntChecked[int32](value)
		return api.EncodeI32(v), err
	case wit.U64:
		return parse.UintChecked[uint64](value)
	case wit.S64:
		v, err := parse.IntChecked[int64](value)
		return api.EncodeI64(v), err
	case wit.F32:
		v, err := parse.FloatChecked[float32](value)
		return api.EncodeF32(v), err
	case wit.F64:
		v, err := parse.FloatChecked[float64](value)
		return api.EncodeF64(v), err
	case wit.Char:
		if len(value) != 1 {
			return 0, errors.InvalidInput(errors.PhaseHost, "expected a single byte")
		}
		return api.EncodeU32(uint32(value[0])), nil
	default:
		return 0, errors.Unsupported(errors.PhaseHost, "argument type "+witTypeStr(t))
	}
}

// coreArg reads value for a raw core parameter. Integers accept the signed
// and unsigned ranges of their width.
func coreArg(value string, vt api.ValueType) (uint64, error) {
	switch vt {
	case api.ValueTypeI32:
		if v, err := parse.IntChecked[int32](value); err == nil {
			return api.EncodeI32(v), nil
		}
		v, err := parse.UintChecked[uint32](value)
		return api.EncodeU32(v), err
	case api.ValueTypeI64:
		if v, err := parse.IntChecked[int64](value); err == nil {
			return api.EncodeI64(v), nil
		}
		return parse.UintChecked[uint64](value)
	case api.ValueTypeF32:
		v, err := parse.FloatChecked[float32](value)
		return api.EncodeF32(v), err
	case api.ValueTypeF64:
		v, err := parse.FloatChecked[float64](value)
		return api.EncodeF64(v), err
	}
	return 0, errors.Unsupported(errors.PhaseHost, "value type "+api.ValueTypeName(vt))
}

// formatResult renders a core result using the WIT type when known.
func formatResult(v uint64, t wit.Type) string {
	switch t.(type) {
	case wit.U8, wit.U16, wit.U32:
		return codec.Format(api.DecodeU32(v))
	case wit.S8, wit.S16, wit.S32:
		return codec.Format(api.DecodeI32(v))
	case wit.U64:
		return codec.Format(v)
	case wit.S64:
		return codec.Format(int64(v))
	case wit.F32:
		return strconv.FormatFloat(float64(api.DecodeF32(v)), 'g', -1, 32)
	case wit.F64:
		return strconv.FormatFloat(api.DecodeF64(v), 'g', -1, 64)
	default:
		return fmt.Sprintf("%#x", v)
	}
}

// formatCore renders a raw core result. i32 and i64 are shown signed.
func formatCore(v uint64, vt api.ValueType) string {
	switch vt {
	case api.ValueTypeI32:
		return codec.Format(api.DecodeI32(v))
	case api.ValueTypeI64:
		return codec.Format(int64(v))
	case api.ValueTypeF32:
		return strconv.FormatFloat(float64(api.DecodeF32(v)), 'g', -1, 32)
	case api.ValueTypeF64:
		return strconv.FormatFloat(api.DecodeF64(v), 'g', -1, 64)
	}
	return fmt.Sprintf("%#x", v)
}

func witTypeStr(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	default:
		return fmt.Sprintf("%T", t)
	}
}

func signatureOf(params, results []api.ValueType) string {
	ps := make([]string, len(params))
	for i, p := range params {
		ps[i] = api.ValueTypeName(p)
	}
	rs := make([]string, len(results))
	for i, r := range results {
		rs[i] = api.ValueTypeName(r)
	}
	s := "(" + strings.Join(ps, ", ") + ")"
	if len(rs) > 0 {
		s += " -> " + strings.Join(rs, ", ")
	}
	return s
}
