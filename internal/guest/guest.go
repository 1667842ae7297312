// Package guest encodes minimal core WebAssembly modules that re-export
// host imports through trampolines.
//
// A trampoline guest imports each function, defines a body that forwards its
// parameters to the import, and exports the result under the same name. It
// also exports one page of linear memory as "memory" so callers can stage
// digit spans and read back encoded text.
package guest

import "github.com/tetratelabs/wazero/api"

const (
	magic   = 0x6d736100 // "\0asm"
	version = 1

	sectionType     = 1
	sectionImport   = 2
	sectionFunction = 3
	sectionMemory   = 5
	sectionExport   = 7
	sectionCode     = 10

	funcTypeByte = 0x60
	kindFunc     = 0x00
	kindMemory   = 0x02

	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b
)

// MemoryExport is the name the guest exports its linear memory under.
const MemoryExport = "memory"

// Import is one host function the guest imports and re-exports.
type Import struct {
	Module  string
	Name    string
	Params  []api.ValueType
	Results []api.ValueType
}

// Trampoline encodes a guest for imports. Imports are assigned function
// indices 0..n-1 and their trampolines n..2n-1, each sharing its import's type.
func Trampoline(imports []Import) []byte {
	w := &writer{}
	writeU32LE(w, magic)
	writeU32LE(w, version)

	n := uint32(len(imports))

	if n > 0 {
		sec := &writer{}
		sec.WriteU32(n)
		for _, imp := range imports {
			sec.Byte(funcTypeByte)
			writeValTypes(sec, imp.Params)
			writeValTypes(sec, imp.Results)
		}
		w.section(sectionType, sec)

		sec = &writer{}
		sec.WriteU32(n)
		for i, imp := range imports {
			sec.WriteName(imp.Module)
			sec.WriteName(imp.Name)
			sec.Byte(kindFunc)
			sec.WriteU32(uint32(i))
		}
		w.section(sectionImport, sec)

		sec = &writer{}
		sec.WriteU32(n)
		for i := range imports {
			sec.WriteU32(uint32(i))
		}
		w.section(sectionFunction, sec)
	}

	mem := &writer{}
	mem.WriteU32(1)
	mem.Byte(0x00) // limits: min only
	mem.WriteU32(1)
	w.section(sectionMemory, mem)

	exp := &writer{}
	exp.WriteU32(n + 1)
	for i, imp := range imports {
		exp.WriteName(imp.Name)
		exp.Byte(kindFunc)
		exp.WriteU32(n + uint32(i))
	}
	exp.WriteName(MemoryExport)
	exp.Byte(kindMemory)
	exp.WriteU32(0)
	w.section(sectionExport, exp)

	if n > 0 {
		sec := &writer{}
		sec.WriteU32(n)
		for i, imp := range imports {
			body := &writer{}
			body.WriteU32(0) // no locals
			for p := range imp.Params {
				body.Byte(opLocalGet)
				body.WriteU32(uint32(p))
			}
			body.Byte(opCall)
			body.WriteU32(uint32(i))
			body.Byte(opEnd)

			sec.WriteU32(uint32(len(body.Bytes())))
			sec.WriteBytes(body.Bytes())
		}
		w.section(sectionCode, sec)
	}

	return w.Bytes()
}

func writeValTypes(w *writer, types []api.ValueType) {
	w.WriteU32(uint32(len(types)))
	for _, t := range types {
		w.Byte(t)
	}
}

func writeU32LE(w *writer, v uint32) {
	w.Byte(byte(v))
	w.Byte(byte(v >> 8))
	w.Byte(byte(v >> 16))
	w.Byte(byte(v >> 24))
}
