// Package host exposes the codec and parser to WebAssembly guests as a
// wazero host module named "numconv".
//
// Guest linear memory is the caller-owned buffer: encoders write at a guest
// pointer, decoders and parsers read a (ptr, len) span.
//
// # Exports
//
//	encode-s32 (value: s32, ptr: u32) -> u32
//	encode-u32 (value: u32, ptr: u32) -> u32
//	encode-s64 (value: s64, ptr: u32) -> u32
//	encode-u64 (value: u64, ptr: u32) -> u32
//	decode-digit (c: u32) -> u32
//	decode-span-u32 (ptr: u32, len: u32) -> u32
//	decode-span-u64 (ptr: u32, len: u32) -> u64
//	parse-s32 / parse-s64 / parse-u32 / parse-u64 / parse-f32 / parse-f64 (ptr: u32, len: u32)
//
// Encoders write the digits followed by a 0 byte and return the digit count.
//
// # Traps
//
// A span outside linear memory, or malformed text in checked mode, panics
// with an *errors.Error of PhaseHost. wazero turns the panic into the error
// returned from the guest's Call.
//
// # Example
//
//	rt := wazero.NewRuntime(ctx)
//	if _, err := host.Instantiate(ctx, rt, host.WithLogger(log)); err != nil {
//		return err
//	}
//	compiled, _ := rt.CompileModule(ctx, guestWasm)
//	if err := host.CheckImports(compiled); err != nil {
//		return err
//	}
//	mod, _ := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
package host
