package guest

import (
	"bytes"
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

func TestWriter_U32(t *testing.T) {
	tests := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tt := range tests {
		w := &writer{}
		w.WriteU32(tt.v)
		if !bytes.Equal(w.Bytes(), tt.want) {
			t.Errorf("WriteU32(%d) = %x, want %x", tt.v, w.Bytes(), tt.want)
		}
	}
}

func TestTrampoline_Header(t *testing.T) {
	bin := Trampoline(nil)
	want := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if !bytes.Equal(bin[:8], want) {
		t.Errorf("header = %x, want %x", bin[:8], want)
	}
}

func TestTrampoline_MemoryOnly(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, Trampoline(nil))
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	mem := mod.ExportedMemory(MemoryExport)
	if mem == nil {
		t.Fatal("memory not exported")
	}
	if mem.Size() != 65536 {
		t.Errorf("memory size = %d, want one page", mem.Size())
	}
}

func TestTrampoline_ForwardsCalls(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	i32 := api.ValueTypeI32
	i64 := api.ValueTypeI64
	_, err := rt.NewHostModuleBuilder("math").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = api.EncodeI32(api.DecodeI32(stack[0]) + api.DecodeI32(stack[1]))
		}), []api.ValueType{i32, i32}, []api.ValueType{i32}).
		Export("add").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = stack[0] * 2
		}), []api.ValueType{i64}, []api.ValueType{i64}).
		Export("double").
		Instantiate(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}

	bin := Trampoline([]Import{
		{Module: "math", Name: "add", Params: []api.ValueType{i32, i32}, Results: []api.ValueType{i32}},
		{Module: "math", Name: "double", Params: []api.ValueType{i64}, Results: []api.ValueType{i64}},
	})
	mod, err := rt.Instantiate(ctx, bin)
	if err != nil {
		t.Fatalf("instantiate guest: %v", err)
	}

	res, err := mod.ExportedFunction("add").Call(ctx, api.EncodeI32(40), api.EncodeI32(2))
	if err != nil {
		t.Fatalf("call add: %v", err)
	}
	if got := api.DecodeI32(res[0]); got != 42 {
		t.Errorf("add = %d, want 42", got)
	}

	res, err = mod.ExportedFunction("double").Call(ctx, 1<<40)
	if err != nil {
		t.Fatalf("call double: %v", err)
	}
	if res[0] != 1<<41 {
		t.Errorf("double = %d", res[0])
	}
}
