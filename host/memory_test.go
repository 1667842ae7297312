package host

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/numconv/errors"
)

// memoryWASM is a minimal WASM module with 1 page of memory exported as "memory"
var memoryWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

func TestWrapMemory_Nil(t *testing.T) {
	if mem := WrapMemory(nil); mem != nil {
		t.Error("expected nil for nil memory")
	}
}

func TestWrapper_View(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, memoryWASM)
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	defer mod.Close(ctx)

	mem := WrapMemory(mod.ExportedMemory("memory"))
	if mem == nil {
		t.Fatal("expected non-nil wrapped memory")
	}
	if mem.Size() != 65536 {
		t.Errorf("Size() = %d, want 65536", mem.Size())
	}

	view, err := mem.View(100, 4)
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	copy(view, "1234")

	got, ok := mod.ExportedMemory("memory").Read(100, 4)
	if !ok || string(got) != "1234" {
		t.Errorf("write through view not visible: %q", got)
	}
}

func TestWrapper_ViewOutOfBounds(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, memoryWASM)
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	defer mod.Close(ctx)

	mem := WrapMemory(mod.ExportedMemory("memory"))

	tests := []struct {
		name   string
		offset uint32
		length uint32
	}{
		{"past end", 65536, 1},
		{"straddles end", 65530, 10},
		{"huge length", 0, 0xffffffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mem.View(tt.offset, tt.length)
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %v", err)
			}
			if e.Kind != errors.KindOutOfBounds || e.Phase != errors.PhaseHost {
				t.Errorf("got [%s] %s", e.Phase, e.Kind)
			}
		})
	}

	if _, err := mem.View(65536, 0); err != nil {
		t.Errorf("empty view at end of memory: %v", err)
	}
}
