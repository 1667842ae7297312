package host

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/numconv"
	"github.com/wippyai/numconv/errors"
)

// WrapMemory adapts guest linear memory to numconv.Memory.
func WrapMemory(mem api.Memory) numconv.Memory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the numconv.Memory interface.
type Wrapper struct {
	Mem api.Memory
}

// View returns the guest bytes [offset, offset+length). The slice aliases
// linear memory, so writes through it are visible to the guest.
func (m *Wrapper) View(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		end := uint64(offset) + uint64(length)
		return nil, errors.OutOfBounds(errors.PhaseHost, nil, int(end), int(m.Mem.Size()))
	}
	return data, nil
}

// Size returns the current size of linear memory in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}
