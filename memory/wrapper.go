package memory

import (
	"github.com/tetratelabs/wazero/api"

	layoutcodec "github.com/wippyai/layout-codec"
)

// Wrap adapts a wazero memory, typically a module's exported "memory", to
// layoutcodec.Memory. It returns nil for a nil memory.
func Wrap(mem api.Memory) layoutcodec.Memory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper is a layoutcodec.Memory over WebAssembly linear memory.
type Wrapper struct {
	Mem api.Memory
}

// Read returns a view of guest memory. The view is invalidated when the
// guest grows its memory.
func (m *Wrapper) Read(offset, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds("read", offset, int(length), m.Mem.Size())
	}
	return data, nil
}

func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return outOfBounds("write", offset, len(data), m.Mem.Size())
	}
	return nil
}

func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}
