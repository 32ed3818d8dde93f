package memory

import (
	"fmt"
	"math"
)

// Bytes is an in-process linear memory backed by a byte slice.
type Bytes struct {
	data []byte
}

// NewBytes returns a zeroed memory of size bytes.
func NewBytes(size uint32) *Bytes {
	return &Bytes{data: make([]byte, size)}
}

// FromBytes returns a memory holding data. The slice is not copied.
func FromBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// Read returns a view of length bytes at offset.
func (b *Bytes) Read(offset uint32, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(b.data)) {
		return nil, outOfBounds("read", offset, int(length), b.Size())
	}
	return b.data[offset:end:end], nil
}

// Write copies data to offset.
func (b *Bytes) Write(offset uint32, data []byte) error {
	if uint64(offset)+uint64(len(data)) > uint64(len(b.data)) {
		return outOfBounds("write", offset, len(data), b.Size())
	}
	copy(b.data[offset:], data)
	return nil
}

// Size returns the memory size in bytes.
func (b *Bytes) Size() uint32 {
	return uint32(len(b.data))
}

// Grow extends the memory by delta zeroed bytes and returns the previous
// size, like memory.grow. It fails when the size would exceed 4 GiB.
func (b *Bytes) Grow(delta uint32) (uint32, error) {
	prev := uint64(len(b.data))
	if prev+uint64(delta) > math.MaxUint32 {
		return 0, fmt.Errorf("memory grow beyond 4GiB: size=%d, delta=%d", prev, delta)
	}
	b.data = append(b.data, make([]byte, delta)...)
	return uint32(prev), nil
}

// Bytes returns the whole backing slice.
func (b *Bytes) Bytes() []byte {
	return b.data
}
