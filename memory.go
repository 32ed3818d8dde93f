package layoutcodec

// Memory is a linear byte space that encoded payloads can be loaded from
// and stored into, such as WebAssembly linear memory.
type Memory interface {
	// Read returns length bytes starting at offset. Implementations may
	// return a view into the underlying storage.
	Read(offset uint32, length uint32) ([]byte, error)
	// Write copies data into memory starting at offset.
	Write(offset uint32, data []byte) error
	// Size returns the current size of the memory in bytes.
	Size() uint32
}
