package wire

import (
	"encoding/binary"

	"github.com/wippyai/layout-codec/errors"
)

// PrefixSize is the width of String and Array length prefixes.
const PrefixSize = 8

// Reader reads fixed-width values from a byte slice with position tracking.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Need fails with truncated_input unless at least n bytes remain.
func (r *Reader) Need(n uint64) error {
	if n > uint64(r.Remaining()) {
		return errors.Truncated(errors.PhaseDecode, nil, n, r.Remaining())
	}
	return nil
}

// ReadBytes returns the next n bytes as a subslice of the underlying buffer.
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	if err := r.Need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n uint64) error {
	if err := r.Need(n); err != nil {
		return err
	}
	r.pos += int(n)
	return nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.Need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadLength reads an 8-byte String/Array length prefix.
func (r *Reader) ReadLength() (uint64, error) {
	return r.ReadU64()
}
