package wire

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing of fixed-width little-endian values.
type Writer struct {
	buf     *bytes.Buffer
	scratch [8]byte
}

// NewWriter creates a new Writer with capacity preallocated.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: bytes.NewBuffer(make([]byte, 0, capacity))}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteU8 writes a single byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteU16 writes a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	binary.LittleEndian.PutUint16(w.scratch[:2], v)
	w.buf.Write(w.scratch[:2])
}

// WriteU32 writes a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	binary.LittleEndian.PutUint32(w.scratch[:4], v)
	w.buf.Write(w.scratch[:4])
}

// WriteU64 writes a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	binary.LittleEndian.PutUint64(w.scratch[:8], v)
	w.buf.Write(w.scratch[:8])
}

// WriteLength writes an 8-byte String/Array length prefix.
func (w *Writer) WriteLength(n int) {
	w.WriteU64(uint64(n))
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteString writes a length-prefixed string.
func (w *Writer) WriteString(s string) {
	w.WriteLength(len(s))
	w.buf.WriteString(s)
}
