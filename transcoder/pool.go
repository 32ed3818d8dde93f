package transcoder

import (
	"bytes"
	"sync"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxBufCap  = 64 << 10
	poolInitBufCap = 256
)

// text buffer pool for formatting
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, poolInitBufCap))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > poolMaxBufCap {
		return // reject oversized
	}
	buf.Reset()
	bufferPool.Put(buf)
}
