package memory

import (
	stderrors "errors"
	"fmt"
)

// ErrOutOfBounds is returned for accesses past the end of a memory.
var ErrOutOfBounds = stderrors.New("memory access out of bounds")

func outOfBounds(op string, offset uint32, length int, size uint32) error {
	return fmt.Errorf("%w: %s offset=%d length=%d size=%d", ErrOutOfBounds, op, offset, length, size)
}
