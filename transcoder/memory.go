package transcoder

import (
	"math"
	"strconv"

	layoutcodec "github.com/wippyai/layout-codec"
	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/transcoder/internal/abi"
)

type Memory = layoutcodec.Memory

// LoadFrom decodes one value stored at offset in mem and returns it with the
// number of bytes it occupies.
func (c *Codec) LoadFrom(mem Memory, offset uint32) (any, uint32, error) {
	size := mem.Size()
	if offset > size {
		return nil, 0, errors.New(errors.PhaseDecode, errors.KindTruncatedInput).
			Detail("offset %d beyond memory size %d", offset, size).
			Build()
	}

	data, err := mem.Read(offset, size-offset)
	if err != nil {
		return nil, 0, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err,
			"read memory at offset "+strconv.FormatUint(uint64(offset), 10))
	}

	v, n, err := c.DecodePrefix(data)
	if err != nil {
		return nil, 0, err
	}
	return v, uint32(n), nil
}

// StoreTo encodes v and writes it to mem at offset, returning the number of
// bytes written. Nothing is written if encoding fails or the value does not
// fit.
func (c *Codec) StoreTo(mem Memory, offset uint32, v any) (uint32, error) {
	data, err := c.Encode(v)
	if err != nil {
		return 0, err
	}

	if uint64(len(data)) > math.MaxUint32 {
		return 0, errors.Overflow(errors.PhaseEncode, nil, len(data), "32-bit memory")
	}
	end, ok := abi.SafeAddU32(offset, uint32(len(data)))
	if !ok || end > mem.Size() {
		return 0, errors.Overflow(errors.PhaseEncode, nil, len(data),
			"memory size "+strconv.FormatUint(uint64(mem.Size()), 10)+" at offset "+strconv.FormatUint(uint64(offset), 10))
	}

	if err := mem.Write(offset, data); err != nil {
		return 0, errors.Wrap(errors.PhaseEncode, errors.KindInvalidInput, err,
			"write memory at offset "+strconv.FormatUint(uint64(offset), 10))
	}
	return uint32(len(data)), nil
}
