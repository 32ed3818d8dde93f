package transcoder

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/internal/wire"
	"github.com/wippyai/layout-codec/layout"
)

// decodeChunk caps the preallocation for arrays whose elements occupy no
// bytes, where the count prefix is not bounded by the input length.
const decodeChunk = 1024

// decoder reads one value tree from a wire buffer. Struct values become
// map[string]any, arrays []any, and primitives the Go type of their width
// (uint8 for u8, float32 for f32, and so on).
type decoder struct {
	r    *wire.Reader
	opts *options
}

func (d *decoder) decode(ct *CompiledType) (any, error) {
	switch ct.Kind {
	case layout.KindStruct:
		return d.decodeStruct(ct)

	case layout.KindArray:
		return d.decodeArray(ct)

	case layout.KindString:
		return d.decodeString()

	case layout.KindBool:
		v, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		switch v {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
			LayoutKind(ct.Kind.String()).
			Value(v).
			Detail("bool byte must be 0 or 1, got %d", v).
			Build()

	case layout.KindU8:
		v, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		return v, nil

	case layout.KindI8:
		v, err := d.r.ReadU8()
		if err != nil {
			return nil, err
		}
		return int8(v), nil

	case layout.KindU16:
		v, err := d.r.ReadU16()
		if err != nil {
			return nil, err
		}
		return v, nil

	case layout.KindI16:
		v, err := d.r.ReadU16()
		if err != nil {
			return nil, err
		}
		return int16(v), nil

	case layout.KindU32:
		v, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		return v, nil

	case layout.KindI32:
		v, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		return int32(v), nil

	case layout.KindU64:
		v, err := d.r.ReadU64()
		if err != nil {
			return nil, err
		}
		return v, nil

	case layout.KindI64:
		v, err := d.r.ReadU64()
		if err != nil {
			return nil, err
		}
		return int64(v), nil

	case layout.KindF32:
		bits, err := d.r.ReadU32()
		if err != nil {
			return nil, err
		}
		return math.Float32frombits(bits), nil

	case layout.KindF64:
		bits, err := d.r.ReadU64()
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(bits), nil

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "layout kind: "+ct.Kind.String())
	}
}

func (d *decoder) decodeStruct(ct *CompiledType) (any, error) {
	obj := make(map[string]any, len(ct.Fields))
	for _, f := range ct.Fields {
		v, err := d.decode(f.Type)
		if err != nil {
			return nil, errors.Prefix(err, f.Name)
		}
		obj[f.Name] = v
	}
	return obj, nil
}

func (d *decoder) decodeArray(ct *CompiledType) (any, error) {
	count, err := d.r.ReadLength()
	if err != nil {
		return nil, err
	}

	// Reject impossible counts before allocating anything for them.
	if err := layout.CheckCount(count, ct.ElemType.MinSize, d.r.Remaining()); err != nil {
		return nil, err
	}
	if count > d.opts.maxListLength {
		return nil, errors.Overflow(errors.PhaseDecode, nil, count,
			"max list length "+strconv.FormatUint(d.opts.maxListLength, 10))
	}

	capacity := count
	if ct.ElemType.MinSize == 0 && capacity > decodeChunk {
		capacity = decodeChunk
	}
	items := make([]any, 0, capacity)
	for i := uint64(0); i < count; i++ {
		v, err := d.decode(ct.ElemType)
		if err != nil {
			return nil, errors.Prefix(err, "["+strconv.FormatUint(i, 10)+"]")
		}
		items = append(items, v)
	}
	return items, nil
}

func (d *decoder) decodeString() (any, error) {
	n, err := d.r.ReadLength()
	if err != nil {
		return nil, err
	}
	if err := d.r.Need(n); err != nil {
		return nil, err
	}
	if n > d.opts.maxStringSize {
		return nil, errors.Overflow(errors.PhaseDecode, nil, n,
			"max string size "+strconv.FormatUint(d.opts.maxStringSize, 10))
	}

	b, err := d.r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errors.InvalidUTF8(errors.PhaseDecode, nil, b)
	}
	return string(b), nil
}
