package native

import (
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/layout-codec/derive"
	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/internal/wire"
	"github.com/wippyai/layout-codec/layout"
)

func decode(r *wire.Reader, rv reflect.Value, l *layout.Layout) error {
	switch l.Kind {
	case layout.KindBool:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		if v > 1 {
			return errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				LayoutKind(l.Kind.String()).
				Value(v).
				Detail("bool byte must be 0 or 1, got %d", v).
				Build()
		}
		rv.SetBool(v == 1)

	case layout.KindU8:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case layout.KindU16:
		v, err := r.ReadU16()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case layout.KindU32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(v))
	case layout.KindU64:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		rv.SetUint(v)

	case layout.KindI8:
		v, err := r.ReadU8()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int8(v)))
	case layout.KindI16:
		v, err := r.ReadU16()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int16(v)))
	case layout.KindI32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int32(v)))
	case layout.KindI64:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		rv.SetInt(int64(v))

	case layout.KindF32:
		v, err := r.ReadU32()
		if err != nil {
			return err
		}
		rv.SetFloat(float64(math.Float32frombits(v)))
	case layout.KindF64:
		v, err := r.ReadU64()
		if err != nil {
			return err
		}
		rv.SetFloat(math.Float64frombits(v))

	case layout.KindString:
		n, err := r.ReadLength()
		if err != nil {
			return err
		}
		b, err := r.ReadBytes(n)
		if err != nil {
			return err
		}
		if !utf8.Valid(b) {
			return errors.InvalidUTF8(errors.PhaseDecode, nil, b)
		}
		rv.SetString(string(b))

	case layout.KindArray:
		return decodeSlice(r, rv, l)

	case layout.KindStruct:
		for i, f := range derive.StructFields(rv.Type()) {
			if err := decode(r, rv.Field(f.Index), l.Children[i]); err != nil {
				return errors.Prefix(err, f.Name)
			}
		}

	default:
		return errors.Unsupported(errors.PhaseDecode, "layout kind: "+l.Kind.String())
	}
	return nil
}

func decodeSlice(r *wire.Reader, rv reflect.Value, l *layout.Layout) error {
	count, err := r.ReadLength()
	if err != nil {
		return err
	}
	elem := l.Elem()
	minElem := layout.MinSize(elem)
	if err := layout.CheckCount(count, minElem, r.Remaining()); err != nil {
		return err
	}
	if minElem == 0 && count > maxZeroSizeCount {
		return errors.Overflow(errors.PhaseDecode, nil, count,
			"max list length "+strconv.Itoa(maxZeroSizeCount))
	}

	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b, err := r.ReadBytes(count)
		if err != nil {
			return err
		}
		out := make([]byte, len(b))
		copy(out, b)
		rv.SetBytes(out)
		return nil
	}

	s := reflect.MakeSlice(rv.Type(), int(count), int(count))
	for i := 0; i < int(count); i++ {
		if err := decode(r, s.Index(i), elem); err != nil {
			return errors.Prefix(err, "["+strconv.Itoa(i)+"]")
		}
	}
	rv.Set(s)
	return nil
}
