package transcoder

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/internal/wire"
	"github.com/wippyai/layout-codec/layout"
	"github.com/wippyai/layout-codec/transcoder/internal/abi"
)

// encoder lowers a value tree into the wire format. It accepts the values
// produced by the decoder as well as text-parsed trees (json.Number,
// float64) and typed Go slices for arrays.
type encoder struct {
	w    *wire.Writer
	opts *options
}

func (e *encoder) encode(ct *CompiledType, v any) error {
	switch ct.Kind {
	case layout.KindStruct:
		return e.encodeStruct(ct, v)

	case layout.KindArray:
		return e.encodeArray(ct, v)

	case layout.KindString:
		s, ok := v.(string)
		if !ok {
			return mismatch(errors.PhaseEncode, ct, v)
		}
		if !utf8.ValidString(s) {
			return errors.InvalidUTF8(errors.PhaseEncode, nil, []byte(s))
		}
		if uint64(len(s)) > e.opts.maxStringSize {
			return errors.Overflow(errors.PhaseEncode, nil, len(s),
				"max string size "+strconv.FormatUint(e.opts.maxStringSize, 10))
		}
		e.w.WriteString(s)
		return nil

	case layout.KindBool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(errors.PhaseEncode, ct, v)
		}
		if b {
			e.w.WriteU8(1)
		} else {
			e.w.WriteU8(0)
		}
		return nil

	case layout.KindU8, layout.KindU16, layout.KindU32, layout.KindU64:
		u, ok := abi.CoerceToUint(v, ct.Kind.Width()*8)
		if !ok {
			return mismatch(errors.PhaseEncode, ct, v)
		}
		e.writeUint(ct.Kind.Width(), u)
		return nil

	case layout.KindI8, layout.KindI16, layout.KindI32, layout.KindI64:
		i, ok := abi.CoerceToInt(v, ct.Kind.Width()*8)
		if !ok {
			return mismatch(errors.PhaseEncode, ct, v)
		}
		e.writeUint(ct.Kind.Width(), uint64(i))
		return nil

	case layout.KindF32:
		if f, ok := v.(float32); ok {
			e.w.WriteU32(math.Float32bits(f))
			return nil
		}
		f, ok := abi.CoerceToFloat(v, 32)
		if !ok {
			return mismatch(errors.PhaseEncode, ct, v)
		}
		e.w.WriteU32(math.Float32bits(float32(f)))
		return nil

	case layout.KindF64:
		f, ok := abi.CoerceToFloat(v, 64)
		if !ok {
			return mismatch(errors.PhaseEncode, ct, v)
		}
		e.w.WriteU64(math.Float64bits(f))
		return nil

	default:
		return errors.Unsupported(errors.PhaseEncode, "layout kind: "+ct.Kind.String())
	}
}

// writeUint writes the low width bytes of u; signed values arrive as their
// two's complement bit pattern.
func (e *encoder) writeUint(width int, u uint64) {
	switch width {
	case 1:
		e.w.WriteU8(uint8(u))
	case 2:
		e.w.WriteU16(uint16(u))
	case 4:
		e.w.WriteU32(uint32(u))
	default:
		e.w.WriteU64(u)
	}
}

func (e *encoder) encodeStruct(ct *CompiledType, v any) error {
	obj, ok := v.(map[string]any)
	if !ok {
		return mismatch(errors.PhaseEncode, ct, v)
	}

	for _, f := range ct.Fields {
		fv, present := obj[f.Name]
		if !present {
			return errors.FieldMissing(errors.PhaseEncode, []string{f.Name}, f.Name)
		}
		if err := e.encode(f.Type, fv); err != nil {
			return errors.Prefix(err, f.Name)
		}
	}

	// Every declared field is present, so extra keys exist only when the
	// map is larger than the field list.
	if e.opts.disallowUnknownFields && len(obj) > len(ct.Fields) {
		return errors.FieldUnknown(errors.PhaseEncode, nil, firstUnknown(ct, obj))
	}
	return nil
}

func firstUnknown(ct *CompiledType, obj map[string]any) string {
	var unknown []string
	for k := range obj {
		if _, ok := ct.FieldIndex[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	return slices.Min(unknown)
}

func (e *encoder) encodeArray(ct *CompiledType, v any) error {
	n, at, ok := sequence(v)
	if !ok {
		return mismatch(errors.PhaseEncode, ct, v)
	}
	if uint64(n) > e.opts.maxListLength {
		return errors.Overflow(errors.PhaseEncode, nil, n,
			"max list length "+strconv.FormatUint(e.opts.maxListLength, 10))
	}

	e.w.WriteLength(n)
	for i := 0; i < n; i++ {
		if err := e.encode(ct.ElemType, at(i)); err != nil {
			return errors.Prefix(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}

// sequence exposes []any directly and any other slice or array through
// reflection.
func sequence(v any) (int, func(int) any, bool) {
	if items, ok := v.([]any); ok {
		return len(items), func(i int) any { return items[i] }, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, nil, false
	}
	return rv.Len(), func(i int) any { return rv.Index(i).Interface() }, true
}

func mismatch(phase errors.Phase, ct *CompiledType, v any) *errors.Error {
	err := errors.TypeMismatch(phase, nil, abi.TypeName(v), ct.Kind.String())
	err.Value = v
	if ct.IsPrimitive() {
		err.Detail = fmt.Sprintf("cannot represent %v as %s", v, ct.Kind)
	}
	return err
}
