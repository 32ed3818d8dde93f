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

func encode(w *wire.Writer, rv reflect.Value, l *layout.Layout) error {
	switch l.Kind {
	case layout.KindBool:
		if rv.Bool() {
			w.WriteU8(1)
		} else {
			w.WriteU8(0)
		}
	case layout.KindU8:
		w.WriteU8(uint8(rv.Uint()))
	case layout.KindU16:
		w.WriteU16(uint16(rv.Uint()))
	case layout.KindU32:
		w.WriteU32(uint32(rv.Uint()))
	case layout.KindU64:
		w.WriteU64(rv.Uint())
	case layout.KindI8:
		w.WriteU8(uint8(rv.Int()))
	case layout.KindI16:
		w.WriteU16(uint16(rv.Int()))
	case layout.KindI32:
		w.WriteU32(uint32(rv.Int()))
	case layout.KindI64:
		w.WriteU64(uint64(rv.Int()))
	case layout.KindF32:
		w.WriteU32(math.Float32bits(float32(rv.Float())))
	case layout.KindF64:
		w.WriteU64(math.Float64bits(rv.Float()))

	case layout.KindString:
		s := rv.String()
		if !utf8.ValidString(s) {
			return errors.InvalidUTF8(errors.PhaseEncode, nil, []byte(s))
		}
		w.WriteString(s)

	case layout.KindArray:
		n := rv.Len()
		w.WriteLength(n)
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			w.WriteBytes(rv.Bytes())
			return nil
		}
		elem := l.Elem()
		for i := 0; i < n; i++ {
			if err := encode(w, rv.Index(i), elem); err != nil {
				return errors.Prefix(err, "["+strconv.Itoa(i)+"]")
			}
		}

	case layout.KindStruct:
		for i, f := range derive.StructFields(rv.Type()) {
			if err := encode(w, rv.Field(f.Index), l.Children[i]); err != nil {
				return errors.Prefix(err, f.Name)
			}
		}

	default:
		return errors.Unsupported(errors.PhaseEncode, "layout kind: "+l.Kind.String())
	}
	return nil
}
