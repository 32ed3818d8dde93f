package transcoder

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
	"github.com/wippyai/layout-codec/transcoder/internal/abi"
)

// formatter renders a value tree as compact JSON in layout order.
type formatter struct {
	buf *bytes.Buffer
	str *json.Encoder
}

func newFormatter(buf *bytes.Buffer) *formatter {
	str := json.NewEncoder(buf)
	str.SetEscapeHTML(false)
	return &formatter{buf: buf, str: str}
}

func (f *formatter) format(ct *CompiledType, v any) error {
	switch ct.Kind {
	case layout.KindStruct:
		obj, ok := v.(map[string]any)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		f.buf.WriteByte('{')
		for i, fld := range ct.Fields {
			fv, present := obj[fld.Name]
			if !present {
				return errors.FieldMissing(errors.PhaseFormat, []string{fld.Name}, fld.Name)
			}
			if i > 0 {
				f.buf.WriteByte(',')
			}
			f.writeString(fld.Name)
			f.buf.WriteByte(':')
			if err := f.format(fld.Type, fv); err != nil {
				return errors.Prefix(err, fld.Name)
			}
		}
		f.buf.WriteByte('}')
		return nil

	case layout.KindArray:
		n, at, ok := sequence(v)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		f.buf.WriteByte('[')
		for i := 0; i < n; i++ {
			if i > 0 {
				f.buf.WriteByte(',')
			}
			if err := f.format(ct.ElemType, at(i)); err != nil {
				return errors.Prefix(err, "["+strconv.Itoa(i)+"]")
			}
		}
		f.buf.WriteByte(']')
		return nil

	case layout.KindString:
		s, ok := v.(string)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		if !utf8.ValidString(s) {
			return errors.InvalidUTF8(errors.PhaseFormat, nil, []byte(s))
		}
		f.writeString(s)
		return nil

	case layout.KindBool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		f.buf.WriteString(strconv.FormatBool(b))
		return nil

	case layout.KindU8, layout.KindU16, layout.KindU32, layout.KindU64:
		u, ok := abi.CoerceToUint(v, ct.Kind.Width()*8)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		f.buf.WriteString(strconv.FormatUint(u, 10))
		return nil

	case layout.KindI8, layout.KindI16, layout.KindI32, layout.KindI64:
		i, ok := abi.CoerceToInt(v, ct.Kind.Width()*8)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		f.buf.WriteString(strconv.FormatInt(i, 10))
		return nil

	case layout.KindF32, layout.KindF64:
		bits := ct.Kind.Width() * 8
		x, ok := abi.CoerceToFloat(v, bits)
		if !ok {
			return mismatch(errors.PhaseFormat, ct, v)
		}
		f.buf.WriteString(FormatFloat(x, bits))
		return nil

	default:
		return errors.Unsupported(errors.PhaseFormat, "layout kind: "+ct.Kind.String())
	}
}

func (f *formatter) writeString(s string) {
	// Encoding a string cannot fail; the trailing newline is dropped.
	_ = f.str.Encode(s)
	f.buf.Truncate(f.buf.Len() - 1)
}

// FormatFloat renders a float as a JSON token that re-parses as a float:
// finite values always carry a fractional part ("27.0", "1.0e+21") and
// non-finite values become the strings "NaN", "Infinity" and "-Infinity".
// bits selects the shortest representation for float32 or float64.
func FormatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return strconv.Quote(abi.TextNaN)
	case math.IsInf(f, 1):
		return strconv.Quote(abi.TextPosInf)
	case math.IsInf(f, -1):
		return strconv.Quote(abi.TextNegInf)
	}

	mode := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		mode = 'e'
	}
	s := strconv.FormatFloat(f, mode, -1, bits)
	if strings.IndexByte(s, '.') >= 0 {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

// parseText reads exactly one JSON value, keeping numbers as json.Number so
// that 64-bit integers survive unchanged.
func parseText(text []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.MalformedText(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		b := errors.New(errors.PhaseParse, errors.KindMalformedText).
			Detail("unexpected data after the JSON value")
		if err != nil {
			b.Cause(err)
		}
		return nil, b.Build()
	}
	return v, nil
}
