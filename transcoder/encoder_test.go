package transcoder

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

func TestEncodePrimitives(t *testing.T) {
	tests := []struct {
		name  string
		kind  layout.Kind
		value any
		want  []byte
	}{
		{"bool", layout.KindBool, true, []byte{1}},
		{"u8 from json number", layout.KindU8, json.Number("200"), []byte{200}},
		{"u8 from integral float", layout.KindU8, float64(27), []byte{27}},
		{"i8 negative", layout.KindI8, int8(-1), []byte{0xff}},
		{"i8 from int", layout.KindI8, -128, []byte{0x80}},
		{"u16", layout.KindU16, uint16(0x1234), []byte{0x34, 0x12}},
		{"i16", layout.KindI16, json.Number("-2"), []byte{0xfe, 0xff}},
		{"u32", layout.KindU32, uint64(0x12345678), []byte{0x78, 0x56, 0x34, 0x12}},
		{"i32 min", layout.KindI32, json.Number("-2147483648"), []byte{0, 0, 0, 0x80}},
		{"u64 max", layout.KindU64, json.Number("18446744073709551615"), bytes.Repeat([]byte{0xff}, 8)},
		{"i64 from exponent", layout.KindI64, json.Number("1e3"), []byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0}},
		{"f32", layout.KindF32, float32(1.5), []byte{0x00, 0x00, 0xc0, 0x3f}},
		{"f32 from integer", layout.KindF32, json.Number("27"), []byte{0x00, 0x00, 0xd8, 0x41}},
		{"f64", layout.KindF64, -1.0, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0xbf}},
		{"f32 nan", layout.KindF32, "NaN", []byte{0x00, 0x00, 0xc0, 0x7f}},
		{"f64 -inf", layout.KindF64, "-Infinity", []byte{0, 0, 0, 0, 0, 0, 0xf0, 0xff}},
		{"f64 nan payload", layout.KindF64, math.Float64frombits(0xfff0000000000001), []byte{1, 0, 0, 0, 0, 0, 0xf0, 0xff}},
		{"string", layout.KindString, "Bob", concat(le64(3), []byte("Bob"))},
		{"empty string", layout.KindString, "", le64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(layout.Scalar("", tt.kind), tt.value)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	l := layout.Struct("p",
		layout.Scalar("b", layout.KindU8),
		layout.Scalar("a", layout.KindU8),
		layout.Scalar("c", layout.KindU8),
	)
	got, err := Encode(l, map[string]any{"a": 1, "c": 3, "b": 2})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{2, 1, 3}) {
		t.Errorf("got %v, want [2 1 3]", got)
	}
}

func TestEncodeTypedSlices(t *testing.T) {
	l := layout.Struct("p",
		layout.Array("nums", layout.Scalar("", layout.KindU16)),
		layout.Array("names", layout.Scalar("", layout.KindString)),
	)
	got, err := Encode(l, map[string]any{
		"nums":  []int{1, 2},
		"names": [1]string{"x"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := concat(le64(2), []byte{1, 0, 2, 0}, le64(1), le64(1), []byte("x"))
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestEncodeExtraKeysIgnored(t *testing.T) {
	l := layout.Struct("p", layout.Scalar("age", layout.KindU8))
	got, err := Encode(l, map[string]any{"age": 5, "nickname": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{5}) {
		t.Errorf("got %v", got)
	}
}

func TestEncodeErrors(t *testing.T) {
	person := layout.Struct("Person",
		layout.Scalar("age", layout.KindU8),
		layout.Array("favorite_names", layout.Scalar("", layout.KindString)),
		layout.Struct("address", layout.Scalar("street", layout.KindString)),
	)
	valid := func() map[string]any {
		return map[string]any{
			"age":            json.Number("27"),
			"favorite_names": []any{"Andy"},
			"address":        map[string]any{"street": "Main"},
		}
	}
	with := func(key string, v any) map[string]any {
		m := valid()
		m[key] = v
		return m
	}

	tests := []struct {
		name     string
		value    any
		opts     []Option
		kind     errors.Kind
		wantPath string
	}{
		{"not a mapping", []any{}, nil, errors.KindTypeMismatch, ""},
		{"nil value", nil, nil, errors.KindTypeMismatch, ""},
		{"u8 out of range", with("age", json.Number("256")), nil, errors.KindTypeMismatch, "age"},
		{"u8 negative", with("age", -1), nil, errors.KindTypeMismatch, "age"},
		{"u8 fractional", with("age", json.Number("2.5")), nil, errors.KindTypeMismatch, "age"},
		{"u8 from string", with("age", "27"), nil, errors.KindTypeMismatch, "age"},
		{"u8 from bool", with("age", true), nil, errors.KindTypeMismatch, "age"},
		{"array from string", with("favorite_names", "Andy"), nil, errors.KindTypeMismatch, "favorite_names"},
		{"element not string", with("favorite_names", []any{"a", json.Number("1")}), nil, errors.KindTypeMismatch, "favorite_names.[1]"},
		{"invalid utf8", with("favorite_names", []any{"\xff"}), nil, errors.KindInvalidEncoding, "favorite_names.[0]"},
		{"nested missing", with("address", map[string]any{}), nil, errors.KindFieldMissing, "address.street"},
		{"nested not mapping", with("address", "Main"), nil, errors.KindTypeMismatch, "address"},
		{"unknown field", with("zzz", 1), []Option{WithDisallowUnknownFields()}, errors.KindFieldUnknown, ""},
		{"list limit", with("favorite_names", []any{"a", "b"}), []Option{WithMaxListLength(1)}, errors.KindOverflow, "favorite_names"},
		{"string limit", with("favorite_names", []any{"abc"}), []Option{WithMaxStringSize(2)}, errors.KindOverflow, "favorite_names.[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCodec(t, person, tt.opts...)
			out, err := c.Encode(tt.value)
			if out != nil {
				t.Errorf("partial output returned: %x", out)
			}
			if !errors.HasKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
			e := err.(*errors.Error)
			if got := strings.Join(e.Path, "."); got != tt.wantPath {
				t.Errorf("path: got %q, want %q", got, tt.wantPath)
			}
		})
	}
}

func TestEncodeUnknownFieldReported(t *testing.T) {
	c := mustCodec(t, layout.Struct("p", layout.Scalar("a", layout.KindU8)), WithDisallowUnknownFields())
	_, err := c.Encode(map[string]any{"a": 1, "z": 2, "m": 3})
	if !errors.HasKind(err, errors.KindFieldUnknown) {
		t.Fatalf("expected field_unknown, got %v", err)
	}
	if !strings.Contains(err.Error(), `"m"`) {
		t.Errorf("expected the smallest unknown key in %q", err.Error())
	}

	if _, err := c.Encode(map[string]any{"a": 1}); err != nil {
		t.Errorf("exact keys rejected: %v", err)
	}
}

func TestEncodeTypeMismatchDetail(t *testing.T) {
	_, err := Encode(layout.Scalar("", layout.KindU8), 300)
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if e.GoType != "int" || e.LayoutKind != "u8" {
		t.Errorf("got GoType=%q LayoutKind=%q", e.GoType, e.LayoutKind)
	}
	if !strings.Contains(e.Detail, "300") {
		t.Errorf("detail should name the value: %q", e.Detail)
	}
}
