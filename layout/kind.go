package layout

import (
	"strings"

	"github.com/wippyai/layout-codec/errors"
)

// Kind tags a Layout node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindStruct
	KindArray
	KindString
	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindStruct:  "struct",
	KindArray:   "array",
	KindString:  "string",
	KindBool:    "bool",
	KindU8:      "u8",
	KindU16:     "u16",
	KindU32:     "u32",
	KindU64:     "u64",
	KindI8:      "i8",
	KindI16:     "i16",
	KindI32:     "i32",
	KindI64:     "i64",
	KindF32:     "f32",
	KindF64:     "f64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindF64
}

// IsPrimitive reports whether k is a fixed-width scalar (bool, integers, floats).
func (k Kind) IsPrimitive() bool {
	return k >= KindBool && k <= KindF64
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	return k >= KindU8 && k <= KindI64
}

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= KindI8 && k <= KindI64
}

// IsFloat reports whether k is f32 or f64.
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// Width returns the encoded size of a primitive kind, or 0 for struct,
// array, string and invalid kinds.
func (k Kind) Width() int {
	switch k {
	case KindBool, KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	default:
		return 0
	}
}

// ParseKind parses a kind name, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindStruct; k <= KindF64; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindInvalid, errors.New(errors.PhaseLoad, errors.KindInvalidLayout).
		Detail("unknown layout kind %q", s).
		Build()
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.New(errors.PhaseFormat, errors.KindInvalidLayout).
			Detail("cannot marshal layout kind %d", uint8(k)).
			Build()
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
