package abi

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
)

// Textual spellings of non-finite floats. JSON has no literal for them.
const (
	TextNaN    = "NaN"
	TextPosInf = "Infinity"
	TextNegInf = "-Infinity"
)

// CoerceToUint handles JSON numbers (json.Number, float64) and Go integer
// types, returning the value if it is integral and fits in bits.
func CoerceToUint(value any, bits int) (uint64, bool) {
	mag, neg, ok := magnitude(value)
	if !ok || (neg && mag != 0) {
		return 0, false
	}
	if mag > uint64(math.MaxUint64)>>(64-bits) {
		return 0, false
	}
	return mag, true
}

// CoerceToInt is the signed counterpart of CoerceToUint.
func CoerceToInt(value any, bits int) (int64, bool) {
	mag, neg, ok := magnitude(value)
	if !ok {
		return 0, false
	}
	limit := uint64(1) << (bits - 1)
	if neg {
		if mag > limit {
			return 0, false
		}
		return int64(-mag), true
	}
	if mag >= limit {
		return 0, false
	}
	return int64(mag), true
}

// CoerceToFloat converts numbers and the non-finite spellings to a float of
// the given width. Finite values outside the float32 range are rejected for
// bits == 32; values inside it are returned unrounded.
func CoerceToFloat(value any, bits int) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		return float64(v), true
	case json.Number:
		parsed, err := strconv.ParseFloat(string(v), bits)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		switch v {
		case TextNaN:
			return math.NaN(), true
		case TextPosInf:
			return math.Inf(1), true
		case TextNegInf:
			return math.Inf(-1), true
		}
		return 0, false
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case uint:
		f = float64(v)
	default:
		return 0, false
	}
	if bits == 32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return f, true
}

// magnitude splits an integral value into its absolute value and sign.
func magnitude(value any) (uint64, bool, bool) {
	switch v := value.(type) {
	case uint8:
		return uint64(v), false, true
	case uint16:
		return uint64(v), false, true
	case uint32:
		return uint64(v), false, true
	case uint64:
		return v, false, true
	case uint:
		return uint64(v), false, true
	case int8:
		return signed(int64(v))
	case int16:
		return signed(int64(v))
	case int32:
		return signed(int64(v))
	case int64:
		return signed(v)
	case int:
		return signed(int64(v))
	case float32:
		return floatMagnitude(float64(v))
	case float64:
		return floatMagnitude(v)
	case json.Number:
		return numberMagnitude(string(v))
	}
	return 0, false, false
}

func signed(v int64) (uint64, bool, bool) {
	if v < 0 {
		// -MinInt64 wraps back to MinInt64, whose uint64 conversion is still 1<<63.
		return uint64(-v), true, true
	}
	return uint64(v), false, true
}

func floatMagnitude(f float64) (uint64, bool, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, false
	}
	neg := f < 0
	if neg {
		f = -f
	}
	if f >= 1<<64 {
		return 0, false, false
	}
	return uint64(f), neg, true
}

func numberMagnitude(s string) (uint64, bool, bool) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, false, true
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return signed(i)
	}

	// Integral values written with a fraction or exponent ("27.0", "2.7e1").
	// The float parse only bounds the magnitude so the exact rational below
	// never sees an exponent far outside the 64-bit range.
	f, _, err := big.ParseFloat(s, 10, 64, big.ToZero)
	if err != nil || f.IsInf() {
		return 0, false, false
	}
	if f.Sign() == 0 {
		return 0, false, true
	}
	if exp := f.MantExp(nil); exp < 1 || exp > 65 {
		return 0, false, false
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || !r.IsInt() {
		return 0, false, false
	}
	n := new(big.Int).Set(r.Num())
	neg := n.Sign() < 0
	n.Abs(n)
	if !n.IsUint64() {
		return 0, false, false
	}
	return n.Uint64(), neg, true
}
