package abi

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestCoerceToUint(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		bits   int
		want   uint64
		wantOK bool
	}{
		// Go integers
		{uint8(255), "uint8 max", 8, 255, true},
		{uint16(256), "uint16 into u8", 8, 0, false},
		{uint64(math.MaxUint64), "uint64 max", 64, math.MaxUint64, true},
		{int(1000), "int positive", 16, 1000, true},
		{int8(-1), "int8 negative", 8, 0, false},
		{int64(0), "int64 zero", 32, 0, true},

		// float64 (decoded JSON)
		{float64(27), "float64 integral", 8, 27, true},
		{float64(2.5), "float64 fractional", 8, 0, false},
		{float64(-0.0), "float64 negative zero", 8, 0, true},
		{math.Inf(1), "float64 inf", 64, 0, false},
		{math.NaN(), "float64 nan", 64, 0, false},

		// json.Number
		{json.Number("27"), "number", 8, 27, true},
		{json.Number("27.0"), "number with fraction", 8, 27, true},
		{json.Number("2.7e1"), "number with exponent", 8, 27, true},
		{json.Number("256"), "number out of u8", 8, 0, false},
		{json.Number("65535"), "number u16 max", 16, 65535, true},
		{json.Number("18446744073709551615"), "number u64 max", 64, math.MaxUint64, true},
		{json.Number("18446744073709551616"), "number above u64", 64, 0, false},
		{json.Number("-1"), "number negative", 32, 0, false},
		{json.Number("-0"), "number negative zero", 32, 0, true},
		{json.Number("1.5"), "number fractional", 32, 0, false},
		{json.Number("1e400"), "number huge exponent", 64, 0, false},
		{json.Number("1e-400"), "number tiny exponent", 64, 0, false},
		{json.Number("0e-400"), "number zero with exponent", 8, 0, true},
		{json.Number("1." + strings.Repeat("0", 90) + "1"), "number long fraction", 8, 0, false},
		{json.Number("1" + strings.Repeat("0", 80) + "1e-80"), "number long mantissa", 8, 0, false},
		{json.Number("18446744073709551615.0"), "number u64 max with fraction", 64, math.MaxUint64, true},
		{json.Number("12" + strings.Repeat("0", 78) + "e-78"), "number long integral", 16, 12, true},

		// Invalid types
		{"27", "string", 8, 0, false},
		{nil, "nil", 8, 0, false},
		{true, "bool", 8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceToUint(tt.input, tt.bits)
			if ok != tt.wantOK {
				t.Errorf("CoerceToUint(%v, %d) ok = %v, want %v", tt.input, tt.bits, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("CoerceToUint(%v, %d) = %d, want %d", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

func TestCoerceToInt(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		bits   int
		want   int64
		wantOK bool
	}{
		{int8(-128), "int8 min", 8, -128, true},
		{int16(-129), "int16 below i8", 8, 0, false},
		{int64(127), "i8 max", 8, 127, true},
		{int64(128), "i8 overflow", 8, 0, false},
		{uint64(math.MaxInt64), "uint64 i64 max", 64, math.MaxInt64, true},
		{uint64(math.MaxInt64 + 1), "uint64 above i64", 64, 0, false},
		{int64(math.MinInt64), "i64 min", 64, math.MinInt64, true},
		{int(-32768), "i16 min", 16, -32768, true},
		{int(-32769), "i16 underflow", 16, 0, false},

		{float64(-5), "float64 negative", 32, -5, true},
		{float64(-5.5), "float64 fractional", 32, 0, false},

		{json.Number("-9223372036854775808"), "number i64 min", 64, math.MinInt64, true},
		{json.Number("-9223372036854775809"), "number below i64", 64, 0, false},
		{json.Number("9223372036854775807"), "number i64 max", 64, math.MaxInt64, true},
		{json.Number("-2147483648"), "number i32 min", 32, math.MinInt32, true},
		{json.Number("2147483648"), "number i32 overflow", 32, 0, false},
		{json.Number("-1.0e2"), "number negative exponent form", 16, -100, true},

		{"1", "string", 32, 0, false},
		{nil, "nil", 32, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceToInt(tt.input, tt.bits)
			if ok != tt.wantOK {
				t.Errorf("CoerceToInt(%v, %d) ok = %v, want %v", tt.input, tt.bits, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("CoerceToInt(%v, %d) = %d, want %d", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

func TestCoerceToFloat(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		bits   int
		want   float64
		wantOK bool
	}{
		{float64(27), "float64", 64, 27, true},
		{float32(1.5), "float32", 32, 1.5, true},
		{json.Number("27.0"), "number", 32, 27, true},
		{json.Number("0.1"), "number f32 rounding", 32, float64(float32(0.1)), true},
		{json.Number("1e39"), "number beyond f32", 32, 0, false},
		{json.Number("1e39"), "number fits f64", 64, 1e39, true},
		{float64(1e39), "float64 beyond f32", 32, 0, false},
		{int(-3), "int", 64, -3, true},
		{uint64(1 << 40), "uint64", 64, 1 << 40, true},
		{"Infinity", "positive infinity", 32, math.Inf(1), true},
		{"-Infinity", "negative infinity", 64, math.Inf(-1), true},
		{"inf", "other spelling", 64, 0, false},
		{true, "bool", 64, 0, false},
		{nil, "nil", 64, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceToFloat(tt.input, tt.bits)
			if ok != tt.wantOK {
				t.Errorf("CoerceToFloat(%v, %d) ok = %v, want %v", tt.input, tt.bits, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("CoerceToFloat(%v, %d) = %v, want %v", tt.input, tt.bits, got, tt.want)
			}
		})
	}

	got, ok := CoerceToFloat("NaN", 64)
	if !ok || !math.IsNaN(got) {
		t.Errorf("CoerceToFloat(NaN) = %v, %v", got, ok)
	}
}
