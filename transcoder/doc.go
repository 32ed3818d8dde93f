// Package transcoder converts values between the wire format, value trees
// and JSON text, driven by a layout.
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Wire bytes ←→ [Decoder/Encoder] ←→ Value tree ←→ JSON text   │
//	└──────────────────────────────────────────────────────────────┘
//
// # Value Trees
//
// Decoding produces, per layout kind:
//
//	Kind            Go value
//	──────────────────────────────────
//	struct          map[string]any
//	array           []any
//	string          string
//	bool            bool
//	u8 … u64        uint8 … uint64
//	i8 … i64        int8 … int64
//	f32, f64        float32, float64
//
// Encoding accepts those values and also text-parsed trees: json.Number or
// float64 for numbers (integral and in range for integer kinds), any Go
// slice for arrays, and the strings "NaN", "Infinity" and "-Infinity" for
// floats. Struct keys not in the layout are ignored unless
// WithDisallowUnknownFields is set.
//
// # Key Types
//
//	Codec         - Validated layout plus options; all conversions
//	Compiler      - Validates and caches compiled layouts
//	CompiledType  - Layout tree with precomputed sizes and field index
//
// # Text Format
//
// Struct fields are written in layout order. Integers are exact, including
// 64-bit values beyond 2^53. Floats always carry a fractional part so that
// 27.0 stays a float when the text is read back.
//
// # Memory
//
// LoadFrom and StoreTo read and write values in a linear Memory, such as a
// WebAssembly instance's memory (see the memory package).
//
// # Thread Safety
//
// Codec, Compiler and CompiledType are safe for concurrent use. Each call
// allocates its own reader or writer.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[encode] field_missing at person.age: required field "age" not found
//	[decode] truncated_input at favorite_names.[1]: need 5 bytes, 2 remaining
//
// A failure at any depth aborts the call; no partial output is returned.
package transcoder
