// Package derive produces layouts from type descriptors.
//
// Three descriptor sources are supported:
//
//	FromType / Of[T]   Go types, by reflection
//	FromWIT            WebAssembly component (WIT) type definitions
//	FromProto          protobuf message descriptors
//
// # Go Types
//
// Exported struct fields are taken in declaration order. The field tag
// `layout:"name"` renames a field and `layout:"-"` skips it:
//
//	type Person struct {
//	    Age            uint8
//	    FavoriteNames  []string `layout:"favorite_names"`
//	    internal       int      // unexported, skipped
//	}
//
//	l, err := derive.Of[Person]()
//
//	Go type             Kind
//	──────────────────────────────
//	bool                bool
//	uint8 … uint64      u8 … u64
//	int8 … int64        i8 … i64
//	int, uint           i64, u64
//	float32, float64    f32, f64
//	string              string
//	[]T                 array of T
//	struct              struct
//
// Types implementing Describer supply their own layout and are used as-is.
// Anything else (pointers, maps, fixed-size arrays, interfaces, channels,
// functions, complex numbers, recursive types) is a derivation error.
package derive
