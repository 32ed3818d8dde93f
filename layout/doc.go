// Package layout describes how an encoded value's bytes are structured.
//
// A Layout is a node in an ordered tree. Struct nodes list their fields in
// wire order, Array nodes carry exactly one child (the element layout), and
// String and primitive nodes are leaves:
//
//	Kind            Encoded size
//	─────────────────────────────────────────────
//	bool, u8, i8    1
//	u16, i16        2
//	u32, i32, f32   4
//	u64, i64, f64   8
//	string          8-byte length + UTF-8 bytes
//	array           8-byte count + each element
//	struct          fields concatenated, no padding
//
// All multi-byte values are little-endian.
//
// Layouts are built once, by hand with the constructors in this package, from
// a JSON schema with Parse, or by the derive package, and are never mutated
// afterwards. A single Layout may be shared by any number of concurrent
// encode and decode calls.
//
// # Schema Files
//
// The JSON form uses "fields" for children:
//
//	{"name": "Person", "kind": "struct", "fields": [
//	    {"name": "age", "kind": "u8"},
//	    {"name": "favorite_names", "kind": "array", "fields": [{"kind": "string"}]}
//	]}
package layout
