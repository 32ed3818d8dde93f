// Package layoutcodec converts values between a compact binary wire format
// and JSON text, driven by a data-only schema (a Layout) instead of compiled
// type information.
//
// A consumer that only holds the Layout of a payload can inspect it, edit it
// and reconstruct bytes that are bit-identical to what the producing
// serializer would emit for the edited value.
//
// # Architecture Overview
//
//	layoutcodec/         Root package with the Memory interface
//	├── layout/          Layout tree, kinds, validation, size calculation, JSON schema
//	├── transcoder/      Codec: bytes ↔ value tree ↔ JSON text, Memory load/store
//	├── derive/          Layouts from Go types, WIT type descriptors and protobuf messages
//	├── native/          Reference serializer for Go values in the wire format
//	├── memory/          Memory adapters (wazero linear memory, in-process byte slices)
//	├── registry/        Named layout storage (in-memory, Redis)
//	├── config/          TOML tool configuration
//	├── errors/          Structured error types
//	└── cmd/layoutc/     Command-line tool and interactive editor
//
// # Wire Format
//
//	Kind            Encoding
//	──────────────────────────────────────────────────────────
//	bool, u8, i8    1 byte (bool is 0 or 1)
//	u16, i16        2 bytes little-endian
//	u32, i32, f32   4 bytes little-endian
//	u64, i64, f64   8 bytes little-endian
//	string          u64 byte length, then UTF-8 bytes
//	array           u64 element count, then the elements
//	struct          fields in declared order, no padding
//
// # Quick Start
//
//	person := layout.Struct("Person",
//	    layout.Scalar("age", layout.KindU8),
//	    layout.Array("favorite_names", layout.Scalar("", layout.KindString)),
//	)
//
//	codec, err := transcoder.New(person)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := codec.Serialize(payload)   // bytes → JSON
//	payload, err = codec.Deserialize(text)  // JSON → bytes
//
// # Thread Safety
//
// Layouts are never mutated after construction and a Codec holds no per-call
// state, so both may be shared by any number of goroutines.
package layoutcodec
