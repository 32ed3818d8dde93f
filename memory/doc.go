// Package memory provides Memory implementations for the transcoder.
//
// # WebAssembly Memory
//
// Wraps a wazero api.Memory so payloads can be loaded from and stored into
// a guest's linear memory:
//
//	mem := memory.Wrap(mod.ExportedMemory("memory"))
//	value, n, err := codec.LoadFrom(mem, ptr)
//
// # In-process Memory
//
// Bytes is a plain byte slice with the same bounds rules, for tools and
// tests that have no WebAssembly runtime:
//
//	mem := memory.NewBytes(64 << 10)
//	n, err := codec.StoreTo(mem, 0, value)
package memory
