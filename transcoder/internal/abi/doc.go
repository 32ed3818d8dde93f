// Package abi provides internal utilities for wire encoding and decoding.
//
// This package contains the numeric coercion rules used when a value tree
// is lowered into fixed-width wire values, plus the shared limits used by
// both directions.
//
// # Contents
//
//   - coerce.go: Coercion of interchange numbers into declared widths
//   - limits.go: Shared limits and overflow-checked arithmetic
//
// This package is internal to the transcoder.
package abi
