// Package types defines the compiled layout structures for fast transcoding.
//
// CompiledType holds precomputed information (minimum size, fixed size,
// field lookup) for a validated layout tree. By compiling once, the
// transcoder avoids recomputing sizes and scanning field lists on hot paths.
//
// This package is internal to the transcoder.
package types
