// Package wire implements the fixed-width little-endian primitives of the
// payload format: 1/2/4/8-byte integers and 8-byte length prefixes.
//
// The Reader never reads past the end of its buffer; every short read fails
// with a truncated_input error from the errors package. The Writer appends to
// an in-memory buffer and cannot fail.
package wire
