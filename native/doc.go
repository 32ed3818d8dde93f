// Package native serializes Go values directly to and from the layout wire
// format, without going through a dynamic value tree.
//
// It accepts the Go types the derive package accepts: booleans, sized and
// platform integers, floats, strings, slices and structs of those. Struct
// fields follow derive's rules (exported fields in declaration order,
// `layout:"name"` renames, `layout:"-"` skips), so
//
//	b, _ := native.Marshal(v)
//	c, _ := transcoder.New(derive.MustOf[T]())
//	c.Decode(b)
//
// yields the value tree of v. Unmarshal reverses Marshal and rejects
// truncated input, bool bytes other than 0 and 1, invalid UTF-8 and bytes
// left over after the value.
//
// Describer implementations are not consulted; the wire form is always the
// one reflected from the Go type itself.
package native
