package layout

import (
	"strconv"
	"strings"
)

// Layout is an immutable schema node. Name is meaningful only for Struct
// fields; Children holds Struct fields in wire order or the single Array
// element layout.
type Layout struct {
	Name     string
	Kind     Kind
	Children []*Layout
}

// New creates a layout node. It does not validate; see Validate.
func New(name string, kind Kind, children ...*Layout) *Layout {
	return &Layout{Name: name, Kind: kind, Children: children}
}

// Struct creates a struct layout whose fields are encoded in the given order.
func Struct(name string, fields ...*Layout) *Layout {
	return New(name, KindStruct, fields...)
}

// Array creates an array layout with the given element layout.
func Array(name string, elem *Layout) *Layout {
	return New(name, KindArray, elem)
}

// Scalar creates a string or primitive layout.
func Scalar(name string, kind Kind) *Layout {
	return New(name, kind)
}

// Elem returns the element layout of an array, or nil for other kinds.
func (l *Layout) Elem() *Layout {
	if l.Kind != KindArray || len(l.Children) == 0 {
		return nil
	}
	return l.Children[0]
}

// Field returns the struct field named name.
func (l *Layout) Field(name string) (*Layout, bool) {
	if l.Kind != KindStruct {
		return nil, false
	}
	for _, f := range l.Children {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Equal reports whether a and b describe the same wire format and field
// names. Names of array elements and of the root are ignored.
func Equal(a, b *Layout) bool {
	return equal(a, b, false)
}

func equal(a, b *Layout, named bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || len(a.Children) != len(b.Children) {
		return false
	}
	if named && a.Name != b.Name {
		return false
	}
	for i := range a.Children {
		if !equal(a.Children[i], b.Children[i], a.Kind == KindStruct) {
			return false
		}
	}
	return true
}

// String renders the layout as an indented tree.
func (l *Layout) String() string {
	var b strings.Builder
	l.writeTree(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func (l *Layout) writeTree(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if l == nil {
		b.WriteString("<nil>\n")
		return
	}
	if l.Name != "" {
		b.WriteString(l.Name)
		b.WriteString(": ")
	}
	b.WriteString(l.Kind.String())
	switch l.Kind {
	case KindStruct:
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(len(l.Children)))
		b.WriteString(" fields)")
	case KindArray:
		b.WriteString(" of")
	}
	b.WriteByte('\n')
	for _, c := range l.Children {
		c.writeTree(b, depth+1)
	}
}
