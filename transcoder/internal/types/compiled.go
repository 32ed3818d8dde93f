package types

import (
	"github.com/wippyai/layout-codec/layout"
)

type CompiledType struct {
	Layout     *layout.Layout
	ElemType   *CompiledType
	FieldIndex map[string]int
	Fields     []Field
	MinSize    uint64
	FixedSize  int
	Kind       layout.Kind
	Fixed      bool
}

type Field struct {
	Type *CompiledType
	Name string
}

// Compile builds the compiled form of a layout that has already passed
// layout.Validate.
func Compile(l *layout.Layout) *CompiledType {
	ct := &CompiledType{
		Layout:  l,
		Kind:    l.Kind,
		MinSize: layout.MinSize(l),
	}
	ct.FixedSize, ct.Fixed = layout.FixedSize(l)

	switch l.Kind {
	case layout.KindStruct:
		ct.Fields = make([]Field, len(l.Children))
		ct.FieldIndex = make(map[string]int, len(l.Children))
		for i, child := range l.Children {
			ct.Fields[i] = Field{Name: child.Name, Type: Compile(child)}
			ct.FieldIndex[child.Name] = i
		}
	case layout.KindArray:
		ct.ElemType = Compile(l.Elem())
	}
	return ct
}

func (ct *CompiledType) IsPrimitive() bool {
	return ct.Kind.IsPrimitive()
}

// IsPure returns true if the type contains only primitives (no strings or
// arrays), so every value of it encodes to exactly FixedSize bytes.
func (ct *CompiledType) IsPure() bool {
	return ct.Fixed
}
