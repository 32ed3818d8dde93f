package derive

import (
	"reflect"
	"strings"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

// Describer is implemented by types that declare their layout by hand.
type Describer interface {
	Layout() *layout.Layout
}

var describerType = reflect.TypeFor[Describer]()

// FromType derives the layout of t. Describer implementations are honored
// at every level of the type.
func FromType(t reflect.Type) (*layout.Layout, error) {
	return deriveType(t, true)
}

// Reflect derives the layout of t from its structure alone, ignoring
// Describer implementations.
func Reflect(t reflect.Type) (*layout.Layout, error) {
	return deriveType(t, false)
}

// Of derives the layout of T.
func Of[T any]() (*layout.Layout, error) {
	return FromType(reflect.TypeFor[T]())
}

// MustOf is like Of but panics on error. It is intended for package-level
// layout variables.
func MustOf[T any]() *layout.Layout {
	l, err := Of[T]()
	if err != nil {
		panic(err)
	}
	return l
}

func deriveType(t reflect.Type, describers bool) (*layout.Layout, error) {
	if t == nil {
		return nil, errors.InvalidInput(errors.PhaseDerive, "nil type")
	}
	d := &deriver{describers: describers, visiting: make(map[reflect.Type]bool)}
	l, err := d.derive(t)
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

// StructField is a Go struct field that takes part in a layout.
type StructField struct {
	Type  reflect.Type
	Name  string
	Index int
}

// StructFields returns the fields of struct type t that map to layout
// fields, in declaration order, with tag renames applied.
func StructFields(t reflect.Type) []StructField {
	fields := make([]StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag, ok := sf.Tag.Lookup("layout"); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, StructField{Type: sf.Type, Name: name, Index: i})
	}
	return fields
}

type deriver struct {
	visiting   map[reflect.Type]bool
	describers bool
}

func (d *deriver) derive(t reflect.Type) (*layout.Layout, error) {
	if d.describers {
		if l, ok, err := describe(t); ok {
			return l, err
		}
	}

	switch t.Kind() {
	case reflect.Bool:
		return layout.Scalar("", layout.KindBool), nil
	case reflect.Uint8:
		return layout.Scalar("", layout.KindU8), nil
	case reflect.Uint16:
		return layout.Scalar("", layout.KindU16), nil
	case reflect.Uint32:
		return layout.Scalar("", layout.KindU32), nil
	case reflect.Uint64, reflect.Uint:
		return layout.Scalar("", layout.KindU64), nil
	case reflect.Int8:
		return layout.Scalar("", layout.KindI8), nil
	case reflect.Int16:
		return layout.Scalar("", layout.KindI16), nil
	case reflect.Int32:
		return layout.Scalar("", layout.KindI32), nil
	case reflect.Int64, reflect.Int:
		return layout.Scalar("", layout.KindI64), nil
	case reflect.Float32:
		return layout.Scalar("", layout.KindF32), nil
	case reflect.Float64:
		return layout.Scalar("", layout.KindF64), nil
	case reflect.String:
		return layout.Scalar("", layout.KindString), nil

	case reflect.Slice:
		elem, err := d.derive(t.Elem())
		if err != nil {
			return nil, errors.Prefix(err, "[elem]")
		}
		return layout.Array("", elem), nil

	case reflect.Struct:
		if d.visiting[t] {
			return nil, errors.New(errors.PhaseDerive, errors.KindUnsupported).
				GoType(t.String()).
				Detail("recursive type").
				Build()
		}
		d.visiting[t] = true
		defer delete(d.visiting, t)

		fields := StructFields(t)
		children := make([]*layout.Layout, 0, len(fields))
		for _, f := range fields {
			fl, err := d.derive(f.Type)
			if err != nil {
				return nil, errors.Prefix(err, f.Name)
			}
			fl.Name = f.Name
			children = append(children, fl)
		}
		return layout.Struct(t.Name(), children...), nil

	default:
		return nil, errors.New(errors.PhaseDerive, errors.KindUnsupported).
			GoType(t.String()).
			Detail("%s has no layout kind", t.Kind()).
			Build()
	}
}

// describe returns a copy of the root node of a Describer's layout, so the
// caller may rename it without touching the original.
func describe(t reflect.Type) (*layout.Layout, bool, error) {
	var desc Describer
	switch {
	case t.Kind() == reflect.Interface:
		return nil, false, nil
	case t.Implements(describerType):
		if t.Kind() == reflect.Pointer {
			desc = reflect.New(t.Elem()).Interface().(Describer)
		} else {
			desc = reflect.Zero(t).Interface().(Describer)
		}
	case reflect.PointerTo(t).Implements(describerType):
		desc = reflect.New(t).Interface().(Describer)
	default:
		return nil, false, nil
	}

	l := desc.Layout()
	if err := layout.Validate(l); err != nil {
		return nil, true, errors.Wrap(errors.PhaseDerive, errors.KindInvalidLayout, err,
			"layout declared by "+t.String())
	}
	cp := *l
	return &cp, true, nil
}
