package derive

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

// FromWIT derives a layout from a WIT type. Records become structs, lists
// become arrays and type aliases are followed. Types with no layout kind
// (char, variant, enum, option, result, tuple, flags, resources) are
// derivation errors.
func FromWIT(t wit.Type) (*layout.Layout, error) {
	l, err := fromWIT(t, make(map[*wit.TypeDef]bool))
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

func fromWIT(t wit.Type, visiting map[*wit.TypeDef]bool) (*layout.Layout, error) {
	switch t := t.(type) {
	case wit.Bool:
		return layout.Scalar("", layout.KindBool), nil
	case wit.U8:
		return layout.Scalar("", layout.KindU8), nil
	case wit.U16:
		return layout.Scalar("", layout.KindU16), nil
	case wit.U32:
		return layout.Scalar("", layout.KindU32), nil
	case wit.U64:
		return layout.Scalar("", layout.KindU64), nil
	case wit.S8:
		return layout.Scalar("", layout.KindI8), nil
	case wit.S16:
		return layout.Scalar("", layout.KindI16), nil
	case wit.S32:
		return layout.Scalar("", layout.KindI32), nil
	case wit.S64:
		return layout.Scalar("", layout.KindI64), nil
	case wit.F32:
		return layout.Scalar("", layout.KindF32), nil
	case wit.F64:
		return layout.Scalar("", layout.KindF64), nil
	case wit.String:
		return layout.Scalar("", layout.KindString), nil
	case *wit.TypeDef:
		return fromTypeDef(t, visiting)
	default:
		return nil, errors.New(errors.PhaseDerive, errors.KindUnsupported).
			Detail("unsupported WIT type: %T", t).
			Build()
	}
}

func fromTypeDef(td *wit.TypeDef, visiting map[*wit.TypeDef]bool) (*layout.Layout, error) {
	if visiting[td] {
		return nil, errors.New(errors.PhaseDerive, errors.KindUnsupported).
			Detail("recursive WIT type").
			Build()
	}
	visiting[td] = true
	defer delete(visiting, td)

	var l *layout.Layout
	switch kind := td.Kind.(type) {
	case *wit.Record:
		fields := make([]*layout.Layout, 0, len(kind.Fields))
		for _, f := range kind.Fields {
			fl, err := fromWIT(f.Type, visiting)
			if err != nil {
				return nil, errors.Prefix(err, f.Name)
			}
			fl.Name = f.Name
			fields = append(fields, fl)
		}
		l = layout.Struct("", fields...)

	case *wit.List:
		elem, err := fromWIT(kind.Type, visiting)
		if err != nil {
			return nil, errors.Prefix(err, "[elem]")
		}
		l = layout.Array("", elem)

	case wit.Type:
		alias, err := fromWIT(kind, visiting)
		if err != nil {
			return nil, err
		}
		l = alias

	default:
		return nil, errors.New(errors.PhaseDerive, errors.KindUnsupported).
			Detail("unsupported TypeDef kind: %T", kind).
			Build()
	}

	if td.Name != nil {
		l.Name = *td.Name
	}
	return l, nil
}
