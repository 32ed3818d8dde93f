package derive

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

// FromProto derives a struct layout from a protobuf message descriptor.
// Fields are taken in declaration order under their proto names. Scalars
// map by width (sint/sfixed are signed, fixed unsigned), enums become i32,
// bytes become an array of u8, messages become structs and repeated fields
// become arrays. Maps, oneofs, optional fields, groups and recursive
// messages are derivation errors.
func FromProto(md protoreflect.MessageDescriptor) (*layout.Layout, error) {
	if md == nil {
		return nil, errors.InvalidInput(errors.PhaseDerive, "nil message descriptor")
	}
	l, err := fromMessage(md, make(map[protoreflect.FullName]bool))
	if err != nil {
		return nil, err
	}
	if err := layout.Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

// FromMessage derives the layout of m's message type.
func FromMessage(m proto.Message) (*layout.Layout, error) {
	if m == nil {
		return nil, errors.InvalidInput(errors.PhaseDerive, "nil message")
	}
	return FromProto(m.ProtoReflect().Descriptor())
}

func fromMessage(md protoreflect.MessageDescriptor, visiting map[protoreflect.FullName]bool) (*layout.Layout, error) {
	name := md.FullName()
	if visiting[name] {
		return nil, errors.New(errors.PhaseDerive, errors.KindUnsupported).
			GoType(string(name)).
			Detail("recursive message").
			Build()
	}
	visiting[name] = true
	defer delete(visiting, name)

	fds := md.Fields()
	fields := make([]*layout.Layout, 0, fds.Len())
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		fl, err := fromField(fd, visiting)
		if err != nil {
			return nil, errors.Prefix(err, string(fd.Name()))
		}
		fl.Name = string(fd.Name())
		fields = append(fields, fl)
	}
	return layout.Struct(string(md.Name()), fields...), nil
}

func fromField(fd protoreflect.FieldDescriptor, visiting map[protoreflect.FullName]bool) (*layout.Layout, error) {
	switch {
	case fd.IsMap():
		return nil, protoUnsupported(fd, "map field")
	case fd.ContainingOneof() != nil:
		return nil, protoUnsupported(fd, "oneof or optional field")
	}

	elem, err := fromKind(fd, visiting)
	if err != nil {
		return nil, err
	}
	if fd.Cardinality() == protoreflect.Repeated {
		return layout.Array("", elem), nil
	}
	return elem, nil
}

func fromKind(fd protoreflect.FieldDescriptor, visiting map[protoreflect.FullName]bool) (*layout.Layout, error) {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return layout.Scalar("", layout.KindBool), nil
	case protoreflect.EnumKind, protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return layout.Scalar("", layout.KindI32), nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return layout.Scalar("", layout.KindU32), nil
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return layout.Scalar("", layout.KindI64), nil
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return layout.Scalar("", layout.KindU64), nil
	case protoreflect.FloatKind:
		return layout.Scalar("", layout.KindF32), nil
	case protoreflect.DoubleKind:
		return layout.Scalar("", layout.KindF64), nil
	case protoreflect.StringKind:
		return layout.Scalar("", layout.KindString), nil
	case protoreflect.BytesKind:
		return layout.Array("", layout.Scalar("", layout.KindU8)), nil
	case protoreflect.MessageKind:
		return fromMessage(fd.Message(), visiting)
	default:
		return nil, protoUnsupported(fd, fd.Kind().String()+" field")
	}
}

func protoUnsupported(fd protoreflect.FieldDescriptor, what string) error {
	return errors.New(errors.PhaseDerive, errors.KindUnsupported).
		GoType(string(fd.FullName())).
		Detail("%s has no layout kind", what).
		Build()
}
