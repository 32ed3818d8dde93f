package types

import (
	"testing"

	"github.com/wippyai/layout-codec/layout"
)

func TestCompiledTypeIsPrimitive(t *testing.T) {
	primitiveType := Compile(layout.Scalar("", layout.KindU32))
	if !primitiveType.IsPrimitive() {
		t.Error("u32 should be primitive")
	}

	stringType := Compile(layout.Scalar("", layout.KindString))
	if stringType.IsPrimitive() {
		t.Error("string should not be primitive")
	}
}

func TestCompiledTypeIsPure(t *testing.T) {
	t.Run("primitive_is_pure", func(t *testing.T) {
		ct := Compile(layout.Scalar("", layout.KindF64))
		if !ct.IsPure() || ct.FixedSize != 8 {
			t.Errorf("f64: pure=%v size=%d", ct.IsPure(), ct.FixedSize)
		}
	})

	t.Run("string_not_pure", func(t *testing.T) {
		ct := Compile(layout.Scalar("", layout.KindString))
		if ct.IsPure() {
			t.Error("string should not be pure")
		}
	})

	t.Run("array_not_pure", func(t *testing.T) {
		ct := Compile(layout.Array("", layout.Scalar("", layout.KindU8)))
		if ct.IsPure() {
			t.Error("array should not be pure")
		}
	})

	t.Run("struct_with_primitives_is_pure", func(t *testing.T) {
		ct := Compile(layout.Struct("point",
			layout.Scalar("x", layout.KindI32),
			layout.Scalar("y", layout.KindI32),
		))
		if !ct.IsPure() || ct.FixedSize != 8 {
			t.Errorf("point: pure=%v size=%d", ct.IsPure(), ct.FixedSize)
		}
	})

	t.Run("struct_with_string_not_pure", func(t *testing.T) {
		ct := Compile(layout.Struct("named",
			layout.Scalar("id", layout.KindU32),
			layout.Scalar("name", layout.KindString),
		))
		if ct.IsPure() {
			t.Error("struct with string should not be pure")
		}
		if ct.MinSize != 12 {
			t.Errorf("MinSize: got %d, want 12", ct.MinSize)
		}
	})
}

func TestCompileStructFields(t *testing.T) {
	ct := Compile(layout.Struct("Person",
		layout.Scalar("age", layout.KindU8),
		layout.Array("favorite_names", layout.Scalar("", layout.KindString)),
	))

	if len(ct.Fields) != 2 {
		t.Fatalf("fields: got %d, want 2", len(ct.Fields))
	}
	if ct.Fields[1].Name != "favorite_names" || ct.Fields[1].Type.Kind != layout.KindArray {
		t.Errorf("field 1: got %s %v", ct.Fields[1].Name, ct.Fields[1].Type.Kind)
	}
	if ct.Fields[1].Type.ElemType == nil || ct.Fields[1].Type.ElemType.Kind != layout.KindString {
		t.Error("array element not compiled")
	}
	if idx, ok := ct.FieldIndex["favorite_names"]; !ok || idx != 1 {
		t.Errorf("FieldIndex: got %d, %v", idx, ok)
	}
}
