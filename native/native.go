package native

import (
	"reflect"
	"sync"

	"github.com/wippyai/layout-codec/derive"
	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/internal/wire"
	"github.com/wippyai/layout-codec/layout"
)

// maxZeroSizeCount bounds arrays whose elements occupy no bytes, where the
// count prefix is not bounded by the input length.
const maxZeroSizeCount = 1 << 27

var layouts sync.Map // reflect.Type -> *layout.Layout

// LayoutOf returns the layout Marshal and Unmarshal use for values of t.
func LayoutOf(t reflect.Type) (*layout.Layout, error) {
	if cached, ok := layouts.Load(t); ok {
		return cached.(*layout.Layout), nil
	}
	l, err := derive.Reflect(t)
	if err != nil {
		return nil, err
	}
	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*layout.Layout), nil
}

// Marshal returns the wire encoding of v. A pointer to a supported value is
// followed once.
func Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.InvalidInput(errors.PhaseEncode, "nil pointer")
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, errors.InvalidInput(errors.PhaseEncode, "nil value")
	}

	l, err := LayoutOf(rv.Type())
	if err != nil {
		return nil, err
	}

	capacity := 64
	if size, ok := layout.FixedSize(l); ok {
		capacity = size
	}
	w := wire.NewWriter(capacity)
	if err := encode(w, rv, l); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes data into the value v points to. The whole of data must
// be consumed by the value.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("Unmarshal needs a non-nil pointer, got %T", v).
			Build()
	}
	rv = rv.Elem()

	l, err := LayoutOf(rv.Type())
	if err != nil {
		return err
	}

	r := wire.NewReader(data)
	if err := decode(r, rv, l); err != nil {
		return err
	}
	if n := r.Remaining(); n > 0 {
		return errors.New(errors.PhaseDecode, errors.KindTrailingBytes).
			Detail("%d bytes left after the value", n).
			Build()
	}
	return nil
}
