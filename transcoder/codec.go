package transcoder

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/internal/wire"
	"github.com/wippyai/layout-codec/layout"
)

// Codec converts between the wire format, value trees and JSON text for one
// layout. The layout is validated once by New; a Codec is immutable and safe
// for concurrent use.
type Codec struct {
	layout *layout.Layout
	root   *CompiledType
	opts   options
}

// New validates l and returns a Codec for it.
func New(l *layout.Layout, opts ...Option) (*Codec, error) {
	c := &Codec{layout: l, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}

	var err error
	if c.opts.compiler != nil {
		c.root, err = c.opts.compiler.Compile(l)
	} else {
		c.root, err = compile(l)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Layout returns the layout the codec was built for.
func (c *Codec) Layout() *layout.Layout {
	return c.layout
}

// Decode decodes exactly one value from the front of data. Trailing bytes
// are ignored unless WithDisallowTrailingBytes is set.
func (c *Codec) Decode(data []byte) (any, error) {
	v, n, err := c.DecodePrefix(data)
	if err != nil {
		return nil, err
	}
	if c.opts.disallowTrailingBytes && n != len(data) {
		err := errors.New(errors.PhaseDecode, errors.KindTrailingBytes).
			Detail("%d bytes left after the value", len(data)-n).
			Build()
		c.logFailure("decode", err)
		return nil, err
	}
	return v, nil
}

// DecodePrefix decodes one value from the front of data and reports how many
// bytes it occupied.
func (c *Codec) DecodePrefix(data []byte) (any, int, error) {
	d := decoder{r: wire.NewReader(data), opts: &c.opts}
	v, err := d.decode(c.root)
	if err != nil {
		c.logFailure("decode", err)
		return nil, 0, err
	}
	return v, d.r.Position(), nil
}

// Encode lowers a value tree to the wire format. Struct fields are written
// in layout order whatever the iteration order of the map.
func (c *Codec) Encode(v any) ([]byte, error) {
	capacity := int(c.root.MinSize)
	if c.root.IsPure() {
		capacity = c.root.FixedSize
	}

	e := encoder{w: wire.NewWriter(capacity), opts: &c.opts}
	if err := e.encode(c.root, v); err != nil {
		c.logFailure("encode", err)
		return nil, err
	}
	return e.w.Bytes(), nil
}

// Format renders a value tree as JSON text with struct fields in layout
// order.
func (c *Codec) Format(v any) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := newFormatter(buf).format(c.root, v); err != nil {
		c.logFailure("format", err)
		return nil, err
	}

	if c.opts.prefix == "" && c.opts.indent == "" {
		return append([]byte(nil), buf.Bytes()...), nil
	}
	out := getBuffer()
	defer putBuffer(out)
	if err := json.Indent(out, buf.Bytes(), c.opts.prefix, c.opts.indent); err != nil {
		return nil, errors.Wrap(errors.PhaseFormat, errors.KindInvalidInput, err, "indent output")
	}
	return append([]byte(nil), out.Bytes()...), nil
}

// Parse reads JSON text into the same typed value tree Decode produces.
func (c *Codec) Parse(text []byte) (any, error) {
	data, err := c.Deserialize(text)
	if err != nil {
		return nil, err
	}
	return c.Decode(data)
}

// Serialize converts wire bytes to JSON text.
func (c *Codec) Serialize(data []byte) ([]byte, error) {
	v, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	return c.Format(v)
}

// Deserialize converts JSON text to wire bytes.
func (c *Codec) Deserialize(text []byte) ([]byte, error) {
	v, err := parseText(text)
	if err != nil {
		c.logFailure("parse", err)
		return nil, err
	}
	return c.Encode(v)
}

func (c *Codec) logFailure(op string, err error) {
	Logger().Debug(op+" failed",
		zap.String("layout", c.layout.Name),
		zap.String("kind", string(errors.KindOf(err))),
		zap.Error(err),
	)
}

// Decode decodes one value of l from the front of data.
func Decode(l *layout.Layout, data []byte) (any, error) {
	c, err := New(l)
	if err != nil {
		return nil, err
	}
	return c.Decode(data)
}

// Encode encodes v according to l.
func Encode(l *layout.Layout, v any) ([]byte, error) {
	c, err := New(l)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}

// Serialize converts wire bytes of l to JSON text.
func Serialize(l *layout.Layout, data []byte) ([]byte, error) {
	c, err := New(l)
	if err != nil {
		return nil, err
	}
	return c.Serialize(data)
}

// Deserialize converts JSON text to wire bytes of l.
func Deserialize(l *layout.Layout, text []byte) ([]byte, error) {
	c, err := New(l)
	if err != nil {
		return nil, err
	}
	return c.Deserialize(text)
}
