package main

import (
	"strconv"
	"sync"

	"github.com/wippyai/layout-codec/layout"
	"github.com/wippyai/layout-codec/transcoder"
)

// leaf is one primitive or string value of a decoded value tree. set
// replaces the value in its parent container.
type leaf struct {
	set   func(any)
	value any
	path  string
	kind  layout.Kind
}

// scalarCodecs holds one codec per leaf kind, built on first use.
var scalarCodecs sync.Map // layout.Kind -> *transcoder.Codec

func scalarCodec(kind layout.Kind) (*transcoder.Codec, error) {
	if c, ok := scalarCodecs.Load(kind); ok {
		return c.(*transcoder.Codec), nil
	}
	c, err := transcoder.New(layout.Scalar("", kind))
	if err != nil {
		return nil, err
	}
	actual, _ := scalarCodecs.LoadOrStore(kind, c)
	return actual.(*transcoder.Codec), nil
}

// rootPath names the value itself when the layout root is a leaf.
const rootPath = "(value)"

// collectLeaves lists the leaves of the tree held in root in layout order.
func collectLeaves(l *layout.Layout, root *any) []leaf {
	var out []leaf
	walkLeaves(l, *root, "", func(nv any) { *root = nv }, &out)
	return out
}

func walkLeaves(l *layout.Layout, v any, path string, set func(any), out *[]leaf) {
	switch l.Kind {
	case layout.KindStruct:
		obj, _ := v.(map[string]any)
		for _, f := range l.Children {
			name := f.Name
			p := name
			if path != "" {
				p = path + "." + name
			}
			walkLeaves(f, obj[name], p, func(nv any) { obj[name] = nv }, out)
		}
	case layout.KindArray:
		items, _ := v.([]any)
		for i := range items {
			walkLeaves(l.Elem(), items[i], path+"["+strconv.Itoa(i)+"]", func(nv any) { items[i] = nv }, out)
		}
	default:
		if path == "" {
			path = rootPath
		}
		*out = append(*out, leaf{path: path, kind: l.Kind, value: v, set: set})
	}
}

// formatLeaf renders a leaf value for display and editing. Strings are
// shown raw, everything else as its JSON text without quotes.
func formatLeaf(kind layout.Kind, v any) string {
	if s, ok := v.(string); ok && kind == layout.KindString {
		return s
	}
	c, err := scalarCodec(kind)
	if err != nil {
		return "?"
	}
	text, err := c.Format(v)
	if err != nil {
		return "?"
	}
	if s, err := strconv.Unquote(string(text)); err == nil {
		return s
	}
	return string(text)
}

// parseLeaf converts edited text into a value of the leaf's kind. Floats
// also accept NaN, Infinity and -Infinity.
func parseLeaf(kind layout.Kind, text string) (any, error) {
	if kind == layout.KindString {
		return text, nil
	}
	c, err := scalarCodec(kind)
	if err != nil {
		return nil, err
	}
	v, err := c.Parse([]byte(text))
	if err != nil && kind.IsFloat() {
		if fv, ferr := c.Parse([]byte(strconv.Quote(text))); ferr == nil {
			return fv, nil
		}
	}
	return v, err
}
