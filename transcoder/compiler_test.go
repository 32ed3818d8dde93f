package transcoder

import (
	"sync"
	"testing"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

func TestCompilerCaches(t *testing.T) {
	c := NewCompiler()
	l := layout.Struct("p", layout.Scalar("a", layout.KindU8))

	first, err := c.Compile(l)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Compile(l)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same layout should compile to the cached type")
	}

	other, err := c.Compile(layout.Struct("p", layout.Scalar("a", layout.KindU8)))
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Error("distinct layout nodes should not share a cache entry")
	}
}

func TestCompilerRejectsInvalid(t *testing.T) {
	c := NewCompiler()
	bad := layout.Struct("p", layout.Scalar("a", layout.KindU8), layout.Scalar("a", layout.KindU8))
	for i := 0; i < 2; i++ {
		if _, err := c.Compile(bad); !errors.HasKind(err, errors.KindInvalidLayout) {
			t.Fatalf("attempt %d: expected invalid_layout, got %v", i, err)
		}
	}
}

func TestCompilerConcurrent(t *testing.T) {
	c := NewCompiler()
	l := personLayout()

	results := make([]*CompiledType, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := c.Compile(l)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = ct
		}()
	}
	wg.Wait()

	for i, ct := range results {
		if ct != results[0] {
			t.Errorf("result %d differs from result 0", i)
		}
	}
}

func TestCompilerLen(t *testing.T) {
	c := NewCompiler()
	l := personLayout()
	for i := 0; i < 3; i++ {
		if _, err := New(l, WithCompiler(c)); err != nil {
			t.Fatal(err)
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len: got %d, want 1", c.Len())
	}

	if _, err := New(layout.Struct("p", layout.Scalar("a", layout.KindU8), layout.Scalar("a", layout.KindU8)), WithCompiler(c)); err == nil {
		t.Fatal("expected invalid layout")
	}
	if c.Len() != 1 {
		t.Errorf("invalid layout cached: Len %d", c.Len())
	}
}

func TestNewWithoutCompilerDoesNotCache(t *testing.T) {
	c := NewCompiler()
	if _, err := New(personLayout(), WithCompiler(c)); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := Decode(layout.Scalar("", layout.KindU8), []byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}

	l := layout.Scalar("", layout.KindU32)
	a, err := New(l)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(l)
	if err != nil {
		t.Fatal(err)
	}
	if a.root == b.root {
		t.Error("New without a compiler should compile afresh")
	}
	if c.Len() != 1 {
		t.Errorf("Len: got %d, want 1", c.Len())
	}
}

func TestEncodeCapacityFromPureLayout(t *testing.T) {
	c, err := New(layout.Struct("point",
		layout.Scalar("x", layout.KindI32),
		layout.Scalar("y", layout.KindI32),
	))
	if err != nil {
		t.Fatal(err)
	}
	if !c.root.IsPure() {
		t.Fatal("point should compile to a pure type")
	}
	out, err := c.Encode(map[string]any{"x": int32(1), "y": int32(-1)})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != c.root.FixedSize {
		t.Errorf("len %d, want %d", len(out), c.root.FixedSize)
	}
}
