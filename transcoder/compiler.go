package transcoder

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/layout-codec/layout"
	"github.com/wippyai/layout-codec/transcoder/internal/types"
)

// Compiler validates layouts and caches their compiled form. Layouts are
// keyed by identity, so a layout must not be mutated once compiled, and a
// Compiler should only see long-lived layouts: entries are never evicted.
// New compiles without a cache unless WithCompiler supplies one.
type Compiler struct {
	cache sync.Map // *layout.Layout -> *CompiledType
	size  atomic.Int64
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

func (c *Compiler) Compile(l *layout.Layout) (*CompiledType, error) {
	if cached, ok := c.cache.Load(l); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := compile(l)
	if err != nil {
		return nil, err
	}

	actual, loaded := c.cache.LoadOrStore(l, ct)
	if !loaded {
		c.size.Add(1)
	}
	return actual.(*CompiledType), nil
}

// Len reports how many layouts the compiler holds.
func (c *Compiler) Len() int {
	return int(c.size.Load())
}

func compile(l *layout.Layout) (*CompiledType, error) {
	if err := layout.Validate(l); err != nil {
		return nil, err
	}

	ct := types.Compile(l)
	Logger().Debug("layout compiled",
		zap.String("layout", l.Name),
		zap.Stringer("kind", l.Kind),
		zap.Uint64("min_size", ct.MinSize),
		zap.Bool("fixed", ct.Fixed),
	)
	return ct, nil
}
