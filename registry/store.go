package registry

import (
	"context"
	"slices"
	"sync"

	"github.com/wippyai/layout-codec/errors"
	"github.com/wippyai/layout-codec/layout"
)

// Store is a named collection of layouts. Implementations are safe for
// concurrent use.
type Store interface {
	// Put stores l under name, replacing any previous layout.
	Put(ctx context.Context, name string, l *layout.Layout) error
	// Get returns the layout stored under name, or a not_found error.
	Get(ctx context.Context, name string) (*layout.Layout, error)
	// Delete removes the layout stored under name, or fails with not_found.
	Delete(ctx context.Context, name string) error
	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
}

func checkName(name string) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseStore, "empty layout name")
	}
	return nil
}

func encodeLayout(name string, l *layout.Layout) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := layout.Marshal(l)
	if err != nil {
		return nil, errors.Prefix(err, name)
	}
	return data, nil
}

func decodeLayout(name string, data []byte) (*layout.Layout, error) {
	l, err := layout.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseStore, errors.KindInvalidLayout, err,
			"stored layout "+name+" is corrupt")
	}
	return l, nil
}

// MemoryStore keeps layouts in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, name string, l *layout.Layout) error {
	data, err := encodeLayout(name, l)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.layouts[name] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, name string) (*layout.Layout, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	data, ok := s.layouts[name]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound(errors.PhaseStore, "layout", name)
	}
	return decodeLayout(name, data)
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layouts[name]; !ok {
		return errors.NotFound(errors.PhaseStore, "layout", name)
	}
	delete(s.layouts, name)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.layouts))
	for name := range s.layouts {
		names = append(names, name)
	}
	s.mu.RUnlock()
	slices.Sort(names)
	return names, nil
}
