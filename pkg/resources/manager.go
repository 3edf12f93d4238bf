package resources

import (
	"errors"
	"fmt"
)

// ErrMissing is returned when a texture has not been loaded.
var ErrMissing = errors.New("resource not loaded")

// Loader produces the handle for one texture.
type Loader[H any] interface {
	Load(id TextureID) (H, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc[H any] func(id TextureID) (H, error)

// Load calls f.
func (f LoaderFunc[H]) Load(id TextureID) (H, error) {
	return f(id)
}

// Manager maps tags to loaded handles. Load everything once at startup;
// after that the manager is read-only.
type Manager[H any] struct {
	loader  Loader[H]
	handles map[TextureID]H
}

// NewManager returns an empty manager backed by loader.
func NewManager[H any](loader Loader[H]) *Manager[H] {
	return &Manager[H]{
		loader:  loader,
		handles: make(map[TextureID]H),
	}
}

// Load fetches each id. The first failure aborts and is returned.
func (m *Manager[H]) Load(ids ...TextureID) error {
	for _, id := range ids {
		if !id.Valid() {
			return fmt.Errorf("failed to load %v: unknown texture", id)
		}
		h, err := m.loader.Load(id)
		if err != nil {
			return fmt.Errorf("failed to load %v: %w", id, err)
		}
		m.handles[id] = h
	}
	return nil
}

// LoadAll loads every declared texture.
func (m *Manager[H]) LoadAll() error {
	return m.Load(Textures()...)
}

// Get returns the handle for id.
func (m *Manager[H]) Get(id TextureID) (H, error) {
	h, ok := m.handles[id]
	if !ok {
		var zero H
		return zero, fmt.Errorf("%v: %w", id, ErrMissing)
	}
	return h, nil
}

// MustGet is Get for callers that already checked Load succeeded.
func (m *Manager[H]) MustGet(id TextureID) H {
	h, err := m.Get(id)
	if err != nil {
		panic(err)
	}
	return h
}
