package promptman

import (
	"context"
	"errors"
)

// Manager composes a Store and the renderer behind a small facade.
// Construct with New; the zero value is not usable.
type Manager struct {
	store  Store
	strict bool
}

// PromptInfo pairs a prompt id with its metadata for listing.
type PromptInfo struct {
	ID       string
	Metadata map[string]any
}

// New creates a Manager over store. Rendering is strict by default;
// use WithStrict(false) for lenient mode. Panics if store is nil.
func New(store Store, opts ...Option) *Manager {
	if store == nil {
		panic("promptman: Store must not be nil")
	}
	m := &Manager{store: store, strict: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListPrompts returns one entry per prompt known to the store, loading each
// lazily. Metadata reflects the content as of the first load or the last
// invalidation of that prompt.
func (m *Manager) ListPrompts(ctx context.Context) ([]PromptInfo, error) {
	ids, err := m.store.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]PromptInfo, 0, len(ids))
	for _, id := range ids {
		tpl, err := m.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, PromptInfo{ID: tpl.ID, Metadata: tpl.Metadata})
	}
	return infos, nil
}

// Template returns the raw template for id without rendering it.
func (m *Manager) Template(ctx context.Context, id string) (*Template, error) {
	return m.store.Get(ctx, id)
}

// Has reports whether a prompt source exists for id. A prompt whose content
// is malformed still exists; only ErrPromptNotFound means absent.
func (m *Manager) Has(ctx context.Context, id string) bool {
	_, err := m.store.Get(ctx, id)
	return !errors.Is(err, ErrPromptNotFound)
}

// Render resolves id through the store and substitutes params. The Manager's
// default strictness applies unless overridden per call with RenderStrict or
// RenderLenient. Store and render errors propagate unchanged.
func (m *Manager) Render(ctx context.Context, id string, params Params, opts ...RenderOption) (string, error) {
	tpl, err := m.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	strict := m.strict
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.strict != nil {
		strict = *cfg.strict
	}
	return Render(tpl, params, strict)
}

// Reload invalidates cached templates: the named ids, or everything when none
// are given. No-op when the store does not cache.
func (m *Manager) Reload(ids ...string) {
	inv, ok := m.store.(Invalidator)
	if !ok {
		return
	}
	if len(ids) == 0 {
		inv.InvalidateAll()
		return
	}
	for _, id := range ids {
		inv.Invalidate(id)
	}
}
