package promptman

import "context"

// Store resolves prompt templates by id.
// Implementations may load lazily from a directory, eagerly from an embedded
// filesystem, or from anywhere else that can map ids to template payloads.
type Store interface {
	// Get returns the template for id. Fails with ErrPromptNotFound when no
	// source maps to id, or ErrMalformedTemplate when its content is invalid.
	Get(ctx context.Context, id string) (*Template, error)

	// ListIDs enumerates known prompt ids. The order is implementation-defined
	// but stable across calls while the underlying source is unchanged.
	ListIDs(ctx context.Context) ([]string, error)
}

// Invalidator is an optional Store capability for dropping cached entries.
// Manager.Reload discovers it via type assertion; stores without a cache
// simply do not implement it.
type Invalidator interface {
	// Invalidate removes one cached entry, forcing the next Get to reload.
	// No effect if id is absent.
	Invalidate(id string)

	// InvalidateAll clears the whole cache.
	InvalidateAll()
}
