package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	promptman "github.com/MarioMagdy/prompt-manager"
	"github.com/MarioMagdy/prompt-manager/promptfile"

	"golang.org/x/sync/singleflight"
)

// Ensures Store implements the promptman contracts.
var (
	_ promptman.Store       = (*Store)(nil)
	_ promptman.Invalidator = (*Store)(nil)
)

// Errors specific to directory-backed stores.
var (
	ErrNotDirectory    = errors.New("filestore: prompt directory not found or not a directory")
	ErrDuplicatePrompt = errors.New("filestore: duplicate prompt id across extensions")
)

// Eligible file extensions, in resolution order.
var extensions = []string{".yml", ".yaml"}

// Store loads prompt templates from a directory (lazy, cached).
// A prompt id maps to {dir}/{id}.yml or {dir}/{id}.yaml; both present for
// one id is a hard error rather than a silent preference.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*promptman.Template
	sf    singleflight.Group
}

// New creates a Store over dir.
// Fails with ErrNotDirectory when dir does not exist or is not a directory.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, dir)
	}
	return &Store{dir: dir, cache: make(map[string]*promptman.Template)}, nil
}

// Get returns the cached template for id, loading it from disk on first
// access. Concurrent first loads of the same id are collapsed into a single
// file read. The returned template is a clone; mutating it does not affect
// the cache.
func (s *Store) Get(ctx context.Context, id string) (*promptman.Template, error) {
	if err := promptman.ValidateID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	tpl, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return promptman.CloneTemplate(tpl), nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	v, err, _ := s.sf.Do(id, func() (any, error) {
		return s.load(id)
	})
	if err != nil {
		return nil, err
	}
	tpl = v.(*promptman.Template)
	s.mu.Lock()
	s.cache[id] = tpl
	s.mu.Unlock()
	return promptman.CloneTemplate(tpl), nil
}

// load resolves id to a file and parses it. The caller handles caching.
func (s *Store) load(id string) (*promptman.Template, error) {
	path, err := s.resolve(id)
	if err != nil {
		return nil, err
	}
	return promptfile.ParseFile(id, path)
}

// resolve finds the file for id, trying each eligible extension.
func (s *Store) resolve(id string) (string, error) {
	var found []string
	for _, ext := range extensions {
		path := filepath.Join(s.dir, id+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			found = append(found, path)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %q in %s", promptman.ErrPromptNotFound, id, s.dir)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %q (%s)", ErrDuplicatePrompt, id, strings.Join(found, ", "))
	}
}

// ListIDs enumerates prompt ids from eligible files in dir, sorted.
// Fails with ErrDuplicatePrompt when one base name carries both extensions.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, s.dir)
	}
	seen := make(map[string]string, len(entries))
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !slices.Contains(extensions, ext) {
			continue
		}
		id := strings.TrimSuffix(name, ext)
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %q (%s, %s)", ErrDuplicatePrompt, id, prev, name)
		}
		seen[id] = name
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Invalidate drops one cached entry; the next Get re-reads the file.
// No effect if id is absent. Safe for concurrent use.
func (s *Store) Invalidate(id string) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}

// InvalidateAll clears the entire cache. Safe for concurrent use.
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string]*promptman.Template)
	s.mu.Unlock()
}
