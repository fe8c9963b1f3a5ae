package embedstore

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	promptman "github.com/MarioMagdy/prompt-manager"
	"github.com/MarioMagdy/prompt-manager/promptfile"
)

// Ensures Store implements promptman.Store.
var _ promptman.Store = (*Store)(nil)

// Store holds templates parsed at construction. Read-only after New, so it is
// safe for concurrent use without locking. It does not implement
// promptman.Invalidator: the backing filesystem cannot change.
type Store struct {
	cache map[string]*promptman.Template
	ids   []string
}

// New walks fsys under root and parses every .yml/.yaml file. The file base
// name without extension becomes the prompt id; two files mapping to the same
// id fail construction, as does any file with malformed content.
func New(fsys fs.FS, root string) (*Store, error) {
	s := &Store{cache: make(map[string]*promptman.Template)}
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}
		id := strings.TrimSuffix(path.Base(p), ext)
		if _, ok := s.cache[id]; ok {
			return fmt.Errorf("embedstore: duplicate prompt id %q (%s)", id, p)
		}
		tpl, err := promptfile.ParseFS(fsys, id, p)
		if err != nil {
			return err
		}
		s.cache[id] = tpl
		s.ids = append(s.ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(s.ids)
	return s, nil
}

// Get returns the template for id. O(1) map lookup; the result is a clone.
func (s *Store) Get(ctx context.Context, id string) (*promptman.Template, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	tpl, ok := s.cache[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", promptman.ErrPromptNotFound, id)
	}
	return promptman.CloneTemplate(tpl), nil
}

// ListIDs returns all known prompt ids, sorted.
func (s *Store) ListIDs(ctx context.Context) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return slices.Clone(s.ids), nil
}
