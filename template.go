package promptman

import (
	"fmt"
	"maps"
	"strings"
)

// Template is a named prompt template plus optional metadata.
// Instances are immutable after creation; stores hand out clones so callers
// cannot mutate cached entries.
type Template struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// ParsePayload converts a decoded file payload into a Template.
// The payload is either a bare string, which becomes the template text with
// empty metadata, or a mapping with a "template" key whose string value
// becomes the text; every other mapping key is carried into Metadata verbatim.
// Any other payload shape fails with ErrMalformedTemplate.
func ParsePayload(id string, payload any) (*Template, error) {
	switch p := payload.(type) {
	case string:
		return &Template{ID: id, Text: p, Metadata: map[string]any{}}, nil
	case map[string]any:
		raw, ok := p["template"]
		if !ok {
			return nil, fmt.Errorf("%w: prompt %q: mapping has no %q key", ErrMalformedTemplate, id, "template")
		}
		text, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: prompt %q: %q must be a string, got %T", ErrMalformedTemplate, id, "template", raw)
		}
		meta := make(map[string]any, len(p)-1)
		for k, v := range p {
			if k == "template" {
				continue
			}
			meta[k] = v
		}
		return &Template{ID: id, Text: text, Metadata: meta}, nil
	default:
		return nil, fmt.Errorf("%w: prompt %q: payload must be a string or a mapping, got %T", ErrMalformedTemplate, id, payload)
	}
}

// CloneTemplate returns a copy of the template with a cloned metadata map.
// Stores use this so callers cannot mutate cached templates.
func CloneTemplate(t *Template) *Template {
	if t == nil {
		return nil
	}
	out := &Template{ID: t.ID, Text: t.Text}
	if t.Metadata != nil {
		out.Metadata = maps.Clone(t.Metadata)
	}
	return out
}

// ValidateID checks that id is non-empty and free of path separators and
// parent references, so stores can safely join it with their directory.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
