// Package promptfile decodes YAML prompt files into promptman Templates.
// A file holds either a bare string document or a mapping with a "template"
// key plus optional metadata keys.
package promptfile

import (
	"fmt"
	"io/fs"
	"os"

	promptman "github.com/MarioMagdy/prompt-manager"

	"gopkg.in/yaml.v3"
)

// ParseBytes decodes a YAML payload and builds the Template for id.
// Decode failures surface as ErrMalformedTemplate with the cause attached.
func ParseBytes(id string, data []byte) (*promptman.Template, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: prompt %q: %w", promptman.ErrMalformedTemplate, id, err)
	}
	return promptman.ParsePayload(id, payload)
}

// ParseFile reads and decodes one prompt file.
func ParseFile(id, path string) (*promptman.Template, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is validated by caller
	if err != nil {
		return nil, fmt.Errorf("promptfile: read file: %w", err)
	}
	return ParseBytes(id, data)
}

// ParseFS reads and decodes a prompt file from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, id, name string) (*promptman.Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("promptfile: read fs: %w", err)
	}
	return ParseBytes(id, data)
}
