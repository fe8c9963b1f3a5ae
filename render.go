package promptman

import (
	"strings"

	"github.com/MarioMagdy/prompt-manager/internal/cast"
)

// Params maps placeholder names to values. Accepted value kinds are string,
// bool, the signed and unsigned integer types, and floats; anything else
// fails the render with ErrUnsupportedValue. Entries not referenced by any
// placeholder are ignored.
type Params map[string]any

// Render substitutes every {name} placeholder in tpl.Text with the canonical
// string form of params[name]. The scan is a single pass: in strict mode all
// missing names are collected and reported together in one RenderError; in
// lenient mode missing placeholders stay verbatim in the output. "{{" and
// "}}" render literal braces. Malformed placeholder syntax fails with the
// offending fragment and its byte offset regardless of strictness.
// Pure and deterministic; tpl is not modified.
func Render(tpl *Template, params Params, strict bool) (string, error) {
	text := tpl.Text
	var b strings.Builder
	b.Grow(len(text))
	var missing []string
	seen := make(map[string]bool)
	for i := 0; i < len(text); {
		switch text[i] {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			name, end, err := scanPlaceholder(tpl.ID, text, i)
			if err != nil {
				return "", err
			}
			if v, ok := params[name]; ok {
				s, ok := cast.ToString(v)
				if !ok {
					return "", &RenderError{Template: tpl.ID, Fragment: name, Pos: i, Err: ErrUnsupportedValue}
				}
				b.WriteString(s)
			} else {
				if !seen[name] {
					seen[name] = true
					missing = append(missing, name)
				}
				b.WriteString(text[i:end])
			}
			i = end
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &RenderError{Template: tpl.ID, Fragment: "}", Pos: i, Err: ErrPlaceholderSyntax}
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	if strict && len(missing) > 0 {
		return "", &RenderError{Template: tpl.ID, Missing: missing, Err: ErrMissingParams}
	}
	return b.String(), nil
}

// scanPlaceholder reads a {identifier} token starting at the opening brace.
// Returns the name and the index just past the closing brace.
func scanPlaceholder(id, text string, start int) (string, int, error) {
	i := start + 1
	for i < len(text) && text[i] != '}' {
		if !isIdentByte(text[i], i == start+1) {
			return "", 0, &RenderError{Template: id, Fragment: text[start : i+1], Pos: start, Err: ErrPlaceholderSyntax}
		}
		i++
	}
	if i == len(text) {
		return "", 0, &RenderError{Template: id, Fragment: text[start:], Pos: start, Err: ErrPlaceholderSyntax}
	}
	if i == start+1 {
		return "", 0, &RenderError{Template: id, Fragment: "{}", Pos: start, Err: ErrPlaceholderSyntax}
	}
	return text[start+1 : i], i + 1, nil
}

// isIdentByte reports whether b may appear in a placeholder name.
// The first byte must be a letter or underscore; the rest may add digits.
func isIdentByte(b byte, first bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return true
	case b >= '0' && b <= '9':
		return !first
	default:
		return false
	}
}
