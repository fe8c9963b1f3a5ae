package promptman

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for store and render operations.
// All use prefix "promptman:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrPromptNotFound    = errors.New("promptman: prompt not found")
	ErrMalformedTemplate = errors.New("promptman: malformed template payload")
	ErrMissingParams     = errors.New("promptman: required render parameters not provided")
	ErrPlaceholderSyntax = errors.New("promptman: malformed placeholder")
	ErrUnsupportedValue  = errors.New("promptman: unsupported parameter value type")
	ErrInvalidID         = errors.New("promptman: invalid prompt id")
)

// RenderError wraps a render sentinel with template context.
// Exactly one detail set is populated: Missing for the strict missing-parameter
// case, Fragment/Pos for the malformed-placeholder and unsupported-value cases.
// Use errors.Is against the sentinels and errors.As(&renderErr) to inspect.
type RenderError struct {
	Template string   // prompt id; empty when rendering a free-standing template
	Missing  []string // all unresolved placeholder names found in one pass (strict mode)
	Fragment string   // malformed fragment, or the parameter name for unsupported values
	Pos      int      // byte offset of Fragment in the template text
	Err      error    // ErrMissingParams, ErrPlaceholderSyntax or ErrUnsupportedValue
}

// Error implements error.
func (e *RenderError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return fmt.Sprintf("promptman: template %q: missing parameters: %s", e.Template, strings.Join(e.Missing, ", "))
	case errors.Is(e.Err, ErrUnsupportedValue):
		return fmt.Sprintf("promptman: template %q: parameter %q: %v", e.Template, e.Fragment, e.Err)
	case e.Fragment != "":
		return fmt.Sprintf("promptman: template %q: malformed placeholder %q at offset %d", e.Template, e.Fragment, e.Pos)
	default:
		return fmt.Sprintf("promptman: template %q: %v", e.Template, e.Err)
	}
}

// Unwrap returns the wrapped sentinel for errors.Is/errors.As.
func (e *RenderError) Unwrap() error { return e.Err }

// Compile-time check that RenderError implements error.
var _ error = (*RenderError)(nil)
