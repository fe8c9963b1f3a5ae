package promptman

// Option configures a Manager (functional options pattern).
type Option func(*Manager)

// WithStrict sets the default render mode. Strict renders fail on missing
// parameters; lenient renders leave unresolved placeholders verbatim.
func WithStrict(strict bool) Option {
	return func(m *Manager) {
		m.strict = strict
	}
}

// RenderOption overrides render behavior for a single Manager.Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	strict *bool
}

// RenderStrict forces strict mode for one call, regardless of the Manager default.
func RenderStrict() RenderOption {
	return func(c *renderConfig) {
		t := true
		c.strict = &t
	}
}

// RenderLenient forces lenient mode for one call, regardless of the Manager default.
func RenderLenient() RenderOption {
	return func(c *renderConfig) {
		f := false
		c.strict = &f
	}
}
