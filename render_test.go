package promptman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkTemplate(text string) *Template {
	return &Template{ID: "test", Text: text, Metadata: map[string]any{}}
}

func TestRender_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, strict := range []bool{true, false} {
		out, err := Render(mkTemplate("Hello {name}!"), Params{"name": "Mario"}, strict)
		require.NoError(t, err)
		assert.Equal(t, "Hello Mario!", out)
	}
}

func TestRender_MultiplePlaceholders(t *testing.T) {
	t.Parallel()
	out, err := Render(
		mkTemplate("Hello {name}, welcome to {app_name}!"),
		Params{"name": "Mario", "app_name": "Skill Navigator"},
		true,
	)
	require.NoError(t, err)
	assert.Equal(t, "Hello Mario, welcome to Skill Navigator!", out)
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	t.Parallel()
	out, err := Render(mkTemplate("{x} and {x}"), Params{"x": "again"}, true)
	require.NoError(t, err)
	assert.Equal(t, "again and again", out)
}

func TestRender_LenientMissingParam(t *testing.T) {
	t.Parallel()
	out, err := Render(mkTemplate("Hi {name}, {unknown}"), Params{"name": "A"}, false)
	require.NoError(t, err)
	assert.Equal(t, "Hi A, {unknown}", out)
}

func TestRender_StrictMissingParam(t *testing.T) {
	t.Parallel()
	_, err := Render(mkTemplate("Hi {name}, {unknown}"), Params{"name": "A"}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingParams)
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, []string{"unknown"}, re.Missing)
	assert.Equal(t, "test", re.Template)
}

func TestRender_StrictCollectsAllMissing(t *testing.T) {
	t.Parallel()
	_, err := Render(mkTemplate("{a} {b} {a} {c}"), Params{"b": "x"}, true)
	require.Error(t, err)
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, []string{"a", "c"}, re.Missing, "one pass must report every distinct missing name once, in order")
}

func TestRender_ExtraParamsIgnored(t *testing.T) {
	t.Parallel()
	out, err := Render(mkTemplate("Hi {name}"), Params{"name": "A", "extra": "ignored"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Hi A", out)
}

func TestRender_NoPlaceholders(t *testing.T) {
	t.Parallel()
	out, err := Render(mkTemplate("This one has no parameters."), nil, true)
	require.NoError(t, err)
	assert.Equal(t, "This one has no parameters.", out)
}

func TestRender_EscapedBraces(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"escaped pair", "{{name}}", "{name}"},
		{"open escape", "a {{ b", "a { b"},
		{"close escape", "a }} b", "a } b"},
		{"escape around placeholder", "{{{name}}}", "{Mario}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := Render(mkTemplate(tt.text), Params{"name": "Mario"}, true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_MalformedSyntax(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		text     string
		fragment string
		pos      int
	}{
		{"unclosed at end", "Hello {name", "{name", 6},
		{"lone close brace", "oops } here", "}", 5},
		{"empty placeholder", "{}", "{}", 0},
		{"bad char in name", "{bad-name}", "{bad-", 0},
		{"space in name", "{first name}", "{first ", 0},
		{"leading digit", "ab {1x}", "{1", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// Malformed syntax fails in both modes.
			for _, strict := range []bool{true, false} {
				_, err := Render(mkTemplate(tt.text), Params{"name": "x"}, strict)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrPlaceholderSyntax)
				var re *RenderError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, tt.fragment, re.Fragment)
				assert.Equal(t, tt.pos, re.Pos)
			}
		})
	}
}

func TestRender_ValueKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "x", "x"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint", uint(8), "8"},
		{"float", 3.5, "3.5"},
		{"float integral", 2.0, "2"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := Render(mkTemplate("v={v}"), Params{"v": tt.value}, true)
			require.NoError(t, err)
			assert.Equal(t, "v="+tt.want, out)
		})
	}
}

func TestRender_UnsupportedValueType(t *testing.T) {
	t.Parallel()
	_, err := Render(mkTemplate("{v}"), Params{"v": struct{}{}}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "v", re.Fragment)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()
	template := mkTemplate("Hello {name}, {greeting}!")
	params := Params{"name": "A", "greeting": "hi"}
	first, err := Render(template, params, true)
	require.NoError(t, err)
	second, err := Render(template, params, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "Hello {name}, {greeting}!", template.Text, "render must not modify the template")
}

func TestRender_ErrorsAreTerminal(t *testing.T) {
	t.Parallel()
	// No partial result comes back with an error.
	out, err := Render(mkTemplate("ok {name} then {broken"), Params{"name": "x"}, false)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.False(t, errors.Is(err, ErrMissingParams))
}
