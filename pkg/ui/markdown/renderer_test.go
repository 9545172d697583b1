package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering styles the answer but must never lose its text. Exercises the
// markdown shapes the backend actually produces: headings, bold spans,
// lists and tables.
func TestRenderer_PreservesLeafText(t *testing.T) {
	r, err := NewRenderer(WithWidth(100), WithColorProfile(termenv.Ascii))
	require.NoError(t, err)

	content := `## Revenue Breakdown

Apple reported **strong growth** in services.

- iPhone revenue up
- Services at record high

| Segment | Revenue |
| ------- | ------- |
| iPhone  | 200.5B  |
| Mac     | 29.3B   |
`

	rendered, err := r.Render(content)
	require.NoError(t, err)

	plain := ansi.Strip(rendered)
	for _, leaf := range []string{
		"Revenue Breakdown",
		"strong growth",
		"iPhone revenue up",
		"Services at record high",
		"Segment",
		"200.5B",
		"29.3B",
	} {
		assert.Contains(t, plain, leaf)
	}
}

func TestRenderer_RenderIndented(t *testing.T) {
	r, err := NewRenderer(WithWidth(60), WithColorProfile(termenv.Ascii))
	require.NoError(t, err)

	out, err := r.RenderIndented("The company's **net income** grew.", 2)
	require.NoError(t, err)

	assert.False(t, strings.HasSuffix(out, "\n"), "trailing newlines should be trimmed")
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(line, "  "), "line %q should be indented", line)
	}
}

func TestRenderer_DefaultWidth(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Equal(t, uint(defaultWidth), r.width)
}
