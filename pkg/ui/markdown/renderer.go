// Package markdown renders analysis answers to ANSI-styled terminal text.
// Glamour owns the markdown semantics; this package only configures it and
// shapes the output for the chat transcript.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const defaultWidth = 80

// Renderer is a markdown renderer backed by glamour.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    uint
	profile  termenv.Profile
}

// NewRenderer creates a new markdown renderer with the given options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		width:   defaultWidth,
		profile: termenv.ColorProfile(),
	}

	for _, opt := range opts {
		opt(r)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(int(r.width)),
		glamour.WithColorProfile(r.profile),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}

	r.renderer = renderer
	return r, nil
}

// Render renders markdown content to ANSI styled text.
func (r *Renderer) Render(content string) (string, error) {
	return r.renderer.Render(content)
}

// RenderIndented renders markdown and left-pads every line, the shape chat
// messages use. Trailing blank lines are dropped so messages pack evenly.
func (r *Renderer) RenderIndented(content string, indent int) (string, error) {
	rendered, err := r.renderer.Render(content)
	if err != nil {
		return "", err
	}

	pad := strings.Repeat(" ", indent)
	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

// Option is a function that configures the renderer.
type Option func(*Renderer)

// WithWidth sets the word wrap width for the renderer.
func WithWidth(width uint) Option {
	return func(r *Renderer) {
		r.width = width
	}
}

// WithColorProfile sets the color profile for the renderer.
func WithColorProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = profile
	}
}
