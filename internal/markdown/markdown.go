// Package markdown renders the markdown subset produced by study material
// generation (headings, lists, bold, paragraphs) into styled terminal text.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer converts markdown source to terminal output at a fixed width.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// New creates a Renderer wrapping at width columns. Width below 20 is
// clamped so narrow terminals still get readable output.
func New(width int) (*Renderer, error) {
	if width < 20 {
		width = 20
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr, width: width}, nil
}

// Render converts markdown source to styled text. On renderer failure it
// falls back to the raw source so content is never lost.
func (r *Renderer) Render(source string) string {
	out, err := r.tr.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(out, "\n")
}

// Width returns the wrap width the renderer was created with.
func (r *Renderer) Width() int {
	return r.width
}
