package gmnx

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const defaultWidth = 80

// Renderer turns markdown into styled terminal output.
type Renderer interface {
	Render(markdown string) (string, error)
}

// MarkdownRenderer wraps glamour with a fixed style and wrap width.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewRenderer creates a markdown renderer. style is any glamour style name
// or path ("dark", "light", "notty", ...); "dark" is used if it is empty.
func NewRenderer(width int, style string) (*MarkdownRenderer, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &MarkdownRenderer{renderer: r, width: width}, nil
}

func (r *MarkdownRenderer) Width() int {
	return r.width
}

func (r *MarkdownRenderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}

// RendererFor picks the style and width for the current stdout. Explicit
// values in cfg win; otherwise a terminal gets the dark style at its own
// width and anything else gets plain "notty" output.
func RendererFor(cfg Config) (*MarkdownRenderer, error) {
	fd := int(os.Stdout.Fd())
	tty := term.IsTerminal(fd)

	style := cfg.Style
	if style == "" {
		style = "notty"
		if tty {
			style = "dark"
		}
	}
	width := cfg.Width
	if width == 0 && tty {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}
	return NewRenderer(width, style)
}

type plainRenderer struct{}

func (plainRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}
