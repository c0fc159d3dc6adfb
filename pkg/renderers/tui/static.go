package tui

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-textfield/pkg/render"
)

// StaticRenderer draws a View once with the terminal styles. It implements
// render.Renderer so it can sit next to the HTML renderer in a registry.
type StaticRenderer struct {
	Styles  Styles
	Palette render.Palette
	Width   int
}

var _ render.Renderer = StaticRenderer{}

// NewStaticRenderer returns a renderer using DefaultStyles and TerminalPalette.
func NewStaticRenderer() StaticRenderer {
	return StaticRenderer{Styles: DefaultStyles(), Palette: TerminalPalette, Width: 32}
}

func (r StaticRenderer) Name() string {
	return "ansi"
}

func (r StaticRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r StaticRenderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	view = view.Recolor(TerminalPalette.Merge(r.Palette), options.Accent)

	input := view.Value
	if view.InputType == "password" {
		input = maskRunes(input)
	}
	if input == "" && view.Placeholder != "" {
		input = lipgloss.NewStyle().Foreground(r.Styles.MutedColor).Render(view.Placeholder)
	}
	return []byte(draw(r.Styles, view, input, r.Width, "") + "\n"), nil
}

func maskRunes(s string) string {
	out := make([]rune, 0, len(s))
	for range s {
		out = append(out, '*')
	}
	return string(out)
}
