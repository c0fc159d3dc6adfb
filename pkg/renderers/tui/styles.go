package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-textfield/pkg/render"
)

// TerminalPalette replaces the translucent web surface colors with solid ones
// a terminal can draw.
var TerminalPalette = render.Palette{
	Background:     "#f5f5f5",
	DarkBackground: "#1e1e1e",
	Text:           "#212121",
	DarkText:       "#ffffff",
}

// Styles holds the static parts of the look. Colors that depend on state come
// from the View.
type Styles struct {
	Surface    lipgloss.Style
	Label      lipgloss.Style
	RestLabel  lipgloss.Style
	Icon       lipgloss.Style
	Message    lipgloss.Style
	Indicator  string
	RestLine   string
	MutedColor lipgloss.Color
}

// DefaultStyles returns the default look.
func DefaultStyles() Styles {
	return Styles{
		Surface:    lipgloss.NewStyle().Padding(0, 1),
		Label:      lipgloss.NewStyle().Bold(true),
		RestLabel:  lipgloss.NewStyle().Faint(true),
		Icon:       lipgloss.NewStyle().PaddingLeft(1),
		Message:    lipgloss.NewStyle().Italic(true),
		Indicator:  "━",
		RestLine:   "─",
		MutedColor: lipgloss.Color("240"),
	}
}

// draw lays out the field: an optional label row, the input row with its icon,
// the indicator line and an optional message row.
func draw(styles Styles, view render.View, input string, width int, message string) string {
	if width <= 0 {
		width = 32
	}
	primary := lipgloss.Color(view.PrimaryColor)
	highlighted := view.Focused || view.Error

	var rows []string
	switch {
	case view.HasLabel && view.LabelRaised:
		label := styles.Label
		if highlighted {
			label = label.Foreground(primary)
		} else {
			label = label.Foreground(styles.MutedColor)
		}
		rows = append(rows, label.Render(view.Label), input)
	case view.HasLabel:
		rows = append(rows, "", styles.RestLabel.Render(view.Label))
	default:
		rows = append(rows, input)
	}

	if view.HasIcon {
		rows[len(rows)-1] += styles.Icon.Render(iconGlyph(view))
	}

	line := styles.RestLine
	lineColor := styles.MutedColor
	if highlighted {
		line = styles.Indicator
		lineColor = primary
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(lineColor).Render(strings.Repeat(line, width)))

	if view.Error && message != "" {
		rows = append(rows, styles.Message.Foreground(primary).Render(message))
	}

	surface := styles.Surface.
		Background(lipgloss.Color(view.Background)).
		Foreground(lipgloss.Color(view.TextColor))
	return surface.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func iconGlyph(view render.View) string {
	if view.InlineIcon {
		return "◆"
	}
	return "[" + view.Icon + "]"
}
