package render

import (
	"strings"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
)

// Palette holds the colors a View resolves against.
type Palette struct {
	Error          string `json:"error"`
	Background     string `json:"background"`
	DarkBackground string `json:"darkBackground"`
	Text           string `json:"text"`
	DarkText       string `json:"darkText"`
}

// DefaultPalette matches the material red 500 error color and the light/dark
// fill used by the text field surface.
var DefaultPalette = Palette{
	Error:          "#f44336",
	Background:     "#f5f5f5",
	DarkBackground: "rgba(255, 255, 255, 0.06)",
	Text:           "rgba(0, 0, 0, 0.87)",
	DarkText:       "#ffffff",
}

// View is the presentation of a field at one point in time. Renderers only
// read Views; they never touch the field itself.
type View struct {
	Name         string         `json:"name"`
	InputType    string         `json:"inputType"`
	Value        string         `json:"value"`
	Label        string         `json:"label"`
	HasLabel     bool           `json:"hasLabel"`
	Placeholder  string         `json:"placeholder"`
	Icon         string         `json:"icon"`
	HasIcon      bool           `json:"hasIcon"`
	InlineIcon   bool           `json:"inlineIcon"`
	Accent       string         `json:"accent"`
	PrimaryColor string         `json:"primaryColor"`
	Background   string         `json:"background"`
	TextColor    string         `json:"textColor"`
	Dark         bool           `json:"dark"`
	LabelRaised  bool           `json:"labelRaised"`
	Focused      bool           `json:"focused"`
	Error        bool           `json:"error"`
	Style        map[string]any `json:"style,omitempty"`
}

// NewView derives the presentation of cfg in state st using DefaultPalette.
func NewView(cfg field.Config, st field.State) View {
	return NewViewWithPalette(cfg, st, DefaultPalette)
}

// NewViewWithPalette is NewView with explicit colors. Empty palette entries
// fall back to DefaultPalette.
func NewViewWithPalette(cfg field.Config, st field.State, palette Palette) View {
	accent := strings.TrimSpace(cfg.Color)
	if accent == "" {
		accent = field.DefaultColor
	}

	view := View{
		Name:        cfg.Name,
		InputType:   cfg.Kind.String(),
		Value:       st.Value,
		Label:       cfg.Label,
		HasLabel:    cfg.HasLabel(),
		HasIcon:     cfg.HasIcon(),
		Accent:      accent,
		Dark:        cfg.Dark,
		LabelRaised: st.Activated,
		Focused:     st.Focused,
		Error:       st.Error,
		Style:       cfg.StyleCopy(),
	}

	// The placeholder would overlap a resting label, so it only shows when
	// there is no label or the field has focus.
	if !view.HasLabel || st.Focused {
		view.Placeholder = cfg.Placeholder
	}

	view = view.Recolor(palette, "")

	if view.HasIcon {
		view.Icon = fieldconfig.SanitizeIcon(cfg.Icon)
		view.InlineIcon = fieldconfig.IsInlineIcon(view.Icon)
		view.HasIcon = view.Icon != ""
	}
	return view
}

// ViewOf snapshots f and derives its View.
func ViewOf(f *field.Field, palette Palette) View {
	return NewViewWithPalette(f.Config(), f.Snapshot(), palette)
}

// Recolor resolves the state dependent colors of v against palette. A
// non-empty accent replaces the field accent first.
func (v View) Recolor(palette Palette, accent string) View {
	palette = palette.withDefaults()
	if accent = strings.TrimSpace(accent); accent != "" {
		v.Accent = accent
	}

	v.PrimaryColor = v.Accent
	if v.Error {
		v.PrimaryColor = palette.Error
	}

	v.Background = palette.Background
	v.TextColor = palette.Text
	if v.Dark {
		v.Background = palette.DarkBackground
		v.TextColor = palette.DarkText
	}
	return v
}

// Merge returns p with non-empty entries of other applied on top.
func (p Palette) Merge(other Palette) Palette {
	if other.Error != "" {
		p.Error = other.Error
	}
	if other.Background != "" {
		p.Background = other.Background
	}
	if other.DarkBackground != "" {
		p.DarkBackground = other.DarkBackground
	}
	if other.Text != "" {
		p.Text = other.Text
	}
	if other.DarkText != "" {
		p.DarkText = other.DarkText
	}
	return p
}

func (p Palette) withDefaults() Palette {
	return DefaultPalette.Merge(p)
}
