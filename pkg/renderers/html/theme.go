package html

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-textfield/pkg/render"
)

// Theme token names read from manifests. Variant tokens override manifest
// tokens of the same name.
const (
	TokenAccent         = "textfield-accent"
	TokenError          = "textfield-error"
	TokenBackground     = "textfield-background"
	TokenDarkBackground = "textfield-background-dark"
	TokenText           = "textfield-text"
	TokenDarkText       = "textfield-text-dark"
)

type themeChoice struct {
	name    string
	variant string
	accent  string
	palette render.Palette
}

func (r *Renderer) selectTheme(options render.RenderOptions) (themeChoice, error) {
	if r.cfg.selector == nil {
		return themeChoice{}, nil
	}

	name := firstNonEmpty(options.ThemeName, r.cfg.defaultTheme)
	variant := firstNonEmpty(options.ThemeVariant, r.cfg.defaultVariant)

	selection, err := r.cfg.selector.Select(name, variant)
	if err != nil {
		return themeChoice{}, fmt.Errorf("html renderer: select theme %q: %w", name, err)
	}
	if selection == nil {
		r.cfg.logger.Debug("textfield theme selection empty", "theme", name, "variant", variant)
		return themeChoice{}, nil
	}

	tokens := selectionTokens(selection)
	choice := themeChoice{
		name:    selection.Theme,
		variant: selection.Variant,
		accent:  tokens[TokenAccent],
		palette: render.Palette{
			Error:          tokens[TokenError],
			Background:     tokens[TokenBackground],
			DarkBackground: tokens[TokenDarkBackground],
			Text:           tokens[TokenText],
			DarkText:       tokens[TokenDarkText],
		},
	}
	r.cfg.logger.Debug("textfield theme selected",
		"theme", choice.name,
		"variant", choice.variant,
		"tokens", len(tokens),
	)
	return choice, nil
}

func selectionTokens(selection *theme.Selection) map[string]string {
	tokens := make(map[string]string)
	if selection.Manifest == nil {
		return tokens
	}
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = strings.TrimSpace(value)
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = strings.TrimSpace(value)
		}
	}
	return tokens
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
