package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the field.
type RenderOptions struct {
	// ID overrides the element id. Defaults to the field name.
	ID string
	// ThemeName and ThemeVariant select a theme when the renderer was built
	// with a selector. Empty values use the renderer defaults.
	ThemeName    string
	ThemeVariant string
	// Accent overrides the configured color, for example per request.
	Accent string
}
