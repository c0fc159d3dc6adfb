package html

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
	rendertemplate "github.com/goliatone/go-textfield/pkg/render/template"
	gotemplate "github.com/goliatone/go-textfield/pkg/render/template/gotemplate"
)

// Name identifies the renderer in a render.Registry.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	defaultTheme     string
	defaultVariant   string
	palette          render.Palette
	page             bool
	title            string
	logger           *slog.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/textfield.tmpl and, for pages, templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves theme tokens before each render. The defaults are
// used when RenderOptions does not name a theme.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.defaultTheme = strings.TrimSpace(defaultTheme)
		cfg.defaultVariant = strings.TrimSpace(defaultVariant)
	}
}

// WithPalette overrides the base palette. Theme tokens still win.
func WithPalette(palette render.Palette) Option {
	return func(cfg *config) {
		cfg.palette = palette
	}
}

// WithPage wraps the field in a standalone HTML document with the default
// stylesheet inlined.
func WithPage(title string) Option {
	return func(cfg *config) {
		cfg.page = true
		cfg.title = title
	}
}

// WithLogger routes theme resolution diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer renders a text field as HTML markup.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	cfg       config
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, cfg: cfg}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws view. Theme tokens and RenderOptions.Accent are applied to the
// view colors before the template runs.
func (r *Renderer) Render(_ context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	selected, err := r.selectTheme(options)
	if err != nil {
		return nil, err
	}

	palette := r.cfg.palette.Merge(selected.palette)
	accent := options.Accent
	if accent == "" && selected.accent != "" && view.Accent == field.DefaultColor {
		accent = selected.accent
	}
	view = view.Recolor(palette, accent)

	id := strings.TrimSpace(options.ID)
	if id == "" {
		id = view.Name
	}
	if id == "" {
		id = "textfield"
	}

	data := map[string]any{
		"field": view,
		"id":    id,
		"style": inlineStyle(view),
		"theme": map[string]any{"name": selected.name, "variant": selected.variant},
	}

	name := "templates/textfield.tmpl"
	if r.cfg.page {
		name = "templates/page.tmpl"
		data["title"] = pageTitle(r.cfg.title, view)
		data["stylesheet"] = defaultStylesheet()
	}

	result, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// inlineStyle layers the caller style record under the state colors, so the
// surface background always follows the dark flag.
func inlineStyle(view render.View) map[string]any {
	style := make(map[string]any, len(view.Style)+3)
	for key, value := range view.Style {
		style[key] = value
	}
	style["background-color"] = view.Background
	style["--textfield-primary"] = view.PrimaryColor
	style["--textfield-text"] = view.TextColor
	return style
}

func pageTitle(title string, view render.View) string {
	switch {
	case title != "":
		return title
	case view.Label != "":
		return view.Label
	case view.Name != "":
		return view.Name
	default:
		return "Text field"
	}
}
