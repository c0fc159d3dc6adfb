// Package textfield is the entry point for building, rendering and hosting
// Material style text fields. It re-exports the field state machine and wires
// the default OpenAPI loader/parser and renderers.
package textfield

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
	pkgopenapi "github.com/goliatone/go-textfield/pkg/openapi"
	"github.com/goliatone/go-textfield/pkg/render"
	"github.com/goliatone/go-textfield/pkg/renderers/html"
	"github.com/goliatone/go-textfield/pkg/renderers/tui"
)

// Field aliases the state machine so callers can stay on the root package.
type Field = field.Field

// State aliases field.State.
type State = field.State

// Option aliases field.Option.
type Option = field.Option

// InputEvent aliases field.InputEvent.
type InputEvent = field.InputEvent

// Handle aliases the capability view passed to icon callbacks.
type Handle = field.Handle

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// New returns an unmounted field.
func New(options ...Option) *Field {
	return field.New(options...)
}

// NewMounted returns a field that is already mounted.
func NewMounted(options ...Option) *Field {
	return field.NewMounted(options...)
}

// NewRendererRegistry registers the HTML renderer as default together with the
// ansi renderer.
func NewRendererRegistry(options ...html.Option) (*render.Registry, error) {
	htmlRenderer, err := html.New(options...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(htmlRenderer, tui.NewStaticRenderer())
}

// WithThemeSelector forwards a go-theme selector to the HTML renderer so
// theme tokens feed the field colors.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) html.Option {
	return html.WithThemeSelector(selector, defaultTheme, defaultVariant)
}

// RenderHTML renders the current state of f as an HTML fragment.
func RenderHTML(ctx context.Context, f *Field, options RenderOptions, htmlOptions ...html.Option) ([]byte, error) {
	renderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	if options.ID == "" {
		options.ID = "textfield-" + f.Name()
	}
	return renderer.Render(ctx, render.ViewOf(f, render.Palette{}), options)
}

// FieldsFromOpenAPI derives field configurations from the component schema
// schemaName of the document at src.
func FieldsFromOpenAPI(ctx context.Context, src pkgopenapi.Source, schemaName string, loaderOptions ...pkgopenapi.LoaderOption) (*fieldconfig.Store, error) {
	return NewOpenAPIAdapter(loaderOptions).Fields(ctx, src, schemaName)
}
