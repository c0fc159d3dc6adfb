package html

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

func newRenderer(t *testing.T, options ...Option) *Renderer {
	t.Helper()
	r, err := New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderField(t *testing.T, r *Renderer, f *field.Field, options render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(context.Background(), render.ViewOf(f, render.Palette{}), options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_RestingField(t *testing.T) {
	f := field.NewMounted(
		field.WithName("email"),
		field.WithLabel("Email"),
		field.WithPlaceholder("you@example.com"),
		field.WithInputKind(field.KindEmail),
	)

	got := renderField(t, newRenderer(t), f, render.RenderOptions{})

	for _, want := range []string{
		`id="email"`,
		`type="email"`,
		`<label class="textfield__label" id="email-label" for="email">Email</label>`,
		`--textfield-primary: #2196f3;`,
		`background-color: #f5f5f5;`,
		`class="textfield__indicator"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "placeholder=") {
		t.Fatalf("placeholder should be hidden behind a resting label:\n%s", got)
	}
}

func TestRenderer_FocusedErrorField(t *testing.T) {
	f := field.NewMounted(
		field.WithName("code"),
		field.WithLabel("Code"),
		field.WithPlaceholder("1234"),
		field.WithDark(true),
	)
	f.Focus()
	f.Input(field.InputEvent{Value: "12"})
	f.TestFunc(func(v string) bool { return len(v) == 4 })

	got := renderField(t, newRenderer(t), f, render.RenderOptions{ID: "pin"})

	for _, want := range []string{
		`textfield--dark`,
		`textfield--focused`,
		`textfield--error`,
		`textfield__label--raised`,
		`textfield__indicator--focused`,
		`placeholder="1234"`,
		`value="12"`,
		`aria-invalid="true"`,
		`id="pin"`,
		`--textfield-primary: #f44336;`,
		`background-color: rgba(255, 255, 255, 0.06);`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRenderer_EscapesValuesAndSanitizesIcons(t *testing.T) {
	f := field.NewMounted(
		field.WithName("q"),
		field.WithValue(`"><script>alert(1)</script>`),
		field.WithIcon(`<svg viewBox="0 0 24 24" onload="alert(1)"><path d="M0 0h24"/></svg>`),
	)

	got := renderField(t, newRenderer(t), f, render.RenderOptions{})
	if strings.Contains(got, "<script>") || strings.Contains(got, "onload") {
		t.Fatalf("unsafe content leaked:\n%s", got)
	}
	if !strings.Contains(got, `<span class="textfield__icon"`) || !strings.Contains(got, "<path") {
		t.Fatalf("inline icon missing:\n%s", got)
	}
}

func TestRenderer_StyleRecord(t *testing.T) {
	f := field.NewMounted(field.WithStyle(map[string]any{"width": "240px", "background-color": "red"}))

	got := renderField(t, newRenderer(t), f, render.RenderOptions{})
	if !strings.Contains(got, "width: 240px;") {
		t.Fatalf("style record not applied:\n%s", got)
	}
	if strings.Contains(got, "background-color: red") {
		t.Fatalf("surface background should override the style record:\n%s", got)
	}
}

func TestRenderer_Page(t *testing.T) {
	f := field.NewMounted(field.WithName("email"), field.WithLabel("Email"))

	got := renderField(t, newRenderer(t, WithPage("")), f, render.RenderOptions{})
	if !strings.HasPrefix(got, "<!DOCTYPE html>") || !strings.Contains(got, "<title>Email</title>") {
		t.Fatalf("page wrapper missing:\n%s", got)
	}
	if !strings.Contains(got, ".textfield__indicator") || !strings.Contains(got, `data-textfield="email"`) {
		t.Fatalf("stylesheet or field missing:\n%s", got)
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/textfield.tmpl": {Data: []byte(`{{ field.name }}|{{ field.primaryColor }}`)},
	}
	f := field.NewMounted(field.WithName("n"), field.WithColor("#009688"))

	got := renderField(t, newRenderer(t, WithTemplatesFS(files)), f, render.RenderOptions{})
	if got != "n|#009688" {
		t.Fatalf("got %q", got)
	}

	got = renderField(t, newRenderer(t, WithTemplatesFS(files)), f, render.RenderOptions{Accent: "#000000"})
	if got != "n|#000000" {
		t.Fatalf("accent override ignored: %q", got)
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}

func TestRenderer_ThemeTokens(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenAccent:     "#123456",
			TokenError:      "#aa0000",
			TokenBackground: "#eeeeee",
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{TokenError: "#ff8a80"}},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}
	files := fstest.MapFS{
		"templates/textfield.tmpl": {Data: []byte(`{{ theme.name }}/{{ theme.variant }}|{{ field.accent }}|{{ field.primaryColor }}|{{ field.background }}`)},
	}
	r := newRenderer(t, WithTemplatesFS(files), WithThemeSelector(selector, "acme", "light"))

	f := field.NewMounted()
	got := renderField(t, r, f, render.RenderOptions{ThemeVariant: "dark"})
	if got != "acme/dark|#123456|#123456|#eeeeee" {
		t.Fatalf("theme accent not applied: %q", got)
	}
	if len(selector.calls) != 1 || selector.calls[0] != "acme/dark" {
		t.Fatalf("unexpected selector calls: %v", selector.calls)
	}

	f.TestFunc(func(string) bool { return false })
	got = renderField(t, r, f, render.RenderOptions{ThemeVariant: "dark"})
	if got != "acme/dark|#123456|#ff8a80|#eeeeee" {
		t.Fatalf("variant tokens should win: %q", got)
	}

	colored := field.NewMounted(field.WithColor("#009688"))
	got = renderField(t, r, colored, render.RenderOptions{})
	if !strings.Contains(got, "|#009688|#009688|") {
		t.Fatalf("explicit field color should beat theme accent: %q", got)
	}
}

func TestRenderer_ThemeSelectionError(t *testing.T) {
	boom := errors.New("unknown theme")
	r := newRenderer(t, WithThemeSelector(&stubThemeSelector{err: boom}, "x", ""))

	_, err := r.Render(context.Background(), render.View{}, render.RenderOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
}
