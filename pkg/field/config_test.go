package field

import (
	"errors"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Color != DefaultColor {
		t.Fatalf("color = %q, want %q", cfg.Color, DefaultColor)
	}
	if cfg.Kind != KindText {
		t.Fatalf("kind = %q, want text", cfg.Kind)
	}
	if cfg.Predicate.Present() {
		t.Fatalf("expected no predicate by default")
	}
	if cfg.HasLabel() || cfg.HasIcon() {
		t.Fatalf("expected no label/icon")
	}
}

func TestNewConfig_IgnoresInvalidOverrides(t *testing.T) {
	cfg := NewConfig(
		WithColor("  "),
		WithInputKind(InputKind("date")),
		nil,
		WithPredicate(nil),
	)
	if cfg.Color != DefaultColor || cfg.Kind != KindText {
		t.Fatalf("invalid overrides applied: %+v", cfg)
	}
	if cfg.Predicate.Present() {
		t.Fatalf("nil predicate must stay absent")
	}
}

func TestWithStyle_CopiesCallerMap(t *testing.T) {
	style := map[string]any{"width": 200}
	cfg := NewConfig(WithStyle(style))
	style["width"] = 300

	if cfg.Style["width"] != 200 {
		t.Fatalf("style aliased caller map: %v", cfg.Style)
	}
	merged := cfg.StyleCopy()
	merged["height"] = 10
	if _, ok := cfg.Style["height"]; ok {
		t.Fatalf("StyleCopy must not alias the config")
	}
}

func TestParseInputKind(t *testing.T) {
	cases := map[string]InputKind{
		"":         KindText,
		"text":     KindText,
		"EMAIL":    KindEmail,
		"password": KindPassword,
		"number":   KindNumber,
		" numeric": KindNumber,
	}
	for raw, want := range cases {
		got, err := ParseInputKind(raw)
		if err != nil {
			t.Fatalf("ParseInputKind(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseInputKind(%q) = %q, want %q", raw, got, want)
		}
	}

	if _, err := ParseInputKind("date"); !errors.Is(err, ErrUnknownInputKind) {
		t.Fatalf("expected ErrUnknownInputKind, got %v", err)
	}
}

func TestOptionalPredicate_Or(t *testing.T) {
	first := Use(func(string) bool { return true })
	second := Use(func(string) bool { return false })

	fn, ok := NoPredicate.Or(second).Get()
	if !ok || fn("") {
		t.Fatalf("expected fallback predicate")
	}
	fn, ok = first.Or(second).Get()
	if !ok || !fn("") {
		t.Fatalf("expected primary predicate")
	}
	if _, ok := NoPredicate.Or(NoPredicate).Get(); ok {
		t.Fatalf("expected absent predicate")
	}
}

func TestFieldConfig_StyleIsDetached(t *testing.T) {
	f := New(WithName("email"), WithStyle(map[string]any{"width": 200}))

	got := f.Config()
	got.Style["width"] = 1
	got.Style["color"] = "red"

	again := f.Config().Style
	if again["width"] != 200 || len(again) != 1 {
		t.Fatalf("field style mutated through Config: %v", again)
	}
}
