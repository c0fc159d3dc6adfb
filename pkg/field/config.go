package field

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultColor is the accent used when no color option is supplied.
const DefaultColor = "#2196f3"

// InputKind enumerates the input types a field can present.
type InputKind string

const (
	// KindText is a plain text input and the default.
	KindText InputKind = "text"
	// KindEmail hints an email address keyboard/format.
	KindEmail InputKind = "email"
	// KindPassword obscures the entered text.
	KindPassword InputKind = "password"
	// KindNumber accepts numeric input.
	KindNumber InputKind = "number"
)

// Valid reports whether k is one of the known kinds.
func (k InputKind) Valid() bool {
	switch k {
	case KindText, KindEmail, KindPassword, KindNumber:
		return true
	}
	return false
}

// String returns the kind identifier.
func (k InputKind) String() string {
	return string(k)
}

// ParseInputKind maps an identifier onto an InputKind. An empty string yields
// KindText; "numeric" is accepted as an alias of KindNumber.
func ParseInputKind(raw string) (InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text":
		return KindText, nil
	case "email":
		return KindEmail, nil
	case "password":
		return KindPassword, nil
	case "number", "numeric":
		return KindNumber, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInputKind, raw)
}

// Config is the resolved, host supplied configuration of a field. It is
// assembled from options at construction and never mutated afterwards.
type Config struct {
	Name        string
	Color       string
	Label       string
	Placeholder string
	Icon        string
	Kind        InputKind
	Value       string
	Predicate   OptionalPredicate
	Dark        bool
	// Style is an opaque, caller owned record passed through to renderers.
	Style       map[string]any
	OnIconClick func(Handle)
	OnInput     func(InputEvent)

	logger *slog.Logger
}

// HasLabel reports whether a label should be drawn.
func (c Config) HasLabel() bool {
	return c.Label != ""
}

// HasIcon reports whether an icon should be drawn.
func (c Config) HasIcon() bool {
	return c.Icon != ""
}

// StyleCopy returns a shallow copy of the style record so renderers can merge
// it without touching the caller's map.
func (c Config) StyleCopy() map[string]any {
	if len(c.Style) == 0 {
		return nil
	}
	out := make(map[string]any, len(c.Style))
	for k, v := range c.Style {
		out[k] = v
	}
	return out
}

// Option mutates the configuration before the field is built.
type Option func(*Config)

// WithName assigns an identifier used by hosts and log records.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = strings.TrimSpace(name)
	}
}

// WithColor sets the accent color. Empty values keep the default.
func WithColor(color string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(color); trimmed != "" {
			c.Color = trimmed
		}
	}
}

// WithLabel sets the floating label text.
func WithLabel(label string) Option {
	return func(c *Config) {
		c.Label = label
	}
}

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(placeholder string) Option {
	return func(c *Config) {
		c.Placeholder = placeholder
	}
}

// WithIcon sets the icon identifier (a URL, asset name or inline SVG).
func WithIcon(icon string) Option {
	return func(c *Config) {
		c.Icon = strings.TrimSpace(icon)
	}
}

// WithInputKind selects the input kind. Unknown kinds keep KindText.
func WithInputKind(kind InputKind) Option {
	return func(c *Config) {
		if kind.Valid() {
			c.Kind = kind
		}
	}
}

// WithValue sets the value applied when the field mounts.
func WithValue(value string) Option {
	return func(c *Config) {
		c.Value = value
	}
}

// WithPredicate sets the default validation predicate used by Validate and by
// Test when no explicit predicate is given.
func WithPredicate(p Predicate) Option {
	return func(c *Config) {
		c.Predicate = Use(p)
	}
}

// WithDark selects the dark surface variant.
func WithDark(dark bool) Option {
	return func(c *Config) {
		c.Dark = dark
	}
}

// WithStyle attaches an opaque style record. The map is copied.
func WithStyle(style map[string]any) Option {
	return func(c *Config) {
		c.Style = Config{Style: style}.StyleCopy()
	}
}

// WithIconClick registers the icon click callback.
func WithIconClick(fn func(Handle)) Option {
	return func(c *Config) {
		c.OnIconClick = fn
	}
}

// WithInput registers the input change callback.
func WithInput(fn func(InputEvent)) Option {
	return func(c *Config) {
		c.OnInput = fn
	}
}

// WithLogger routes transition logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConfig applies options over the defaults.
func NewConfig(options ...Option) Config {
	cfg := Config{
		Color: DefaultColor,
		Kind:  KindText,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
