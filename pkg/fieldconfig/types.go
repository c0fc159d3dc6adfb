package fieldconfig

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/validation"
)

// Store keeps the parsed field definitions. It is safe for concurrent readers
// when treated as immutable after construction.
type Store struct {
	fields map[string]FieldConfig
}

// NewStore builds a store from already normalised configurations, keyed by
// their Name. Used by sources other than files (for example OpenAPI).
func NewStore(configs ...FieldConfig) (*Store, error) {
	store := &Store{fields: make(map[string]FieldConfig, len(configs))}
	for _, cfg := range configs {
		if err := store.add(cfg); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// FieldConfig is the serialisable description of one text field.
type FieldConfig struct {
	Name        string           `json:"-" yaml:"-"`
	Source      string           `json:"-" yaml:"-"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Icon        string           `json:"icon,omitempty" yaml:"icon,omitempty"`
	InputType   string           `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Value       string           `json:"value,omitempty" yaml:"value,omitempty"`
	Color       string           `json:"color,omitempty" yaml:"color,omitempty"`
	Dark        bool             `json:"dark,omitempty" yaml:"dark,omitempty"`
	Style       map[string]any   `json:"style,omitempty" yaml:"style,omitempty"`
	Validation  validation.Rules `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// Kind resolves the configured input type.
func (c FieldConfig) Kind() (field.InputKind, error) {
	return field.ParseInputKind(c.InputType)
}

// Predicate returns the validation predicate: the configured rules with the
// input kind's format folded in, or the kind default when no rules are set.
func (c FieldConfig) Predicate() (field.OptionalPredicate, error) {
	kind, err := c.Kind()
	if err != nil {
		return field.NoPredicate, err
	}
	p, err := validation.FromRules(c.Validation.WithKind(kind))
	if err != nil {
		return field.NoPredicate, err
	}
	return p.Or(validation.ForKind(kind)), nil
}

// Options converts the configuration into field options. Extra options are
// appended so callers can attach callbacks and loggers.
func (c FieldConfig) Options(extra ...field.Option) ([]field.Option, error) {
	kind, err := c.Kind()
	if err != nil {
		return nil, fmt.Errorf("fieldconfig: field %q: %w", c.Name, err)
	}
	predicate, err := c.Predicate()
	if err != nil {
		return nil, fmt.Errorf("fieldconfig: field %q: %w", c.Name, err)
	}

	opts := []field.Option{
		field.WithName(c.Name),
		field.WithLabel(c.Label),
		field.WithPlaceholder(c.Placeholder),
		field.WithIcon(c.Icon),
		field.WithInputKind(kind),
		field.WithValue(c.Value),
		field.WithColor(c.Color),
		field.WithDark(c.Dark),
	}
	if len(c.Style) > 0 {
		opts = append(opts, field.WithStyle(c.Style))
	}
	if fn, ok := predicate.Get(); ok {
		opts = append(opts, field.WithPredicate(fn))
	}
	return append(opts, extra...), nil
}

// Build constructs an unmounted field from the configuration.
func (c FieldConfig) Build(extra ...field.Option) (*field.Field, error) {
	opts, err := c.Options(extra...)
	if err != nil {
		return nil, err
	}
	return field.New(opts...), nil
}

// Field returns the configuration registered under name.
func (s *Store) Field(name string) (FieldConfig, bool) {
	if s == nil {
		return FieldConfig{}, false
	}
	cfg, ok := s.fields[name]
	return cfg, ok
}

// Names returns the sorted field names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

func (s *Store) add(cfg FieldConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("fieldconfig: %s defines a field with an empty name", sourceName(cfg.Source))
	}
	if _, exists := s.fields[cfg.Name]; exists {
		return fmt.Errorf("fieldconfig: duplicate field %q (%s)", cfg.Name, sourceName(cfg.Source))
	}
	if _, err := cfg.Options(); err != nil {
		return err
	}
	s.fields[cfg.Name] = cfg
	return nil
}

func sourceName(source string) string {
	if source == "" {
		return "input"
	}
	return "file " + source
}
