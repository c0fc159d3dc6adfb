package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-textfield/pkg/field"
)

var (
	// ErrRequired is reported for blank values when a value is required.
	ErrRequired = errors.New("required")
	// ErrPattern is reported when a value does not match the pattern.
	ErrPattern = errors.New("does not match required pattern")
	// ErrEmail is reported for malformed email addresses.
	ErrEmail = errors.New("invalid email address")
	// ErrNumeric is reported for values that are not numbers.
	ErrNumeric = errors.New("not a number")
)

// Rules is the declarative constraint set a field configuration can carry.
// Lengths count runes.
type Rules struct {
	Required  bool   `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Empty reports whether no constraint is set.
func (r Rules) Empty() bool {
	return !r.Required && r.MinLength == nil && r.MaxLength == nil && r.Pattern == "" && r.Format == ""
}

// Compile validates the rules and returns a checker. Invalid patterns and
// unknown formats are reported here so configuration errors surface at load
// time instead of on the first keystroke.
func (r Rules) Compile() (*Checker, error) {
	c := &Checker{rules: r}
	if r.Pattern != "" {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("validation: compile pattern %q: %w", r.Pattern, err)
		}
		c.pattern = re
	}
	if r.MinLength != nil && *r.MinLength < 0 {
		return nil, fmt.Errorf("validation: negative minLength %d", *r.MinLength)
	}
	if r.MaxLength != nil && *r.MaxLength < 0 {
		return nil, fmt.Errorf("validation: negative maxLength %d", *r.MaxLength)
	}
	switch strings.ToLower(r.Format) {
	case "", "email", "number", "numeric":
	default:
		return nil, fmt.Errorf("validation: unknown format %q", r.Format)
	}
	return c, nil
}

// Checker evaluates compiled rules.
type Checker struct {
	rules   Rules
	pattern *regexp.Regexp
}

// Check returns the first violated rule, or nil. Optional blank values pass.
func (c *Checker) Check(value string) error {
	if strings.TrimSpace(value) == "" {
		if c.rules.Required {
			return ErrRequired
		}
		return nil
	}
	length := utf8.RuneCountInString(value)
	if c.rules.MinLength != nil && length < *c.rules.MinLength {
		return fmt.Errorf("min length %d", *c.rules.MinLength)
	}
	if c.rules.MaxLength != nil && length > *c.rules.MaxLength {
		return fmt.Errorf("max length %d", *c.rules.MaxLength)
	}
	if c.pattern != nil && !c.pattern.MatchString(value) {
		return ErrPattern
	}
	switch strings.ToLower(c.rules.Format) {
	case "email":
		if !Email()(value) {
			return ErrEmail
		}
	case "number", "numeric":
		if !Numeric()(value) {
			return ErrNumeric
		}
	}
	return nil
}

// Predicate adapts the checker to a field predicate.
func (c *Checker) Predicate() field.Predicate {
	return func(value string) bool {
		return c.Check(value) == nil
	}
}

// WithKind returns r with Format defaulted from kind. Empty rules and rules
// that already name a format are returned unchanged.
func (r Rules) WithKind(kind field.InputKind) Rules {
	if r.Empty() || r.Format != "" {
		return r
	}
	switch kind {
	case field.KindEmail:
		r.Format = "email"
	case field.KindNumber:
		r.Format = "number"
	}
	return r
}

// FromRules compiles r into a predicate. Empty rules yield field.NoPredicate.
func FromRules(r Rules) (field.OptionalPredicate, error) {
	if r.Empty() {
		return field.NoPredicate, nil
	}
	c, err := r.Compile()
	if err != nil {
		return field.NoPredicate, err
	}
	return field.Use(c.Predicate()), nil
}

// IntPtr is a convenience for populating Rules lengths.
func IntPtr(v int) *int {
	return &v
}
