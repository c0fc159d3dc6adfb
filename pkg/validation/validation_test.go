package validation

import (
	"errors"
	"regexp"
	"testing"

	"github.com/goliatone/go-textfield/pkg/field"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		p    field.Predicate
		pass []string
		fail []string
	}{
		{"required", Required(), []string{"a", " a "}, []string{"", "   "}},
		{"minLength", MinLength(3), []string{"abc", "héé"}, []string{"", "ab"}},
		{"maxLength", MaxLength(2), []string{"", "ab", "éé"}, []string{"abc"}},
		{"pattern", Pattern(regexp.MustCompile(`^\d{3}$`)), []string{"123"}, []string{"12", "abc"}},
		{"email", Email(), []string{"me@example.com", "a.b+c@sub.example.org"}, []string{"", "me", "me@host", "Me <me@example.com>", " me@example.com"}},
		{"numeric", Numeric(), []string{"1", "-2.5", "1e3", " 4 "}, []string{"", "abc", "NaN", "Inf"}},
		{"all", All(Required(), MaxLength(3), nil), []string{"abc"}, []string{"", "abcd"}},
		{"any", Any(MustPattern(`^a`), MustPattern(`z$`)), []string{"ab", "yz"}, []string{"mm"}},
		{"not", Not(Required()), []string{"", " "}, []string{"x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range tc.pass {
				if !tc.p(v) {
					t.Fatalf("expected %q to pass", v)
				}
			}
			for _, v := range tc.fail {
				if tc.p(v) {
					t.Fatalf("expected %q to fail", v)
				}
			}
		})
	}
}

func TestForKind(t *testing.T) {
	if ForKind(field.KindText).Present() || ForKind(field.KindPassword).Present() {
		t.Fatalf("text/password kinds have no default predicate")
	}
	email, ok := ForKind(field.KindEmail).Get()
	if !ok || email("nope") || !email("me@example.com") {
		t.Fatalf("email kind should validate addresses")
	}
	number, ok := ForKind(field.KindNumber).Get()
	if !ok || number("x") || !number("12") {
		t.Fatalf("number kind should validate numbers")
	}
}

func TestRulesCheck(t *testing.T) {
	rules := Rules{
		Required:  true,
		MinLength: IntPtr(2),
		MaxLength: IntPtr(5),
		Pattern:   `^[a-z]+$`,
	}
	checker, err := rules.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if err := checker.Check(""); !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
	if err := checker.Check("a"); err == nil || err.Error() != "min length 2" {
		t.Fatalf("expected min length error, got %v", err)
	}
	if err := checker.Check("abcdef"); err == nil || err.Error() != "max length 5" {
		t.Fatalf("expected max length error, got %v", err)
	}
	if err := checker.Check("ab1"); !errors.Is(err, ErrPattern) {
		t.Fatalf("expected ErrPattern, got %v", err)
	}
	if err := checker.Check("abc"); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestRulesCheck_OptionalBlankPasses(t *testing.T) {
	checker, err := Rules{MinLength: IntPtr(3), Format: "email"}.Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := checker.Check(""); err != nil {
		t.Fatalf("blank optional value should pass, got %v", err)
	}
	if err := checker.Check("not-an-email"); !errors.Is(err, ErrEmail) {
		t.Fatalf("expected ErrEmail, got %v", err)
	}
}

func TestRulesCompile_Errors(t *testing.T) {
	cases := map[string]Rules{
		"pattern":   {Pattern: "("},
		"minLength": {MinLength: IntPtr(-1)},
		"maxLength": {MaxLength: IntPtr(-1)},
		"format":    {Format: "date"},
	}
	for name, rules := range cases {
		if _, err := rules.Compile(); err == nil {
			t.Fatalf("%s: expected compile error", name)
		}
	}
}

func TestFromRules(t *testing.T) {
	p, err := FromRules(Rules{})
	if err != nil || p.Present() {
		t.Fatalf("empty rules should yield no predicate, got %v %v", p.Present(), err)
	}

	p, err = FromRules(Rules{Required: true})
	if err != nil {
		t.Fatalf("FromRules: %v", err)
	}
	fn, ok := p.Get()
	if !ok || fn("") || !fn("x") {
		t.Fatalf("unexpected predicate behaviour")
	}

	if _, err := FromRules(Rules{Pattern: "["}); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestChecker_DrivesField(t *testing.T) {
	p, err := FromRules(Rules{Required: true, Format: "email"})
	if err != nil {
		t.Fatalf("FromRules: %v", err)
	}
	fn, _ := p.Get()

	f := field.NewMounted(field.WithPredicate(fn))
	f.SetValue("bad")
	if f.Validate() {
		t.Fatalf("expected invalid email")
	}
	f.Input(field.InputEvent{Value: "me@example.com"})
	if !f.Validate() {
		t.Fatalf("expected valid email")
	}
}

func TestRules_WithKind(t *testing.T) {
	cases := []struct {
		name  string
		rules Rules
		kind  field.InputKind
		want  string
	}{
		{"email kind", Rules{Required: true}, field.KindEmail, "email"},
		{"number kind", Rules{MaxLength: IntPtr(4)}, field.KindNumber, "number"},
		{"explicit format wins", Rules{Required: true, Format: "numeric"}, field.KindEmail, "numeric"},
		{"empty rules untouched", Rules{}, field.KindEmail, ""},
		{"text kind", Rules{Required: true}, field.KindText, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rules.WithKind(tc.kind).Format; got != tc.want {
				t.Fatalf("format = %q, want %q", got, tc.want)
			}
		})
	}
}
