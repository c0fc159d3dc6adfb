package validation

import (
	"math"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-textfield/pkg/field"
)

// Required passes any value with non-whitespace content.
func Required() field.Predicate {
	return func(value string) bool {
		return strings.TrimSpace(value) != ""
	}
}

// MinLength passes values with at least n runes.
func MinLength(n int) field.Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// MaxLength passes values with at most n runes.
func MaxLength(n int) field.Predicate {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= n
	}
}

// Pattern passes values matched by re.
func Pattern(re *regexp.Regexp) field.Predicate {
	return func(value string) bool {
		return re.MatchString(value)
	}
}

// MustPattern compiles expr and panics on error. Intended for package level
// predicate declarations.
func MustPattern(expr string) field.Predicate {
	return Pattern(regexp.MustCompile(expr))
}

// Email passes a bare address such as "me@example.com". Display names and
// angle brackets are rejected.
func Email() field.Predicate {
	return func(value string) bool {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || trimmed != value {
			return false
		}
		addr, err := mail.ParseAddress(value)
		if err != nil {
			return false
		}
		return addr.Address == value && strings.Contains(value[strings.LastIndex(value, "@"):], ".")
	}
}

// Numeric passes values that parse as a finite decimal number.
func Numeric() field.Predicate {
	return func(value string) bool {
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
}

// All passes when every predicate passes. Nil predicates are skipped.
func All(predicates ...field.Predicate) field.Predicate {
	return func(value string) bool {
		for _, p := range predicates {
			if p != nil && !p(value) {
				return false
			}
		}
		return true
	}
}

// Any passes when at least one predicate passes.
func Any(predicates ...field.Predicate) field.Predicate {
	return func(value string) bool {
		for _, p := range predicates {
			if p != nil && p(value) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p field.Predicate) field.Predicate {
	return func(value string) bool {
		return !p(value)
	}
}

// ForKind returns the default predicate implied by an input kind: email and
// number kinds validate their format, other kinds have none.
func ForKind(kind field.InputKind) field.OptionalPredicate {
	switch kind {
	case field.KindEmail:
		return field.Use(Email())
	case field.KindNumber:
		return field.Use(Numeric())
	}
	return field.NoPredicate
}
