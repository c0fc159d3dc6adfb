package field

// Predicate reports whether a text value is valid.
type Predicate func(value string) bool

// OptionalPredicate is a predicate that may be absent. The zero value is
// NoPredicate.
type OptionalPredicate struct {
	fn Predicate
}

// NoPredicate is the absent predicate.
var NoPredicate = OptionalPredicate{}

// Use wraps p. A nil p yields NoPredicate.
func Use(p Predicate) OptionalPredicate {
	return OptionalPredicate{fn: p}
}

// Get returns the predicate and whether one is present.
func (o OptionalPredicate) Get() (Predicate, bool) {
	return o.fn, o.fn != nil
}

// Present reports whether a predicate is set.
func (o OptionalPredicate) Present() bool {
	return o.fn != nil
}

// Or returns o when present, otherwise fallback.
func (o OptionalPredicate) Or(fallback OptionalPredicate) OptionalPredicate {
	if o.Present() {
		return o
	}
	return fallback
}
