package field

// Handle is the narrow view of a field given to host callbacks. It exposes the
// value and the validate/clear operations but none of the event handlers or
// configuration.
type Handle interface {
	Value() string
	SetValue(value string)
	Test(p OptionalPredicate) bool
	Clear()
}

type handle struct {
	f *Field
}

var _ Handle = handle{}

func (h handle) Value() string                 { return h.f.Value() }
func (h handle) SetValue(value string)         { h.f.SetValue(value) }
func (h handle) Test(p OptionalPredicate) bool { return h.f.Test(p) }
func (h handle) Clear()                        { h.f.Clear() }
