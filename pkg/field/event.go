package field

// InputEvent carries a raw input change from the host.
type InputEvent struct {
	// Value is the text after the change.
	Value string
	// Source is the host's native event, passed through untouched.
	Source any
}

// Event is the triggering event of an icon click. The field suppresses its
// default action and propagation before notifying the host.
type Event interface {
	PreventDefault()
	StopPropagation()
}

// BasicEvent is an Event that records the calls made on it. Hosts without a
// native event model can pass one.
type BasicEvent struct {
	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault marks the default action as suppressed.
func (e *BasicEvent) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation marks propagation as stopped.
func (e *BasicEvent) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *BasicEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *BasicEvent) PropagationStopped() bool {
	return e.propagationStopped
}
