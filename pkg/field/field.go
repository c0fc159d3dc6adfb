package field

import (
	"io"
	"log/slog"
)

// State is a snapshot of a field handed to rendering surfaces.
type State struct {
	Value     string `json:"value"`
	Activated bool   `json:"activated"`
	Focused   bool   `json:"focused"`
	Error     bool   `json:"error"`
}

// Field is a text input state machine. Create it with New, call Mount before
// use and Unmount when the host discards it. Every operation on an unmounted
// field panics with a *MisuseError.
type Field struct {
	cfg    Config
	logger *slog.Logger

	value     string
	activated bool
	focused   bool
	failed    bool
	mounted   bool

	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(State)
}

// New builds an unmounted field from options.
func New(options ...Option) *Field {
	cfg := NewConfig(options...)
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Name != "" {
		logger = logger.With("field", cfg.Name)
	}
	return &Field{
		cfg:    cfg,
		logger: logger,
	}
}

// NewMounted builds a field and mounts it.
func NewMounted(options ...Option) *Field {
	f := New(options...)
	f.Mount()
	return f
}

// Config returns a copy of the field configuration. The style record is
// copied so callers cannot reach the field's map.
func (f *Field) Config() Config {
	cfg := f.cfg
	cfg.Style = f.cfg.StyleCopy()
	return cfg
}

// Name returns the configured identifier.
func (f *Field) Name() string {
	return f.cfg.Name
}

// Mounted reports whether the field is mounted.
func (f *Field) Mounted() bool {
	return f.mounted
}

// Mount starts the field lifecycle: all flags start false and the configured
// value is applied through SetValue, so a non-empty initial value activates
// the label.
func (f *Field) Mount() {
	if f.mounted {
		panic(f.misuse("mount", ErrAlreadyMounted))
	}
	f.mounted = true
	f.value = ""
	f.activated, f.focused, f.failed = false, false, false
	f.logger.Debug("textfield mounted")
	f.SetValue(f.cfg.Value)
}

// Unmount ends the lifecycle and drops all listeners.
func (f *Field) Unmount() {
	f.mustBeMounted("unmount")
	f.mounted = false
	f.listeners = nil
	f.logger.Debug("textfield unmounted")
}

// Snapshot returns the current state.
func (f *Field) Snapshot() State {
	f.mustBeMounted("snapshot")
	return f.snapshot()
}

// Subscribe registers fn to receive a snapshot after every state update. The
// returned function removes the registration.
func (f *Field) Subscribe(fn func(State)) func() {
	f.mustBeMounted("subscribe")
	if fn == nil {
		return func() {}
	}
	f.nextID++
	id := f.nextID
	f.listeners = append(f.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}

// Value returns the current text.
func (f *Field) Value() string {
	f.mustBeMounted("get value")
	return f.value
}

// SetValue replaces the text and sets Activated to whether it is non-empty.
// Focused and Error are left alone and no validation runs.
func (f *Field) SetValue(value string) {
	f.mustBeMounted("set value")
	f.value = value
	f.activated = len(value) > 0
	f.commit("set value")
}

// Focus activates the label and marks the field focused.
func (f *Field) Focus() {
	f.mustBeMounted("focus")
	f.activated = true
	f.focused = true
	f.commit("focus")
}

// Blur drops focus and lowers the label when the field is empty. The error
// flag survives a blur; only Input, Test and Clear reset it.
func (f *Field) Blur() {
	f.mustBeMounted("blur")
	f.focused = false
	f.activated = len(f.value) != 0
	f.commit("blur")
}

// Input records a keystroke. The new text is stored, the error flag is reset
// optimistically and the event is forwarded to the input callback.
//
// Emptying the field while typing keeps the label where it was; a non-empty
// value always activates it.
func (f *Field) Input(ev InputEvent) {
	f.mustBeMounted("input")
	f.value = ev.Value
	if len(f.value) > 0 {
		f.activated = true
	}
	f.failed = false
	f.commit("input")

	if f.cfg.OnInput != nil {
		f.cfg.OnInput(ev)
	}
}

// IconClick suppresses the event's default action and propagation, then calls
// the icon callback with a Handle to this field.
func (f *Field) IconClick(ev Event) {
	f.mustBeMounted("icon click")
	if ev != nil {
		ev.StopPropagation()
		ev.PreventDefault()
	}
	if f.cfg.OnIconClick != nil {
		f.cfg.OnIconClick(f.Handle())
	}
}

// Test validates the current value. The explicit predicate wins over the
// configured one; with neither the value counts as valid and state is left
// untouched.
//
// A failed test sets Error and Focused, and keeps the label raised even for an
// empty value so the error is visible.
func (f *Field) Test(p OptionalPredicate) bool {
	f.mustBeMounted("test")
	fn, ok := p.Or(f.cfg.Predicate).Get()
	if !ok {
		return true
	}

	valid := fn(f.value)
	f.failed = !valid
	f.focused = !valid
	f.activated = len(f.value) != 0 || !valid
	f.commit("test")
	if !valid {
		f.logger.Debug("textfield validation failed")
	}
	return valid
}

// TestFunc is Test with a plain predicate; nil falls back to the configured one.
func (f *Field) TestFunc(fn Predicate) bool {
	return f.Test(Use(fn))
}

// Validate runs the configured predicate.
func (f *Field) Validate() bool {
	return f.Test(NoPredicate)
}

// Clear empties the value and resets every flag.
func (f *Field) Clear() {
	f.mustBeMounted("clear")
	f.value = ""
	f.activated, f.focused, f.failed = false, false, false
	f.commit("clear")
}

// Handle returns the capability limited view handed to host callbacks.
func (f *Field) Handle() Handle {
	return handle{f: f}
}

func (f *Field) snapshot() State {
	return State{
		Value:     f.value,
		Activated: f.activated,
		Focused:   f.focused,
		Error:     f.failed,
	}
}

func (f *Field) commit(op string) {
	state := f.snapshot()
	f.logger.Debug("textfield transition",
		"op", op,
		"activated", state.Activated,
		"focused", state.Focused,
		"error", state.Error,
	)
	if len(f.listeners) == 0 {
		return
	}
	listeners := append([]listener(nil), f.listeners...)
	for _, l := range listeners {
		l.fn(state)
	}
}

func (f *Field) mustBeMounted(op string) {
	if !f.mounted {
		panic(f.misuse(op, ErrNotMounted))
	}
}

func (f *Field) misuse(op string, err error) *MisuseError {
	return &MisuseError{Op: op, Field: f.cfg.Name, Err: err}
}
