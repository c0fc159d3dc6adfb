package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

// Model is a bubbletea model hosting one mounted field. The field owns the
// state; the embedded textinput only edits text and shows the cursor.
type Model struct {
	field   *field.Field
	input   textinput.Model
	help    help.Model
	keys    KeyMap
	styles  Styles
	palette render.Palette
	width   int
	message string

	submitted bool
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithStyles replaces the static styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithPalette overrides TerminalPalette entries.
func WithPalette(palette render.Palette) Option {
	return func(m *Model) {
		m.palette = m.palette.Merge(palette)
	}
}

// WithWidth sets the indicator width in cells.
func WithWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithErrorMessage sets the line shown under a field in error.
func WithErrorMessage(msg string) Option {
	return func(m *Model) {
		m.message = msg
	}
}

// New wraps f, which must be mounted, in a Model.
func New(f *field.Field, options ...Option) Model {
	m := Model{
		field:   f,
		input:   textinput.New(),
		help:    help.New(),
		keys:    DefaultKeyMap,
		styles:  DefaultStyles(),
		palette: TerminalPalette,
		width:   32,
		message: "invalid value",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&m)
		}
	}

	cfg := f.Config()
	m.input.Prompt = ""
	m.input.Width = m.width
	if cfg.Kind == field.KindPassword {
		m.input.EchoMode = textinput.EchoPassword
	}
	m.input.SetValue(f.Value())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.field.Focus()
			return m, m.sync()
		case key.Matches(msg, m.keys.Blur):
			m.field.Blur()
			return m, m.sync()
		case key.Matches(msg, m.keys.Submit):
			if m.field.Validate() {
				m.submitted = true
				return m, tea.Quit
			}
			return m, m.sync()
		case key.Matches(msg, m.keys.Clear):
			m.field.Clear()
			return m, m.sync()
		case key.Matches(msg, m.keys.Icon):
			m.field.IconClick(&field.BasicEvent{})
			return m, m.sync()
		}
	}

	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != m.field.Value() {
		m.field.Input(field.InputEvent{Value: text, Source: msg})
	}
	return m, tea.Batch(cmd, m.sync())
}

// sync mirrors field state into the textinput. Callbacks and failed tests can
// change value and focus behind the widget's back.
func (m *Model) sync() tea.Cmd {
	st := m.field.Snapshot()
	if m.input.Value() != st.Value {
		m.input.SetValue(st.Value)
	}
	m.input.Placeholder = m.view(st).Placeholder

	switch {
	case st.Focused && !m.input.Focused():
		return m.input.Focus()
	case !st.Focused && m.input.Focused():
		m.input.Blur()
	}
	return nil
}

func (m Model) view(st field.State) render.View {
	return render.NewViewWithPalette(m.field.Config(), st, m.palette)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.view(m.field.Snapshot())
	return draw(m.styles, v, m.input.View(), m.width, m.message) + "\n" + m.help.View(m.keys) + "\n"
}

// Submitted reports whether the field was accepted with the submit key.
func (m Model) Submitted() bool {
	return m.submitted
}

// Field returns the hosted field.
func (m Model) Field() *field.Field {
	return m.field
}
