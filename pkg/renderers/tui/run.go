package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-textfield/pkg/field"
)

// ErrAborted is returned by Run when the user quits without a valid value.
var ErrAborted = errors.New("tui: aborted")

// Program wires input and output streams, mostly for tests.
type Program struct {
	In  io.Reader
	Out io.Writer
}

// Run hosts f in a bubbletea program until the value validates or the user
// quits. An unmounted field is mounted for the duration of the call.
func (p Program) Run(ctx context.Context, f *field.Field, options ...Option) (string, error) {
	if !f.Mounted() {
		f.Mount()
		defer f.Unmount()
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(New(f, options...), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("tui: run program: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.Submitted() {
		return "", ErrAborted
	}
	return f.Value(), nil
}

// Run is Program{}.Run on the process terminal.
func Run(ctx context.Context, f *field.Field, options ...Option) (string, error) {
	return Program{}.Run(ctx, f, options...)
}
