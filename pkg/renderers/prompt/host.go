package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-textfield/pkg/field"
)

// Host drives a field from a line oriented terminal. Each attempt focuses the
// field, feeds the answer through Input, blurs and validates it.
type Host struct {
	driver         PromptDriver
	theme          Theme
	maxAttempts    int
	invalidMessage string
	confirmClear   bool
	logger         *slog.Logger
}

// New constructs a Host. Without WithPromptDriver it talks to the process
// terminal through survey.
func New(options ...Option) *Host {
	h := &Host{
		theme:          DefaultTheme,
		invalidMessage: "invalid value",
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	if h.driver == nil {
		h.driver = NewSurveyDriver(Stdio{})
	}
	return h
}

// Run prompts until f validates and returns the accepted value. An unmounted
// field is mounted for the duration of the call.
func (h *Host) Run(ctx context.Context, f *field.Field) (string, error) {
	if !f.Mounted() {
		f.Mount()
		defer f.Unmount()
	}

	cfg := f.Config()
	message := cfg.Label
	if message == "" {
		message = cfg.Name
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		f.Focus()
		answer, err := h.ask(ctx, cfg, InputConfig{
			Message: message,
			Default: f.Value(),
			Help:    cfg.Placeholder,
		})
		if err != nil {
			f.Blur()
			return "", err
		}

		f.Input(field.InputEvent{Value: answer, Source: h})
		f.Blur()
		if f.Validate() {
			h.logger.Debug("textfield prompt accepted", "field", cfg.Name, "attempt", attempt)
			return f.Value(), nil
		}

		h.logger.Debug("textfield prompt rejected", "field", cfg.Name, "attempt", attempt)
		if err := h.driver.Info(ctx, h.theme.ErrorPrefix+h.invalidMessage); err != nil {
			return "", err
		}
		if h.maxAttempts > 0 && attempt >= h.maxAttempts {
			return "", fmt.Errorf("%w: %s after %d attempts", ErrTooManyAttempts, message, attempt)
		}
		if h.confirmClear {
			reset, err := h.driver.Confirm(ctx, ConfirmConfig{Message: "Clear " + message + "?", Default: true})
			if err != nil {
				return "", err
			}
			if reset {
				f.Clear()
			}
		}
	}
}

func (h *Host) ask(ctx context.Context, cfg field.Config, in InputConfig) (string, error) {
	if cfg.Kind == field.KindPassword {
		return h.driver.Password(ctx, in)
	}
	return h.driver.Input(ctx, in)
}
