package prompt

import "log/slog"

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is used when WithTheme is not supplied.
var DefaultTheme = Theme{
	InfoPrefix:  "",
	ErrorPrefix: "✗ ",
}

// Option configures the prompt host.
type Option func(*Host)

// WithPromptDriver overrides the prompt driver used by the host.
func WithPromptDriver(driver PromptDriver) Option {
	return func(h *Host) {
		if driver != nil {
			h.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(h *Host) {
		h.theme = theme
	}
}

// WithMaxAttempts bounds the number of rejected values. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(h *Host) {
		if n >= 0 {
			h.maxAttempts = n
		}
	}
}

// WithInvalidMessage sets the message printed after a rejected value.
func WithInvalidMessage(msg string) Option {
	return func(h *Host) {
		if msg != "" {
			h.invalidMessage = msg
		}
	}
}

// WithClearPrompt asks whether to clear the field after a rejected value
// instead of offering it again as the default.
func WithClearPrompt(enabled bool) Option {
	return func(h *Host) {
		h.confirmClear = enabled
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}
