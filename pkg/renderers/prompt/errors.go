package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned once the configured attempt limit is
	// spent on values that keep failing validation.
	ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")
)
