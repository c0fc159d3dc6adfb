package render

import "errors"

// ErrNoRenderer is returned when a registry cannot resolve a renderer name.
var ErrNoRenderer = errors.New("render: no renderer registered")
