package server

import "errors"

var (
	// ErrUnknownField is returned for routes naming a field that is not hosted.
	ErrUnknownField = errors.New("server: unknown field")
	// ErrUnknownEvent is returned for unsupported event names.
	ErrUnknownEvent = errors.New("server: unknown event")
	// ErrNoFields is returned by New when the store is empty.
	ErrNoFields = errors.New("server: no fields configured")
)
