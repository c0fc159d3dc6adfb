package field

import (
	"errors"
	"fmt"
)

var (
	// ErrNotMounted signals an operation on a field that is not mounted.
	ErrNotMounted = errors.New("field: not mounted")
	// ErrAlreadyMounted signals a second Mount without Unmount.
	ErrAlreadyMounted = errors.New("field: already mounted")
	// ErrUnknownInputKind is returned by ParseInputKind.
	ErrUnknownInputKind = errors.New("field: unknown input kind")
)

// MisuseError is the panic value raised when a field is used outside its
// lifecycle.
type MisuseError struct {
	Op    string
	Field string
	Err   error
}

func (e *MisuseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s on %q", e.Err, e.Op, e.Field)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Op)
}

func (e *MisuseError) Unwrap() error {
	return e.Err
}
