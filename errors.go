package autoreset

import (
	"errors"
	"fmt"
)

// Standard errors.
var (
	// ErrClosed is the panic value when an [Event] is used after [Event.Close].
	ErrClosed = errors.New("autoreset: event closed")

	// ErrUnsupported is returned by [New] on platforms with no backend. It
	// matches [errors.ErrUnsupported].
	ErrUnsupported = fmt.Errorf("autoreset: no backend for this platform: %w", errors.ErrUnsupported)
)

// CreateError is returned by [New] when the OS declines to allocate the
// resources backing an event, e.g. because the descriptor table is full.
// Nothing allocated by the failed call remains open.
type CreateError struct {
	// Err is the underlying OS error, typically a [syscall.Errno].
	Err error

	// Backend names the backend that failed, e.g. "eventfd".
	Backend string

	// Op names the failing system call, e.g. "kqueue" or "pipe".
	Op string
}

// Error implements the error interface.
func (e *CreateError) Error() string {
	if e.Err == nil {
		return "autoreset: " + e.Backend + ": " + e.Op + " failed"
	}
	return "autoreset: " + e.Backend + ": " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *CreateError) Unwrap() error {
	return e.Err
}

// OpError describes a kernel failure during Signal or Wait. These indicate a
// programming error (e.g. the descriptor was closed behind the event's back),
// and are only ever observed as panic values.
type OpError struct {
	Err     error
	Backend string
	Op      string
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Err == nil {
		return "autoreset: " + e.Backend + ": " + e.Op + " failed"
	}
	return "autoreset: " + e.Backend + ": " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *OpError) Unwrap() error {
	return e.Err
}

// createError wraps err as a *CreateError, passing through nil and errors
// that are already a *CreateError.
func createError(backend, op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CreateError
	if errors.As(err, &ce) {
		return err
	}
	return &CreateError{Backend: backend, Op: op, Err: err}
}
