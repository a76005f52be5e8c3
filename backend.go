package autoreset

import (
	"time"
)

// Backend names, as reported by [Event.Backend].
const (
	backendEventfd    = "eventfd"
	backendKqueue     = "kqueue"
	backendPipe       = "pipe"
	backendWin32Event = "win32event"
)

// backend is one platform realization of the event. Implementations must be
// safe for concurrent signal and wait calls, and must not hold any resources
// if their constructor returns an error.
type backend interface {
	// signal sets the event, a no-op if it is already set.
	signal() error

	// wait consumes the signal, blocking for up to timeout. A negative
	// timeout blocks indefinitely, zero never blocks. Reports whether the
	// signal was consumed.
	wait(timeout time.Duration) (bool, error)

	// fd returns the waitable handle or descriptor.
	fd() uintptr

	// close releases the OS resources. It is called at most once.
	close() error

	name() string
}
