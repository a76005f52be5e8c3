package autoreset

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeycumines/logiface"
)

// Event is an autoreset event. It is either signalled or unsignalled. Signal
// sets it, and a wait consumes it, releasing exactly one waiter and returning
// the event to unsignalled. Signalling an already signalled event has no
// effect: the state is binary, not a count.
//
// All methods are safe for concurrent use. The zero value is not usable, use
// [New].
type Event struct {
	backend  backend
	logger   *logiface.Logger[logiface.Event]
	closeErr error
	// mu is held (read) by bounded calls, across the closed check and the
	// backend call, and (write) by Close
	mu        sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
}

// New allocates an event, in the unsignalled state unless [WithSignalled] is
// used. The backend is fixed at build time, see the package docs.
//
// If the OS declines to allocate the event, the error will be a
// [*CreateError]. On platforms with no backend, the error will be
// [ErrUnsupported].
func New(opts ...Option) (*Event, error) {
	cfg, err := resolveEventOptions(opts)
	if err != nil {
		return nil, err
	}

	b, err := newBackend()
	if err != nil {
		logCreateFailed(cfg.logger, err)
		return nil, err
	}

	if cfg.signalled {
		if err := b.signal(); err != nil {
			_ = b.close()
			err = createError(b.name(), "signal", err)
			logCreateFailed(cfg.logger, err)
			return nil, err
		}
	}

	logCreated(cfg.logger, b)

	return &Event{
		backend: b,
		logger:  cfg.logger,
	}, nil
}

// Signal sets the event. If it is already set, Signal does nothing. If any
// goroutines are blocked waiting, at most one of them will be released.
// Signal never blocks.
//
// Signal panics if the event has been closed.
func (e *Event) Signal() {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.checkOpen()
	if err := e.backend.signal(); err != nil {
		e.fatal("signal", err)
	}
}

// Wait blocks the calling goroutine (and its OS thread) until the event is
// signalled, then resets it, and returns. If the event is already signalled,
// Wait returns immediately. When multiple goroutines are waiting, which one is
// released is unspecified.
//
// Wait panics if the event has been closed before the call. Closing the event
// while a Wait is in progress is not supported, see [Event.Close].
func (e *Event) Wait() {
	e.checkOpen()
	if ok, err := e.backend.wait(-1); err != nil {
		e.fatal("wait", err)
	} else if !ok {
		panic(`autoreset: unbounded wait returned without consuming`)
	}
}

// TryWait consumes the signal without blocking, reporting whether the event
// was signalled.
func (e *Event) TryWait() bool {
	return e.TryWaitFor(0)
}

// TryWaitFor is like [Event.Wait], but gives up after the timeout, reporting
// whether the signal was consumed. A timeout <= 0 behaves like
// [Event.TryWait].
func (e *Event) TryWaitFor(timeout time.Duration) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	e.checkOpen()
	if timeout < 0 {
		timeout = 0
	}
	ok, err := e.backend.wait(timeout)
	if err != nil {
		e.fatal("wait", err)
	}
	return ok
}

// Fd returns the OS level waitable handle, for integration with readiness
// notification mechanisms, e.g. epoll, kqueue or an async runtime. On unix
// platforms this is a file descriptor, which is readable while the event is
// signalled. On windows this is the event object HANDLE.
//
// Readiness does not consume the signal, callers must still call one of the
// wait methods. The handle must not be read from, closed, or otherwise
// consumed directly, and is only valid until [Event.Close].
func (e *Event) Fd() uintptr {
	return e.backend.fd()
}

// Backend returns the name of the backend, e.g. "eventfd".
func (e *Event) Backend() string {
	return e.backend.name()
}

// Close releases the OS resources. It is safe to call multiple times, though
// subsequent calls return the result of the first.
//
// Close may be called concurrently with [Event.Signal], [Event.TryWait] and
// [Event.TryWaitFor]: it waits for calls already in progress to return (for
// TryWaitFor, up to its timeout), and any later call panics with [ErrClosed].
// Close must not be called while a goroutine is blocked in [Event.Wait],
// which would be left waiting on a released descriptor. Release it first.
func (e *Event) Close() error {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.closed.Store(true)
		e.closeErr = e.backend.close()
		b := e.logger.Debug().Str(`backend`, e.backend.name())
		if e.closeErr != nil {
			b = b.Err(e.closeErr)
		}
		b.Log(`autoreset: event closed`)
	})
	return e.closeErr
}

func (e *Event) checkOpen() {
	if e.closed.Load() {
		panic(ErrClosed)
	}
}

// fatal handles a kernel error after successful construction, which may only
// occur due to misuse, e.g. closing the raw handle.
func (e *Event) fatal(op string, err error) {
	opErr := &OpError{Backend: e.backend.name(), Op: op, Err: err}
	e.logCritical(opErr)
	panic(opErr)
}
