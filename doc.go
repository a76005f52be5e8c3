// Package autoreset provides an autoreset event: a binary synchronization
// flag, used by one goroutine to wake exactly one other, after which it
// automatically returns to the unsignalled state.
//
// # Semantics
//
// An [Event] is either signalled or unsignalled.
//   - [Event.Signal] sets it. Signalling twice before any wait is the same as
//     signalling once, it is not a counting semaphore.
//   - [Event.Wait] blocks until the event is signalled, then resets it. A
//     signal with no waiter present is not lost, it is consumed by the next
//     wait.
//   - Each signal releases at most one waiter. No fairness is guaranteed, the
//     released waiter is chosen by the OS.
//
// [Event.TryWait] and [Event.TryWaitFor] provide non-blocking and bounded
// variants.
//
// # Platform Support
//
// The backend is chosen at build time:
//   - Linux, Android: eventfd
//   - macOS, iOS, DragonFly BSD, FreeBSD: kqueue, with an EVFILT_USER trigger
//   - Windows: an auto-reset event object (CreateEvent)
//   - Other unix: a non-blocking pipe, holding at most one byte
//
// [New] returns [ErrUnsupported] on any other platform.
//
// Waits are genuine kernel blocking operations, which occupy an OS thread for
// their duration, much like a blocking file read.
//
// # Readiness Integration
//
// [Event.Fd] exposes the underlying descriptor (or HANDLE), for use with
// external readiness notification, e.g. registering it with epoll or an
// event loop. Readiness is level triggered, and does not consume the signal:
// after observing readiness, call [Event.TryWait] (or [Event.Wait]) to
// consume it. Consuming the signal by any other means (e.g. reading the
// descriptor) is not supported, and breaks the single release guarantee.
//
// # Errors
//
// All errors are confined to [New]. After successful construction, a kernel
// failure in Signal or Wait indicates misuse (e.g. the descriptor was closed
// via Fd), and panics with an [*OpError]. Use after [Event.Close] panics with
// [ErrClosed].
package autoreset
