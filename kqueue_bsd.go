//go:build darwin || dragonfly || freebsd

package autoreset

import (
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// kqueueIdent allocates the EVFILT_USER identifier for each event.
var kqueueIdent atomic.Uint32

// kqueueBackend implements the event using a kqueue with a single EVFILT_USER
// knote, registered with EV_CLEAR.
//
// NOTE_TRIGGER marks the knote as fired (a no-op if it already is). Delivery
// to a kevent caller resets it, courtesy of EV_CLEAR, and the kernel delivers
// each activation to a single caller, so no user-space state is needed.
type kqueueBackend struct {
	kq    int
	ident int
}

// kqueueRegister is swapped by tests, to fail setup partway.
var kqueueRegister = (*kqueueBackend).apply

// newKqueueBackend creates the kqueue and registers the user event. If the
// registration fails, the kqueue is closed.
func newKqueueBackend() (*kqueueBackend, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, createError(backendKqueue, "kqueue", err)
	}
	unix.CloseOnExec(kq)

	b := &kqueueBackend{
		kq:    kq,
		ident: int(kqueueIdent.Add(1)),
	}

	var changes [1]unix.Kevent_t
	unix.SetKevent(&changes[0], b.ident, unix.EVFILT_USER, unix.EV_ADD|unix.EV_CLEAR)
	if err := kqueueRegister(b, changes[:]); err != nil {
		_ = unix.Close(kq)
		return nil, createError(backendKqueue, "kevent", err)
	}

	return b, nil
}

// apply submits changes, without receiving any events.
func (b *kqueueBackend) apply(changes []unix.Kevent_t) error {
	for {
		_, err := unix.Kevent(b.kq, changes, nil, nil)
		if err != unix.EINTR {
			return err
		}
	}
}

func (b *kqueueBackend) signal() error {
	var changes [1]unix.Kevent_t
	unix.SetKevent(&changes[0], b.ident, unix.EVFILT_USER, 0)
	changes[0].Fflags = unix.NOTE_TRIGGER
	return b.apply(changes[:])
}

func (b *kqueueBackend) wait(timeout time.Duration) (bool, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	var events [4]unix.Kevent_t
	for {
		var ts *unix.Timespec
		if timeout >= 0 {
			var remaining time.Duration
			if timeout > 0 {
				remaining = max(time.Until(deadline), 0)
			}
			v := unix.NsecToTimespec(int64(remaining))
			ts = &v
		}

		n, err := unix.Kevent(b.kq, nil, events[:], ts)
		if err != nil && err != unix.EINTR {
			return false, err
		}

		for _, ev := range events[:max(n, 0)] {
			if ev.Filter != unix.EVFILT_USER || int(ev.Ident) != b.ident {
				// not ours, e.g. something registered via the raw handle
				continue
			}
			if ev.Flags&unix.EV_ERROR != 0 && ev.Data != 0 {
				return false, syscall.Errno(ev.Data)
			}
			return true, nil
		}

		if timeout == 0 && err == nil {
			return false, nil
		}
		if timeout > 0 && !time.Now().Before(deadline) {
			return false, nil
		}
	}
}

func (b *kqueueBackend) fd() uintptr {
	return uintptr(b.kq)
}

// close deregisters the user event, then closes the kqueue. Deregistration is
// best effort, closing the kqueue discards the knote regardless.
func (b *kqueueBackend) close() error {
	var changes [1]unix.Kevent_t
	unix.SetKevent(&changes[0], b.ident, unix.EVFILT_USER, unix.EV_DELETE)
	_ = b.apply(changes[:])
	return unix.Close(b.kq)
}

func (b *kqueueBackend) name() string {
	return backendKqueue
}
