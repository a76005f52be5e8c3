//go:build linux

package autoreset

import (
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"
)

// eventfdOne is the native-endian encoding of the counter increment.
var eventfdOne = func() (b [8]byte) {
	binary.NativeEndian.PutUint64(b[:], 1)
	return
}()

// eventfdBackend implements the event using a single eventfd (Linux).
//
// The eventfd counter is additive, but it behaves as a flag: any non-zero
// count is signalled, and a read (without EFD_SEMAPHORE) returns the whole
// count and resets it to zero. Every signal writes, so a signal has always
// reached the kernel by the time it returns.
type eventfdBackend struct {
	efd int
}

// newEventfdBackend creates a non-blocking, close-on-exec eventfd, with an
// initial count of zero (unsignalled).
func newEventfdBackend() (*eventfdBackend, error) {
	efd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, createError(backendEventfd, "eventfd", err)
	}
	return &eventfdBackend{efd: efd}, nil
}

func (b *eventfdBackend) signal() error {
	_, err := writeFD(b.efd, eventfdOne[:])
	if err == unix.EAGAIN {
		// the counter is at its max, i.e. signalled
		return nil
	}
	return err
}

func (b *eventfdBackend) wait(timeout time.Duration) (bool, error) {
	return waitFD(b.efd, timeout, b.drain)
}

// drain performs the atomic Signalled -> Unsignalled transition: a read of an
// eventfd (without EFD_SEMAPHORE) returns the counter and resets it to zero.
func (b *eventfdBackend) drain() (bool, error) {
	var buf [8]byte
	_, err := readFD(b.efd, buf[:])
	switch err {
	case nil:
		return true, nil
	case unix.EAGAIN:
		return false, nil
	default:
		return false, err
	}
}

func (b *eventfdBackend) fd() uintptr {
	return uintptr(b.efd)
}

func (b *eventfdBackend) close() error {
	return unix.Close(b.efd)
}

func (b *eventfdBackend) name() string {
	return backendEventfd
}
