//go:build unix

package autoreset

import (
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// pipeBackend implements the event using a self-pipe, for platforms with no
// better native primitive. One byte in the pipe is one credit.
//
// A pipe happily buffers many bytes, so pending records whether the byte is
// outstanding. mu is held across both the flag and the syscall it describes,
// so a signal that finds pending set returns after the byte is in the pipe,
// and there is never more than one byte outstanding.
type pipeBackend struct {
	mu      sync.Mutex
	rfd     int
	wfd     int
	pending bool
}

// pipeSetNonblock is swapped by tests, to fail setup partway.
var pipeSetNonblock = unix.SetNonblock

// newPipeBackend creates the pipe, with both ends close-on-exec and
// non-blocking. On failure, both ends are closed.
func newPipeBackend() (*pipeBackend, error) {
	var fds [2]int

	// same as os.Pipe, on platforms without pipe2
	syscall.ForkLock.RLock()
	err := unix.Pipe(fds[:])
	if err == nil {
		unix.CloseOnExec(fds[0])
		unix.CloseOnExec(fds[1])
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return nil, createError(backendPipe, "pipe", err)
	}

	cleanup := func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	}

	if err := pipeSetNonblock(fds[0], true); err != nil {
		cleanup()
		return nil, createError(backendPipe, "set nonblock", err)
	}
	if err := pipeSetNonblock(fds[1], true); err != nil {
		cleanup()
		return nil, createError(backendPipe, "set nonblock", err)
	}

	return &pipeBackend{rfd: fds[0], wfd: fds[1]}, nil
}

func (b *pipeBackend) signal() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending {
		return nil
	}
	var buf [1]byte
	_, err := writeFD(b.wfd, buf[:])
	switch err {
	case nil, unix.EAGAIN:
		// a full pipe already holds a credit
		b.pending = true
		return nil
	default:
		return err
	}
}

func (b *pipeBackend) wait(timeout time.Duration) (bool, error) {
	return waitFD(b.rfd, timeout, b.take)
}

// take reads the single pending byte, if any, which makes the read the
// consume operation.
func (b *pipeBackend) take() (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var buf [1]byte
	n, err := readFD(b.rfd, buf[:])
	switch {
	case err == unix.EAGAIN:
		return false, nil
	case err != nil:
		return false, err
	case n == 0:
		// EOF, the write end is gone
		return false, unix.EPIPE
	}
	b.pending = false
	return true, nil
}

func (b *pipeBackend) fd() uintptr {
	return uintptr(b.rfd)
}

func (b *pipeBackend) close() error {
	err := unix.Close(b.rfd)
	if err2 := unix.Close(b.wfd); err == nil {
		err = err2
	}
	return err
}

func (b *pipeBackend) name() string {
	return backendPipe
}
