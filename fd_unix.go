//go:build unix

package autoreset

import (
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// readFD reads from a non-blocking descriptor, retrying on EINTR.
func readFD(fd int, buf []byte) (int, error) {
	for {
		n, err := unix.Read(fd, buf)
		if err != unix.EINTR {
			return n, err
		}
	}
}

// writeFD writes to a non-blocking descriptor, retrying on EINTR.
func writeFD(fd int, buf []byte) (int, error) {
	for {
		n, err := unix.Write(fd, buf)
		if err != unix.EINTR {
			return n, err
		}
	}
}

// waitFD implements wait for the descriptor based backends. The consume func
// performs the non-blocking drain, returning false if it lost the race (or
// there was nothing to drain). Between attempts, the calling thread sleeps in
// poll(2), until fd is readable or the timeout elapses.
func waitFD(fd int, timeout time.Duration, consume func() (bool, error)) (bool, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		if ok, err := consume(); ok || err != nil {
			return ok, err
		}

		ms := -1
		if timeout >= 0 {
			ms = pollMillis(deadline)
			if ms == 0 {
				return false, nil
			}
		}

		if err := pollReadable(fd, ms); err != nil {
			return false, err
		}
	}
}

// pollReadable blocks until fd is readable (or errored), or ms elapses.
// A negative ms blocks indefinitely. EINTR is not an error, it simply
// returns early, as the caller re-evaluates the deadline.
func pollReadable(fd int, ms int) error {
	fds := [1]unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	_, err := unix.Poll(fds[:], ms)
	if err != nil {
		if err == unix.EINTR {
			return nil
		}
		return err
	}
	if fds[0].Revents&unix.POLLNVAL != 0 {
		return unix.EBADF
	}
	return nil
}

// pollMillis converts the time remaining until deadline to a poll timeout,
// rounding up, so we never return before the deadline. A zero deadline, or
// one in the past, gives zero.
func pollMillis(deadline time.Time) int {
	if deadline.IsZero() {
		return 0
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0
	}
	ms := (remaining + time.Millisecond - 1) / time.Millisecond
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(ms)
}
