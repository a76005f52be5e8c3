//go:build windows

package autoreset

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

// win32EventBackend is a thin wrapper around an auto-reset event object,
// which natively provides the required semantics.
type win32EventBackend struct {
	h windows.Handle
}

// newWin32EventBackend creates an unnamed, auto-reset, initially
// non-signalled event object.
func newWin32EventBackend() (*win32EventBackend, error) {
	h, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return nil, createError(backendWin32Event, "CreateEvent", err)
	}
	return &win32EventBackend{h: h}, nil
}

func (b *win32EventBackend) signal() error {
	return windows.SetEvent(b.h)
}

func (b *win32EventBackend) wait(timeout time.Duration) (bool, error) {
	ev, err := windows.WaitForSingleObject(b.h, waitMillis(timeout))
	switch ev {
	case windows.WAIT_OBJECT_0:
		return true, nil
	case uint32(windows.WAIT_TIMEOUT):
		return false, nil
	}
	if err == nil {
		err = fmt.Errorf("unexpected wait result %#x", ev)
	}
	return false, err
}

func (b *win32EventBackend) fd() uintptr {
	return uintptr(b.h)
}

func (b *win32EventBackend) close() error {
	return windows.CloseHandle(b.h)
}

func (b *win32EventBackend) name() string {
	return backendWin32Event
}

// waitMillis converts timeout to a WaitForSingleObject argument, rounding up
// to the next millisecond. Negative timeouts map to INFINITE.
func waitMillis(timeout time.Duration) uint32 {
	if timeout < 0 {
		return windows.INFINITE
	}
	ms := (timeout + time.Millisecond - 1) / time.Millisecond
	if ms >= windows.INFINITE {
		return windows.INFINITE - 1
	}
	return uint32(ms)
}
