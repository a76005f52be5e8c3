//go:build windows

package autoreset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestWaitMillis(t *testing.T) {
	for _, tc := range [...]struct {
		timeout time.Duration
		want    uint32
	}{
		{-1, windows.INFINITE},
		{-time.Hour, windows.INFINITE},
		{0, 0},
		{time.Nanosecond, 1},
		{time.Millisecond, 1},
		{time.Millisecond + 1, 2},
		{time.Second, 1000},
		{time.Hour * 24 * 365 * 10, windows.INFINITE - 1},
	} {
		assert.Equal(t, tc.want, waitMillis(tc.timeout), `timeout %v`, tc.timeout)
	}
}

// TestWin32EventBackend_nativeHandle verifies the exposed HANDLE is the auto-reset
// event itself: a native wait on it is the consume operation.
func TestWin32EventBackend_nativeHandle(t *testing.T) {
	b, err := newWin32EventBackend()
	require.NoError(t, err)
	defer func() { require.NoError(t, b.close()) }()

	h := windows.Handle(b.fd())

	ev, err := windows.WaitForSingleObject(h, 0)
	require.Equal(t, uint32(windows.WAIT_TIMEOUT), ev, `%v`, err)

	require.NoError(t, b.signal())
	require.NoError(t, b.signal())

	ev, err = windows.WaitForSingleObject(h, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(windows.WAIT_OBJECT_0), ev)

	ok, err := b.wait(0)
	require.NoError(t, err)
	require.False(t, ok)
}
