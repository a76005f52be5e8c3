//go:build unix

package autoreset_test

import (
	"testing"

	"github.com/joeycumines/go-autoreset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestEvent_fatalOnBrokenDescriptor simulates misuse of the raw handle, which
// must fail loudly rather than being swallowed. The handle is replaced by a
// write-only descriptor, so the number stays allocated for the whole test.
func TestEvent_fatalOnBrokenDescriptor(t *testing.T) {
	var buf syncBuffer
	ev, err := autoreset.New(autoreset.WithLogger(newTestLogger(&buf)))
	require.NoError(t, err)

	devNull, err := unix.Open(`/dev/null`, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	require.NoError(t, err)
	defer unix.Close(devNull)
	require.NoError(t, unix.Dup2(devNull, int(ev.Fd())))

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		ev.TryWait()
	}()

	require.NotNil(t, recovered)
	opErr, ok := recovered.(*autoreset.OpError)
	require.True(t, ok, `unexpected panic value: %v`, recovered)
	assert.Equal(t, `wait`, opErr.Op)
	assert.Equal(t, ev.Backend(), opErr.Backend)
	var errno unix.Errno
	require.ErrorAs(t, opErr, &errno)
	// read(2) gives EBADF, kevent(2) on a non-kqueue may give EINVAL
	assert.Contains(t, []unix.Errno{unix.EBADF, unix.EINVAL}, errno)

	out := buf.String()
	assert.Contains(t, out, `autoreset: fatal kernel error`)
	assert.Contains(t, out, `"op":"wait"`)

	// closes the dup, which the test still owns the number of
	assert.NoError(t, ev.Close())
}
