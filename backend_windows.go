//go:build windows

package autoreset

// newBackend returns the native auto-reset event object backend.
func newBackend() (backend, error) {
	b, err := newWin32EventBackend()
	if err != nil {
		return nil, err
	}
	return b, nil
}
