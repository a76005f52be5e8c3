//go:build linux

package autoreset

// newBackend returns the eventfd backend (linux, android).
func newBackend() (backend, error) {
	b, err := newEventfdBackend()
	if err != nil {
		return nil, err
	}
	return b, nil
}
