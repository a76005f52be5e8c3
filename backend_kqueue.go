//go:build darwin || dragonfly || freebsd

package autoreset

// newBackend returns the kqueue EVFILT_USER backend (darwin, ios, dragonfly, freebsd).
func newBackend() (backend, error) {
	b, err := newKqueueBackend()
	if err != nil {
		return nil, err
	}
	return b, nil
}
