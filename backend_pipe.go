//go:build unix && !linux && !darwin && !dragonfly && !freebsd

package autoreset

// newBackend returns the pipe fallback, used by the remaining unix platforms,
// e.g. netbsd and openbsd, which have kqueue but no EVFILT_USER.
func newBackend() (backend, error) {
	b, err := newPipeBackend()
	if err != nil {
		return nil, err
	}
	return b, nil
}
