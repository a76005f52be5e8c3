//go:build !unix && !windows

package autoreset

func newBackend() (backend, error) {
	return nil, ErrUnsupported
}
