//go:build unix && !linux && !darwin && !dragonfly && !freebsd

package autoreset

func testBackendFactories() []backendFactory {
	return []backendFactory{
		{name: backendPipe, new: func() (backend, error) { return newPipeBackend() }},
	}
}
