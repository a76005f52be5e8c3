//go:build darwin || dragonfly || freebsd

package autoreset

func testBackendFactories() []backendFactory {
	return []backendFactory{
		{name: backendKqueue, new: func() (backend, error) { return newKqueueBackend() }},
		{name: backendPipe, new: func() (backend, error) { return newPipeBackend() }},
	}
}
