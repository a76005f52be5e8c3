//go:build linux

package autoreset

func testBackendFactories() []backendFactory {
	return []backendFactory{
		{name: backendEventfd, new: func() (backend, error) { return newEventfdBackend() }},
		{name: backendPipe, new: func() (backend, error) { return newPipeBackend() }},
	}
}
