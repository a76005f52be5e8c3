//go:build windows

package autoreset

func testBackendFactories() []backendFactory {
	return []backendFactory{
		{name: backendWin32Event, new: func() (backend, error) { return newWin32EventBackend() }},
	}
}
