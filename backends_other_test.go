//go:build !unix && !windows

package autoreset

func testBackendFactories() []backendFactory {
	return nil
}
