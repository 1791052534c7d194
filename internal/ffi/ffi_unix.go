//go:build darwin || linux

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// openLibrary loads the spla shared object on Unix-like systems. RTLD_GLOBAL
// keeps the library's own symbols resolvable for its accelerator backends.
func openLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("failed to load spla library from %s: %w", path, err)
	}
	return handle, nil
}
