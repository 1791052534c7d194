//go:build windows

package ffi

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openLibrary loads the spla DLL on Windows. The returned HMODULE is usable
// directly with purego.RegisterLibFunc.
func openLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load spla library from %s: %w", path, err)
	}
	return uintptr(dll.Handle), nil
}
