package ffi

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// TargetName returns the shared library artifact name for an OS and CPU
// architecture pair: {prefix}_{arch}{suffix}, where the prefix is "libspla"
// everywhere except Windows ("spla"). Any pair outside the closed set is a
// configuration error, reported before any load is attempted.
func TargetName(goos, goarch string) (string, error) {
	var arch string
	switch goarch {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "arm64"
	default:
		return "", fmt.Errorf("%w: unsupported architecture %q", ErrPlatformNotFound, goarch)
	}

	switch goos {
	case "linux":
		return "libspla_" + arch + ".so", nil
	case "darwin":
		return "libspla_" + arch + ".dylib", nil
	case "windows":
		return "spla_" + arch + ".dll", nil
	default:
		return "", fmt.Errorf("%w: unsupported operating system %q", ErrPlatformNotFound, goos)
	}
}

// TargetPath resolves the full path of the artifact to load: the SPLA_PATH
// override when set, otherwise the computed artifact name next to the
// running executable.
func TargetPath() (string, error) {
	if path := PathOverride(); path != "" {
		return path, nil
	}

	name, err := TargetName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return "", err
	}

	exe, err := os.Executable()
	if err != nil {
		return name, nil
	}
	return filepath.Join(filepath.Dir(exe), name), nil
}
