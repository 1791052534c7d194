package commands

import (
	"fmt"
	"os"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Env prints the environment variables the binding reads and their effect
// on the current process.
func Env(args []string) error {
	vars := []struct {
		name, desc string
	}{
		{ffi.EnvDocs, "skip loading the native library (docs mode)"},
		{ffi.EnvPath, "override the native artifact path"},
		{ffi.EnvDebug, "install the diagnostic callback after initialize"},
	}

	for _, v := range vars {
		val, set := os.LookupEnv(v.name)
		if !set {
			fmt.Printf("%-12s (unset)   %s\n", v.name, v.desc)
			continue
		}
		fmt.Printf("%-12s %-9q %s\n", v.name, val, v.desc)
	}

	fmt.Println()
	fmt.Printf("docs mode:  %v\n", ffi.DocsMode())
	fmt.Printf("debug mode: %v\n", ffi.Debug())

	path, err := ffi.TargetPath()
	if err != nil {
		return err
	}
	fmt.Printf("artifact:   %s\n", path)
	return nil
}
