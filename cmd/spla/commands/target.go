package commands

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/Parzival-05/spla/internal/ffi"
)

// Target prints the native artifact name resolved for a platform. Without
// flags it reports the current platform, including the fully resolved path.
func Target(args []string) error {
	fs := flag.NewFlagSet("target", flag.ExitOnError)
	goos := fs.String("os", runtime.GOOS, "target operating system (linux, darwin, windows)")
	goarch := fs.String("arch", runtime.GOARCH, "target architecture (amd64, arm64)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	name, err := ffi.TargetName(*goos, *goarch)
	if err != nil {
		return err
	}
	fmt.Printf("%s/%s: %s\n", *goos, *goarch, name)

	if *goos == runtime.GOOS && *goarch == runtime.GOARCH {
		path, err := ffi.TargetPath()
		if err != nil {
			return err
		}
		fmt.Printf("resolved path: %s\n", path)
		if _, err := os.Stat(path); err != nil {
			fmt.Println("artifact: missing")
		} else {
			fmt.Println("artifact: present")
		}
	}
	return nil
}
