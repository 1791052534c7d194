package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Parzival-05/spla"
)

// Info initializes the native library, applies the accelerator settings
// from the configuration file and prints what the library reports back.
func Info(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	configPath := fs.String("config", "spla.toml", "accelerator configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}

	if err := spla.Initialize(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer spla.Finalize()

	fmt.Printf("binding version: %s\n", spla.Version)
	fmt.Printf("library path:    %s\n", spla.LibraryPath())

	if spla.IsDocs() {
		fmt.Println("docs mode: no native backend loaded")
		return nil
	}

	if config.Debug {
		if err := spla.SetDefaultCallback(); err != nil {
			return err
		}
	}

	acc := spla.AcceleratorNone
	if strings.EqualFold(config.Accelerator, "opencl") {
		acc = spla.AcceleratorOpenCL
	}
	if err := spla.SetAccelerator(acc); err != nil {
		return fmt.Errorf("set accelerator: %w", err)
	}

	if acc != spla.AcceleratorNone {
		if err := spla.SetPlatform(config.Platform); err != nil {
			return fmt.Errorf("set platform: %w", err)
		}
		if err := spla.SetDevice(config.Device); err != nil {
			return fmt.Errorf("set device: %w", err)
		}
		if err := spla.SetQueuesCount(config.Queues); err != nil {
			return fmt.Errorf("set queues: %w", err)
		}
	}

	info, err := spla.AcceleratorInfo()
	if err != nil {
		return fmt.Errorf("accelerator info: %w", err)
	}
	fmt.Printf("accelerator:     %s\n", info)
	return nil
}
