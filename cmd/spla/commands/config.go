package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AcceleratorConfig represents the spla.toml configuration file, which maps
// onto the library's accelerator selection knobs.
type AcceleratorConfig struct {
	Accelerator string `toml:"accelerator"`
	Platform    int    `toml:"platform"`
	Device      int    `toml:"device"`
	Queues      int    `toml:"queues"`
	Debug       bool   `toml:"debug"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() AcceleratorConfig {
	return AcceleratorConfig{
		Accelerator: "opencl",
		Platform:    0,
		Device:      0,
		Queues:      1,
	}
}

// LoadConfig loads the accelerator configuration from path.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (AcceleratorConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}
