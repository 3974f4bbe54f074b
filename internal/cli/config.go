package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is picked up from the working directory when
// --config is not given; its absence is not an error.
const defaultConfigFile = "tform.toml"

// Config holds render defaults loaded from a TOML file. Explicit flags
// win over configured values.
type Config struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Background  string  `toml:"background"`
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Font        string  `toml:"font"`
}

// defaultConfig is the baseline every load starts from.
func defaultConfig() Config {
	return Config{
		Width:       512,
		Height:      512,
		Background:  "white",
		Fill:        "steelblue",
		Stroke:      "none",
		StrokeWidth: 1,
		Font:        "12px Go",
	}
}

// loadConfig reads render defaults from path. An empty path tries
// tform.toml in the working directory and silently keeps the defaults
// when the file does not exist; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
