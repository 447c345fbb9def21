package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's rendering and output defaults.
type Config struct {
	Border        int    `yaml:"border"`
	OutputPath    string `yaml:"output_path"`
	OpenInBrowser bool   `yaml:"open_in_browser"`
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		Border:        4,
		OutputPath:    "qrcode.svg",
		OpenInBrowser: false,
	}
}

// Load reads and parses a YAML config file at path. A missing file is not
// an error: Load returns Defaults() unchanged. A present-but-malformed file
// returns a non-nil error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
