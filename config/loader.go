package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Overrides is the subset of configuration that may be changed from a YAML file.
// Zero values leave the built-in default untouched.
type Overrides struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Seed    int64  `yaml:"seed"`
	AppName string `yaml:"app_name"`
	Debug   bool   `yaml:"debug"`
}

const (
	userConfigFile  = "config.yaml"
	localConfigPath = "configs/plumber.yaml"
)

// Load applies YAML overrides on top of the defaults.
// Search order: customPath -> <user config dir>/<app>/config.yaml -> ./configs/plumber.yaml.
// A missing file is not an error; a file that exists but cannot be parsed is.
// The returned string is the path that was applied, or "" when none was found.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return customPath, applyYAML(customPath, data)
	}

	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return path, applyYAML(path, data)
	}
	return "", nil
}

func applyYAML(path string, data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return Apply(o)
}

// Apply merges o into the active configuration and re-validates it.
func Apply(o Overrides) error {
	width, height := C.Width, C.Height
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}
	ApplyScreenSize(width, height)
	if o.Seed != 0 {
		C.Seed = o.Seed
	}
	if o.Debug {
		C.Debug = true
	}
	if o.AppName != "" {
		Persistence.AppName = o.AppName
	}
	return Validate()
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, Persistence.AppName, userConfigFile)
}
