package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the renderer cannot run with.
func (c *Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.DragDivisor == 0 {
		err = multierr.Append(err, errors.New("camera.drag_divisor must not be zero"))
	}
	if c.Particles.Capacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("particles.capacity %d must be positive", c.Particles.Capacity))
	}
	if c.Scene.AssetDir == "" {
		err = multierr.Append(err, errors.New("scene.asset_dir must be set"))
	}
	if c.Particles.PerFrame < 0 {
		err = multierr.Append(err, fmt.Errorf("particles.per_frame %d must not be negative", c.Particles.PerFrame))
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Skyfountain")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Skyfountain")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "skyfountain")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "skyfountain")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
