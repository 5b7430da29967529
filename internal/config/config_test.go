package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

// loadFile overlays a YAML file on the defaults and validates the result.
func loadFile(t *testing.T, path string) *Config {
	t.Helper()
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loading %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validating %s: %v", path, err)
	}
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Camera defaults
	if cfg.Camera.DragDivisor != 16 {
		t.Errorf("expected drag divisor 16, got %f", cfg.Camera.DragDivisor)
	}
	if cfg.Camera.EyeHeight != 1.5 || cfg.Camera.EyeDistance != 5 {
		t.Errorf("expected eye (1.5, 5), got (%f, %f)", cfg.Camera.EyeHeight, cfg.Camera.EyeDistance)
	}

	// Particle defaults
	if cfg.Particles.Capacity != 10000 {
		t.Errorf("expected capacity 10000, got %d", cfg.Particles.Capacity)
	}
	if cfg.Particles.PerFrame != 5 {
		t.Errorf("expected 5 particles per frame, got %d", cfg.Particles.PerFrame)
	}

	// Scene defaults
	if cfg.Scene.Skybox[0] != "night_left.png" || cfg.Scene.Skybox[5] != "night_back.png" {
		t.Errorf("unexpected skybox faces %v", cfg.Scene.Skybox)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  asset_dir: /opt/demo
  heightmap: hills.bmp
  skybox: [l.png, r.png, d.png, u.png, f.png, b.png]

camera:
  drag_divisor: 8

particles:
  capacity: 2000
  per_frame: 3

logging:
  level: debug
  log_file: /tmp/skyfountain.log
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := loadFile(t, configPath)

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync false")
	}
	if cfg.Scene.Heightmap != "hills.bmp" {
		t.Errorf("expected heightmap hills.bmp, got %s", cfg.Scene.Heightmap)
	}
	if cfg.Scene.Skybox[3] != "u.png" {
		t.Errorf("expected +Y face u.png, got %s", cfg.Scene.Skybox[3])
	}
	if cfg.Camera.DragDivisor != 8 {
		t.Errorf("expected drag divisor 8, got %f", cfg.Camera.DragDivisor)
	}
	if cfg.Particles.Capacity != 2000 || cfg.Particles.PerFrame != 3 {
		t.Errorf("unexpected particles %+v", cfg.Particles)
	}
	// Unset values keep their defaults
	if cfg.Particles.AngleVariance != 5 {
		t.Errorf("expected default angle variance 5, got %f", cfg.Particles.AngleVariance)
	}
	if cfg.Window.Title != "skyfountain" {
		t.Errorf("expected default title, got %s", cfg.Window.Title)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Scene.AssetDir != "/opt/demo" {
		t.Errorf("expected asset dir /opt/demo, got %s", cfg.Scene.AssetDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"zero divisor", func(c *Config) { c.Camera.DragDivisor = 0 }, "drag_divisor"},
		{"no capacity", func(c *Config) { c.Particles.Capacity = 0 }, "capacity"},
		{"negative rate", func(c *Config) { c.Particles.PerFrame = -1 }, "per_frame"},
		{"no asset dir", func(c *Config) { c.Scene.AssetDir = "" }, "asset_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = 0
	cfg.Particles.Capacity = -5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(multierr.Errors(errors.Unwrap(err))); n != 2 {
		t.Errorf("got %d problems, want 2: %v", n, err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Particles.Capacity = 1234
	cfg.Scene.Skybox[2] = "floor.png"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := loadFile(t, path)
	if loaded.Particles.Capacity != 1234 || loaded.Scene.Skybox[2] != "floor.png" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "assets flag",
			setup: func() { *flagAssets = "/srv/assets" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.AssetDir != "/srv/assets" {
					t.Errorf("expected asset dir /srv/assets, got %s", cfg.Scene.AssetDir)
				}
			},
			teardown: func() { *flagAssets = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flags override the config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}
