// Package config handles renderer configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Particles ParticlesConfig `yaml:"particles"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds the fixed demo resources, relative to AssetDir.
type SceneConfig struct {
	AssetDir        string     `yaml:"asset_dir"`
	Heightmap       string     `yaml:"heightmap"`
	Skybox          [6]string  `yaml:"skybox"` // -X, +X, -Y, +Y, -Z, +Z
	ParticleTexture string     `yaml:"particle_texture"`
	ClearColor      [4]float32 `yaml:"clear_color"`
}

// CameraConfig holds drag-to-rotate settings.
type CameraConfig struct {
	DragDivisor float32 `yaml:"drag_divisor"`
	EyeHeight   float32 `yaml:"eye_height"`
	EyeDistance float32 `yaml:"eye_distance"`
}

// ParticlesConfig holds fountain settings.
type ParticlesConfig struct {
	Capacity      int     `yaml:"capacity"`
	PerFrame      int     `yaml:"per_frame"`
	AngleVariance float32 `yaml:"angle_variance"` // degrees
	SpeedVariance float32 `yaml:"speed_variance"`
}

// DebugConfig holds debugging aids.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "skyfountain",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			AssetDir:  "assets",
			Heightmap: "heightmap.png",
			Skybox: [6]string{
				"night_left.png", "night_right.png",
				"night_bottom.png", "night_top.png",
				"night_front.png", "night_back.png",
			},
			ParticleTexture: "particle_texture.png",
			ClearColor:      [4]float32{0, 0, 0, 0},
		},
		Camera: CameraConfig{
			DragDivisor: 16,
			EyeHeight:   1.5,
			EyeDistance: 5,
		},
		Particles: ParticlesConfig{
			Capacity:      10000,
			PerFrame:      5,
			AngleVariance: 5,
			SpeedVariance: 1,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
