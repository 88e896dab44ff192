// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	Model string  `yaml:"model"`  // Path to the OBJ file to load
	Spin  bool    `yaml:"spin"`   // Auto-rotate the model
	Zoom  float32 `yaml:"zoom"`   // Camera distance as a multiple of the bounding radius
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Spin: true,
			Zoom: 2.5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
