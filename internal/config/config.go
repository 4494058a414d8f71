// Package config defines the viewer settings and how they are layered: built-in defaults,
// then an optional YAML file, then MOBO_* environment variables.
package config

import (
	"motherboard/internal/animate"
)

// Config holds every tunable of the viewer.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFile receives a copy of every log line. Empty disables the file.
	LogFile string `koanf:"log_file"`

	Title     string `koanf:"title"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	TargetFPS int    `koanf:"target_fps"`
	MSAA      bool   `koanf:"msaa"`

	// Seed drives every random choice in textures and filler. 0 picks one from the clock.
	Seed int64 `koanf:"seed"`

	FieldOfView  float32 `koanf:"fov"`
	OrbitRadius  float32 `koanf:"orbit_radius"`
	OrbitHeight  float32 `koanf:"orbit_height"`
	OrbitSpeed   float32 `koanf:"orbit_speed"`
	BobAmplitude float32 `koanf:"bob_amplitude"`
	BobSpeed     float32 `koanf:"bob_speed"`
	BobPhase     float32 `koanf:"bob_phase"`
	FanStep      float32 `koanf:"fan_step"`

	ShowFPS      bool `koanf:"show_fps"`
	ShowMemAlloc bool `koanf:"show_memalloc"`
	ShowStats    bool `koanf:"show_stats"`

	// UIFont is a font family looked up under FontDir; empty uses the raylib default font.
	UIFont  string `koanf:"ui_font"`
	FontDir string `koanf:"font_dir"`
}

// New returns the default configuration.
func New() *Config {
	p := animate.DefaultParams()
	return &Config{
		LogLevel:     "info",
		LogFile:      "logs/viewer.txt",
		Title:        "Motherboard Resume",
		Width:        1280,
		Height:       720,
		TargetFPS:    60,
		MSAA:         true,
		FieldOfView:  75,
		OrbitRadius:  p.OrbitRadius,
		OrbitHeight:  p.OrbitHeight,
		OrbitSpeed:   p.OrbitSpeed,
		BobAmplitude: p.BobAmplitude,
		BobSpeed:     p.BobSpeed,
		BobPhase:     p.BobPhase,
		FanStep:      p.FanStep,
		FontDir:      "assets/fonts",
	}
}

// Animation returns the animation parameters described by c.
func (c *Config) Animation() animate.Params {
	return animate.Params{
		FanStep:      c.FanStep,
		BobAmplitude: c.BobAmplitude,
		BobSpeed:     c.BobSpeed,
		BobPhase:     c.BobPhase,
		OrbitRadius:  c.OrbitRadius,
		OrbitHeight:  c.OrbitHeight,
		OrbitSpeed:   c.OrbitSpeed,
	}
}
