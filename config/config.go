// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MaxParticles bounds the field so 4 vertices per particle fit 16-bit mesh
// indices (4 * 16383 < 65536).
const MaxParticles = 16383

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sphere    SphereConfig    `yaml:"sphere"`
	Atlas     AtlasConfig     `yaml:"atlas"`
	Render    RenderConfig    `yaml:"render"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// RGBConfig is an 8-bit RGB color as written in YAML.
type RGBConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// SphereConfig holds particle field generation parameters.
type SphereConfig struct {
	Count       int       `yaml:"count"`        // target particle count (clamped to index-format limit)
	Radius      float64   `yaml:"radius"`       // sphere radius in world units
	ColorTop    RGBConfig `yaml:"color_top"`    // color at the north pole
	ColorBottom RGBConfig `yaml:"color_bottom"` // color at the south pole
	Text        string    `yaml:"text"`         // source text the glyph set is extracted from
}

// AtlasConfig holds glyph atlas rasterization parameters.
type AtlasConfig struct {
	Size     int    `yaml:"size"`      // square texture resolution in pixels
	FontPath string `yaml:"font_path"` // optional TTF path; empty = raylib default font
}

// RenderConfig holds shader and animation parameters.
type RenderConfig struct {
	BasePointSize float64 `yaml:"base_point_size"` // sprite size in pixels before depth attenuation
	RotateSpeed   float64 `yaml:"rotate_speed"`    // group rotation, radians per second
	ExpandedScale float64 `yaml:"expanded_scale"`  // group scale target while expanded view is active
	ScaleRate     float64 `yaml:"scale_rate"`      // exponential approach rate toward the scale target
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance float64 `yaml:"distance"`
	FovY     float64 `yaml:"fov_y"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds between perf log lines
	PerfWindow  int     `yaml:"perf_window"`  // frames per rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Count     int     // Sphere.Count clamped to the index-format limit
	Radius32  float32 // Sphere.Radius as float32
	ScreenW32 float32
	ScreenH32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects parameter values the renderer cannot honor.
func (c *Config) validate() error {
	if c.Sphere.Count <= 0 {
		return fmt.Errorf("config: sphere.count must be positive, got %d", c.Sphere.Count)
	}
	if c.Sphere.Radius <= 0 {
		return fmt.Errorf("config: sphere.radius must be positive, got %v", c.Sphere.Radius)
	}
	if c.Atlas.Size < 1 {
		return fmt.Errorf("config: atlas.size must be at least 1, got %d", c.Atlas.Size)
	}
	if c.Render.BasePointSize <= 0 {
		return fmt.Errorf("config: render.base_point_size must be positive, got %v", c.Render.BasePointSize)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	count := c.Sphere.Count
	if count > MaxParticles {
		count = MaxParticles
	}
	c.Derived.Count = count
	c.Derived.Radius32 = float32(c.Sphere.Radius)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
