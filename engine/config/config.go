// Package config loads editor settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-scene/common"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full editor configuration. Zero-valued fields in a file keep their defaults.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Renderer RendererConfig `yaml:"renderer" toml:"renderer"`
	Camera   CameraConfig   `yaml:"camera" toml:"camera"`
	Editor   EditorConfig   `yaml:"editor" toml:"editor"`
}

// WindowConfig sizes the main window.
type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// RendererConfig selects presentation options.
type RendererConfig struct {
	// PresentMode is "vsync" or "uncapped".
	PresentMode   string `yaml:"present_mode" toml:"present_mode"`
	MSAA          int    `yaml:"msaa" toml:"msaa"`
	ForceSoftware bool   `yaml:"force_software" toml:"force_software"`
	ClearColor    string `yaml:"clear_color" toml:"clear_color"`
	// FrameLimit caps frames per second; 0 means unlimited.
	FrameLimit int  `yaml:"frame_limit" toml:"frame_limit"`
	Profile    bool `yaml:"profile" toml:"profile"`
}

// CameraConfig sets the projection and the orbit controller's start and limits.
// Angles are in degrees.
type CameraConfig struct {
	Fov         float32 `yaml:"fov" toml:"fov"`
	Near        float32 `yaml:"near" toml:"near"`
	Far         float32 `yaml:"far" toml:"far"`
	Theta       float32 `yaml:"theta" toml:"theta"`
	Phi         float32 `yaml:"phi" toml:"phi"`
	Radius      float32 `yaml:"radius" toml:"radius"`
	MinRadius   float32 `yaml:"min_radius" toml:"min_radius"`
	MaxRadius   float32 `yaml:"max_radius" toml:"max_radius"`
	RotateSpeed float32 `yaml:"rotate_speed" toml:"rotate_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed" toml:"zoom_speed"`
}

// EditorConfig sets colors, edit steps and the model files bound to keys 1 to 5.
type EditorConfig struct {
	DefaultColor   string `yaml:"default_color" toml:"default_color"`
	HighlightColor string `yaml:"highlight_color" toml:"highlight_color"`

	TranslateStep float32 `yaml:"translate_step" toml:"translate_step"`
	ScaleUp       float32 `yaml:"scale_up" toml:"scale_up"`
	ScaleDown     float32 `yaml:"scale_down" toml:"scale_down"`
	// RotateStep is in degrees.
	RotateStep float32 `yaml:"rotate_step" toml:"rotate_step"`
	// SpinSpeed is in radians per second.
	SpinSpeed float32 `yaml:"spin_speed" toml:"spin_speed"`

	ObjectScale float32 `yaml:"object_scale" toml:"object_scale"`
	BoxScale    float32 `yaml:"box_scale" toml:"box_scale"`

	Models         []string `yaml:"models" toml:"models"`
	PreloadWorkers int      `yaml:"preload_workers" toml:"preload_workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "oxy-scene",
			Width:  1024,
			Height: 600,
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
			MSAA:        1,
			ClearColor:  "black",
		},
		Camera: CameraConfig{
			Fov:         45,
			Near:        1,
			Far:         100,
			Theta:       45,
			Phi:         74.48,
			Radius:      5,
			MinRadius:   3,
			MaxRadius:   15,
			RotateSpeed: 0.25,
			ZoomSpeed:   0.05,
		},
		Editor: EditorConfig{
			DefaultColor:   "dimgray",
			HighlightColor: "red",
			TranslateStep:  0.1,
			ScaleUp:        1.1,
			ScaleDown:      0.9,
			RotateStep:     0.1,
			SpinSpeed:      1,
			ObjectScale:    0.5,
			BoxScale:       0.4,
			Models:         []string{"ball.obj", "capsule.obj", "house.obj", "monkey.obj", "thorus.obj"},
			PreloadWorkers: 4,
		},
	}
}

// Load reads a config file over the defaults. The format follows the extension:
// .yaml and .yml for YAML, .toml for TOML. The result is validated.
//
// Parameters:
//   - path: the config file
//
// Returns:
//   - Config: the loaded configuration
//   - error: a read, parse, or validation error
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config data over the defaults and validates it.
//
// Parameters:
//   - data: the encoded config
//   - ext: ".yaml", ".yml" or ".toml"
//
// Returns:
//   - Config: the decoded configuration
//   - error: a parse or validation error
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format: %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and color names.
//
// Returns:
//   - error: every problem found, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Renderer.PresentMode == "vsync" || c.Renderer.PresentMode == "uncapped", "present_mode %q", c.Renderer.PresentMode)
	check(c.Renderer.MSAA == 1 || c.Renderer.MSAA == 4, "msaa %d, want 1 or 4", c.Renderer.MSAA)
	check(c.Renderer.FrameLimit >= 0, "frame_limit %d", c.Renderer.FrameLimit)
	check(c.Camera.Fov > 0 && c.Camera.Fov < 180, "fov %v", c.Camera.Fov)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near, "near %v far %v", c.Camera.Near, c.Camera.Far)
	check(c.Camera.MinRadius > 0 && c.Camera.MaxRadius >= c.Camera.MinRadius, "radius limits %v..%v", c.Camera.MinRadius, c.Camera.MaxRadius)
	check(c.Camera.Radius >= c.Camera.MinRadius && c.Camera.Radius <= c.Camera.MaxRadius, "radius %v outside limits", c.Camera.Radius)
	check(c.Editor.ScaleUp > 1 && c.Editor.ScaleDown > 0 && c.Editor.ScaleDown < 1, "scale steps %v/%v", c.Editor.ScaleUp, c.Editor.ScaleDown)
	check(c.Editor.ObjectScale > 0 && c.Editor.BoxScale > 0, "object scales %v/%v", c.Editor.ObjectScale, c.Editor.BoxScale)
	check(len(c.Editor.Models) <= 5, "%d models, at most 5 keys", len(c.Editor.Models))
	check(c.Editor.PreloadWorkers > 0, "preload_workers %d", c.Editor.PreloadWorkers)

	for _, name := range []string{c.Renderer.ClearColor, c.Editor.DefaultColor, c.Editor.HighlightColor} {
		_, ok := common.ColorByName(name)
		check(ok, "unknown color %q", name)
	}
	return errors.Join(errs...)
}

// Color resolves a validated color name.
func Color(name string) common.Color {
	c, _ := common.ColorByName(name)
	return c
}
