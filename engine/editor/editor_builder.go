package editor

import (
	"github.com/Carmen-Shannon/oxy-scene/engine/camera"
	"github.com/Carmen-Shannon/oxy-scene/engine/config"
	"github.com/Carmen-Shannon/oxy-scene/engine/loader"
	"github.com/Carmen-Shannon/oxy-scene/engine/scene"
	"github.com/Carmen-Shannon/oxy-scene/engine/timer"
)

// EditorBuilderOption is a functional option for configuring an Editor.
type EditorBuilderOption func(*editor)

// WithConfig sets the editor settings. Defaults to config.Default().
//
// Parameters:
//   - cfg: the settings to use
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithConfig(cfg config.Config) EditorBuilderOption {
	return func(e *editor) {
		e.cfg = cfg
	}
}

// WithConfigUpdates sets a channel of reloaded settings, typically from config.Watch.
// Pending values are applied at the start of each Update.
//
// Parameters:
//   - updates: the reload channel
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithConfigUpdates(updates <-chan config.Config) EditorBuilderOption {
	return func(e *editor) {
		e.updates = updates
	}
}

// WithCamera sets the camera instead of building one from the config.
//
// Parameters:
//   - c: the camera, with a controller attached
//
// Returns:
//   - EditorBuilderOption: option function to apply
func WithCamera(c camera.Camera) EditorBuilderOption {
	return func(e *editor) {
		e.camera = c
	}
}

// WithTimer sets the spin timer.
func WithTimer(t timer.Timer) EditorBuilderOption {
	return func(e *editor) {
		e.timer = t
	}
}

// WithLoader sets the loader model keys read from.
func WithLoader(l loader.Loader) EditorBuilderOption {
	return func(e *editor) {
		e.loader = l
	}
}

// WithScene sets the scene to edit. It should be empty.
func WithScene(s scene.SceneEditor) EditorBuilderOption {
	return func(e *editor) {
		e.scene = s
	}
}

// WithCloser sets what Esc closes.
func WithCloser(c Closer) EditorBuilderOption {
	return func(e *editor) {
		e.closer = c
	}
}
