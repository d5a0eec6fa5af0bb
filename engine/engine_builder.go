package engine

import (
	"github.com/Carmen-Shannon/oxy-scene/engine/camera"
	"github.com/Carmen-Shannon/oxy-scene/engine/input"
	"github.com/Carmen-Shannon/oxy-scene/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scene/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithApp sets the application the frame loop drives.
//
// Parameters:
//   - app: the App to run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithApp(app App) EngineBuilderOption {
	return func(e *engine) {
		e.app = app
	}
}

// WithWindow sets the window whose message loop runs the frames.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithInput sets the input state the window callbacks feed. A new one is created if omitted.
//
// Parameters:
//   - in: the Input to feed
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInput(in input.Input) EngineBuilderOption {
	return func(e *engine) {
		e.input = in
	}
}

// WithRenderer sets the device resized with the window.
//
// Parameters:
//   - r: the device to resize
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r Resizer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera whose aspect ratio follows the window.
//
// Parameters:
//   - c: the Camera to update
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//   - options: profiler options such as extra counters
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool, options ...profiler.ProfilerOption) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
		e.profilerOptions = append(e.profilerOptions, options...)
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}
