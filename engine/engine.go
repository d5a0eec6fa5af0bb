package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-scene/engine/camera"
	"github.com/Carmen-Shannon/oxy-scene/engine/input"
	"github.com/Carmen-Shannon/oxy-scene/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scene/engine/window"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine has no window")

// App is the application driven by the engine's frame loop.
type App interface {
	// Init runs once before the first frame.
	//
	// Returns:
	//   - error: an error aborts Run before any frame
	Init() error

	// Update advances the application by one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	Update(deltaTime float32)

	// Draw renders the current frame.
	Draw()

	// Finalize runs once after the loop exits.
	Finalize()
}

// Resizer is implemented by graphics devices that follow the window's framebuffer size.
type Resizer interface {
	Resize(width, height int)
}

// engine implements the Engine interface.
// It runs one update pass and one draw pass per window message iteration on the window's thread.
type engine struct {
	window window.Window
	input  input.Input
	app    App

	renderer Resizer
	camera   camera.Camera

	profiler         *profiler.Profiler
	profilerOptions  []profiler.ProfilerOption
	profilingEnabled bool

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame  time.Time
	frames     uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// Engine is the main entry point for the engine.
// It wires window events to input, renderer and camera, and drives the App's frame loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the input state fed by the window callbacks.
	//
	// Returns:
	//   - input.Input: the input instance
	Input() input.Input

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Frames returns the number of frames run so far.
	Frames() uint64

	// Run calls App.Init, runs the frame loop until the window closes, then calls App.Finalize.
	//
	// Returns:
	//   - error: ErrNoWindow, a missing App, or the error returned by App.Init
	Run() error

	// Quit asks the window to close after the current frame.
	Quit()
}

// NewEngine creates a new Engine with the provided options. When a window is given its
// key, mouse, focus and resize callbacks are connected to the engine's input, renderer and camera.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		now:   time.Now,
		sleep: time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.input == nil {
		e.input = input.NewInput()
	}
	e.profiler = profiler.NewProfiler(e.profilerOptions...)

	if e.window != nil {
		e.window.SetKeyDownCallback(e.input.OnKeyDown)
		e.window.SetKeyUpCallback(e.input.OnKeyUp)
		e.window.SetMouseMoveCallback(e.input.OnMouseMove)
		e.window.SetFocusCallback(e.focus)
		e.window.SetResizeCallback(e.resize)
		e.window.SetUpdateCallback(e.frame)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() input.Input {
	return e.input
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	if e.app == nil {
		return errors.New("engine has no app")
	}
	if err := e.app.Init(); err != nil {
		return fmt.Errorf("app init failed: %w", err)
	}
	defer e.app.Finalize()

	e.lastFrame = e.now()
	e.window.ProcessMessages()
	log.Printf("[Engine] loop exited after %d frames", e.frames)
	return nil
}

func (e *engine) Quit() {
	if e.window != nil {
		e.window.RequestClose()
	}
}

// frame runs one loop iteration: update, draw, then the input frame boundary.
func (e *engine) frame() {
	start := e.now()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	e.app.Update(dt)
	e.app.Draw()
	e.input.EndFrame()
	e.frames++

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if e.camera != nil {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

// focus drops held keys when the window loses focus, since their release events go elsewhere.
func (e *engine) focus(focused bool) {
	if !focused {
		e.input.Reset()
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) Frames() uint64 {
	return e.frames
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
