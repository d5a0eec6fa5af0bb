// Package editor implements the interactive scene editor: it maps the keyboard protocol onto
// SceneEditor operations and renders the scene every frame.
package editor

import (
	"log"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine"
	"github.com/Carmen-Shannon/oxy-scene/engine/camera"
	"github.com/Carmen-Shannon/oxy-scene/engine/config"
	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scene/engine/input"
	"github.com/Carmen-Shannon/oxy-scene/engine/loader"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/scene"
	"github.com/Carmen-Shannon/oxy-scene/engine/timer"
)

// Device is the graphics device the editor draws with. renderer.Renderer satisfies it.
type Device interface {
	scene.Device

	// Clear begins a frame and clears the target to the clear color.
	Clear() error

	// Present ends the frame and shows it.
	Present()

	// SetClearColor changes the color used by Clear.
	SetClearColor(c common.Color)

	// SetPresentMode changes how frames are paced.
	SetPresentMode(mode renderer.PresentMode)
}

// Closer is asked to close when Esc is pressed. window.Window satisfies it.
type Closer interface {
	RequestClose()
}

type editor struct {
	device Device
	input  input.Input
	closer Closer

	cfg     config.Config
	updates <-chan config.Config

	scene   scene.SceneEditor
	camera  camera.Camera
	timer   timer.Timer
	loader  loader.Loader
	catalog map[int]model.Model
}

// Editor is an engine.App that edits a scene from the keyboard and mouse.
type Editor interface {
	engine.App

	// Scene returns the edited scene.
	Scene() scene.SceneEditor

	// Camera returns the camera the scene is viewed through.
	Camera() camera.Camera

	// Config returns the settings currently in effect.
	Config() config.Config
}

var _ Editor = &editor{}

// NewEditor creates an editor drawing with dev and reading in.
// Missing collaborators are built from the config: the camera from its camera section,
// a stopped timer, an OBJ loader in the default color and an empty scene in the highlight color.
//
// Parameters:
//   - dev: the graphics device
//   - in: the input state fed by the window
//   - options: functional options for editor configuration
//
// Returns:
//   - Editor: the newly created editor
func NewEditor(dev Device, in input.Input, options ...EditorBuilderOption) Editor {
	e := &editor{
		device: dev,
		input:  in,
		cfg:    config.Default(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.camera == nil {
		e.camera = newCamera(e.cfg.Camera)
	}
	if e.timer == nil {
		e.timer = timer.NewTimer()
	}
	if e.loader == nil {
		e.loader = loader.NewLoader(loader.BackendTypeOBJ,
			loader.WithColor(config.Color(e.cfg.Editor.DefaultColor)),
			loader.WithWorkers(e.cfg.Editor.PreloadWorkers),
		)
	}
	if e.scene == nil {
		e.scene = scene.NewSceneEditor(scene.WithHighlightColor(config.Color(e.cfg.Editor.HighlightColor)))
	}
	e.catalog = newCatalog(e.cfg.Editor)

	return e
}

func newCamera(cfg config.CameraConfig) camera.Camera {
	ctrl := camera.NewCameraController(
		camera.WithTheta(common.DegToRad(cfg.Theta)),
		camera.WithPhi(common.DegToRad(cfg.Phi)),
		camera.WithRadiusBounds(cfg.MinRadius, cfg.MaxRadius),
		camera.WithRadius(cfg.Radius),
		camera.WithRotateSpeed(cfg.RotateSpeed),
		camera.WithZoomSpeed(cfg.ZoomSpeed),
	)
	return camera.NewCamera(
		camera.WithFov(common.DegToRad(cfg.Fov)),
		camera.WithClip(cfg.Near, cfg.Far),
		camera.WithController(ctrl),
	)
}

func (e *editor) Scene() scene.SceneEditor {
	return e.scene
}

func (e *editor) Camera() camera.Camera {
	return e.camera
}

func (e *editor) Config() config.Config {
	return e.cfg
}

// Init preloads the configured model files, places the floor grid and uploads the first pools.
func (e *editor) Init() error {
	if len(e.cfg.Editor.Models) > 0 {
		if err := e.loader.Preload(e.cfg.Editor.Models...); err != nil {
			log.Printf("[Editor] preload incomplete: %v", err)
		}
	}

	if _, err := e.scene.AddModel(floor(e.cfg.Editor)); err != nil {
		return err
	}
	return e.scene.Rebuild(e.device)
}

// Update applies pending config reloads and this frame's input, then uploads and animates the scene.
func (e *editor) Update(deltaTime float32) {
	e.drainConfig()

	if e.input.KeyPress(common.KeyEsc) && e.closer != nil {
		e.closer.RequestClose()
	}

	e.handleAdd()
	e.handleSelection()

	if e.input.KeyPress(common.KeyV) {
		e.camera.Controller().ToggleTopView()
	}

	e.handleRotate()
	e.handleTranslate()
	e.handleScale()

	e.camera.Controller().Drag(e.input.MouseX(), e.input.MouseY(),
		e.input.KeyDown(common.MouseButtonLeft), e.input.KeyDown(common.MouseButtonRight))

	if err := e.scene.Rebuild(e.device); err != nil {
		log.Printf("[Editor] rebuild failed: %v", err)
	}
	e.camera.Update()
	e.scene.Update(e.device, e.camera.ViewMatrix(), e.camera.ProjectionMatrix(), e.timer.Elapsed())
}

func (e *editor) Draw() {
	if err := e.device.Clear(); err != nil {
		log.Printf("[Editor] frame skipped: %v", err)
		return
	}
	e.scene.Draw(e.device)
	e.device.Present()
}

func (e *editor) Finalize() {
	st := e.scene.Stats()
	log.Printf("[Editor] closing with %d objects, %d vertices, %d indices after %d uploads",
		st.Objects, st.Vertices, st.Indices, st.Uploads)
}

// chordHeld reports whether a transform chord owns the letter keys this frame.
func (e *editor) chordHeld() bool {
	return e.input.KeyDown(common.KeyT) || e.ctrlHeld()
}

func (e *editor) ctrlHeld() bool {
	return e.input.KeyDown(common.KeyLeftCtrl) || e.input.KeyDown(common.KeyRightCtrl)
}

// handleAdd places at most one new object per frame.
func (e *editor) handleAdd() {
	if e.chordHeld() {
		return
	}

	for _, key := range shapeKeys {
		if e.input.KeyPress(key) {
			e.place(e.catalog[key])
			return
		}
	}

	for i, key := range modelKeys {
		if !e.input.KeyPress(key) {
			continue
		}
		if i >= len(e.cfg.Editor.Models) {
			log.Printf("[Editor] no model bound to key %d", i+1)
			return
		}
		m, err := e.model(e.cfg.Editor.Models[i])
		if err != nil {
			log.Printf("[Editor] %v", err)
			return
		}
		e.place(m)
		return
	}
}

// model returns a preloaded model or loads it on first use.
func (e *editor) model(path string) (model.Model, error) {
	if m := e.loader.Get(path); m != nil {
		return m, nil
	}
	return e.loader.Load(path)
}

func (e *editor) place(m model.Model) {
	obj, err := e.scene.AddModel(m, game_object.WithRotationSpeed(0, e.cfg.Editor.SpinSpeed, 0))
	if err != nil {
		log.Printf("[Editor] cannot place %s: %v", m.Name(), err)
		return
	}
	log.Printf("[Editor] placed %s as object %d", m.Name(), obj.CBIndex())
}

func (e *editor) handleSelection() {
	if e.input.KeyPress(common.KeyTab) {
		e.scene.SelectNext()
	}
	if e.input.KeyPress(common.KeyLeftShift) || e.input.KeyPress(common.KeyRightShift) {
		e.scene.Deselect()
	}
	if e.input.KeyPress(common.KeyDelete) {
		e.scene.DeleteSelected()
	}
}

// handleRotate treats R as a rotation step while Ctrl and an axis key are held and as the
// spin toggle otherwise.
func (e *editor) handleRotate() {
	if !e.input.KeyPress(common.KeyR) {
		return
	}

	if !e.ctrlHeld() {
		if e.timer.Running() {
			e.timer.Stop()
		} else {
			e.timer.Start()
		}
		return
	}

	step := -common.DegToRad(e.cfg.Editor.RotateStep)
	switch {
	case e.input.KeyDown(common.KeyX):
		e.scene.RotateSelected(step, 0, 0)
	case e.input.KeyDown(common.KeyY):
		e.scene.RotateSelected(0, step, 0)
	case e.input.KeyDown(common.KeyZ):
		e.scene.RotateSelected(0, 0, step)
	}
}

func (e *editor) handleTranslate() {
	if !e.input.KeyDown(common.KeyT) {
		return
	}

	step := e.cfg.Editor.TranslateStep
	var dx, dy, dz float32
	if e.input.KeyDown(common.KeyRight) {
		dx += step
	}
	if e.input.KeyDown(common.KeyLeft) {
		dx -= step
	}
	if e.input.KeyDown(common.KeyUp) {
		dy += step
	}
	if e.input.KeyDown(common.KeyDown) {
		dy -= step
	}
	if e.input.KeyDown(common.KeyW) {
		dz += step
	}
	if e.input.KeyDown(common.KeyS) {
		dz -= step
	}

	if dx != 0 || dy != 0 || dz != 0 {
		e.scene.TranslateSelected(dx, dy, dz)
	}
}

func (e *editor) handleScale() {
	if !e.ctrlHeld() || !e.input.KeyDown(common.KeyE) {
		return
	}

	switch {
	case e.input.KeyDown(common.KeyEqual) || e.input.KeyDown(common.KeyKPAdd):
		e.scene.ScaleSelected(e.cfg.Editor.ScaleUp)
	case e.input.KeyDown(common.KeyMinus) || e.input.KeyDown(common.KeyKPSubtract):
		e.scene.ScaleSelected(e.cfg.Editor.ScaleDown)
	}
}

// drainConfig applies every reload queued since the last frame without blocking.
func (e *editor) drainConfig() {
	for {
		select {
		case cfg, ok := <-e.updates:
			if !ok {
				e.updates = nil
				return
			}
			e.apply(cfg)
		default:
			return
		}
	}
}

// apply switches to cfg. Placed objects keep their geometry; only new placements use the
// reloaded catalog.
func (e *editor) apply(cfg config.Config) {
	e.cfg = cfg
	e.catalog = newCatalog(cfg.Editor)
	e.scene.SetHighlightColor(config.Color(cfg.Editor.HighlightColor))
	e.device.SetClearColor(config.Color(cfg.Renderer.ClearColor))
	if mode, err := renderer.ParsePresentMode(cfg.Renderer.PresentMode); err != nil {
		log.Printf("[Editor] keeping present mode: %v", err)
	} else {
		e.device.SetPresentMode(mode)
	}
	e.camera.SetFov(common.DegToRad(cfg.Camera.Fov))
	e.camera.SetClip(cfg.Camera.Near, cfg.Camera.Far)
	log.Printf("[Editor] config reloaded")
}
