package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/config"
	"github.com/Carmen-Shannon/oxy-scene/engine/input"
	"github.com/Carmen-Shannon/oxy-scene/engine/loader"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
	"github.com/Carmen-Shannon/oxy-scene/engine/primitive"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scene/engine/timer"
)

type fakeDevice struct {
	uploads     int
	slots       int
	draws       int
	presents    int
	clearErr    error
	clearColor  common.Color
	presentMode renderer.PresentMode
}

func (d *fakeDevice) ResetCommands()                           {}
func (d *fakeDevice) SubmitCommands()                          {}
func (d *fakeDevice) WriteConstants(slot int, data []byte)     {}
func (d *fakeDevice) MatrixLayout() common.MatrixLayout        { return common.ColumnMajor }
func (d *fakeDevice) Clear() error                             { return d.clearErr }
func (d *fakeDevice) Present()                                 { d.presents++ }
func (d *fakeDevice) SetClearColor(c common.Color)             { d.clearColor = c }
func (d *fakeDevice) SetPresentMode(mode renderer.PresentMode) { d.presentMode = mode }

func (d *fakeDevice) UploadMesh(vertexData, indexData []byte) error {
	d.uploads++
	return nil
}

func (d *fakeDevice) ResizeConstants(n int) error {
	d.slots = n
	return nil
}

func (d *fakeDevice) DrawIndexed(indexCount, startIndex uint32, baseVertex int32, slot int) {
	d.draws++
}

type fakeCloser struct {
	closed bool
}

func (c *fakeCloser) RequestClose() { c.closed = true }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Editor.Models = nil
	return cfg
}

func newTestEditor(t *testing.T, options ...EditorBuilderOption) (Editor, *fakeDevice, input.Input) {
	t.Helper()
	dev := &fakeDevice{}
	in := input.NewInput()
	e := NewEditor(dev, in, append([]EditorBuilderOption{WithConfig(testConfig())}, options...)...)
	require.NoError(t, e.Init())
	return e, dev, in
}

// tap presses and releases a key, then runs one frame.
func tap(e Editor, in input.Input, code int) {
	in.OnKeyDown(code)
	in.OnKeyUp(code)
	e.Update(0)
	in.EndFrame()
}

// frame runs one update with the given keys held.
func frame(e Editor, in input.Input, held ...int) {
	for _, code := range held {
		in.OnKeyDown(code)
	}
	e.Update(0)
	in.EndFrame()
	for _, code := range held {
		in.OnKeyUp(code)
	}
}

func TestInitPlacesFloor(t *testing.T) {
	e, dev, _ := newTestEditor(t)

	require.Equal(t, 1, e.Scene().Len())
	floor := e.Scene().Object(0)
	assert.Equal(t, "floor", floor.Model().Name())
	assert.Equal(t, common.DimGray, floor.Color())
	assert.Equal(t, 30*30, e.Scene().Stats().Vertices)
	assert.Equal(t, 1, dev.uploads)
}

func TestShapeKeysAppendObjects(t *testing.T) {
	e, dev, in := newTestEditor(t)

	for _, key := range shapeKeys {
		tap(e, in, key)
	}
	require.Equal(t, 7, e.Scene().Len())

	box := e.Scene().Object(1)
	assert.Equal(t, "box", box.Model().Name())
	sx, sy, sz := box.Scale()
	assert.Equal(t, [3]float32{0.4, 0.4, 0.4}, [3]float32{sx, sy, sz})
	_, ry, _ := box.RotationSpeed()
	assert.Equal(t, float32(1), ry)

	sphere := e.Scene().Object(3)
	sx, _, _ = sphere.Scale()
	assert.Equal(t, float32(0.5), sx)

	_, py, _ := e.Scene().Object(5).Position()
	assert.Equal(t, float32(0.5), py)

	assert.Equal(t, 7, dev.uploads)
	assert.Equal(t, 7, dev.slots)
}

func TestAddIgnoredWhileChordHeld(t *testing.T) {
	e, _, in := newTestEditor(t)

	frame(e, in, common.KeyT, common.KeyS)
	frame(e, in, common.KeyLeftCtrl, common.KeyB)
	assert.Equal(t, 1, e.Scene().Len())
}

func TestModelKeysUsePreloadedModels(t *testing.T) {
	tri := model.NewModel(model.WithName("tri.obj"), model.WithGeometry(primitive.Quad(1, 1)))
	cfg := testConfig()
	cfg.Editor.Models = []string{"tri.obj"}

	e, _, in := newTestEditor(t,
		WithConfig(cfg),
		WithLoader(loader.NewLoader(loader.BackendTypeOBJ, loader.WithModel("tri.obj", tri))),
	)

	tap(e, in, common.Key1)
	require.Equal(t, 2, e.Scene().Len())
	assert.Equal(t, "tri.obj", e.Scene().Object(1).Model().Name())

	tap(e, in, common.Key2)
	assert.Equal(t, 2, e.Scene().Len())
}

func TestModelKeyMissingFileIsLogged(t *testing.T) {
	cfg := testConfig()
	cfg.Editor.Models = []string{"does-not-exist.obj"}
	e, _, in := newTestEditor(t, WithConfig(cfg))

	tap(e, in, common.Key1)
	assert.Equal(t, 1, e.Scene().Len())
}

func TestSelectionKeys(t *testing.T) {
	e, _, in := newTestEditor(t)
	tap(e, in, common.KeyB)
	tap(e, in, common.KeyC)

	tap(e, in, common.KeyTab)
	sel, ok := e.Scene().Selected()
	require.True(t, ok)
	assert.Equal(t, 0, sel)

	tap(e, in, common.KeyTab)
	sel, _ = e.Scene().Selected()
	assert.Equal(t, 1, sel)

	tap(e, in, common.KeyRightShift)
	_, ok = e.Scene().Selected()
	assert.False(t, ok)

	tap(e, in, common.KeyTab)
	tap(e, in, common.KeyDelete)
	assert.Equal(t, 2, e.Scene().Len())
	_, ok = e.Scene().Selected()
	assert.False(t, ok)
}

func TestTranslateChord(t *testing.T) {
	e, _, in := newTestEditor(t)
	tap(e, in, common.KeyB)
	require.True(t, e.Scene().Select(1))

	frame(e, in, common.KeyT, common.KeyRight)
	frame(e, in, common.KeyT, common.KeyUp)
	frame(e, in, common.KeyT, common.KeyS)

	x, y, z := e.Scene().Object(1).Position()
	assert.InDelta(t, 0.1, x, 1e-6)
	assert.InDelta(t, 0.1, y, 1e-6)
	assert.InDelta(t, -0.1, z, 1e-6)
	assert.Equal(t, 2, e.Scene().Len())
}

func TestScaleChord(t *testing.T) {
	e, _, in := newTestEditor(t)
	tap(e, in, common.KeyS)
	require.True(t, e.Scene().Select(1))

	frame(e, in, common.KeyLeftCtrl, common.KeyE, common.KeyEqual)
	sx, _, _ := e.Scene().Object(1).Scale()
	assert.InDelta(t, 0.55, sx, 1e-6)

	frame(e, in, common.KeyRightCtrl, common.KeyE, common.KeyKPSubtract)
	sx, _, _ = e.Scene().Object(1).Scale()
	assert.InDelta(t, 0.495, sx, 1e-6)

	frame(e, in, common.KeyE, common.KeyEqual)
	sx, _, _ = e.Scene().Object(1).Scale()
	assert.InDelta(t, 0.495, sx, 1e-6)
}

func TestRotateChordAndSpinToggle(t *testing.T) {
	tm := timer.NewTimer(timer.WithClock(func() time.Time { return time.Unix(0, 0) }))
	e, _, in := newTestEditor(t, WithTimer(tm))
	tap(e, in, common.KeyB)
	require.True(t, e.Scene().Select(1))

	frame(e, in, common.KeyLeftCtrl, common.KeyY, common.KeyR)
	_, ry, _ := e.Scene().Object(1).Rotation()
	assert.InDelta(t, -common.DegToRad(0.1), ry, 1e-6)
	assert.False(t, tm.Running())

	frame(e, in, common.KeyLeftCtrl, common.KeyR)
	_, ry, _ = e.Scene().Object(1).Rotation()
	assert.InDelta(t, -common.DegToRad(0.1), ry, 1e-6)
	assert.False(t, tm.Running())

	tap(e, in, common.KeyR)
	assert.True(t, tm.Running())
	tap(e, in, common.KeyR)
	assert.False(t, tm.Running())
}

func TestTopViewToggle(t *testing.T) {
	e, _, in := newTestEditor(t)
	tap(e, in, common.KeyV)
	assert.True(t, e.Camera().Controller().TopView())
	tap(e, in, common.KeyV)
	assert.False(t, e.Camera().Controller().TopView())
}

func TestEscRequestsClose(t *testing.T) {
	c := &fakeCloser{}
	e, _, in := newTestEditor(t, WithCloser(c))
	tap(e, in, common.KeyEsc)
	assert.True(t, c.closed)
}

func TestDrawSkipsFrameOnClearError(t *testing.T) {
	e, dev, in := newTestEditor(t)
	tap(e, in, common.KeyB)

	e.Draw()
	assert.Equal(t, 2, dev.draws)
	assert.Equal(t, 1, dev.presents)

	dev.clearErr = errors.New("surface lost")
	e.Draw()
	assert.Equal(t, 2, dev.draws)
	assert.Equal(t, 1, dev.presents)
}

func TestConfigUpdatesApplyOnUpdate(t *testing.T) {
	updates := make(chan config.Config, 1)
	e, dev, in := newTestEditor(t, WithConfigUpdates(updates))

	cfg := testConfig()
	cfg.Editor.HighlightColor = "orange"
	cfg.Editor.ObjectScale = 2
	cfg.Renderer.ClearColor = "dimgray"
	cfg.Camera.Fov = 60
	cfg.Renderer.PresentMode = "uncapped"
	updates <- cfg
	close(updates)

	e.Update(0)
	assert.Equal(t, common.Orange, e.Scene().HighlightColor())
	assert.Equal(t, common.DimGray, dev.clearColor)
	assert.Equal(t, renderer.PresentModeUncapped, dev.presentMode)
	assert.InDelta(t, common.DegToRad(60), e.Camera().Fov(), 1e-6)
	assert.Equal(t, float32(2), e.Config().Editor.ObjectScale)

	tap(e, in, common.KeyS)
	sx, _, _ := e.Scene().Object(1).Scale()
	assert.Equal(t, float32(2), sx)

	e.Update(0)
}
