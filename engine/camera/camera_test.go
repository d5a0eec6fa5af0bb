package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-scene/common"
)

const eps = 1e-4

func TestControllerStartsOnOrbit(t *testing.T) {
	cc := NewCameraController()
	assert.InDelta(t, math32.Pi/4, cc.Theta(), eps)
	assert.InDelta(t, 1.3, cc.Phi(), eps)
	assert.InDelta(t, 5, cc.Radius(), eps)

	x, y, z := cc.Position()
	assert.InDelta(t, 5*math32.Sin(1.3)*math32.Cos(math32.Pi/4), x, eps)
	assert.InDelta(t, 5*math32.Cos(1.3), y, eps)
	assert.InDelta(t, 5*math32.Sin(1.3)*math32.Sin(math32.Pi/4), z, eps)

	assert.InDelta(t, 5, math32.Sqrt(x*x+y*y+z*z), eps)
}

func TestRotateClampsPhi(t *testing.T) {
	cc := NewCameraController()

	cc.Rotate(4, 0)
	assert.InDelta(t, math32.Pi/4+common.DegToRad(1), cc.Theta(), eps)

	cc.Rotate(0, -100000)
	assert.InDelta(t, 0.1, cc.Phi(), eps)

	cc.Rotate(0, 100000)
	assert.InDelta(t, math32.Pi-0.1, cc.Phi(), eps)
}

func TestZoomClampsRadius(t *testing.T) {
	cc := NewCameraController()

	cc.Zoom(20, 0)
	assert.InDelta(t, 6, cc.Radius(), eps)
	cc.Zoom(10, -10)
	assert.InDelta(t, 7, cc.Radius(), eps)

	cc.Zoom(0, 1000)
	assert.InDelta(t, 3, cc.Radius(), eps)
	cc.Zoom(1000, 0)
	assert.InDelta(t, 15, cc.Radius(), eps)

	cc.SetRadius(1)
	assert.Equal(t, cc.MinRadius(), cc.Radius())
}

func TestDragUsesButtonState(t *testing.T) {
	cc := NewCameraController()
	theta, radius := cc.Theta(), cc.Radius()

	// first sample only records the cursor
	cc.Drag(100, 100, true, false)
	assert.Equal(t, theta, cc.Theta())

	cc.Drag(140, 100, true, false)
	assert.InDelta(t, theta+common.DegToRad(10), cc.Theta(), eps)

	cc.Drag(160, 100, false, false)
	assert.InDelta(t, theta+common.DegToRad(10), cc.Theta(), eps)
	assert.Equal(t, radius, cc.Radius())

	cc.Drag(180, 100, false, true)
	assert.InDelta(t, radius+1, cc.Radius(), eps)
}

func TestTopView(t *testing.T) {
	cc := NewCameraController()
	assert.False(t, cc.TopView())

	cc.ToggleTopView()
	assert.True(t, cc.TopView())
	x, y, z := cc.Position()
	assert.Equal(t, [3]float32{0, 10, 0}, [3]float32{x, y, z})
	ux, uy, uz := cc.Up()
	assert.Equal(t, [3]float32{0, 0, -1}, [3]float32{ux, uy, uz})

	// orbiting still updates the hidden orbit state
	cc.Zoom(20, 0)
	cc.SetTopView(false)
	_, uy, _ = cc.Up()
	assert.Equal(t, float32(1), uy)
	x, y, z = cc.Position()
	assert.InDelta(t, 6, math32.Sqrt(x*x+y*y+z*z), eps)
}

func TestDragIgnoredInTopView(t *testing.T) {
	cc := NewCameraController()
	theta, phi, radius := cc.Theta(), cc.Phi(), cc.Radius()

	cc.SetTopView(true)
	cc.Drag(100, 100, true, false)
	cc.Drag(180, 140, true, false)
	cc.Drag(200, 100, false, true)
	assert.Equal(t, theta, cc.Theta())
	assert.Equal(t, phi, cc.Phi())
	assert.Equal(t, radius, cc.Radius())

	// leaving top view resumes from the last cursor sample, not the first
	cc.SetTopView(false)
	cc.Drag(240, 100, true, false)
	assert.InDelta(t, theta+common.DegToRad(10), cc.Theta(), eps)
}

func TestControllerOptions(t *testing.T) {
	cc := NewCameraController(
		WithTheta(0),
		WithPhi(math32.Pi/2),
		WithRadius(50),
		WithRadiusBounds(2, 8),
		WithTarget(1, 0, 0),
		WithZoomSpeed(1),
	)
	assert.InDelta(t, 8, cc.Radius(), eps)
	x, y, z := cc.Position()
	assert.InDelta(t, 9, x, eps)
	assert.InDelta(t, 0, y, eps)
	assert.InDelta(t, 0, z, eps)

	cc.Zoom(0, 3)
	assert.InDelta(t, 5, cc.Radius(), eps)
}

func TestCameraMatrices(t *testing.T) {
	cc := NewCameraController()
	c := NewCamera(WithController(cc), WithAspect(1024.0/600.0))

	assert.InDelta(t, common.DegToRad(45), c.Fov(), eps)
	assert.Equal(t, float32(1), c.Near())
	assert.Equal(t, float32(100), c.Far())

	// the eye maps to the view-space origin
	view := c.ViewMatrix()
	x, y, z := cc.Position()
	for row := 0; row < 3; row++ {
		v := view[row]*x + view[4+row]*y + view[8+row]*z + view[12+row]
		assert.InDelta(t, 0, v, eps)
	}

	// the target sits straight ahead, radius units down -z
	assert.InDelta(t, -5, view[14], eps)

	var vp [16]float32
	proj := c.ProjectionMatrix()
	common.Mul4(vp[:], proj[:], view[:])
	assert.Equal(t, vp, c.ViewProjectionMatrix())

	before := c.ProjectionMatrix()
	c.SetAspect(1)
	assert.NotEqual(t, before, c.ProjectionMatrix())

	cc.Rotate(40, 0)
	assert.Equal(t, view, c.ViewMatrix())
	c.Update()
	assert.NotEqual(t, view, c.ViewMatrix())
}

func TestCameraWithoutController(t *testing.T) {
	c := NewCamera(WithClip(0.5, 10))
	assert.Nil(t, c.Controller())
	assert.NotPanics(t, c.Update)

	var id [16]float32
	common.Identity(id[:])
	assert.Equal(t, id, c.ViewMatrix())
}
