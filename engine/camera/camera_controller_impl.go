package camera

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-scene/common"
)

// minPhi keeps the orbit away from the poles, where the up vector degenerates.
const minPhi = 0.1

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	theta  float32
	phi    float32
	radius float32

	minRadius float32
	maxRadius float32

	rotateSpeed float32 // degrees per pixel
	zoomSpeed   float32 // radius units per pixel

	topView       bool
	topViewHeight float32

	lastX, lastY float64
	tracking     bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller at theta=π/4, phi=1.3, radius 5.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		theta:  math32.Pi / 4,
		phi:    1.3,
		radius: 5,

		minRadius: 3,
		maxRadius: 15,

		rotateSpeed: 0.25,
		zoomSpeed:   0.05,

		topViewHeight: 10,
	}

	for _, option := range options {
		option(cc)
	}

	cc.radius = common.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
	cc.phi = common.Clamp(cc.phi, minPhi, math32.Pi-minPhi)
	cc.updatePosition()
	return cc
}

// updatePosition recomputes the camera position from spherical coordinates or the top view.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	if cc.topView {
		cc.position = [3]float32{cc.target[0], cc.target[1] + cc.topViewHeight, cc.target[2]}
		return
	}
	sinPhi, cosPhi := math32.Sincos(cc.phi)
	sinTheta, cosTheta := math32.Sincos(cc.theta)

	cc.position[0] = cc.target[0] + cc.radius*sinPhi*cosTheta
	cc.position[1] = cc.target[1] + cc.radius*cosPhi
	cc.position[2] = cc.target[2] + cc.radius*sinPhi*sinTheta
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) Up() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.topView {
		return 0, 0, -1
	}
	return 0, 1, 0
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Theta() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.theta
}

func (cc *cameraControllerImpl) Phi() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.phi
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = common.Clamp(radius, cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) MinRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.minRadius
}

func (cc *cameraControllerImpl) MaxRadius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.maxRadius
}

func (cc *cameraControllerImpl) Rotate(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.rotate(dx, dy)
}

func (cc *cameraControllerImpl) rotate(dx, dy float32) {
	cc.theta += common.DegToRad(cc.rotateSpeed * dx)
	cc.phi = common.Clamp(cc.phi+common.DegToRad(cc.rotateSpeed*dy), minPhi, math32.Pi-minPhi)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.zoom(dx, dy)
}

func (cc *cameraControllerImpl) zoom(dx, dy float32) {
	cc.radius = common.Clamp(cc.radius+cc.zoomSpeed*(dx-dy), cc.minRadius, cc.maxRadius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Drag(x, y float64, left, right bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.tracking && !cc.topView {
		dx, dy := float32(x-cc.lastX), float32(y-cc.lastY)
		switch {
		case left:
			cc.rotate(dx, dy)
		case right:
			cc.zoom(dx, dy)
		}
	}
	cc.lastX, cc.lastY = x, y
	cc.tracking = true
}

func (cc *cameraControllerImpl) TopView() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.topView
}

func (cc *cameraControllerImpl) SetTopView(top bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.topView = top
	cc.updatePosition()
}

func (cc *cameraControllerImpl) ToggleTopView() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.topView = !cc.topView
	cc.updatePosition()
}
