package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithRadius sets the initial orbit radius.
//
// Parameters:
//   - radius: distance from target
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithTheta sets the initial azimuth in radians.
//
// Parameters:
//   - theta: angle in the xz plane measured from +x
//
// Returns:
//   - CameraControllerOption: functional option to set the azimuth
func WithTheta(theta float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.theta = theta
	}
}

// WithPhi sets the initial polar angle in radians.
//
// Parameters:
//   - phi: angle measured down from +y
//
// Returns:
//   - CameraControllerOption: functional option to set the polar angle
func WithPhi(phi float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.phi = phi
	}
}

// WithTarget sets the look-at point.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithRadiusBounds sets the zoom limits.
//
// Parameters:
//   - min: minimum radius
//   - max: maximum radius
//
// Returns:
//   - CameraControllerOption: functional option to set the radius bounds
func WithRadiusBounds(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius = min
		cc.maxRadius = max
	}
}

// WithRotateSpeed sets how many degrees the orbit turns per dragged pixel.
func WithRotateSpeed(degPerPixel float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotateSpeed = degPerPixel
	}
}

// WithZoomSpeed sets how far the radius moves per dragged pixel.
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithTopViewHeight sets the eye height above the target in top view.
func WithTopViewHeight(h float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.topViewHeight = h
	}
}
