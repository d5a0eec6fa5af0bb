package camera

// CameraController owns the camera's positional state. The Camera reads from it
// and computes view and projection matrices.
//
// The orbit is described in spherical coordinates around the target: Theta is the
// azimuth in the xz plane, Phi is the polar angle measured down from +y.
// Top view overrides the orbit with a fixed eye straight above the target.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Up returns the view up vector. It is +y in orbit mode and -z in top view.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// SetTarget sets the look-at point and recomputes position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Theta returns the azimuth in radians.
	Theta() float32

	// Phi returns the polar angle in radians.
	Phi() float32

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// MinRadius returns the minimum allowed orbit radius.
	MinRadius() float32

	// MaxRadius returns the maximum allowed orbit radius.
	MaxRadius() float32

	// Rotate orbits by a mouse movement: each pixel turns RotateSpeed degrees.
	// Phi is clamped to [0.1, π-0.1] so the eye never reaches a pole.
	//
	// Parameters:
	//   - dx, dy: mouse movement in pixels
	Rotate(dx, dy float32)

	// Zoom changes the radius by ZoomSpeed*(dx-dy), clamped to the radius bounds.
	//
	// Parameters:
	//   - dx, dy: mouse movement in pixels
	Zoom(dx, dy float32)

	// Drag feeds the current mouse position and button state. With the left button
	// held the movement since the previous call orbits; with the right button it zooms.
	// In top view the position is tracked but the orbit is left untouched.
	//
	// Parameters:
	//   - x, y: mouse position in pixels
	//   - left, right: button state
	Drag(x, y float64, left, right bool)

	// TopView reports whether the top view is active.
	TopView() bool

	// SetTopView switches between the orbit and the top view.
	SetTopView(top bool)

	// ToggleTopView flips the view mode.
	ToggleTopView()
}
