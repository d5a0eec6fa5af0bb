package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
)

type gameObject struct {
	id      uint64
	enabled atomic.Bool
	mdl     model.Model
	color   common.Color
	cbIndex int

	position      [3]float32
	scale         [3]float32
	rotation      [3]float32
	rotationSpeed [3]float32
}

// GameObject defines the interface for one placed object in a scene.
// It owns the object's transform and the constant slot its world-view-projection
// matrix is written to. The object's vertices live in the scene's packed buffer.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Model returns the Model this object was placed from, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// Color returns the object's default vertex color, restored when it is deselected.
	//
	// Returns:
	//   - common.Color: the default color
	Color() common.Color

	// CBIndex returns the constant slot holding this object's matrix.
	//
	// Returns:
	//   - int: the slot, or -1 if unassigned
	CBIndex() int

	// Position returns the object's translation.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's Euler rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// RotationSpeed returns the spin rate in radians per second of elapsed time.
	//
	// Returns:
	//   - rx, ry, rz: rotation speed values
	RotationSpeed() (rx, ry, rz float32)

	// Scale returns the object's scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// World builds the column-major model matrix at the given elapsed time.
	// Spin is applied on top of the static rotation as RotationSpeed * elapsed.
	//
	// Parameters:
	//   - elapsed: seconds of spin time
	//
	// Returns:
	//   - [16]float32: the world matrix
	World(elapsed float32) [16]float32

	// SetID sets the object's unique identifier.
	SetID(id uint64)

	// SetEnabled sets whether the object is drawn.
	SetEnabled(enabled bool)

	// SetColor sets the object's default vertex color.
	SetColor(c common.Color)

	// SetCBIndex assigns the constant slot.
	//
	// Parameters:
	//   - i: the slot
	SetCBIndex(i int)

	// SetPosition replaces the translation.
	SetPosition(x, y, z float32)

	// SetRotation replaces the rotation.
	SetRotation(rx, ry, rz float32)

	// SetRotationSpeed replaces the spin rate.
	SetRotationSpeed(rx, ry, rz float32)

	// SetScale replaces the scale.
	SetScale(sx, sy, sz float32)

	// Translate offsets the position.
	//
	// Parameters:
	//   - dx, dy, dz: the offset
	Translate(dx, dy, dz float32)

	// Rotate adds to the rotation.
	//
	// Parameters:
	//   - drx, dry, drz: angles in radians
	Rotate(drx, dry, drz float32)

	// ScaleBy multiplies every scale component by f.
	//
	// Parameters:
	//   - f: the factor
	ScaleBy(f float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// When a model is given, its color and default transform seed the object before
// later options are applied on top.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		color:   common.DimGray,
		scale:   [3]float32{1, 1, 1},
		cbIndex: -1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Model() model.Model {
	return g.mdl
}

func (g *gameObject) Color() common.Color {
	return g.color
}

func (g *gameObject) CBIndex() int {
	return g.cbIndex
}

func (g *gameObject) Position() (x, y, z float32) {
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) RotationSpeed() (rx, ry, rz float32) {
	return g.rotationSpeed[0], g.rotationSpeed[1], g.rotationSpeed[2]
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) World(elapsed float32) [16]float32 {
	rot := [3]float32{
		g.rotation[0] + g.rotationSpeed[0]*elapsed,
		g.rotation[1] + g.rotationSpeed[1]*elapsed,
		g.rotation[2] + g.rotationSpeed[2]*elapsed,
	}
	var m [16]float32
	common.BuildModelMatrix(m[:], g.position, rot, g.scale)
	return m
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetColor(c common.Color) {
	g.color = c
}

func (g *gameObject) SetCBIndex(i int) {
	g.cbIndex = i
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetRotationSpeed(rx, ry, rz float32) {
	g.rotationSpeed = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Translate(dx, dy, dz float32) {
	g.position[0] += dx
	g.position[1] += dy
	g.position[2] += dz
}

func (g *gameObject) Rotate(drx, dry, drz float32) {
	g.rotation[0] += drx
	g.rotation[1] += dry
	g.rotation[2] += drz
}

func (g *gameObject) ScaleBy(f float32) {
	g.scale[0] *= f
	g.scale[1] *= f
	g.scale[2] *= f
}
