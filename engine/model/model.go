package model

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	geometry       mesh.Geometry
	color          common.Color
	position       [3]float32
	rotation       [3]float32
	scale          [3]float32
	boundingRadius float32
}

// Model is a named geometry template. Placing a Model in a scene copies its geometry
// into the scene's packed buffer, tinted with Color, and starts the new object at the
// model's default transform.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Geometry retrieves the template geometry tinted with the model's color.
	// The returned geometry is a copy and may be modified freely.
	//
	// Returns:
	//   - mesh.Geometry: the tinted geometry
	Geometry() mesh.Geometry

	// Color retrieves the default vertex color objects built from this model are restored to.
	//
	// Returns:
	//   - common.Color: the default color
	Color() common.Color

	// Position retrieves the default translation.
	//
	// Returns:
	//   - [3]float32: x, y, z
	Position() [3]float32

	// Rotation retrieves the default Euler rotation in radians.
	//
	// Returns:
	//   - [3]float32: rotation about x, y, z
	Rotation() [3]float32

	// Scale retrieves the default scale.
	//
	// Returns:
	//   - [3]float32: x, y, z scale factors
	Scale() [3]float32

	// BoundingRadius retrieves the distance from the origin to the farthest template vertex.
	//
	// Returns:
	//   - float32: the unscaled bounding radius
	BoundingRadius() float32

	// VertexCount retrieves the number of template vertices.
	VertexCount() int

	// IndexCount retrieves the number of template indices.
	IndexCount() int
}

var _ Model = &model{}

// NewModel creates a new Model with the provided options.
// Defaults: DimGray, no translation or rotation, unit scale.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		color: common.DimGray,
		scale: [3]float32{1, 1, 1},
	}
	for _, option := range options {
		option(m)
	}
	m.boundingRadius = boundingRadius(m.geometry)
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Geometry() mesh.Geometry {
	return m.geometry.Colored(m.color)
}

func (m *model) Color() common.Color {
	return m.color
}

func (m *model) Position() [3]float32 {
	return m.position
}

func (m *model) Rotation() [3]float32 {
	return m.rotation
}

func (m *model) Scale() [3]float32 {
	return m.scale
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) VertexCount() int {
	return len(m.geometry.Vertices)
}

func (m *model) IndexCount() int {
	return len(m.geometry.Indices)
}

func boundingRadius(g mesh.Geometry) float32 {
	var r float32
	for _, v := range g.Vertices {
		p := v.Position
		r = math32.Max(r, math32.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]))
	}
	return r
}
