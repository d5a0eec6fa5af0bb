package model

import (
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithGeometry is an option builder that sets the template geometry of the Model.
//
// Parameters:
//   - g: the geometry, with indices relative to its own vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the geometry option to a model
func WithGeometry(g mesh.Geometry) ModelBuilderOption {
	return func(m *model) {
		m.geometry = g
	}
}

// WithColor is an option builder that sets the default vertex color of the Model.
//
// Parameters:
//   - c: the default color
//
// Returns:
//   - ModelBuilderOption: a function that applies the color option to a model
func WithColor(c common.Color) ModelBuilderOption {
	return func(m *model) {
		m.color = c
	}
}

// WithPosition is an option builder that sets the default translation of the Model.
func WithPosition(x, y, z float32) ModelBuilderOption {
	return func(m *model) {
		m.position = [3]float32{x, y, z}
	}
}

// WithRotation is an option builder that sets the default Euler rotation of the Model in radians.
func WithRotation(rx, ry, rz float32) ModelBuilderOption {
	return func(m *model) {
		m.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale is an option builder that sets the default scale of the Model.
func WithScale(sx, sy, sz float32) ModelBuilderOption {
	return func(m *model) {
		m.scale = [3]float32{sx, sy, sz}
	}
}

// WithUniformScale is an option builder that scales the Model equally on every axis.
func WithUniformScale(s float32) ModelBuilderOption {
	return WithScale(s, s, s)
}
