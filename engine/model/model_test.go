package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

func triangle() mesh.Geometry {
	return mesh.Geometry{
		Vertices: []mesh.Vertex{
			mesh.NewVertex(0, 0, 0, common.White),
			mesh.NewVertex(3, 0, 0, common.White),
			mesh.NewVertex(0, 4, 0, common.White),
		},
		Indices: []uint32{0, 1, 2},
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(WithName("tri"), WithGeometry(triangle()))

	assert.Equal(t, "tri", m.Name())
	assert.Equal(t, common.DimGray, m.Color())
	assert.Equal(t, [3]float32{1, 1, 1}, m.Scale())
	assert.Equal(t, [3]float32{}, m.Position())
	assert.Equal(t, float32(4), m.BoundingRadius())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.IndexCount())
}

func TestGeometryIsTintedCopy(t *testing.T) {
	m := NewModel(WithGeometry(triangle()), WithColor(common.Orange), WithUniformScale(0.5), WithPosition(0, 0.5, 0))

	g := m.Geometry()
	for _, v := range g.Vertices {
		assert.Equal(t, common.Orange, v.Color)
	}
	g.Vertices[0].Position[0] = 42
	assert.Equal(t, float32(0), m.Geometry().Vertices[0].Position[0])

	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, m.Scale())
	assert.Equal(t, [3]float32{0, 0.5, 0}, m.Position())
}
