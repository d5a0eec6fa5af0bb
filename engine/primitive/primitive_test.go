package primitive

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

func requireValid(t *testing.T, g mesh.Geometry) {
	t.Helper()
	require.NotEmpty(t, g.Vertices)
	require.Zero(t, len(g.Indices)%3)
	for _, idx := range g.Indices {
		require.Less(t, int(idx), len(g.Vertices))
	}
	for _, v := range g.Vertices {
		require.Equal(t, common.DimGray, v.Color)
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name     string
		geometry mesh.Geometry
		vertices int
		indices  int
	}{
		{"box", Box(2, 2, 2), 8, 36},
		{"cylinder", Cylinder(1, 0.5, 3, 20, 10), 11*21 + 2*22, 10*20*6 + 2*20*3},
		{"sphere", Sphere(1, 20, 20), 19*21 + 2, 20*3 + 18*20*6 + 20*3},
		{"geosphere", GeoSphere(1, 0), 12, 60},
		{"geosphere subdivided", GeoSphere(1, 2), 6 * 80, 320 * 3},
		{"geosphere clamped", GeoSphere(1, -4), 12, 60},
		{"grid", Grid(6, 6, 30, 30), 900, 6 * 29 * 29},
		{"quad", Quad(2, 2), 4, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireValid(t, tt.geometry)
			assert.Len(t, tt.geometry.Vertices, tt.vertices)
			assert.Len(t, tt.geometry.Indices, tt.indices)
		})
	}
}

func TestBoxExtents(t *testing.T) {
	g := Box(2, 4, 6)
	for _, v := range g.Vertices {
		assert.Equal(t, float32(1), math32.Abs(v.Position[0]))
		assert.Equal(t, float32(2), math32.Abs(v.Position[1]))
		assert.Equal(t, float32(3), math32.Abs(v.Position[2]))
	}
}

func TestSpheresSitOnRadius(t *testing.T) {
	for _, g := range []mesh.Geometry{Sphere(2, 12, 8), GeoSphere(2, 3)} {
		requireValid(t, g)
		for _, v := range g.Vertices {
			p := v.Position
			assert.InDelta(t, 2, math32.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]), 1e-4)
		}
	}
}

func TestCylinderRadii(t *testing.T) {
	g := Cylinder(1, 0.5, 3, 8, 2)
	bottom := g.Vertices[0].Position
	top := g.Vertices[2*9].Position
	assert.Equal(t, float32(-1.5), bottom[1])
	assert.InDelta(t, 1, bottom[0], 1e-6)
	assert.Equal(t, float32(1.5), top[1])
	assert.InDelta(t, 0.5, top[0], 1e-6)
}

func TestGridIsFlatAndCentered(t *testing.T) {
	g := Grid(6, 4, 3, 4)
	requireValid(t, g)
	var minX, maxX, minZ, maxZ float32
	for _, v := range g.Vertices {
		assert.Equal(t, float32(0), v.Position[1])
		minX, maxX = math32.Min(minX, v.Position[0]), math32.Max(maxX, v.Position[0])
		minZ, maxZ = math32.Min(minZ, v.Position[2]), math32.Max(maxZ, v.Position[2])
	}
	assert.Equal(t, float32(-3), minX)
	assert.Equal(t, float32(3), maxX)
	assert.Equal(t, float32(-2), minZ)
	assert.Equal(t, float32(2), maxZ)
}

func TestGeneratorsPackTogether(t *testing.T) {
	b := mesh.NewBuffer()
	for _, g := range []mesh.Geometry{Box(2, 2, 2), Cylinder(1, 0.5, 3, 20, 10), Sphere(1, 20, 20), GeoSphere(1, 1), Grid(3, 3, 20, 20), Quad(2, 2)} {
		_, _, err := b.Append(g)
		require.NoError(t, err)
	}
	assert.NoError(t, b.Validate())
}
