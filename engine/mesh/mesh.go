package mesh

import "github.com/Carmen-Shannon/oxy-scene/common"

// Geometry is a standalone triangle list. Indices are 0-based and relative to Vertices.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Empty reports whether the geometry has nothing to draw.
func (g Geometry) Empty() bool {
	return len(g.Vertices) == 0 || len(g.Indices) == 0
}

// Colored returns a copy of the geometry with every vertex set to c.
func (g Geometry) Colored(c common.Color) Geometry {
	out := Geometry{
		Vertices: make([]Vertex, len(g.Vertices)),
		Indices:  make([]uint32, len(g.Indices)),
	}
	copy(out.Indices, g.Indices)
	for i, v := range g.Vertices {
		v.Color = c
		out.Vertices[i] = v
	}
	return out
}

// SubMesh locates one object's range inside the packed pools.
// Indices in [StartIndex, StartIndex+IndexCount) are relative to BaseVertex.
type SubMesh struct {
	IndexCount  uint32
	StartIndex  uint32
	BaseVertex  uint32
	VertexCount uint32
}

// EndVertex returns one past the last vertex owned by the submesh.
func (s SubMesh) EndVertex() uint32 {
	return s.BaseVertex + s.VertexCount
}

// EndIndex returns one past the last index owned by the submesh.
func (s SubMesh) EndIndex() uint32 {
	return s.StartIndex + s.IndexCount
}
