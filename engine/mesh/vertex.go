package mesh

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-scene/common"
)

// VertexSize is the byte stride of a marshalled Vertex: float3 position followed by float4 color.
const VertexSize = 7 * 4

// Vertex is the single vertex format shared by every object in a packed Buffer.
type Vertex struct {
	Position [3]float32
	Color    common.Color
}

// NewVertex builds a vertex at (x, y, z) with the given color.
func NewVertex(x, y, z float32, c common.Color) Vertex {
	return Vertex{Position: [3]float32{x, y, z}, Color: c}
}

// MarshalTo writes the vertex into dst as little-endian float32 values.
// dst must hold at least VertexSize bytes.
func (v Vertex) MarshalTo(dst []byte) {
	off := 0
	for _, f := range v.Position {
		binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(f))
		off += 4
	}
	for _, f := range v.Color {
		binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(f))
		off += 4
	}
}
