package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-scene/common"
)

var (
	// ErrEmptyGeometry is returned when appending geometry without vertices or indices.
	ErrEmptyGeometry = errors.New("mesh: empty geometry")
	// ErrIndexOutOfRange is returned when a geometry index does not address one of its own vertices.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")
)

type buffer struct {
	mu *sync.RWMutex

	vertices  []Vertex
	indices   []uint32
	subMeshes []SubMesh

	dirty bool
}

// Buffer owns one shared vertex pool and one shared index pool for many objects.
// Slot i describes the i-th appended object. Slots are contiguous and ordered, so
// removing a slot shifts every later slot down by the removed counts.
type Buffer interface {
	// Append copies the geometry onto the end of both pools.
	// Earlier slots are never modified.
	//
	// Parameters:
	//   - g: the geometry to append, with indices relative to its own vertices
	//
	// Returns:
	//   - int: the new slot index
	//   - SubMesh: the new slot's range
	//   - error: ErrEmptyGeometry or ErrIndexOutOfRange, in which case nothing changes
	Append(g Geometry) (int, SubMesh, error)

	// Remove erases slot i's vertices and indices from the pools and rebases later slots.
	//
	// Parameters:
	//   - i: the slot to remove
	//
	// Returns:
	//   - SubMesh: the removed range
	//   - bool: false if i is out of range, in which case nothing changes
	Remove(i int) (SubMesh, bool)

	// SetColor rewrites the color of every vertex in slot i.
	//
	// Parameters:
	//   - i: the slot to recolor
	//   - c: the new color
	//
	// Returns:
	//   - bool: false if i is out of range
	SetColor(i int, c common.Color) bool

	// Colors returns a copy of the per-vertex colors of slot i.
	//
	// Parameters:
	//   - i: the slot index
	//
	// Returns:
	//   - []common.Color: one color per vertex, in vertex order
	//   - bool: false if i is out of range
	Colors(i int) ([]common.Color, bool)

	// SetColors writes per-vertex colors back into slot i, as returned by Colors.
	//
	// Parameters:
	//   - i: the slot to recolor
	//   - colors: one color per vertex of the slot
	//
	// Returns:
	//   - bool: false if i is out of range or len(colors) differs from the slot's vertex count
	SetColors(i int, colors []common.Color) bool

	// SubMesh returns the range of slot i.
	//
	// Parameters:
	//   - i: the slot index
	//
	// Returns:
	//   - SubMesh: the range
	//   - bool: false if i is out of range
	SubMesh(i int) (SubMesh, bool)

	// SubMeshes returns a copy of every slot's range in slot order.
	SubMeshes() []SubMesh

	// Len returns the number of slots.
	Len() int

	// VertexCount returns the size of the vertex pool.
	VertexCount() int

	// IndexCount returns the size of the index pool.
	IndexCount() int

	// Vertices returns a copy of the vertex pool.
	Vertices() []Vertex

	// Indices returns a copy of the index pool.
	Indices() []uint32

	// VertexData marshals the vertex pool for upload, VertexSize bytes per vertex.
	VertexData() []byte

	// IndexData marshals the index pool for upload as little-endian uint32 values.
	IndexData() []byte

	// Dirty reports whether the pools changed since the last ClearDirty.
	Dirty() bool

	// ClearDirty marks the pools as uploaded.
	ClearDirty()

	// Validate checks that slots tile both pools exactly and that every index
	// addresses a vertex inside its own slot.
	//
	// Returns:
	//   - error: a description of the first violation found, or nil
	Validate() error
}

var _ Buffer = &buffer{}

// NewBuffer creates an empty packed Buffer.
//
// Parameters:
//   - options: functional options to configure the buffer
//
// Returns:
//   - Buffer: the newly created buffer
func NewBuffer(options ...BufferBuilderOption) Buffer {
	b := &buffer{
		mu: &sync.RWMutex{},
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *buffer) Append(g Geometry) (int, SubMesh, error) {
	if g.Empty() {
		return -1, SubMesh{}, ErrEmptyGeometry
	}
	for n, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return -1, SubMesh{}, fmt.Errorf("%w: index %d at position %d, %d vertices", ErrIndexOutOfRange, idx, n, len(g.Vertices))
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sub := SubMesh{
		IndexCount:  uint32(len(g.Indices)),
		StartIndex:  uint32(len(b.indices)),
		BaseVertex:  uint32(len(b.vertices)),
		VertexCount: uint32(len(g.Vertices)),
	}
	b.vertices = append(b.vertices, g.Vertices...)
	b.indices = append(b.indices, g.Indices...)
	b.subMeshes = append(b.subMeshes, sub)
	b.dirty = true
	return len(b.subMeshes) - 1, sub, nil
}

func (b *buffer) Remove(i int) (SubMesh, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.subMeshes) {
		return SubMesh{}, false
	}
	sub := b.subMeshes[i]

	b.vertices = append(b.vertices[:sub.BaseVertex], b.vertices[sub.EndVertex():]...)
	b.indices = append(b.indices[:sub.StartIndex], b.indices[sub.EndIndex():]...)

	for j := i + 1; j < len(b.subMeshes); j++ {
		b.subMeshes[j].BaseVertex -= sub.VertexCount
		b.subMeshes[j].StartIndex -= sub.IndexCount
	}
	b.subMeshes = append(b.subMeshes[:i], b.subMeshes[i+1:]...)
	b.dirty = true
	return sub, true
}

func (b *buffer) SetColor(i int, c common.Color) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.subMeshes) {
		return false
	}
	sub := b.subMeshes[i]
	for v := sub.BaseVertex; v < sub.EndVertex(); v++ {
		b.vertices[v].Color = c
	}
	b.dirty = true
	return true
}

func (b *buffer) Colors(i int) ([]common.Color, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.subMeshes) {
		return nil, false
	}
	sub := b.subMeshes[i]
	out := make([]common.Color, 0, sub.VertexCount)
	for _, v := range b.vertices[sub.BaseVertex:sub.EndVertex()] {
		out = append(out, v.Color)
	}
	return out, true
}

func (b *buffer) SetColors(i int, colors []common.Color) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i < 0 || i >= len(b.subMeshes) || len(colors) != int(b.subMeshes[i].VertexCount) {
		return false
	}
	base := b.subMeshes[i].BaseVertex
	for n, c := range colors {
		b.vertices[base+uint32(n)].Color = c
	}
	b.dirty = true
	return true
}

func (b *buffer) SubMesh(i int) (SubMesh, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.subMeshes) {
		return SubMesh{}, false
	}
	return b.subMeshes[i], true
}

func (b *buffer) SubMeshes() []SubMesh {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]SubMesh, len(b.subMeshes))
	copy(out, b.subMeshes)
	return out
}

func (b *buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subMeshes)
}

func (b *buffer) VertexCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.vertices)
}

func (b *buffer) IndexCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.indices)
}

func (b *buffer) Vertices() []Vertex {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Vertex, len(b.vertices))
	copy(out, b.vertices)
	return out
}

func (b *buffer) Indices() []uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]uint32, len(b.indices))
	copy(out, b.indices)
	return out
}

func (b *buffer) VertexData() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]byte, len(b.vertices)*VertexSize)
	for i, v := range b.vertices {
		v.MarshalTo(out[i*VertexSize:])
	}
	return out
}

func (b *buffer) IndexData() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]byte, len(b.indices)*4)
	for i, idx := range b.indices {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

func (b *buffer) Dirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

func (b *buffer) ClearDirty() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}

func (b *buffer) Validate() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var nextVertex, nextIndex uint32
	for i, sub := range b.subMeshes {
		if sub.BaseVertex != nextVertex {
			return fmt.Errorf("slot %d: base vertex %d, expected %d", i, sub.BaseVertex, nextVertex)
		}
		if sub.StartIndex != nextIndex {
			return fmt.Errorf("slot %d: start index %d, expected %d", i, sub.StartIndex, nextIndex)
		}
		if int(sub.EndVertex()) > len(b.vertices) {
			return fmt.Errorf("slot %d: vertex range ends at %d past pool size %d", i, sub.EndVertex(), len(b.vertices))
		}
		if int(sub.EndIndex()) > len(b.indices) {
			return fmt.Errorf("slot %d: index range ends at %d past pool size %d", i, sub.EndIndex(), len(b.indices))
		}
		for _, idx := range b.indices[sub.StartIndex:sub.EndIndex()] {
			if idx >= sub.VertexCount {
				return fmt.Errorf("slot %d: index %d outside %d vertices", i, idx, sub.VertexCount)
			}
		}
		nextVertex = sub.EndVertex()
		nextIndex = sub.EndIndex()
	}
	if int(nextVertex) != len(b.vertices) {
		return fmt.Errorf("vertex pool holds %d vertices, slots cover %d", len(b.vertices), nextVertex)
	}
	if int(nextIndex) != len(b.indices) {
		return fmt.Errorf("index pool holds %d indices, slots cover %d", len(b.indices), nextIndex)
	}
	return nil
}
