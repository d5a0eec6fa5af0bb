package mesh

// BufferBuilderOption is a functional option for configuring a Buffer during construction.
type BufferBuilderOption func(*buffer)

// WithCapacity preallocates the pools.
//
// Parameters:
//   - vertices: expected vertex pool size
//   - indices: expected index pool size
//
// Returns:
//   - BufferBuilderOption: functional option to set the pool capacity
func WithCapacity(vertices, indices int) BufferBuilderOption {
	return func(b *buffer) {
		b.vertices = make([]Vertex, 0, vertices)
		b.indices = make([]uint32, 0, indices)
	}
}
