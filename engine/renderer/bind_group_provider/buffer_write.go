package bind_group_provider

// BufferTarget selects one of a provider's buffers.
type BufferTarget int

const (
	// TargetVertex is the packed vertex buffer.
	TargetVertex BufferTarget = iota

	// TargetIndex is the packed index buffer.
	TargetIndex

	// TargetConstants is the per-object constants buffer.
	TargetConstants
)

// BufferWrite describes a single GPU buffer write, staged until the renderer submits commands.
type BufferWrite struct {
	Provider BindGroupProvider
	Target   BufferTarget
	Offset   uint64
	Data     []byte
}
