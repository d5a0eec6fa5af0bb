package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// DefaultSlotAlignment is the WebGPU default for minUniformBufferOffsetAlignment. Each
// constants slot starts on a multiple of it so it can be bound with a dynamic offset.
const DefaultSlotAlignment = 256

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label prefixed to every GPU object the renderer creates for this provider.
	label string

	// The following fields are GPU allocated resources populated by the Renderer.

	bindGroup       *wgpu.BindGroup
	bindGroupLayout *wgpu.BindGroupLayout

	// constants holds one slot per object, slotSize bytes apart.
	constants *wgpu.Buffer
	slotSize  uint64
	slots     int

	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	vertexCapacity uint64
	indexCapacity  uint64
	indexCount     int
}

// BindGroupProvider holds the GPU resources behind one packed scene: the shared vertex and
// index buffers and the per-object constants buffer with its bind group.
//
// Usage pattern:
//  1. The renderer creates a provider with the pipeline's bind group layout
//  2. UploadMesh grows or reuses the vertex/index buffers via SetVertexBuffer/SetIndexBuffer
//  3. ResizeConstants recreates the constants buffer and bind group via SetConstants/SetBindGroup
//  4. Draw calls bind BindGroup with SlotOffset(slot) as the dynamic offset
type BindGroupProvider interface {
	// Release releases every GPU resource held by this provider.
	Release()

	// ReleaseMesh releases the vertex and index buffers only.
	ReleaseMesh()

	// ReleaseConstants releases the constants buffer and its bind group, keeping the layout.
	ReleaseConstants()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the bind group over the constants buffer, or nil before ResizeConstants.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the layout used for the constants bind group.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the bind group layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the GPU buffer for a write target, or nil if not created.
	//
	// Parameters:
	//   - target: which buffer
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(target BufferTarget) *wgpu.Buffer

	// SlotSize returns the byte stride between constants slots.
	SlotSize() uint64

	// Slots returns the number of constants slots in the current buffer.
	Slots() int

	// SlotOffset returns the byte offset of a slot, used as the dynamic offset when drawing.
	//
	// Parameters:
	//   - slot: the slot index
	//
	// Returns:
	//   - uint32: the byte offset
	SlotOffset(slot int) uint32

	// VertexBuffer returns the GPU vertex buffer, or nil if not uploaded.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the GPU index buffer, or nil if not uploaded.
	IndexBuffer() *wgpu.Buffer

	// VertexCapacity returns the byte size of the vertex buffer.
	VertexCapacity() uint64

	// IndexCapacity returns the byte size of the index buffer.
	IndexCapacity() uint64

	// IndexCount returns the number of indices last uploaded.
	IndexCount() int

	// SetBindGroupLayout stores the layout the constants bind group is created against.
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBindGroup stores the constants bind group, releasing the previous one.
	SetBindGroup(bg *wgpu.BindGroup)

	// SetConstants stores a new constants buffer holding the given number of slots,
	// releasing the previous buffer.
	//
	// Parameters:
	//   - buf: the created buffer
	//   - slots: the slot count it holds
	SetConstants(buf *wgpu.Buffer, slots int)

	// SetVertexBuffer stores a vertex buffer of the given byte capacity, releasing a replaced buffer.
	SetVertexBuffer(buf *wgpu.Buffer, capacity uint64)

	// SetIndexBuffer stores an index buffer of the given byte capacity, releasing a replaced buffer.
	SetIndexBuffer(buf *wgpu.Buffer, capacity uint64)

	// SetIndexCount sets the number of indices uploaded.
	SetIndexCount(count int)
}

// Compile-time check that bindGroupProvider implements BindGroupProvider
var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty BindGroupProvider.
//
// Parameters:
//   - label: debug label for GPU objects
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - BindGroupProvider: the provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:    label,
		slotSize: DefaultSlotAlignment,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// GrowCapacity returns the buffer size to allocate for needed bytes when the current buffer
// holds current bytes. A buffer that fits is reused; otherwise the size at least doubles so
// a scene that grows one object at a time does not reallocate every frame. Sizes are kept
// 4-byte aligned as queue writes require.
//
// Parameters:
//   - current: the current capacity in bytes
//   - needed: the bytes to store
//
// Returns:
//   - uint64: the capacity to use
func GrowCapacity(current, needed uint64) uint64 {
	if needed <= current {
		return current
	}
	return AlignUp(max(needed, current*2), 4)
}

// AlignUp rounds size up to a multiple of alignment.
func AlignUp(size, alignment uint64) uint64 {
	if alignment == 0 {
		return size
	}
	return (size + alignment - 1) / alignment * alignment
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *bindGroupProvider) Buffer(target BufferTarget) *wgpu.Buffer {
	switch target {
	case TargetVertex:
		return p.vertexBuffer
	case TargetIndex:
		return p.indexBuffer
	case TargetConstants:
		return p.constants
	}
	return nil
}

func (p *bindGroupProvider) SlotSize() uint64 {
	return p.slotSize
}

func (p *bindGroupProvider) Slots() int {
	return p.slots
}

func (p *bindGroupProvider) SlotOffset(slot int) uint32 {
	return uint32(uint64(slot) * p.slotSize)
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) VertexCapacity() uint64 {
	return p.vertexCapacity
}

func (p *bindGroupProvider) IndexCapacity() uint64 {
	return p.indexCapacity
}

func (p *bindGroupProvider) IndexCount() int {
	return p.indexCount
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	if p.bindGroup != nil && p.bindGroup != bg {
		p.bindGroup.Release()
	}
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetConstants(buf *wgpu.Buffer, slots int) {
	if p.constants != nil && p.constants != buf {
		p.constants.Release()
	}
	p.constants = buf
	p.slots = slots
}

func (p *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer, capacity uint64) {
	if p.vertexBuffer != nil && p.vertexBuffer != buf {
		p.vertexBuffer.Release()
	}
	p.vertexBuffer = buf
	p.vertexCapacity = capacity
}

func (p *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer, capacity uint64) {
	if p.indexBuffer != nil && p.indexBuffer != buf {
		p.indexBuffer.Release()
	}
	p.indexBuffer = buf
	p.indexCapacity = capacity
}

func (p *bindGroupProvider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *bindGroupProvider) ReleaseMesh() {
	p.SetVertexBuffer(nil, 0)
	p.SetIndexBuffer(nil, 0)
	p.indexCount = 0
}

func (p *bindGroupProvider) ReleaseConstants() {
	p.SetBindGroup(nil)
	p.SetConstants(nil, 0)
}

func (p *bindGroupProvider) Release() {
	p.ReleaseMesh()
	p.ReleaseConstants()
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
}
