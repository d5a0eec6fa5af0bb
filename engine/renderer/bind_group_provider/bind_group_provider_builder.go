package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroupLayout sets the layout the constants bind group is created against.
//
// Parameters:
//   - bgl: the bind group layout to use for this provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group layout for this provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithSlotAlignment sets the constants slot stride. It should be the adapter's
// minUniformBufferOffsetAlignment; the stride is rounded up to a multiple of 256
// if smaller values would not satisfy the WebGPU default.
//
// Parameters:
//   - alignment: the slot stride in bytes
//
// Returns:
//   - BindGroupProviderOption: a function that sets the slot stride for this provider
func WithSlotAlignment(alignment uint64) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.slotSize = AlignUp(max(alignment, 1), DefaultSlotAlignment)
	}
}
