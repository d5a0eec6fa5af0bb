package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithShaders sets both shader stages.
//
// Parameters:
//   - vertex: the vertex stage
//   - fragment: the fragment stage
//
// Returns:
//   - PipelineBuilderOption: a function that sets the shaders for this pipeline
func WithShaders(vertex, fragment shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexShader = vertex
		p.fragmentShader = fragment
	}
}

// WithDepth sets whether depth testing and depth writes are enabled.
//
// Parameters:
//   - test: depth test fragments against the depth buffer
//   - write: write fragment depth to the depth buffer
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth state for this pipeline
func WithDepth(test, write bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = test
		p.depthWriteEnabled = write
	}
}

// WithCullMode sets the face culling mode.
//
// Parameters:
//   - mode: the cull mode (e.g. wgpu.CullModeBack)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode for this pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology (e.g. wgpu.PrimitiveTopologyLineList)
//
// Returns:
//   - PipelineBuilderOption: a function that sets the topology for this pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the winding order treated as front facing.
//
// Parameters:
//   - frontFace: wgpu.FrontFaceCCW or wgpu.FrontFaceCW
//
// Returns:
//   - PipelineBuilderOption: a function that sets the front face for this pipeline
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets the color write mask.
//
// Parameters:
//   - writeMask: the channels to write
//
// Returns:
//   - PipelineBuilderOption: a function that sets the write mask for this pipeline
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}
