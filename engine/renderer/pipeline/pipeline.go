package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

// ErrMissingShader is returned when a pipeline lacks its vertex or fragment stage.
var ErrMissingShader = errors.New("both vertex and fragment shaders must be set to create a render pipeline")

// ErrMissingConstants is returned when the vertex stage declares nothing at group 0 binding 0,
// where the renderer binds the per-object constants.
var ErrMissingConstants = errors.New("vertex shader must declare the constants uniform at @group(0) @binding(0)")

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for lookups and GPU labels
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	// renderPipeline is set by the renderer once the GPU object exists
	renderPipeline *wgpu.RenderPipeline

	depthTestEnabled  bool
	depthWriteEnabled bool
	cullMode          wgpu.CullMode
	topology          wgpu.PrimitiveTopology
	frontFace         wgpu.FrontFace
	writeMask         wgpu.ColorWriteMask
}

// Pipeline describes a render pipeline: its two shader stages and the fixed-function state
// the renderer uses to create the GPU object.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader for a stage, or nil if not set.
	//
	// Parameters:
	//   - shaderType: the stage to retrieve
	//
	// Returns:
	//   - shader.Shader: the shader for the stage
	Shader(shaderType shader.ShaderType) shader.Shader

	// Validate checks that both stages are present and that the vertex stage declares the
	// constants uniform.
	//
	// Returns:
	//   - error: ErrMissingShader if a stage is missing, ErrMissingConstants if the uniform is not declared
	Validate() error

	// BindGroupLayoutDescriptors merges the layouts declared by both stages. A binding declared
	// by both stages gets the union of their visibilities.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: the merged descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// RenderPipeline returns the GPU pipeline, or nil before the renderer created it.
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the GPU pipeline created by the renderer.
	//
	// Parameters:
	//   - rp: the WebGPU render pipeline
	SetRenderPipeline(rp *wgpu.RenderPipeline)

	// DepthTestEnabled reports whether fragments are depth tested.
	DepthTestEnabled() bool

	// DepthWriteEnabled reports whether fragments write depth.
	DepthWriteEnabled() bool

	// CullMode returns the face culling mode.
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology.
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the winding order treated as front facing.
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask.
	WriteMask() wgpu.ColorWriteMask
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a render pipeline description. Defaults: depth test and write on,
// no culling, triangle lists, counter-clockwise front faces, all color channels written.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the pipeline description
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey:       pipelineKey,
		depthTestEnabled:  true,
		depthWriteEnabled: true,
		cullMode:          wgpu.CullModeNone,
		topology:          wgpu.PrimitiveTopologyTriangleList,
		frontFace:         wgpu.FrontFaceCCW,
		writeMask:         wgpu.ColorWriteMaskAll,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) Validate() error {
	if p.vertexShader == nil || p.fragmentShader == nil {
		return ErrMissingShader
	}
	if p.vertexShader.BindGroupVarName(0, 0) == "" {
		return fmt.Errorf("pipeline %s: %w", p.pipelineKey, ErrMissingConstants)
	}
	return nil
}

func (p *pipeline) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	merged := make(map[int]wgpu.BindGroupLayoutDescriptor)
	for _, s := range []shader.Shader{p.vertexShader, p.fragmentShader} {
		if s == nil {
			continue
		}
		for g, desc := range s.BindGroupLayoutDescriptors() {
			merged[g] = mergeEntries(merged[g], desc)
		}
	}
	return merged
}

// mergeEntries adds b's entries to a, OR-ing visibility where a binding appears in both.
func mergeEntries(a, b wgpu.BindGroupLayoutDescriptor) wgpu.BindGroupLayoutDescriptor {
	byBinding := make(map[uint32]wgpu.BindGroupLayoutEntry, len(a.Entries)+len(b.Entries))
	for _, e := range a.Entries {
		byBinding[e.Binding] = e
	}
	for _, e := range b.Entries {
		if existing, ok := byBinding[e.Binding]; ok {
			existing.Visibility |= e.Visibility
			e = existing
		}
		byBinding[e.Binding] = e
	}

	entries := make([]wgpu.BindGroupLayoutEntry, 0, len(byBinding))
	for _, e := range byBinding {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Binding < entries[j].Binding
	})
	return wgpu.BindGroupLayoutDescriptor{Label: a.Label, Entries: entries}
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}

func (p *pipeline) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipeline) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}
