package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
)

func TestDefaults(t *testing.T) {
	p := NewPipeline("scene")
	assert.Equal(t, "scene", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Nil(t, p.RenderPipeline())
	assert.ErrorIs(t, p.Validate(), ErrMissingShader)
}

func TestOptions(t *testing.T) {
	p := NewPipeline("lines",
		WithDepth(true, false),
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithFrontFace(wgpu.FrontFaceCW),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}

func TestMergedLayoutsUnionVisibility(t *testing.T) {
	vs, fs := shader.NewColorShaders()
	p := NewPipeline("scene", WithShaders(vs, fs))
	require.NoError(t, p.Validate())
	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))

	merged := p.BindGroupLayoutDescriptors()
	require.Len(t, merged, 1)
	require.Len(t, merged[0].Entries, 1)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, merged[0].Entries[0].Visibility)
	assert.True(t, merged[0].Entries[0].Buffer.HasDynamicOffset)
}

func TestValidateRequiresConstantsBinding(t *testing.T) {
	vs, err := shader.NewShader("bare_vs", shader.ShaderTypeVertex, `
@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 1.0);
}
`)
	require.NoError(t, err)
	_, fs := shader.NewColorShaders()

	p := NewPipeline("bare", WithShaders(vs, fs))
	assert.ErrorIs(t, p.Validate(), ErrMissingConstants)
}
