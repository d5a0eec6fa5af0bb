package shader

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader entry point belongs to.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	}
	return fmt.Sprintf("ShaderType(%d)", int(t))
}

//go:embed color.wgsl
var colorSource string

// shader is the implementation of the Shader interface.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	entryPoint                 string
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              []wgpu.VertexBufferLayout
	dynamicOffsets             bool
}

// Shader is a parsed WGSL stage. The bind group layouts and vertex buffer layouts are
// read from the source so the renderer can build a pipeline without hand-written descriptors.
type Shader interface {
	// Key retrieves the unique identifier for this shader.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// ShaderType returns the stage this shader was parsed for.
	ShaderType() ShaderType

	// EntryPoint returns the entry point function name for this shader's stage.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// BindGroupLayoutDescriptors retrieves all parsed bind group layout descriptors keyed by group index.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName retrieves the variable name declared at a group and binding.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - string: the variable name, or an empty string if not found
	BindGroupVarName(group, binding int) string

	// VertexLayouts retrieves the vertex buffer layouts, one per vertex input struct.
	// Only vertex shaders carry layouts.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the layouts in declaration order
	VertexLayouts() []wgpu.VertexBufferLayout

	// Module returns a shader module descriptor for the source.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: descriptor labelled with the shader key
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader parses WGSL source for one stage.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - shaderType: the stage whose entry point is used
//   - source: the WGSL source
//   - options: functional options applied before parsing
//
// Returns:
//   - Shader: the parsed shader
//   - error: an error if the source has no entry point for the stage
func NewShader(key string, shaderType ShaderType, source string, options ...ShaderBuilderOption) (Shader, error) {
	s := &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
	}
	for _, option := range options {
		option(s)
	}

	s.entryPoint = parseEntryPoint(source, shaderType)
	if s.entryPoint == "" {
		return nil, fmt.Errorf("shader %s: no @%s entry point", key, shaderType)
	}
	if shaderType == ShaderTypeVertex {
		s.vertexLayouts = parseVertexLayouts(source)
	}

	visibility := wgpu.ShaderStageVertex
	if shaderType == ShaderTypeFragment {
		visibility = wgpu.ShaderStageFragment
	}
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(source, visibility, s.dynamicOffsets)
	return s, nil
}

// NewColorShaders returns the built-in vertex and fragment stages that transform each vertex
// by its object's world-view-projection matrix and pass the vertex color through.
// The constants uniform uses a dynamic offset so one buffer holds every object's slot.
//
// Returns:
//   - vertex: the vertex stage
//   - fragment: the fragment stage
func NewColorShaders() (vertex, fragment Shader) {
	vs, err := NewShader("color_vs", ShaderTypeVertex, colorSource, WithDynamicOffsets())
	if err != nil {
		panic(err)
	}
	fs, err := NewShader("color_fs", ShaderTypeFragment, colorSource, WithDynamicOffsets())
	if err != nil {
		panic(err)
	}
	return vs, fs
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	if s.bindingVarNames[group] == nil {
		return ""
	}
	return s.bindingVarNames[group][binding]
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
}
