package shader

// ShaderBuilderOption is a functional option applied to a shader during NewShader.
type ShaderBuilderOption func(*shader)

// WithDynamicOffsets marks every uniform buffer binding as using a dynamic offset, so a
// single buffer can back many draws by offsetting into it per draw.
//
// Returns:
//   - ShaderBuilderOption: a function that applies the option to a shader
func WithDynamicOffsets() ShaderBuilderOption {
	return func(s *shader) {
		s.dynamicOffsets = true
	}
}
