package shader

// ShaderBuilderOption is a function that configures a shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoint is an option builder that overrides the default entry
// point function name for the shader's stage.
//
// Parameters:
//   - entryPoint: the entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: a function that applies the entry point option to a shader
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}
