package shader

// ShaderType identifies which pipeline stage a shader module serves.
type ShaderType int

const (
	// ShaderTypeVertex indicates a vertex stage shader.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment indicates a fragment stage shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	shaderType ShaderType
	source     string
	entryPoint string
}

// Shader defines the interface for a WGSL shader module used during
// pipeline creation. Shader source is embedded in the binary as Go
// string constants; there is no runtime file loading or parsing.
type Shader interface {
	// Key returns the unique identifier for this shader, used as the
	// module label during pipeline creation.
	//
	// Returns:
	//   - string: the shader key
	Key() string

	// Type returns the pipeline stage this shader serves.
	//
	// Returns:
	//   - ShaderType: the shader type (vertex or fragment)
	Type() ShaderType

	// Source returns the WGSL source code for this shader.
	//
	// Returns:
	//   - string: the WGSL source
	Source() string

	// EntryPoint returns the entry point function name for this shader's stage.
	//
	// Returns:
	//   - string: the entry point name
	EntryPoint() string
}

var _ Shader = &shader{}

// NewShader creates a new Shader from embedded WGSL source. The default
// entry point is "vs_main" for vertex shaders and "fs_main" for fragment
// shaders.
//
// Parameters:
//   - key: the unique identifier for this shader
//   - shaderType: the pipeline stage this shader serves
//   - source: the WGSL source code
//   - opts: variadic list of ShaderBuilderOption functions to configure the shader
//
// Returns:
//   - Shader: a new Shader instance
func NewShader(key string, shaderType ShaderType, source string, opts ...ShaderBuilderOption) Shader {
	s := &shader{
		key:        key,
		shaderType: shaderType,
		source:     source,
	}
	switch shaderType {
	case ShaderTypeVertex:
		s.entryPoint = "vs_main"
	case ShaderTypeFragment:
		s.entryPoint = "fs_main"
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}
