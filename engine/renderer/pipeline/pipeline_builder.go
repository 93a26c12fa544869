package pipeline

import (
	"github.com/Carmen-Shannon/lux-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineBuilderOption is a function that configures a pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithVertexShader is an option builder that sets the vertex stage shader.
//
// Parameters:
//   - s: the vertex shader
//
// Returns:
//   - PipelineBuilderOption: a function that applies the vertex shader option to a pipeline
func WithVertexShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexShader = s
	}
}

// WithFragmentShader is an option builder that sets the fragment stage shader.
//
// Parameters:
//   - s: the fragment shader
//
// Returns:
//   - PipelineBuilderOption: a function that applies the fragment shader option to a pipeline
func WithFragmentShader(s shader.Shader) PipelineBuilderOption {
	return func(p *pipeline) {
		p.fragmentShader = s
	}
}

// WithBindGroupLayouts is an option builder that sets the bind group
// layout descriptors the pipeline's shaders consume, ordered by group index.
//
// Parameters:
//   - layouts: the layout descriptors
//
// Returns:
//   - PipelineBuilderOption: a function that applies the bind group layouts option to a pipeline
func WithBindGroupLayouts(layouts ...wgpu.BindGroupLayoutDescriptor) PipelineBuilderOption {
	return func(p *pipeline) {
		p.bindGroupLayouts = layouts
	}
}

// WithVertexLayouts is an option builder that sets the vertex buffer
// layouts consumed by the vertex stage.
//
// Parameters:
//   - layouts: the vertex buffer layouts
//
// Returns:
//   - PipelineBuilderOption: a function that applies the vertex layouts option to a pipeline
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) PipelineBuilderOption {
	return func(p *pipeline) {
		p.vertexLayouts = layouts
	}
}

// WithDepthTest is an option builder that enables or disables depth testing.
//
// Parameters:
//   - enabled: true to enable depth testing
//
// Returns:
//   - PipelineBuilderOption: a function that applies the depth test option to a pipeline
func WithDepthTest(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWrite is an option builder that enables or disables depth writes.
//
// Parameters:
//   - enabled: true to enable depth writes
//
// Returns:
//   - PipelineBuilderOption: a function that applies the depth write option to a pipeline
func WithDepthWrite(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithBlend is an option builder that enables or disables alpha blending.
//
// Parameters:
//   - enabled: true to enable blending
//
// Returns:
//   - PipelineBuilderOption: a function that applies the blend option to a pipeline
func WithBlend(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithCullMode is an option builder that sets the face culling mode.
//
// Parameters:
//   - mode: the cull mode to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the cull mode option to a pipeline
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology is an option builder that sets the primitive topology.
//
// Parameters:
//   - topology: the primitive topology to use
//
// Returns:
//   - PipelineBuilderOption: a function that applies the topology option to a pipeline
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}
