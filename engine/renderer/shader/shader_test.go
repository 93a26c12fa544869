package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShaderDefaultEntryPoints(t *testing.T) {
	vs := NewShader("v", ShaderTypeVertex, "code")
	fs := NewShader("f", ShaderTypeFragment, "code")

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, vs.Type())
	assert.Equal(t, ShaderTypeFragment, fs.Type())
}

func TestWithEntryPointOverride(t *testing.T) {
	s := NewShader("v", ShaderTypeVertex, "code", WithEntryPoint("main"))
	assert.Equal(t, "main", s.EntryPoint())
}

func TestPBRShadersShareSource(t *testing.T) {
	vs := NewPBRVertexShader()
	fs := NewPBRFragmentShader()

	assert.Equal(t, vs.Source(), fs.Source())
	assert.True(t, strings.Contains(vs.Source(), "fn vs_main"))
	assert.True(t, strings.Contains(fs.Source(), "fn fs_main"))
	assert.True(t, strings.Contains(fs.Source(), "SceneUniforms"))
}
