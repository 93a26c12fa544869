package bind_group_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBindGroupProviderStartsEmpty(t *testing.T) {
	p := NewBindGroupProvider("test")

	assert.Equal(t, "test", p.Label())
	assert.Nil(t, p.BindGroup())
	assert.Nil(t, p.BindGroupLayout())
	assert.Nil(t, p.Buffer(0))
	assert.Nil(t, p.VertexBuffer())
	assert.Nil(t, p.IndexBuffer())
	assert.Zero(t, p.IndexCount())
	assert.Empty(t, p.Buffers())
}

func TestBindGroupProviderReleaseIsIdempotent(t *testing.T) {
	p := NewBindGroupProvider("test")
	p.SetIndexCount(36)

	// Release with nothing initialized, then again; neither call may panic
	// and accessors keep answering.
	p.Release()
	p.Release()

	assert.Nil(t, p.BindGroup())
	assert.Empty(t, p.Buffers())
	assert.Equal(t, 36, p.IndexCount())
}
