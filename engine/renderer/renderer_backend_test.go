package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPresentModeToWGPU(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, PresentModeVSync.toWGPU())
	assert.Equal(t, wgpu.PresentModeImmediate, PresentModeUncapped.toWGPU())
}

func TestMSAASampleCountValid(t *testing.T) {
	for _, c := range []MSAASampleCount{MSAAOff, MSAA4x, MSAA8x, MSAA16x} {
		assert.True(t, c.Valid(), "count %d", c)
	}
	for _, c := range []MSAASampleCount{0, 2, 3, 6, 32} {
		assert.False(t, MSAASampleCount(c).Valid(), "count %d", c)
	}
}

func TestMSAASampleCountEnabled(t *testing.T) {
	assert.False(t, MSAAOff.Enabled())
	assert.True(t, MSAA4x.Enabled())
	assert.True(t, MSAA8x.Enabled())
	assert.True(t, MSAA16x.Enabled())
}
