package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBackendType selects the GPU API implementation backing the
// Renderer. WebGPU is the only backend the viewer ships; the type exists
// so the construction path stays explicit about what it is wiring up.
type RendererBackendType int

const (
	// BackendTypeWGPU renders through cogentcore/webgpu (wgpu-native).
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames reach the display surface.
type PresentMode int

const (
	// PresentModeVSync holds presentation until the next vertical blank.
	// Frame delivery is capped at the display refresh rate and cannot tear.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents each frame as soon as it is submitted.
	// Lowest latency; tearing is possible.
	PresentModeUncapped
)

// toWGPU maps the present mode onto the value the surface configuration
// understands.
//
// Returns:
//   - wgpu.PresentMode: Fifo for VSync, Immediate otherwise
func (m PresentMode) toWGPU() wgpu.PresentMode {
	if m == PresentModeVSync {
		return wgpu.PresentModeFifo
	}
	return wgpu.PresentModeImmediate
}

// MSAASampleCount is the multisample count shared by the color and depth
// render targets. WebGPU guarantees 1 and 4; 8 and 16 are adapter
// dependent.
type MSAASampleCount uint32

const (
	// MSAAOff renders directly into the swapchain with a single sample.
	MSAAOff MSAASampleCount = 1

	// MSAA4x is the viewer default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x requires adapter support.
	MSAA8x MSAASampleCount = 8

	// MSAA16x requires adapter support.
	MSAA16x MSAASampleCount = 16
)

// Valid reports whether the count is one the render targets can be
// created with.
//
// Returns:
//   - bool: true for 1, 4, 8, or 16
func (c MSAASampleCount) Valid() bool {
	switch c {
	case MSAAOff, MSAA4x, MSAA8x, MSAA16x:
		return true
	}
	return false
}

// Enabled reports whether multisampling is on, in which case the render
// pass draws into a dedicated MSAA texture and resolves into the
// swapchain view each frame.
//
// Returns:
//   - bool: true when the count is above 1
func (c MSAASampleCount) Enabled() bool {
	return c > MSAAOff
}

// RendererBackend is the GPU-facing half of the Renderer: surface and
// render-target configuration, pipeline and resource creation, and the
// per-frame encode/submit/present cycle. Only the WebGPU implementation
// exists.
type RendererBackend interface {
	wgpuRendererBackend
}
