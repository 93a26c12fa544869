package scene

import (
	"github.com/Carmen-Shannon/lux-go/engine/camera"
	"github.com/Carmen-Shannon/lux-go/engine/geometry"
	"github.com/Carmen-Shannon/lux-go/engine/light"
	"github.com/Carmen-Shannon/lux-go/engine/renderer"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/material"
)

// SceneBuilderOption is a functional option applied to a scene during construction via NewScene.
type SceneBuilderOption func(*sceneImpl)

// WithName sets the scene's identifier.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: a function that applies the name option to a scene
func WithName(name string) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.name = name
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the camera option to a scene
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cam = cam
	}
}

// WithRenderer attaches the renderer the scene draws through.
//
// Parameters:
//   - r: the renderer to attach
//
// Returns:
//   - SceneBuilderOption: a function that applies the renderer option to a scene
func WithRenderer(r renderer.Renderer) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.renderer = r
	}
}

// WithMaterial sets the mesh material.
//
// Parameters:
//   - m: the material to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the material option to a scene
func WithMaterial(m material.Material) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.material = m
	}
}

// WithLight sets the scene's point light.
//
// Parameters:
//   - l: the light to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the light option to a scene
func WithLight(l light.Light) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.light = l
	}
}

// WithMesh sets the mesh the scene draws.
//
// Parameters:
//   - mesh: the CPU-side mesh data
//
// Returns:
//   - SceneBuilderOption: a function that applies the mesh option to a scene
func WithMesh(mesh *geometry.MeshData) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.mesh = mesh
	}
}

// WithAutoRotate enables or disables continuous mesh rotation.
//
// Parameters:
//   - enabled: true to spin the mesh during Advance
//
// Returns:
//   - SceneBuilderOption: a function that applies the auto-rotate option to a scene
func WithAutoRotate(enabled bool) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.autoRotate = enabled
	}
}

// WithRotationSpeed sets the mesh auto-rotation rate in radians per second.
//
// Parameters:
//   - speed: the rotation rate in radians per second
//
// Returns:
//   - SceneBuilderOption: a function that applies the rotation speed option to a scene
func WithRotationSpeed(speed float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.rotationSpeed = speed
	}
}
