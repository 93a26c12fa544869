package scene

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/lux-go/engine/camera"
	"github.com/Carmen-Shannon/lux-go/engine/geometry"
	"github.com/Carmen-Shannon/lux-go/engine/light"
	"github.com/Carmen-Shannon/lux-go/engine/renderer"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/material"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// PipelineKeyPBR is the cache key for the lit render pipeline registered by InitGPU.
const PipelineKeyPBR = "pbr"

// defaultRotationSpeed is the mesh auto-rotation rate in radians per second.
const defaultRotationSpeed = 0.5

// Scene owns the live-tunable viewer state: a mesh, its material, a point
// light, and a camera, plus the GPU resources needed to draw them through
// a Renderer. All parameter mutations route through ApplyParameter so the
// owning component can clamp values; the next built uniform snapshot always
// reflects the latest applied state.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Material returns the mesh material whose parameters ApplyParameter targets.
	Material() material.Material

	// Light returns the scene's point light.
	Light() light.Light

	// Mesh returns the CPU-side mesh data the scene draws.
	Mesh() *geometry.MeshData

	// AutoRotate returns whether the mesh spins continuously during Advance.
	AutoRotate() bool

	// SetAutoRotate enables or disables continuous mesh rotation.
	//
	// Parameters:
	//   - enabled: true to spin the mesh each Advance call
	SetAutoRotate(enabled bool)

	// ApplyParameter applies a single tagged parameter write to the owning
	// component. Values outside the parameter's valid range are clamped
	// silently by the component; the write never fails.
	//
	// Parameters:
	//   - update: the tagged parameter and value to apply
	ApplyParameter(update ParameterUpdate)

	// Advance steps scene time by deltaTime: advances the mesh auto-rotation
	// angle and settles the camera controller toward its goal state.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	Advance(deltaTime float32)

	// Uniforms builds the GPU uniform snapshot for the current scene state.
	// The snapshot is a value copy; later parameter writes do not affect it.
	//
	// Returns:
	//   - GPUSceneUniforms: the current uniform block contents
	Uniforms() GPUSceneUniforms

	// InitGPU registers the lit render pipeline and creates the GPU mesh
	// buffers and the scene uniform bind group. Must be called once after
	// the renderer is attached and before the first DrawFrame.
	//
	// Returns:
	//   - error: an error if pipeline or resource creation fails
	InitGPU() error

	// DrawFrame renders one frame: uploads the current uniform snapshot,
	// encodes the draw call, submits, and presents.
	//
	// Returns:
	//   - error: an error if the frame could not be started or drawn
	DrawFrame() error

	// Resize propagates a new surface size to the renderer and updates the
	// camera's aspect ratio.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	Resize(width, height int) error

	// Release releases the GPU resources held by the scene's bind group
	// providers. Safe to call repeatedly.
	Release()
}

// sceneImpl is the implementation of the Scene interface.
type sceneImpl struct {
	mu sync.Mutex

	name string

	cam      camera.Camera
	renderer renderer.Renderer
	material material.Material
	light    light.Light
	mesh     *geometry.MeshData

	// meshProvider holds the vertex and index buffers for the mesh.
	meshProvider bind_group_provider.BindGroupProvider
	// uniformProvider holds the scene uniform buffer at binding 0.
	uniformProvider bind_group_provider.BindGroupProvider

	// rotationAngle is the accumulated auto-rotation angle in radians.
	rotationAngle float32
	rotationSpeed float32
	autoRotate    bool
}

var _ Scene = &sceneImpl{}

// NewScene creates a new Scene with default components: a torus knot mesh,
// the default material and light, and a camera driven by an orbit controller.
// Options override any of these before the scene is returned.
//
// Parameters:
//   - options: a variadic list of SceneBuilderOption functions to configure the scene
//
// Returns:
//   - Scene: a new instance of Scene with the specified configuration
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		name:            "viewer",
		material:        material.NewMaterial(),
		light:           light.NewLight(),
		meshProvider:    bind_group_provider.NewBindGroupProvider("mesh"),
		uniformProvider: bind_group_provider.NewBindGroupProvider("scene uniforms"),
		rotationSpeed:   defaultRotationSpeed,
		autoRotate:      true,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.cam == nil {
		s.cam = camera.NewCamera(camera.WithController(camera.NewOrbitController()))
	}
	if s.mesh == nil {
		s.mesh = geometry.NewTorusKnot()
	}
	return s
}

func (s *sceneImpl) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *sceneImpl) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}

func (s *sceneImpl) Renderer() renderer.Renderer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer
}

func (s *sceneImpl) Material() material.Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.material
}

func (s *sceneImpl) Light() light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.light
}

func (s *sceneImpl) Mesh() *geometry.MeshData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mesh
}

func (s *sceneImpl) AutoRotate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoRotate
}

func (s *sceneImpl) SetAutoRotate(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoRotate = enabled
}

func (s *sceneImpl) ApplyParameter(update ParameterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch update.Parameter {
	case ParameterAlbedoR:
		s.material.SetAlbedoChannel(0, update.Value)
	case ParameterAlbedoG:
		s.material.SetAlbedoChannel(1, update.Value)
	case ParameterAlbedoB:
		s.material.SetAlbedoChannel(2, update.Value)
	case ParameterMetalness:
		s.material.SetMetalness(update.Value)
	case ParameterRoughness:
		s.material.SetRoughness(update.Value)
	case ParameterLightX:
		s.light.SetAxis(0, update.Value)
	case ParameterLightY:
		s.light.SetAxis(1, update.Value)
	case ParameterLightZ:
		s.light.SetAxis(2, update.Value)
	}
}

func (s *sceneImpl) Advance(deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deltaTime <= 0 {
		return
	}
	if s.autoRotate {
		s.rotationAngle += s.rotationSpeed * deltaTime
	}

	// Settle the orbit controller toward its goal state first so the
	// camera matrices pick up the eased position.
	if ctrl := s.cam.Controller(); ctrl != nil {
		ctrl.Update(deltaTime)
	}
	s.cam.Update()
}

func (s *sceneImpl) Uniforms() GPUSceneUniforms {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildUniforms()
}

// buildUniforms assembles the uniform snapshot from the current component
// state. Caller must hold s.mu.
func (s *sceneImpl) buildUniforms() GPUSceneUniforms {
	model := mgl32.HomogRotate3DY(s.rotationAngle)
	viewProj := s.cam.ViewProjectionMatrix()
	camPos := s.cam.Position()
	lightPos := s.light.Position()
	albedo := s.material.Albedo()

	var u GPUSceneUniforms
	copy(u.Model[:], model[:])
	copy(u.ViewProj[:], viewProj[:])
	u.CameraPos = [3]float32{camPos.X(), camPos.Y(), camPos.Z()}
	u.LightPos = [3]float32{lightPos.X(), lightPos.Y(), lightPos.Z()}
	u.Albedo = [3]float32{albedo.X(), albedo.Y(), albedo.Z()}
	u.Metalness = s.material.Metalness()
	u.Roughness = s.material.Roughness()
	return u
}

// uniformBindGroupLayout describes the single uniform buffer binding the lit
// shaders consume at @group(0) @binding(0).
func uniformBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Scene Uniforms Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: shader.PBRUniformsSize,
				},
			},
		},
	}
}

func (s *sceneImpl) InitGPU() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.renderer == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	p := pipeline.NewPipeline(PipelineKeyPBR,
		pipeline.WithVertexShader(shader.NewPBRVertexShader()),
		pipeline.WithFragmentShader(shader.NewPBRFragmentShader()),
		pipeline.WithBindGroupLayouts(uniformBindGroupLayout()),
		pipeline.WithVertexLayouts(geometry.VertexBufferLayout()),
	)
	if err := s.renderer.RegisterPipelines(p); err != nil {
		return fmt.Errorf("failed to register lit pipeline: %w", err)
	}

	if err := s.renderer.InitMeshBuffers(s.meshProvider, s.mesh.VertexBytes(), s.mesh.IndexBytes(), int(s.mesh.IndexCount())); err != nil {
		return fmt.Errorf("failed to init mesh buffers: %w", err)
	}

	if err := s.renderer.InitBindGroup(s.uniformProvider, uniformBindGroupLayout(), nil); err != nil {
		return fmt.Errorf("failed to init scene uniform bind group: %w", err)
	}

	return nil
}

func (s *sceneImpl) DrawFrame() error {
	s.mu.Lock()
	if s.renderer == nil {
		s.mu.Unlock()
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}
	r := s.renderer
	u := s.buildUniforms()
	meshProvider := s.meshProvider
	uniformProvider := s.uniformProvider
	s.mu.Unlock()

	if err := r.BeginFrame(); err != nil {
		return err
	}

	r.WriteBuffers([]bind_group_provider.BufferWrite{
		{
			Provider: uniformProvider,
			Binding:  0,
			Offset:   0,
			Data:     u.Marshal(),
		},
	})

	if err := r.DrawCall(PipelineKeyPBR, meshProvider, 1, []bind_group_provider.BindGroupProvider{uniformProvider}); err != nil {
		return err
	}

	r.EndFrame()
	r.Present()
	return nil
}

func (s *sceneImpl) Resize(width, height int) error {
	s.mu.Lock()
	r := s.renderer
	cam := s.cam
	s.mu.Unlock()

	if height > 0 {
		cam.SetAspect(float32(width) / float32(height))
	}
	if r == nil {
		return nil
	}
	return r.Resize(width, height)
}

func (s *sceneImpl) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meshProvider.Release()
	s.uniformProvider.Release()
}
