package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/lux-go/engine/geometry"
	"github.com/Carmen-Shannon/lux-go/engine/renderer"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/lux-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records calls so scene behavior can be asserted without a GPU.
type fakeRenderer struct {
	pipelines map[string]pipeline.Pipeline
	calls     []string
	writes    []bind_group_provider.BufferWrite
	drawKeys  []string
	meshData  [][]byte
	resized   [2]int
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline {
	return f.pipelines[key]
}

func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline {
	return f.pipelines
}

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	f.calls = append(f.calls, "RegisterPipelines")
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) SetPipeline(key string, p pipeline.Pipeline) {
	f.pipelines[key] = p
}

func (f *fakeRenderer) Resize(width, height int) error {
	f.calls = append(f.calls, "Resize")
	f.resized = [2]int{width, height}
	return nil
}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.calls = append(f.calls, "InitMeshBuffers")
	f.meshData = [][]byte{vertexData, indexData}
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferSizeOverrides map[int]uint64) error {
	f.calls = append(f.calls, "InitBindGroup")
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.calls = append(f.calls, "WriteBuffers")
	f.writes = append(f.writes, writes...)
}

func (f *fakeRenderer) BeginFrame() error {
	f.calls = append(f.calls, "BeginFrame")
	return nil
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.calls = append(f.calls, "DrawCall")
	f.drawKeys = append(f.drawKeys, pipelineKey)
	return nil
}

func (f *fakeRenderer) EndFrame() {
	f.calls = append(f.calls, "EndFrame")
}

func (f *fakeRenderer) Present() {
	f.calls = append(f.calls, "Present")
}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) Release() {
	f.calls = append(f.calls, "Release")
}

// smallMesh keeps scene tests fast by avoiding full torus knot tessellation.
func smallMesh() *geometry.MeshData {
	return geometry.NewTorusKnot(geometry.WithSegments(8, 3))
}

func TestNewSceneDefaultUniforms(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))
	u := s.Uniforms()

	assert.InDelta(t, float32(0x70)/255.0, u.Albedo[0], 1e-6)
	assert.InDelta(t, float32(0xF9)/255.0, u.Albedo[1], 1e-6)
	assert.InDelta(t, float32(0x15)/255.0, u.Albedo[2], 1e-6)
	assert.InDelta(t, 0.201, u.Metalness, 1e-6)
	assert.InDelta(t, 0.115, u.Roughness, 1e-6)
	assert.Equal(t, [3]float32{5, 5, 5}, u.LightPos)
	assert.InDelta(t, 0.0, u.CameraPos[0], 1e-5)
	assert.InDelta(t, 0.0, u.CameraPos[1], 1e-5)
	assert.InDelta(t, 5.0, u.CameraPos[2], 1e-5)
}

func TestApplyParameterVisibleInNextUniforms(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))

	s.ApplyParameter(ParameterUpdate{Parameter: ParameterMetalness, Value: 0.8})
	s.ApplyParameter(ParameterUpdate{Parameter: ParameterAlbedoR, Value: 0.25})
	s.ApplyParameter(ParameterUpdate{Parameter: ParameterLightY, Value: -3})

	u := s.Uniforms()
	assert.InDelta(t, 0.8, u.Metalness, 1e-6)
	assert.InDelta(t, 0.25, u.Albedo[0], 1e-6)
	assert.InDelta(t, -3.0, u.LightPos[1], 1e-6)
}

func TestApplyParameterClampsOutOfRange(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))

	s.ApplyParameter(ParameterUpdate{Parameter: ParameterRoughness, Value: -1})
	s.ApplyParameter(ParameterUpdate{Parameter: ParameterAlbedoG, Value: 2})
	s.ApplyParameter(ParameterUpdate{Parameter: ParameterLightX, Value: 12})
	s.ApplyParameter(ParameterUpdate{Parameter: ParameterLightZ, Value: 10})

	u := s.Uniforms()
	assert.InDelta(t, 0.01, u.Roughness, 1e-6)
	assert.InDelta(t, 1.0, u.Albedo[1], 1e-6)
	assert.InDelta(t, 10.0, u.LightPos[0], 1e-6)
	// A write exactly at the boundary reads back exact.
	assert.Equal(t, float32(10), u.LightPos[2])
}

func TestUniformsSnapshotIsIsolated(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))

	before := s.Uniforms()
	s.ApplyParameter(ParameterUpdate{Parameter: ParameterMetalness, Value: 0.9})

	assert.InDelta(t, 0.201, before.Metalness, 1e-6)
	assert.InDelta(t, 0.9, s.Uniforms().Metalness, 1e-6)
}

func TestAdvanceRotatesModel(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()), WithRotationSpeed(1.0))

	identity := s.Uniforms().Model
	s.Advance(0.5)
	rotated := s.Uniforms().Model
	assert.NotEqual(t, identity, rotated)

	// Rotation about Y by 0.5 rad: Model[0] = cos(0.5) in column-major order.
	assert.InDelta(t, math.Cos(0.5), float64(rotated[0]), 1e-5)
}

func TestAdvanceSettlesCameraTowardOrbitGoal(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))

	before := s.Uniforms()
	assert.InDelta(t, 5.0, before.CameraPos[2], 1e-5)

	// An orbit nudge only moves the goal azimuth; Advance must ease the
	// live coordinates toward it and resync the camera.
	s.Camera().Controller().Orbit(200, 0)
	s.Advance(0.1)

	after := s.Uniforms()
	assert.NotEqual(t, before.CameraPos, after.CameraPos)
	assert.Greater(t, after.CameraPos[0], float32(0))
	assert.Less(t, after.CameraPos[2], before.CameraPos[2])
	// The view-projection matrix follows the moved camera.
	assert.NotEqual(t, before.ViewProj, after.ViewProj)
}

func TestAdvanceRespectsAutoRotateToggle(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))
	s.SetAutoRotate(false)

	before := s.Uniforms().Model
	s.Advance(1.0)
	assert.Equal(t, before, s.Uniforms().Model)
}

func TestAdvanceZeroDeltaIsNoOp(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))

	before := s.Uniforms().Model
	s.Advance(0)
	s.Advance(-1)
	assert.Equal(t, before, s.Uniforms().Model)
}

func TestInitGPURequiresRenderer(t *testing.T) {
	s := NewScene(WithMesh(smallMesh()))
	assert.Error(t, s.InitGPU())
}

func TestInitGPURegistersPipelineAndResources(t *testing.T) {
	f := newFakeRenderer()
	s := NewScene(WithMesh(smallMesh()), WithRenderer(f))

	require.NoError(t, s.InitGPU())

	p := f.Pipeline(PipelineKeyPBR)
	require.NotNil(t, p)
	assert.NotNil(t, p.Shader(shader.ShaderTypeVertex))
	assert.NotNil(t, p.Shader(shader.ShaderTypeFragment))
	assert.Equal(t, []string{"RegisterPipelines", "InitMeshBuffers", "InitBindGroup"}, f.calls)

	mesh := s.Mesh()
	assert.Equal(t, mesh.VertexBytes(), f.meshData[0])
	assert.Equal(t, mesh.IndexBytes(), f.meshData[1])
}

func TestDrawFrameOrderAndUniformUpload(t *testing.T) {
	f := newFakeRenderer()
	s := NewScene(WithMesh(smallMesh()), WithRenderer(f))
	require.NoError(t, s.InitGPU())

	f.calls = nil
	require.NoError(t, s.DrawFrame())

	assert.Equal(t, []string{"BeginFrame", "WriteBuffers", "DrawCall", "EndFrame", "Present"}, f.calls)
	assert.Equal(t, []string{PipelineKeyPBR}, f.drawKeys)

	require.Len(t, f.writes, 1)
	w := f.writes[0]
	assert.Equal(t, 0, w.Binding)
	assert.Equal(t, uint64(0), w.Offset)
	require.Len(t, w.Data, shader.PBRUniformsSize)

	// Roughness lives at byte offset 176 in the uniform block.
	rough := math.Float32frombits(binary.LittleEndian.Uint32(w.Data[176:180]))
	assert.InDelta(t, 0.115, rough, 1e-6)
}

func TestResizeUpdatesRendererAndAspect(t *testing.T) {
	f := newFakeRenderer()
	s := NewScene(WithMesh(smallMesh()), WithRenderer(f))

	require.NoError(t, s.Resize(1920, 1080))
	assert.Equal(t, [2]int{1920, 1080}, f.resized)
	assert.InDelta(t, 1920.0/1080.0, s.Camera().Aspect(), 1e-6)
}

func TestGPUSceneUniformsSizeMatchesShader(t *testing.T) {
	var u GPUSceneUniforms
	assert.Equal(t, shader.PBRUniformsSize, u.Size())
	assert.Len(t, u.Marshal(), shader.PBRUniformsSize)
}
