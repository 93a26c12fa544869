// Package geometry provides the mesh data the viewer renders: a
// procedural torus-knot tessellator and a glTF loader. Both produce the
// same interleaved vertex format the render pipeline consumes.
package geometry

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/lux-go/common"
)

// Vertex is one interleaved vertex as laid out in the GPU vertex buffer:
// position, normal, uv, tightly packed (32 bytes).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// MeshData holds a triangle mesh ready for buffer upload. Indices are
// triangle-list, three per face, referencing Vertices.
type MeshData struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// VertexBytes returns the vertex slice reinterpreted as raw bytes for a
// GPU buffer upload. The returned slice shares memory with the mesh.
//
// Returns:
//   - []byte: the interleaved vertex data
func (m *MeshData) VertexBytes() []byte {
	return common.SliceToBytes(m.Vertices)
}

// IndexBytes returns the index slice reinterpreted as raw bytes for a
// GPU buffer upload. The returned slice shares memory with the mesh.
//
// Returns:
//   - []byte: the uint32 index data
func (m *MeshData) IndexBytes() []byte {
	return common.SliceToBytes(m.Indices)
}

// IndexCount returns the number of indices in the mesh.
//
// Returns:
//   - uint32: the index count
func (m *MeshData) IndexCount() uint32 {
	return uint32(len(m.Indices))
}

// VertexBufferLayout returns the wgpu vertex buffer layout matching the
// Vertex struct: @location(0) position, @location(1) normal,
// @location(2) uv.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for pipeline creation
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Normal)),
				ShaderLocation: 1,
			},
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.UV)),
				ShaderLocation: 2,
			},
		},
	}
}
