package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleDocument builds an in-memory glTF document with a single
// indexed triangle carrying positions, normals, and uvs.
func triangleDocument() *gltf.Document {
	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(modeler.WriteIndices(doc, []uint32{0, 1, 2})),
			Attributes: map[string]int{
				"POSITION": modeler.WritePosition(doc, [][3]float32{
					{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
				}),
				"NORMAL": modeler.WriteNormal(doc, [][3]float32{
					{0, 0, 1}, {0, 0, 1}, {0, 0, 1},
				}),
				"TEXCOORD_0": modeler.WriteTextureCoord(doc, [][2]float32{
					{0, 0}, {1, 0}, {0, 1},
				}),
			},
		}},
	}}
	return doc
}

func TestMeshFromDocument(t *testing.T) {
	mesh, err := meshFromDocument(triangleDocument())
	require.NoError(t, err)

	assert.Equal(t, "tri", mesh.Name)
	require.Len(t, mesh.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, mesh.Vertices[1].Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, mesh.Vertices[1].Normal)
	assert.Equal(t, mgl32.Vec2{0, 1}, mesh.Vertices[2].UV)
}

func TestMeshFromDocumentRebasesSecondPrimitive(t *testing.T) {
	doc := triangleDocument()
	doc.Meshes[0].Primitives = append(doc.Meshes[0].Primitives, &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, []uint32{0, 1, 2})),
		Attributes: map[string]int{
			"POSITION": modeler.WritePosition(doc, [][3]float32{
				{0, 0, 1}, {1, 0, 1}, {0, 1, 1},
			}),
			"NORMAL": modeler.WriteNormal(doc, [][3]float32{
				{0, 1, 0}, {0, 1, 0}, {0, 1, 0},
			}),
		},
	})

	mesh, err := meshFromDocument(doc)
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 6)
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, mesh.Indices)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, mesh.Vertices[3].Normal)
	// Missing uvs default to zero.
	assert.Equal(t, mgl32.Vec2{0, 0}, mesh.Vertices[3].UV)
}

func TestMeshFromDocumentMissingNormals(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{
				"POSITION": modeler.WritePosition(doc, [][3]float32{
					{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
				}),
			},
		}},
	}}

	_, err := meshFromDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NORMAL")
}

func TestMeshFromDocumentMalformedTexCoords(t *testing.T) {
	doc := triangleDocument()
	// Point the uv attribute at the vec3 position accessor; the loader
	// must reject the mismatched shape rather than silently zeroing uvs.
	attrs := doc.Meshes[0].Primitives[0].Attributes
	attrs["TEXCOORD_0"] = attrs["POSITION"]

	_, err := meshFromDocument(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "texcoords")
}

func TestMeshFromDocumentEmpty(t *testing.T) {
	_, err := meshFromDocument(gltf.NewDocument())
	require.Error(t, err)
}

func TestMeshFromDocumentNonIndexedPrimitive(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]int{
				"POSITION": modeler.WritePosition(doc, [][3]float32{
					{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
				}),
				"NORMAL": modeler.WriteNormal(doc, [][3]float32{
					{0, 0, 1}, {0, 0, 1}, {0, 0, 1},
				}),
			},
		}},
	}}

	mesh, err := meshFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, mesh.Indices)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF("does/not/exist.gltf")
	require.Error(t, err)
}
