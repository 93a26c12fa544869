package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .glb or .gltf file and flattens its mesh primitives
// into a single MeshData. Every primitive must carry POSITION and
// NORMAL attributes; TEXCOORD_0 is optional and defaults to zero.
// Materials, textures, and node transforms in the document are ignored.
//
// Parameters:
//   - path: filesystem path to the glTF asset
//
// Returns:
//   - *MeshData: the flattened mesh
//   - error: non-nil if the document cannot be read or has no usable geometry
func LoadGLTF(path string) (*MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	mesh, err := meshFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return mesh, nil
}

// meshFromDocument flattens all mesh primitives of a parsed glTF
// document into one MeshData. Primitive vertex ranges are concatenated
// and their indices rebased accordingly.
//
// Parameters:
//   - doc: the parsed glTF document
//
// Returns:
//   - *MeshData: the flattened mesh
//   - error: non-nil if no primitive yields geometry or attributes are missing
func meshFromDocument(doc *gltf.Document) (*MeshData, error) {
	mesh := &MeshData{Name: "gltf"}

	for mi, gm := range doc.Meshes {
		if mesh.Name == "gltf" && gm.Name != "" {
			mesh.Name = gm.Name
		}
		for pi, prim := range gm.Primitives {
			if err := appendPrimitive(doc, mesh, prim); err != nil {
				return nil, fmt.Errorf("mesh %d prim %d: %w", mi, pi, err)
			}
		}
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("document contains no geometry")
	}
	return mesh, nil
}

// appendPrimitive reads one primitive's attributes and indices and
// appends them to the mesh, rebasing indices onto the existing vertices.
func appendPrimitive(doc *gltf.Document, mesh *MeshData, prim *gltf.Primitive) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	normIdx, ok := prim.Attributes["NORMAL"]
	if !ok {
		return fmt.Errorf("no NORMAL attribute")
	}
	normals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
	if err != nil {
		return fmt.Errorf("normals: %w", err)
	}
	if len(normals) != len(positions) {
		return fmt.Errorf("normal count %d does not match position count %d", len(normals), len(positions))
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
	}

	base := uint32(len(mesh.Vertices))
	for i, p := range positions {
		v := Vertex{
			Position: mgl32.Vec3{p[0], p[1], p[2]},
			Normal:   mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]},
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		for _, idx := range indices {
			mesh.Indices = append(mesh.Indices, base+idx)
		}
		return nil
	}

	// Non-indexed primitive: triangles are implied by vertex order.
	for i := range positions {
		mesh.Indices = append(mesh.Indices, base+uint32(i))
	}
	return nil
}
