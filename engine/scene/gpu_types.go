package scene

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSceneUniforms is the GPU-aligned representation of the per-frame scene
// uniform block consumed by the lit shader pass. Matches the WGSL
// SceneUniforms struct layout exactly (see shader.PBRSource).
// Size: 192 bytes (std140 aligned).
type GPUSceneUniforms struct {
	Model     [16]float32 // offset 0, size 64 (mat4x4<f32>)
	ViewProj  [16]float32 // offset 64, size 64 (mat4x4<f32>)
	CameraPos [3]float32  // offset 128, size 12 (vec3<f32>)
	_pad0     float32     // offset 140: implicit vec3 pad
	LightPos  [3]float32  // offset 144, size 12 (vec3<f32>)
	_pad1     float32     // offset 156: implicit vec3 pad
	Albedo    [3]float32  // offset 160, size 12 (vec3<f32>)
	Metalness float32     // offset 172, size 4
	Roughness float32     // offset 176, size 4
	_pad2     float32     // offset 180: pad to 16-byte boundary
	_pad3     float32     // offset 184
	_pad4     float32     // offset 188
}

// Size returns the size of the GPUSceneUniforms struct in bytes.
//
// Returns:
//   - int: The size of the struct in bytes.
func (g *GPUSceneUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSceneUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 192-byte buffer ready for GPU upload.
func (g *GPUSceneUniforms) Marshal() []byte {
	buf := make([]byte, 192)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:64+(i+1)*4], math.Float32bits(g.ViewProj[i]))
	}
	binary.LittleEndian.PutUint32(buf[128:132], math.Float32bits(g.CameraPos[0]))
	binary.LittleEndian.PutUint32(buf[132:136], math.Float32bits(g.CameraPos[1]))
	binary.LittleEndian.PutUint32(buf[136:140], math.Float32bits(g.CameraPos[2]))
	binary.LittleEndian.PutUint32(buf[140:144], 0) // _pad0
	binary.LittleEndian.PutUint32(buf[144:148], math.Float32bits(g.LightPos[0]))
	binary.LittleEndian.PutUint32(buf[148:152], math.Float32bits(g.LightPos[1]))
	binary.LittleEndian.PutUint32(buf[152:156], math.Float32bits(g.LightPos[2]))
	binary.LittleEndian.PutUint32(buf[156:160], 0) // _pad1
	binary.LittleEndian.PutUint32(buf[160:164], math.Float32bits(g.Albedo[0]))
	binary.LittleEndian.PutUint32(buf[164:168], math.Float32bits(g.Albedo[1]))
	binary.LittleEndian.PutUint32(buf[168:172], math.Float32bits(g.Albedo[2]))
	binary.LittleEndian.PutUint32(buf[172:176], math.Float32bits(g.Metalness))
	binary.LittleEndian.PutUint32(buf[176:180], math.Float32bits(g.Roughness))
	binary.LittleEndian.PutUint32(buf[180:184], 0) // _pad2
	binary.LittleEndian.PutUint32(buf[184:188], 0) // _pad3
	binary.LittleEndian.PutUint32(buf[188:192], 0) // _pad4
	return buf
}
