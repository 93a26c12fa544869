package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp constrains v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to constrain
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate constrains v to [0, 1].
//
// Parameters:
//   - v: the value to constrain
//
// Returns:
//   - float32: v limited to [0, 1]
func Saturate(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; t=0 returns a, t=1 returns b.
//
// Parameters:
//   - a: the start value
//   - b: the end value
//   - t: the interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Mix linearly interpolates between two vectors componentwise by t.
// Matches the semantics of the WGSL/GLSL mix() builtin.
//
// Parameters:
//   - a: the start vector
//   - b: the end vector
//   - t: the interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func Mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a.X(), b.X(), t),
		Lerp(a.Y(), b.Y(), t),
		Lerp(a.Z(), b.Z(), t),
	}
}

// glToWGPUDepth remaps OpenGL clip-space depth [-1, 1] to the WebGPU
// convention [0, 1]. Column-major, applied on the left of a projection
// matrix produced by mgl32.Perspective.
var glToWGPUDepth = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Perspective creates a perspective projection matrix with depth mapped
// to the WebGPU clip-space convention [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	return glToWGPUDepth.Mul4(mgl32.Perspective(fovY, aspect, near, far))
}

// Mat4ToArray converts an mgl32.Mat4 into a flat [16]float32 in
// column-major order, the layout WGSL expects for mat4x4<f32> uniforms.
//
// Parameters:
//   - m: the matrix to convert
//
// Returns:
//   - [16]float32: the column-major array view of m
func Mat4ToArray(m mgl32.Mat4) [16]float32 {
	return [16]float32(m)
}
