// Package shading implements the Cook-Torrance microfacet reflectance
// model on the CPU. It is the reference for the WGSL program executed by
// the renderer; both evaluate the same math and must stay in agreement.
package shading

import (
	"github.com/Carmen-Shannon/lux-go/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// dielectricF0 is the normal-incidence reflectance used for all
	// non-metallic surfaces.
	dielectricF0 = 0.04

	// ambientFactor scales the albedo for the constant ambient term.
	ambientFactor = 0.03

	// specularEpsilon keeps the specular denominator away from zero at
	// grazing angles.
	specularEpsilon = 1e-4

	// gammaExponent is the exponent applied for gamma correction on the
	// final linear color.
	gammaExponent = 1.0 / 2.2

	// distributionEpsilon floors the GGX denominator. At the roughness
	// floor with an aligned half vector the squared denominator can
	// underflow float32 and the density would otherwise divide by zero.
	distributionEpsilon = 1e-30
)

// Surface describes the material response of the shaded point.
type Surface struct {
	// Albedo is the base color in linear space, each channel in [0, 1].
	Albedo mgl32.Vec3
	// Metalness blends between dielectric and metallic response, [0, 1].
	Metalness float32
	// Roughness is the microfacet roughness, [0.01, 1].
	Roughness float32
}

// Fragment carries the per-pixel geometric inputs produced by the
// vertex stage.
type Fragment struct {
	// WorldPosition is the shaded point in world space.
	WorldPosition mgl32.Vec3
	// Normal is the interpolated surface normal; normalized before use.
	Normal mgl32.Vec3
}

// Environment holds the scene-level inputs the model depends on.
type Environment struct {
	// CameraPosition is the eye position in world space.
	CameraPosition mgl32.Vec3
	// LightPosition is the point light position in world space.
	LightPosition mgl32.Vec3
}

// Shade evaluates the full shading model for one fragment and returns
// the gamma-corrected output color.
//
// The pipeline is: Cook-Torrance specular + Lambertian diffuse for the
// single point light, a constant ambient term, then gamma correction
// with exponent 1/2.2.
//
// Parameters:
//   - surf: material parameters at the shaded point
//   - frag: geometric inputs for the shaded point
//   - env: camera and light state
//
// Returns:
//   - mgl32.Vec3: the display-ready color, each channel in [0, 1]
func Shade(surf Surface, frag Fragment, env Environment) mgl32.Vec3 {
	n := frag.Normal.Normalize()
	v := env.CameraPosition.Sub(frag.WorldPosition).Normalize()
	l := env.LightPosition.Sub(frag.WorldPosition).Normalize()
	h := v.Add(l).Normalize()

	nDotL := common.Saturate(n.Dot(l))
	nDotV := common.Saturate(n.Dot(v))
	nDotH := common.Saturate(n.Dot(h))
	vDotH := common.Saturate(v.Dot(h))

	f0 := FresnelF0(surf.Albedo, surf.Metalness)

	var direct mgl32.Vec3
	if nDotL > 0 {
		f := FresnelSchlick(vDotH, f0)
		d := DistributionGGX(nDotH, surf.Roughness)
		g := GeometrySmith(nDotV, nDotL, surf.Roughness)

		denom := 4*nDotV*nDotL + specularEpsilon
		specular := f.Mul(d * g / denom)

		// Energy not reflected specularly is refracted; metals absorb it.
		kd := mgl32.Vec3{1 - f.X(), 1 - f.Y(), 1 - f.Z()}.Mul(1 - surf.Metalness)
		diffuse := mgl32.Vec3{
			kd.X() * surf.Albedo.X(),
			kd.Y() * surf.Albedo.Y(),
			kd.Z() * surf.Albedo.Z(),
		}.Mul(1 / math32.Pi)

		direct = diffuse.Add(specular).Mul(nDotL)
	}

	ambient := surf.Albedo.Mul(ambientFactor)
	color := direct.Add(ambient)

	return mgl32.Vec3{
		math32.Pow(color.X(), gammaExponent),
		math32.Pow(color.Y(), gammaExponent),
		math32.Pow(color.Z(), gammaExponent),
	}
}

// FresnelF0 computes the normal-incidence reflectance for a surface,
// blending the dielectric constant toward the albedo by metalness.
//
// Parameters:
//   - albedo: base color in linear space
//   - metalness: metallic blend factor, [0, 1]
//
// Returns:
//   - mgl32.Vec3: the F0 reflectance per channel
func FresnelF0(albedo mgl32.Vec3, metalness float32) mgl32.Vec3 {
	return common.Mix(mgl32.Vec3{dielectricF0, dielectricF0, dielectricF0}, albedo, metalness)
}

// FresnelSchlick evaluates Schlick's approximation of the Fresnel
// reflectance.
//
// Parameters:
//   - vDotH: cosine between the view vector and the half vector, [0, 1]
//   - f0: normal-incidence reflectance
//
// Returns:
//   - mgl32.Vec3: reflectance at the given angle per channel
func FresnelSchlick(vDotH float32, f0 mgl32.Vec3) mgl32.Vec3 {
	oneMinus := 1 - vDotH
	pow5 := oneMinus * oneMinus
	pow5 = pow5 * pow5 * oneMinus
	return f0.Add(mgl32.Vec3{1 - f0.X(), 1 - f0.Y(), 1 - f0.Z()}.Mul(pow5))
}

// DistributionGGX evaluates the GGX/Trowbridge-Reitz normal
// distribution function with alpha = roughness squared.
//
// Parameters:
//   - nDotH: cosine between the normal and the half vector, [0, 1]
//   - roughness: microfacet roughness, [0.01, 1]
//
// Returns:
//   - float32: the microfacet density at the half vector
func DistributionGGX(nDotH, roughness float32) float32 {
	alpha := roughness * roughness
	alpha2 := alpha * alpha
	// Factored as cos²·a² + sin² rather than cos²·(a²-1) + 1: near the
	// roughness floor a²-1 rounds to -1 in float32 and the subtraction
	// cancels to zero at NdotH = 1.
	nDotH2 := nDotH * nDotH
	denom := nDotH2*alpha2 + (1 - nDotH2)
	return alpha2 / math32.Max(math32.Pi*denom*denom, distributionEpsilon)
}

// GeometrySmith evaluates Smith's separable shadowing-masking term
// using the Schlick-GGX form with k = (roughness+1)^2 / 8.
//
// Parameters:
//   - nDotV: cosine between the normal and the view vector, [0, 1]
//   - nDotL: cosine between the normal and the light vector, [0, 1]
//   - roughness: microfacet roughness, [0.01, 1]
//
// Returns:
//   - float32: the combined shadowing-masking factor
func GeometrySmith(nDotV, nDotL, roughness float32) float32 {
	r := roughness + 1
	k := r * r / 8
	return geometrySchlickGGX(nDotV, k) * geometrySchlickGGX(nDotL, k)
}

func geometrySchlickGGX(nDotX, k float32) float32 {
	return nDotX / (nDotX*(1-k) + k)
}
