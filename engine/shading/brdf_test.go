package shading

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// defaultScenario is the reference shading setup: default material, a
// facing fragment at the origin, light at (5,5,5), camera at (0,0,5).
func defaultScenario() (Surface, Fragment, Environment) {
	surf := Surface{
		Albedo:    mgl32.Vec3{112.0 / 255.0, 249.0 / 255.0, 21.0 / 255.0},
		Metalness: 0.201,
		Roughness: 0.115,
	}
	frag := Fragment{
		WorldPosition: mgl32.Vec3{0, 0, 0},
		Normal:        mgl32.Vec3{0, 0, 1},
	}
	env := Environment{
		CameraPosition: mgl32.Vec3{0, 0, 5},
		LightPosition:  mgl32.Vec3{5, 5, 5},
	}
	return surf, frag, env
}

func TestShadeGoldenScenario(t *testing.T) {
	surf, frag, env := defaultScenario()
	got := Shade(surf, frag, env)

	assert.InDelta(t, 0.2984671, got.X(), 1e-3)
	assert.InDelta(t, 0.4091628, got.Y(), 1e-3)
	assert.InDelta(t, 0.1436107, got.Z(), 1e-3)
}

func TestShadeBackfacingLightIsAmbientOnly(t *testing.T) {
	surf, frag, env := defaultScenario()
	// Light directly behind the surface: NdotL clamps to zero.
	env.LightPosition = mgl32.Vec3{0, 0, -5}

	got := Shade(surf, frag, env)

	for i := 0; i < 3; i++ {
		want := math32.Pow(0.03*surf.Albedo[i], 1.0/2.2)
		assert.InDelta(t, want, got[i], 1e-6, "channel %d", i)
	}
	assert.InDelta(t, 0.1397537, got.X(), 1e-3)
	assert.InDelta(t, 0.2009472, got.Y(), 1e-3)
	assert.InDelta(t, 0.0652994, got.Z(), 1e-3)
}

func TestShadeFullMetalHasNoDiffuse(t *testing.T) {
	surf, frag, env := defaultScenario()
	surf.Metalness = 1

	n := frag.Normal.Normalize()
	v := env.CameraPosition.Sub(frag.WorldPosition).Normalize()
	l := env.LightPosition.Sub(frag.WorldPosition).Normalize()
	h := v.Add(l).Normalize()

	nDotL := n.Dot(l)
	nDotV := n.Dot(v)
	require.Greater(t, nDotL, float32(0))

	// At metalness 1 the output must be exactly specular + ambient.
	f0 := FresnelF0(surf.Albedo, 1)
	f := FresnelSchlick(v.Dot(h), f0)
	d := DistributionGGX(n.Dot(h), surf.Roughness)
	g := GeometrySmith(nDotV, nDotL, surf.Roughness)
	specular := f.Mul(d * g / (4*nDotV*nDotL + 1e-4))
	linear := specular.Mul(nDotL).Add(surf.Albedo.Mul(0.03))

	got := Shade(surf, frag, env)
	for i := 0; i < 3; i++ {
		want := math32.Pow(linear[i], 1.0/2.2)
		assert.InDelta(t, want, got[i], 1e-6, "channel %d", i)
	}
}

func TestFresnelF0Dielectric(t *testing.T) {
	f0 := FresnelF0(mgl32.Vec3{0.9, 0.2, 0.4}, 0)
	assert.Equal(t, mgl32.Vec3{0.04, 0.04, 0.04}, f0)
}

func TestFresnelF0FullMetalIsAlbedo(t *testing.T) {
	albedo := mgl32.Vec3{0.9, 0.2, 0.4}
	f0 := FresnelF0(albedo, 1)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, albedo[i], f0[i], 1e-6)
	}
}

func TestFresnelSchlickBounds(t *testing.T) {
	f0 := mgl32.Vec3{0.04, 0.04, 0.04}

	head := FresnelSchlick(1, f0)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.04, head[i], 1e-6)
	}

	grazing := FresnelSchlick(0, f0)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, grazing[i], 1e-6)
	}
}

func TestDistributionGGXMonotonicInRoughness(t *testing.T) {
	// At a perfectly aligned half vector the peak density must fall as
	// the surface gets rougher.
	prev := DistributionGGX(1, 0.01)
	for r := float32(0.05); r <= 1.0; r += 0.05 {
		cur := DistributionGGX(1, r)
		assert.Less(t, cur, prev, "roughness %v", r)
		prev = cur
	}
}

func TestDistributionGGXFiniteAtRoughnessFloor(t *testing.T) {
	// At the clamp floor with an aligned half vector the float32 form of
	// the denominator collapses; the density must stay finite and positive.
	d := DistributionGGX(1, 0.01)

	require.False(t, math32.IsNaN(d))
	require.False(t, math32.IsInf(d, 0))
	assert.Greater(t, d, float32(0))

	// The analytic peak is 1/(pi * roughness^4).
	assert.InEpsilon(t, 1.0/(math32.Pi*1e-8), d, 1e-3)
}

func TestShadeAlignedHighlightAtRoughnessFloor(t *testing.T) {
	surf := Surface{
		Albedo:    mgl32.Vec3{0.5, 0.5, 0.5},
		Metalness: 0,
		Roughness: 0.01,
	}
	frag := Fragment{
		WorldPosition: mgl32.Vec3{0, 0, 0},
		Normal:        mgl32.Vec3{0, 0, 1},
	}
	// Light, view, normal and half vector all aligned: the sharpest
	// possible highlight the clamped roughness range permits.
	env := Environment{
		CameraPosition: mgl32.Vec3{0, 0, 5},
		LightPosition:  mgl32.Vec3{0, 0, 5},
	}

	got := Shade(surf, frag, env)
	for i := 0; i < 3; i++ {
		require.False(t, math32.IsNaN(got[i]), "channel %d", i)
		require.False(t, math32.IsInf(got[i], 0), "channel %d", i)
		assert.Greater(t, got[i], float32(0), "channel %d", i)
	}
}

func TestGeometrySmithInUnitRange(t *testing.T) {
	for _, nDotV := range []float32{0.1, 0.5, 1} {
		for _, nDotL := range []float32{0.1, 0.5, 1} {
			for _, rough := range []float32{0.01, 0.5, 1} {
				g := GeometrySmith(nDotV, nDotL, rough)
				assert.Greater(t, g, float32(0))
				assert.LessOrEqual(t, g, float32(1))
			}
		}
	}
}

func TestShadeNeverProducesNaNOrInf(t *testing.T) {
	frag := Fragment{
		WorldPosition: mgl32.Vec3{0, 0, 0},
		Normal:        mgl32.Vec3{0, 0, 1},
	}
	envs := []Environment{
		{CameraPosition: mgl32.Vec3{0, 0, 5}, LightPosition: mgl32.Vec3{5, 5, 5}},
		// Light, view and normal all aligned: the grazing guards carry it.
		{CameraPosition: mgl32.Vec3{0, 0, 5}, LightPosition: mgl32.Vec3{0, 0, 5}},
		// View orthogonal to the normal: NdotV is zero.
		{CameraPosition: mgl32.Vec3{5, 0, 0}, LightPosition: mgl32.Vec3{5, 5, 5}},
	}

	for _, env := range envs {
		for m := float32(0); m <= 1.0; m += 0.25 {
			for r := float32(0.01); r <= 1.0; r += 0.11 {
				surf := Surface{
					Albedo:    mgl32.Vec3{0.5, 0.5, 0.5},
					Metalness: m,
					Roughness: r,
				}
				got := Shade(surf, frag, env)
				for i := 0; i < 3; i++ {
					require.False(t, math32.IsNaN(got[i]),
						"NaN at metalness=%v roughness=%v env=%v", m, r, env)
					require.False(t, math32.IsInf(got[i], 0),
						"Inf at metalness=%v roughness=%v env=%v", m, r, env)
				}
			}
		}
	}
}
