package material

import (
	"github.com/Carmen-Shannon/lux-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// MinRoughness is the lowest roughness a material accepts. The floor
// keeps the GGX distribution away from its degenerate delta at zero.
const MinRoughness = 0.01

// material is the implementation of the Material interface.
type material struct {
	name      string
	albedo    mgl32.Vec3
	metalness float32
	roughness float32
}

// Material defines the interface for the live-tunable surface the
// viewer shades.
//
// All three properties are mutable at runtime; every setter clamps its
// input to the valid domain silently, so out-of-range writes never
// produce an error and never leave the material in an invalid state.
// Valid domains: albedo channels [0, 1], metalness [0, 1], roughness
// [MinRoughness, 1].
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Albedo retrieves the base color of the material in linear space.
	//
	// Returns:
	//   - mgl32.Vec3: the base color as RGB values in [0, 1]
	Albedo() mgl32.Vec3

	// Metalness retrieves the metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor in [0, 1]
	Metalness() float32

	// Roughness retrieves the roughness factor of the material.
	// A value of MinRoughness represents the smoothest expressible surface,
	// 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor in [MinRoughness, 1]
	Roughness() float32

	// SetAlbedo sets the base color, clamping each channel to [0, 1].
	//
	// Parameters:
	//   - r, g, b: color channels in linear space
	SetAlbedo(r, g, b float32)

	// SetAlbedoChannel sets a single base color channel, clamped to
	// [0, 1]. Channel indices outside 0..2 are ignored.
	//
	// Parameters:
	//   - channel: channel index (0 = r, 1 = g, 2 = b)
	//   - value: the new channel value
	SetAlbedoChannel(channel int, value float32)

	// SetMetalness sets the metallic factor, clamped to [0, 1].
	//
	// Parameters:
	//   - metalness: the metallic factor
	SetMetalness(metalness float32)

	// SetRoughness sets the roughness factor, clamped to [MinRoughness, 1].
	//
	// Parameters:
	//   - roughness: the roughness factor
	SetRoughness(roughness float32)
}

var _ Material = &material{}

// NewMaterial creates a new Material with the viewer defaults and any
// provided options applied. Defaults: albedo (0x70, 0xF9, 0x15)/255,
// metalness 0.201, roughness 0.115.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		name:      "default",
		albedo:    mgl32.Vec3{0x70 / 255.0, 0xF9 / 255.0, 0x15 / 255.0},
		metalness: 0.201,
		roughness: 0.115,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Albedo() mgl32.Vec3 {
	return m.albedo
}

func (m *material) Metalness() float32 {
	return m.metalness
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) SetAlbedo(r, g, b float32) {
	m.albedo = mgl32.Vec3{
		common.Saturate(r),
		common.Saturate(g),
		common.Saturate(b),
	}
}

func (m *material) SetAlbedoChannel(channel int, value float32) {
	if channel < 0 || channel > 2 {
		return
	}
	m.albedo[channel] = common.Saturate(value)
}

func (m *material) SetMetalness(metalness float32) {
	m.metalness = common.Saturate(metalness)
}

func (m *material) SetRoughness(roughness float32) {
	m.roughness = common.Clamp(roughness, MinRoughness, 1)
}
