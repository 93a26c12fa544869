package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()

	assert.Equal(t, "default", m.Name())
	assert.InDelta(t, 112.0/255.0, m.Albedo().X(), 1e-6)
	assert.InDelta(t, 249.0/255.0, m.Albedo().Y(), 1e-6)
	assert.InDelta(t, 21.0/255.0, m.Albedo().Z(), 1e-6)
	assert.Equal(t, float32(0.201), m.Metalness())
	assert.Equal(t, float32(0.115), m.Roughness())
}

func TestSetMetalnessClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"below zero", -0.5, 0},
		{"zero", 0, 0},
		{"inside", 0.42, 0.42},
		{"one", 1, 1},
		{"above one", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial()
			m.SetMetalness(tt.in)
			assert.Equal(t, tt.want, m.Metalness())
		})
	}
}

func TestSetRoughnessClampsWithFloor(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"below zero", -1, MinRoughness},
		{"zero hits floor", 0, MinRoughness},
		{"just under floor", 0.005, MinRoughness},
		{"floor exact", MinRoughness, MinRoughness},
		{"inside", 0.73, 0.73},
		{"above one", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMaterial()
			m.SetRoughness(tt.in)
			assert.Equal(t, tt.want, m.Roughness())
		})
	}
}

func TestSetAlbedoClampsChannels(t *testing.T) {
	m := NewMaterial()
	m.SetAlbedo(-0.2, 0.5, 1.7)

	assert.Equal(t, mgl32.Vec3{0, 0.5, 1}, m.Albedo())
}

func TestSetAlbedoChannel(t *testing.T) {
	m := NewMaterial()
	m.SetAlbedoChannel(1, 2)
	assert.Equal(t, float32(1), m.Albedo().Y())

	m.SetAlbedoChannel(3, 0.5)
	m.SetAlbedoChannel(-1, 0.5)
	assert.Equal(t, float32(1), m.Albedo().Y())
}

func TestBuilderOptionsClamp(t *testing.T) {
	m := NewMaterial(
		WithName("chrome"),
		WithAlbedo(0.9, 0.9, 2),
		WithMetalness(5),
		WithRoughness(0),
	)

	assert.Equal(t, "chrome", m.Name())
	assert.Equal(t, mgl32.Vec3{0.9, 0.9, 1}, m.Albedo())
	assert.Equal(t, float32(1), m.Metalness())
	assert.Equal(t, float32(MinRoughness), m.Roughness())
}
