package material

// MaterialBuilderOption is a function that configures a Material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the material identifier.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithAlbedo is an option builder that sets the base color of the material.
// Each channel is clamped to [0, 1].
//
// Parameters:
//   - r: the red channel
//   - g: the green channel
//   - b: the blue channel
//
// Returns:
//   - MaterialBuilderOption: a function that applies the albedo option to a material
func WithAlbedo(r, g, b float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetAlbedo(r, g, b)
	}
}

// WithMetalness is an option builder that sets the metallic factor,
// clamped to [0, 1].
//
// Parameters:
//   - metalness: the metallic factor
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metalness option to a material
func WithMetalness(metalness float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetMetalness(metalness)
	}
}

// WithRoughness is an option builder that sets the roughness factor,
// clamped to [MinRoughness, 1].
//
// Parameters:
//   - roughness: the roughness factor
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetRoughness(roughness)
	}
}
