package scene

// Parameter identifies a single live-tunable scene value.
type Parameter int

const (
	// ParameterAlbedoR is the red channel of the material base color.
	ParameterAlbedoR Parameter = iota
	// ParameterAlbedoG is the green channel of the material base color.
	ParameterAlbedoG
	// ParameterAlbedoB is the blue channel of the material base color.
	ParameterAlbedoB
	// ParameterMetalness is the material metalness factor.
	ParameterMetalness
	// ParameterRoughness is the material roughness factor.
	ParameterRoughness
	// ParameterLightX is the light position X axis.
	ParameterLightX
	// ParameterLightY is the light position Y axis.
	ParameterLightY
	// ParameterLightZ is the light position Z axis.
	ParameterLightZ
)

// String returns a human-readable name for the parameter, used in logs.
//
// Returns:
//   - string: the parameter name
func (p Parameter) String() string {
	switch p {
	case ParameterAlbedoR:
		return "albedo.r"
	case ParameterAlbedoG:
		return "albedo.g"
	case ParameterAlbedoB:
		return "albedo.b"
	case ParameterMetalness:
		return "metalness"
	case ParameterRoughness:
		return "roughness"
	case ParameterLightX:
		return "light.x"
	case ParameterLightY:
		return "light.y"
	case ParameterLightZ:
		return "light.z"
	default:
		return "unknown"
	}
}

// ParameterUpdate is a single tagged parameter write. The target component
// clamps the value to its valid range on application; out-of-range values
// never produce an error.
type ParameterUpdate struct {
	Parameter Parameter
	Value     float32
}
