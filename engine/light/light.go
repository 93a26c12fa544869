package light

import (
	"github.com/Carmen-Shannon/lux-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// AxisMin is the lowest value a light position axis accepts.
	AxisMin = -10
	// AxisMax is the highest value a light position axis accepts.
	AxisMax = 10
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position mgl32.Vec3
}

// Light defines the interface for the point light driving the lit pass.
//
// The viewer shades against exactly one point light. Its position is
// live-tunable; each axis is confined to [AxisMin, AxisMax] and values
// outside that range are clamped silently at write time.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// SetPosition sets the world-space position of the light.
	// Each component is clamped to [AxisMin, AxisMax].
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetAxis sets a single position component, clamped to
	// [AxisMin, AxisMax]. Axis indices outside 0..2 are ignored.
	//
	// Parameters:
	//   - axis: component index (0 = x, 1 = y, 2 = z)
	//   - value: the new component value
	SetAxis(axis int, value float32)
}

var _ Light = &lightImpl{}

// NewLight creates a new point Light with the viewer defaults and any
// provided options applied. The default position is (5, 5, 5).
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position: mgl32.Vec3{5, 5, 5},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = mgl32.Vec3{
		common.Clamp(x, AxisMin, AxisMax),
		common.Clamp(y, AxisMin, AxisMax),
		common.Clamp(z, AxisMin, AxisMax),
	}
}

func (l *lightImpl) SetAxis(axis int, value float32) {
	if axis < 0 || axis > 2 {
		return
	}
	l.position[axis] = common.Clamp(value, AxisMin, AxisMax)
}
