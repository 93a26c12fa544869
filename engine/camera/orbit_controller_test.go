package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrbitControllerDefaultPosition(t *testing.T) {
	cc := NewOrbitController()

	pos := cc.Position()
	assert.InDelta(t, 0, pos.X(), 1e-6)
	assert.InDelta(t, 0, pos.Y(), 1e-6)
	assert.InDelta(t, 5, pos.Z(), 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cc.Target())
}

func TestOrbitDampingConvergesTowardGoal(t *testing.T) {
	cc := NewOrbitController(WithOrbitSpeed(1))

	cc.Orbit(1, 0) // goal azimuth becomes 1 radian

	// The live azimuth eases toward the goal: strictly increasing and
	// never overshooting.
	prev := cc.Azimuth()
	for i := 0; i < 100; i++ {
		cc.Update(1.0 / 60.0)
		cur := cc.Azimuth()
		require.GreaterOrEqual(t, cur, prev)
		require.LessOrEqual(t, cur, float32(1))
		prev = cur
	}
	// After ~1.7s at damping 10 the residual is negligible.
	assert.InDelta(t, 1, cc.Azimuth(), 1e-3)
}

func TestOrbitUpdateZeroDtIsNoOp(t *testing.T) {
	cc := NewOrbitController(WithOrbitSpeed(1))
	cc.Orbit(1, 0)

	before := cc.Azimuth()
	cc.Update(0)
	cc.Update(-1)
	assert.Equal(t, before, cc.Azimuth())
}

func TestOrbitElevationGoalClamped(t *testing.T) {
	cc := NewOrbitController(WithOrbitSpeed(1))

	cc.Orbit(0, 100) // way past the top limit
	for i := 0; i < 200; i++ {
		cc.Update(1.0 / 60.0)
	}

	limit := math32.Pi/2 - 0.05
	assert.LessOrEqual(t, cc.Elevation(), limit)
	assert.InDelta(t, limit, cc.Elevation(), 1e-3)
}

func TestZoomGoalClampedToRadiusLimits(t *testing.T) {
	cc := NewOrbitController(WithZoomSpeed(1))

	cc.Zoom(1000) // zoom in far past the minimum
	for i := 0; i < 200; i++ {
		cc.Update(1.0 / 60.0)
	}
	assert.InDelta(t, 1.5, cc.Radius(), 1e-3)

	cc.Zoom(-10000)
	for i := 0; i < 200; i++ {
		cc.Update(1.0 / 60.0)
	}
	assert.InDelta(t, 20, cc.Radius(), 1e-3)
}

func TestSetRadiusBypassesDamping(t *testing.T) {
	cc := NewOrbitController()
	cc.SetRadius(8)

	assert.Equal(t, float32(8), cc.Radius())
	cc.Update(1.0 / 60.0)
	assert.InDelta(t, 8, cc.Radius(), 1e-6)
}

func TestOrbitPositionStaysOnSphere(t *testing.T) {
	cc := NewOrbitController(WithOrbitSpeed(1))
	cc.Orbit(2.5, 0.5)

	for i := 0; i < 50; i++ {
		cc.Update(1.0 / 60.0)
		dist := cc.Position().Sub(cc.Target()).Len()
		require.InDelta(t, cc.Radius(), dist, 1e-4)
	}
}
