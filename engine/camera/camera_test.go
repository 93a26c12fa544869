package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.InDelta(t, mgl32.DegToRad(45), c.Fov(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.Nil(t, c.Controller())
	assert.Equal(t, mgl32.Ident4(), c.ViewMatrix())
}

func TestUpdateWithoutControllerIsNoOp(t *testing.T) {
	c := NewCamera()
	c.Update()
	assert.Equal(t, mgl32.Ident4(), c.ViewProjectionMatrix())
}

func TestUpdateMirrorsControllerPosition(t *testing.T) {
	cc := NewOrbitController()
	c := NewCamera(WithController(cc))

	assert.Equal(t, cc.Position(), c.Position())

	cc.SetAzimuth(1.2)
	c.Update()
	assert.Equal(t, cc.Position(), c.Position())
}

func TestViewMatrixTransformsTargetOntoViewAxis(t *testing.T) {
	cc := NewOrbitController()
	c := NewCamera(WithController(cc))

	// The origin sits 5 units in front of the default camera.
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -5, p.Z(), 1e-5)
}

func TestProjectionMapsDepthToZeroOne(t *testing.T) {
	c := NewCamera(WithController(NewOrbitController()))
	proj := c.ProjectionMatrix()

	near := c.Near()
	far := c.Far()

	nearClip := proj.Mul4x1(mgl32.Vec4{0, 0, -near, 1})
	require.NotZero(t, nearClip.W())
	assert.InDelta(t, 0, nearClip.Z()/nearClip.W(), 1e-5)

	farClip := proj.Mul4x1(mgl32.Vec4{0, 0, -far, 1})
	require.NotZero(t, farClip.W())
	assert.InDelta(t, 1, farClip.Z()/farClip.W(), 1e-4)
}

func TestSetAspectRecomputesProjection(t *testing.T) {
	c := NewCamera(WithController(NewOrbitController()))
	before := c.ProjectionMatrix()

	c.SetAspect(16.0 / 9.0)
	assert.NotEqual(t, before, c.ProjectionMatrix())
	assert.Equal(t, float32(16.0/9.0), c.Aspect())
}
