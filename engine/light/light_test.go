package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	assert.Equal(t, mgl32.Vec3{5, 5, 5}, l.Position())
}

func TestSetPositionClampsEachAxis(t *testing.T) {
	tests := []struct {
		name string
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"inside range", mgl32.Vec3{3, -7, 0}, mgl32.Vec3{3, -7, 0}},
		{"above max", mgl32.Vec3{11, 50, 10.001}, mgl32.Vec3{10, 10, 10}},
		{"below min", mgl32.Vec3{-11, -50, -10.001}, mgl32.Vec3{-10, -10, -10}},
		{"boundary exact", mgl32.Vec3{10, -10, 10}, mgl32.Vec3{10, -10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLight()
			l.SetPosition(tt.in.X(), tt.in.Y(), tt.in.Z())
			assert.Equal(t, tt.want, l.Position())
		})
	}
}

func TestSetAxisBoundaryReadsBackExact(t *testing.T) {
	l := NewLight()
	l.SetAxis(0, 10)

	// The boundary value must survive the write untouched.
	assert.Equal(t, float32(10), l.Position().X())
}

func TestSetAxisIgnoresOutOfRangeIndex(t *testing.T) {
	l := NewLight()
	l.SetAxis(3, 1)
	l.SetAxis(-1, 1)

	assert.Equal(t, mgl32.Vec3{5, 5, 5}, l.Position())
}

func TestWithPositionOptionClamps(t *testing.T) {
	l := NewLight(WithPosition(100, 0, -100))
	assert.Equal(t, mgl32.Vec3{10, 0, -10}, l.Position())
}
