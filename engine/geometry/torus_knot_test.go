package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTorusKnotCounts(t *testing.T) {
	tubular, radial := 64, 8
	mesh := NewTorusKnot(WithSegments(tubular, radial))

	assert.Equal(t, (tubular+1)*(radial+1), len(mesh.Vertices))
	assert.Equal(t, tubular*radial*6, len(mesh.Indices))
	assert.Equal(t, uint32(tubular*radial*6), mesh.IndexCount())
}

func TestNewTorusKnotIndicesInBounds(t *testing.T) {
	mesh := NewTorusKnot(WithSegments(32, 6))

	limit := uint32(len(mesh.Vertices))
	for _, idx := range mesh.Indices {
		require.Less(t, idx, limit)
	}
}

func TestNewTorusKnotNormalsAreUnit(t *testing.T) {
	mesh := NewTorusKnot(WithSegments(48, 8))

	for i, v := range mesh.Vertices {
		require.InDelta(t, 1, v.Normal.Len(), 1e-4, "vertex %d", i)
	}
}

func TestNewTorusKnotDeterministicAcrossWorkerCounts(t *testing.T) {
	serial := NewTorusKnot(WithSegments(64, 8), WithWorkers(1))
	parallel := NewTorusKnot(WithSegments(64, 8), WithWorkers(8))

	require.Equal(t, len(serial.Vertices), len(parallel.Vertices))
	assert.Equal(t, serial.Vertices, parallel.Vertices)
	assert.Equal(t, serial.Indices, parallel.Indices)
}

func TestNewTorusKnotTubeDistance(t *testing.T) {
	tube := float32(0.35)
	tubular, radial := 64, 8
	mesh := NewTorusKnot(WithSegments(tubular, radial), WithTubeRadius(tube))
	cols := radial + 1

	// Every vertex sits exactly one tube radius from its ring's
	// centerline point.
	for row := 0; row <= tubular; row++ {
		u := float32(row) / float32(tubular) * 2 * 2 * 3.14159265
		center := knotPoint(u, 1, 2, 3)
		for j := 0; j < cols; j++ {
			v := mesh.Vertices[row*cols+j]
			require.InDelta(t, tube, v.Position.Sub(center).Len(), 1e-3,
				"row %d col %d", row, j)
		}
	}
}

func TestNewTorusKnotSeamWrapsClosed(t *testing.T) {
	tubular, radial := 32, 6
	mesh := NewTorusKnot(WithSegments(tubular, radial))
	cols := radial + 1

	// The final tubular ring duplicates the first ring's positions so the
	// surface closes without a gap.
	for j := 0; j < cols; j++ {
		first := mesh.Vertices[j].Position
		last := mesh.Vertices[tubular*cols+j].Position
		require.InDelta(t, first.X(), last.X(), 1e-2)
		require.InDelta(t, first.Y(), last.Y(), 1e-2)
		require.InDelta(t, first.Z(), last.Z(), 1e-2)
	}
}

func TestVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()

	assert.Equal(t, uint64(32), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint64(24), layout.Attributes[2].Offset)
	for i, attr := range layout.Attributes {
		assert.Equal(t, uint32(i), attr.ShaderLocation)
	}
}
