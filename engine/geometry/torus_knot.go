package geometry

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// torusKnotConfig holds the tessellation parameters for NewTorusKnot.
type torusKnotConfig struct {
	radius          float32
	tube            float32
	tubularSegments int
	radialSegments  int
	p               int
	q               int
	workers         int
}

// NewTorusKnot tessellates a (p, q) torus knot into a triangle mesh.
// The default configuration produces the trefoil-style (2, 3) knot the
// viewer ships with: radius 1, tube 0.35, 256 tubular and 32 radial
// segments.
//
// Vertex rows along the tube are independent, so the tessellation fans
// the rows out across a worker pool and joins on a WaitGroup before
// building indices.
//
// Parameters:
//   - options: functional options to configure the tessellation
//
// Returns:
//   - *MeshData: the tessellated mesh
func NewTorusKnot(options ...TorusKnotOption) *MeshData {
	cfg := &torusKnotConfig{
		radius:          1.0,
		tube:            0.35,
		tubularSegments: 256,
		radialSegments:  32,
		p:               2,
		q:               3,
		workers:         defaultWorkers(),
	}
	for _, option := range options {
		option(cfg)
	}

	rows := cfg.tubularSegments + 1
	cols := cfg.radialSegments + 1
	vertices := make([]Vertex, rows*cols)

	pool := worker.NewDynamicWorkerPool(cfg.workers, 256, 1*time.Second)

	var wg sync.WaitGroup
	for i := 0; i < rows; i++ {
		wg.Add(1)
		row := i
		pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				tessellateRow(cfg, row, vertices[row*cols:(row+1)*cols])
				return nil, nil
			},
		})
	}
	wg.Wait()

	indices := make([]uint32, 0, cfg.tubularSegments*cfg.radialSegments*6)
	for j := 1; j <= cfg.tubularSegments; j++ {
		for i := 1; i <= cfg.radialSegments; i++ {
			a := uint32(cols*(j-1) + (i - 1))
			b := uint32(cols*j + (i - 1))
			c := uint32(cols*j + i)
			d := uint32(cols*(j-1) + i)
			indices = append(indices, a, b, d, b, c, d)
		}
	}

	return &MeshData{
		Name:     "torus_knot",
		Vertices: vertices,
		Indices:  indices,
	}
}

// tessellateRow fills one ring of vertices at tubular segment index row.
// out must have radialSegments+1 entries.
func tessellateRow(cfg *torusKnotConfig, row int, out []Vertex) {
	u := float32(row) / float32(cfg.tubularSegments) * float32(cfg.p) * 2 * math32.Pi

	// Frenet-style frame from two nearby curve samples.
	p1 := knotPoint(u, cfg.radius, cfg.p, cfg.q)
	p2 := knotPoint(u+0.01, cfg.radius, cfg.p, cfg.q)

	tangent := p2.Sub(p1)
	normalAxis := p2.Add(p1)
	binormal := tangent.Cross(normalAxis).Normalize()
	normalAxis = binormal.Cross(tangent).Normalize()

	for j := range out {
		v := float32(j) / float32(cfg.radialSegments) * 2 * math32.Pi
		cx := -cfg.tube * math32.Cos(v)
		cy := cfg.tube * math32.Sin(v)

		pos := mgl32.Vec3{
			p1.X() + cx*normalAxis.X() + cy*binormal.X(),
			p1.Y() + cx*normalAxis.Y() + cy*binormal.Y(),
			p1.Z() + cx*normalAxis.Z() + cy*binormal.Z(),
		}

		out[j] = Vertex{
			Position: pos,
			Normal:   pos.Sub(p1).Normalize(),
			UV: mgl32.Vec2{
				float32(row) / float32(cfg.tubularSegments),
				float32(j) / float32(cfg.radialSegments),
			},
		}
	}
}

// knotPoint evaluates the centerline of the (p, q) torus knot at
// parameter u.
func knotPoint(u, radius float32, p, q int) mgl32.Vec3 {
	cu := math32.Cos(u)
	su := math32.Sin(u)
	quOverP := float32(q) / float32(p) * u
	cs := math32.Cos(quOverP)

	return mgl32.Vec3{
		radius * (2 + cs) * 0.5 * cu,
		radius * (2 + cs) * 0.5 * su,
		radius * math32.Sin(quOverP) * 0.5,
	}
}
