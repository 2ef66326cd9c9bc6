package primitives

import (
	"math"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// BuildSphere emits a UV-tessellated sphere region into m: a ring of
// quads between two pole triangle fans, vertices and faces walked in
// ascending (latitude, longitude) order for determinism. Segments and
// Rings default to sphereResolution(p.Radius, ttol) when left at zero.
func BuildSphere(m *nmg.Model, p SphereParams, ttol tolerance.TriTolerance) (*nmg.Region, error) {
	segments, rings := p.Segments, p.Rings
	if segments <= 0 || rings <= 0 {
		segments, rings = sphereResolution(p.Radius, ttol)
	}
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	r := m.NewRegion()
	s := r.NewShell()

	point := func(phi, theta float64) *nmg.Vertex {
		x := p.Center.X + p.Radius*math.Sin(phi)*math.Cos(theta)
		y := p.Center.Y + p.Radius*math.Sin(phi)*math.Sin(theta)
		z := p.Center.Z + p.Radius*math.Cos(phi)
		return m.NewVertex(geom.NewVec3(x, y, z))
	}

	north := point(0, 0)
	south := point(math.Pi, 0)

	// grid[i][j], i in [1, rings-1] (interior latitudes), j in [0, segments).
	grid := make([][]*nmg.Vertex, rings)
	for i := 1; i < rings; i++ {
		phi := float64(i) * math.Pi / float64(rings)
		row := make([]*nmg.Vertex, segments)
		for j := 0; j < segments; j++ {
			theta := float64(j) * 2 * math.Pi / float64(segments)
			row[j] = point(phi, theta)
		}
		grid[i] = row
	}

	for j := 0; j < segments; j++ {
		jn := (j + 1) % segments
		if _, err := s.NewFaceFromLoop([]*nmg.Vertex{north, grid[1][j], grid[1][jn]}); err != nil {
			return nil, err
		}
	}

	for i := 1; i < rings-1; i++ {
		for j := 0; j < segments; j++ {
			jn := (j + 1) % segments
			quad := []*nmg.Vertex{grid[i][j], grid[i+1][j], grid[i+1][jn], grid[i][jn]}
			if _, err := s.NewFaceFromLoop(quad); err != nil {
				return nil, err
			}
		}
	}

	last := rings - 1
	for j := 0; j < segments; j++ {
		jn := (j + 1) % segments
		if _, err := s.NewFaceFromLoop([]*nmg.Vertex{south, grid[last][jn], grid[last][j]}); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// sphereResolution derives a deterministic segment/ring count from ttol:
// a tighter relative chord tolerance asks for more facets, clamped to a
// sane range so a degenerate (zero) tolerance still yields a usable mesh.
func sphereResolution(radius float64, ttol tolerance.TriTolerance) (segments, rings int) {
	rel := ttol.Rel
	if rel <= 0 {
		rel = 0.05
	}
	n := int(math.Ceil(1.0 / rel))
	if n < 8 {
		n = 8
	}
	if n > 64 {
		n = 64
	}
	return n, n / 2
}
