package primitives

import (
	"math"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// BuildCone emits a frustum region (a true cone when ApexRadius is
// zero) into m: a base cap, a lateral band, and an apex point or top
// cap, vertices and faces walked in ascending longitude order for
// determinism.
func BuildCone(m *nmg.Model, p ConeParams, ttol tolerance.TriTolerance) (*nmg.Region, error) {
	segments := p.Segments
	if segments <= 0 {
		segments, _ = sphereResolution(math.Max(p.BaseRadius, p.ApexRadius), ttol)
	}
	if segments < 3 {
		segments = 3
	}

	axis := p.Apex.Sub(p.BaseCenter)
	height := axis.Norm()
	if height == 0 {
		return nil, ErrDegenerate
	}
	up := axis.Mul(1 / height)
	u, w := geom.Plane{Normal: up}.Basis()

	ring := func(center geom.Vec3, radius float64) []*nmg.Vertex {
		verts := make([]*nmg.Vertex, segments)
		for j := 0; j < segments; j++ {
			theta := float64(j) * 2 * math.Pi / float64(segments)
			dir := u.Mul(math.Cos(theta)).Add(w.Mul(math.Sin(theta)))
			verts[j] = m.NewVertex(center.Add(dir.Mul(radius)))
		}
		return verts
	}

	r := m.NewRegion()
	s := r.NewShell()

	base := ring(p.BaseCenter, p.BaseRadius)
	baseCenter := m.NewVertex(p.BaseCenter)
	for j := 0; j < segments; j++ {
		jn := (j + 1) % segments
		if _, err := s.NewFaceFromLoop([]*nmg.Vertex{baseCenter, base[jn], base[j]}); err != nil {
			return nil, err
		}
	}

	if p.ApexRadius <= 0 {
		apex := m.NewVertex(p.Apex)
		for j := 0; j < segments; j++ {
			jn := (j + 1) % segments
			if _, err := s.NewFaceFromLoop([]*nmg.Vertex{apex, base[j], base[jn]}); err != nil {
				return nil, err
			}
		}
		return r, nil
	}

	top := ring(p.Apex, p.ApexRadius)
	for j := 0; j < segments; j++ {
		jn := (j + 1) % segments
		quad := []*nmg.Vertex{base[j], base[jn], top[jn], top[j]}
		if _, err := s.NewFaceFromLoop(quad); err != nil {
			return nil, err
		}
	}
	topCenter := m.NewVertex(p.Apex)
	for j := 0; j < segments; j++ {
		jn := (j + 1) % segments
		if _, err := s.NewFaceFromLoop([]*nmg.Vertex{topCenter, top[j], top[jn]}); err != nil {
			return nil, err
		}
	}
	return r, nil
}
