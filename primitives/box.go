package primitives

import (
	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
)

// BuildBox emits an axis-aligned box region into m: one shell, six
// quad faces, vertices and faces in the same fixed corner/face order
// every call uses, so repeated calls with identical params are
// bit-identical (spec.md §8 determinism requirement for worked
// examples).
func BuildBox(m *nmg.Model, p BoxParams) (*nmg.Region, error) {
	r := m.NewRegion()
	s := r.NewShell()

	lo, hi := p.Min, p.Max
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }

	v000 := v(lo.X, lo.Y, lo.Z)
	v100 := v(hi.X, lo.Y, lo.Z)
	v110 := v(hi.X, hi.Y, lo.Z)
	v010 := v(lo.X, hi.Y, lo.Z)
	v001 := v(lo.X, lo.Y, hi.Z)
	v101 := v(hi.X, lo.Y, hi.Z)
	v111 := v(hi.X, hi.Y, hi.Z)
	v011 := v(lo.X, hi.Y, hi.Z)

	faces := [][]*nmg.Vertex{
		{v000, v010, v110, v100}, // -Z
		{v001, v101, v111, v011}, // +Z
		{v000, v100, v101, v001}, // -Y
		{v010, v011, v111, v110}, // +Y
		{v000, v001, v011, v010}, // -X
		{v100, v110, v111, v101}, // +X
	}
	for _, verts := range faces {
		if _, err := s.NewFaceFromLoop(verts); err != nil {
			return nil, err
		}
	}
	return r, nil
}
