package boolean

import (
	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// vertexCache deduplicates coordinates within tol.Dist as they are
// copied into a scratch model, so two operands that already touch (or
// a single operand copied twice) end up sharing one *nmg.Vertex per
// distinct point instead of minting a new one every time.
type vertexCache struct {
	m    *nmg.Model
	tol  tolerance.Tolerance
	seen []*nmg.Vertex
}

func newVertexCache(m *nmg.Model, tol tolerance.Tolerance) *vertexCache {
	return &vertexCache{m: m, tol: tol}
}

func (vc *vertexCache) get(coord geom.Vec3) *nmg.Vertex {
	for _, v := range vc.seen {
		if vc.tol.Coincident(v.Coord, coord) {
			if geom.Less(coord, v.Coord) {
				v.Coord = coord
			}
			return v
		}
	}
	v := vc.m.NewVertex(coord)
	vc.seen = append(vc.seen, v)
	return v
}

// fuse copies every face of src into dest, routing every corner
// through vc so operand-spanning coincident vertices merge into one.
// The copy never shares topology with src — Evaluate's scratch model is
// always discarded or kept wholesale, never spliced into a caller's
// model.
func fuse(dest *nmg.Shell, src *nmg.Shell, vc *vertexCache) error {
	for _, f := range src.Faces {
		pts := loopVerts(f.Uses[0])
		if len(pts) < 3 {
			continue
		}
		verts := make([]*nmg.Vertex, len(pts))
		for i, p := range pts {
			verts[i] = vc.get(p)
		}
		if _, err := dest.NewFaceFromLoop(verts); err != nil {
			return err
		}
	}
	return nil
}
