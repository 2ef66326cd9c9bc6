package nmg

import (
	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// Region is one CSG leaf or combination's worth of geometry: a set of
// Shells, typically one "outer" shell plus zero or more "void" shells
// nested inside it (see cleanup.FindVoidShells/AssocVoidShells).
type Region struct {
	Obj
	model *Model

	Shells []*Shell
	bbox   *geom.BBox
}

func (r *Region) Model() *Model { return r.model }

func (r *Region) invalidate() {
	r.bbox = nil
}

// NewShell allocates an empty Shell owned by r.
func (r *Region) NewShell() *Shell {
	s := &Shell{Obj: r.model.alloc(KindShell), model: r.model, RegionP: r}
	r.Shells = append(r.Shells, s)
	return s
}

// BBox returns r's bounding box, the union of its shells' bounding
// boxes (each already padded by tol.Dist), recomputed lazily.
func (r *Region) BBox(tol tolerance.Tolerance) geom.BBox {
	if r.bbox != nil {
		return *r.bbox
	}
	b := geom.EmptyBBox()
	for _, s := range r.Shells {
		b = b.Union(s.BBox(tol))
	}
	r.bbox = &b
	return b
}

// Kill frees every shell owned by r, then removes r from its Model.
func (r *Region) Kill() {
	if r.Dead {
		return
	}
	r.Dead = true
	for _, s := range append([]*Shell(nil), r.Shells...) {
		s.Kill()
	}
	r.model.Regions = removeRegion(r.model.Regions, r)
}
