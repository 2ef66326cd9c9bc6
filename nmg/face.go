package nmg

import "github.com/BRL-CAD/nmgcore/geom"

// Face is the shared planar surface between a FaceUse pair. Its plane
// and bounding box are derived from its OT_SAME use's outer loop and
// cached lazily.
type Face struct {
	Obj
	model *Model

	Uses  [2]*FaceUse // [0] OT_SAME, [1] OT_OPPOSITE
	plane *geom.Plane
	bbox  *geom.BBox
}

func (f *Face) Model() *Model { return f.model }

// Plane returns f's supporting plane, computing it from the first
// triangle of the OT_SAME use's outer loop on first call.
func (f *Face) Plane() (geom.Plane, bool) {
	if f.plane != nil {
		return *f.plane, true
	}
	outer := f.Uses[0].Loops
	if len(outer) == 0 || len(outer[0].Edges) < 3 {
		return geom.Plane{}, false
	}
	ring := outer[0].Edges
	a := ring[0].VUse.V.Coord
	b := ring[1].VUse.V.Coord
	c := ring[2].VUse.V.Coord
	p, ok := geom.PlaneFromTriangle(a, b, c)
	if !ok {
		return geom.Plane{}, false
	}
	f.plane = &p
	return p, true
}

// BBox returns f's bounding box over every vertex in every loop of its
// OT_SAME use, recomputing only when invalidated.
func (f *Face) BBox() geom.BBox {
	if f.bbox != nil {
		return *f.bbox
	}
	b := geom.EmptyBBox()
	for _, lu := range f.Uses[0].Loops {
		if lu.Point != nil {
			b = b.Extend(lu.Point.V.Coord)
			continue
		}
		for _, eu := range lu.Edges {
			b = b.Extend(eu.VUse.V.Coord)
		}
	}
	f.bbox = &b
	return b
}

func (f *Face) invalidate() {
	f.plane = nil
	f.bbox = nil
}

// FaceUse is one oriented side of a Face, owning the loops that bound
// it (the outer loop plus any hole loops) from that side.
type FaceUse struct {
	Obj
	model *Model

	Face        *Face
	Orientation Orientation
	Mate        *FaceUse
	ShellP      *Shell
	Loops       []*LoopUse
}

func (fu *FaceUse) Model() *Model { return fu.model }

// Normal returns fu's outward-facing unit normal: the face's plane
// normal, negated if fu is the OT_OPPOSITE use.
func (fu *FaceUse) Normal() (geom.Vec3, bool) {
	p, ok := fu.Face.Plane()
	if !ok {
		return geom.Vec3{}, false
	}
	n := p.Normal
	if fu.Orientation == OTOpposite {
		n = n.Mul(-1)
	}
	return n, true
}

// Kill frees both of f's FaceUses' loops and marks the Face dead. The
// caller is responsible for removing f from its Shell's Faces list.
func (f *Face) Kill() {
	if f.Dead {
		return
	}
	f.Dead = true
	for _, fu := range f.Uses {
		if fu == nil {
			continue
		}
		fu.Dead = true
		for _, lu := range fu.Loops {
			lu.Kill()
		}
	}
}

// Kill is a convenience that kills fu's underlying Face (and so both
// orientation uses together — a Face never persists with only one use).
func (fu *FaceUse) Kill() {
	fu.Face.Kill()
}
