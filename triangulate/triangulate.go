package triangulate

import (
	"fmt"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// TriangulateFace replaces f's loop system with a set of triangular
// face-uses in f's shell (spec.md §4.5): project every vertex into f's
// plane, bridge each hole loop into the outer loop, ear-clip the
// resulting simple polygon, and mint one new triangular Face per ear.
// The original Face is killed once every ear has been emitted. A face
// that is already a single triangle with no holes is left untouched
// (this is what makes TriangulateModel idempotent). Leaves f unchanged
// on failure.
func TriangulateFace(f *nmg.Face, tol tolerance.Tolerance) error {
	same := f.Uses[0]
	if len(same.Loops) == 0 {
		return nil
	}
	outerLU := same.Loops[0]
	if outerLU.Point != nil {
		return nil
	}
	if len(same.Loops) == 1 && len(outerLU.Edges) == 3 {
		return nil
	}

	s := same.ShellP
	if s == nil {
		return fmt.Errorf("triangulate: face %d has no owning shell", f.Idx)
	}
	plane, ok := f.Plane()
	if !ok {
		return ErrFailed
	}

	compound := ringVerts(outerLU)
	for _, lu := range same.Loops[1:] {
		if !lu.Hole {
			continue
		}
		hole := ringVerts(lu)
		var err error
		compound, err = bridgeHole(compound, hole)
		if err != nil {
			return err
		}
	}

	pts2d := make([]point2, len(compound))
	for i, v := range compound {
		u, w := plane.Project2D(v.Coord)
		pts2d[i] = point2{u: u, w: w}
	}

	tris, err := earClip(pts2d)
	if err != nil {
		return ErrFailed
	}

	var newFaces []*nmg.FaceUse
	for _, t := range tris {
		area := cross(pts2d[t[0]], pts2d[t[1]], pts2d[t[2]])
		if area < 0 {
			area = -area
		}
		if area <= epsilon {
			continue // degenerate bridge-edge ear, not real geometry
		}
		verts := []*nmg.Vertex{compound[t[0]], compound[t[1]], compound[t[2]]}
		fu, err := s.NewFaceFromLoop(verts)
		if err != nil {
			return ErrFailed
		}
		newFaces = append(newFaces, fu)
	}
	if len(newFaces) == 0 {
		return ErrFailed
	}

	s.KillFace(f)
	return nil
}

// TriangulateModel applies TriangulateFace to every face of every shell
// in m.
func TriangulateModel(m *nmg.Model, tol tolerance.Tolerance) error {
	for _, r := range m.Regions {
		if err := TriangulateRegion(r, tol); err != nil {
			return err
		}
	}
	return nil
}

// TriangulateRegion applies TriangulateFace to every face of every
// shell in r, without touching other regions of r's model — the scope
// a CSG tree walker needs when triangulating one just-evaluated region
// in a model it otherwise shares with sibling regions.
func TriangulateRegion(r *nmg.Region, tol tolerance.Tolerance) error {
	for _, s := range r.Shells {
		faces := append([]*nmg.Face(nil), s.Faces...)
		for _, f := range faces {
			if err := TriangulateFace(f, tol); err != nil {
				return err
			}
		}
	}
	return nil
}

func ringVerts(lu *nmg.LoopUse) []*nmg.Vertex {
	verts := make([]*nmg.Vertex, len(lu.Edges))
	for i, eu := range lu.Edges {
		verts[i] = eu.VUse.V
	}
	return verts
}

// bridgeHole splices hole into outer via a pair of coincident bridge
// edges from hole's nearest vertex to outer's nearest vertex
// (spec.md §4.5 step 2), returning the single compound ring ear-clip
// consumes. The duplicate vertices at both ends of the bridge produce
// zero-area ears that TriangulateFace filters out before emitting new
// faces.
func bridgeHole(outer, hole []*nmg.Vertex) ([]*nmg.Vertex, error) {
	if len(hole) < 3 {
		return nil, ErrFailed
	}
	oi, hi := nearestPair(outer, hole)

	rotatedHole := make([]*nmg.Vertex, len(hole))
	for i := range hole {
		rotatedHole[i] = hole[(hi+i)%len(hole)]
	}

	out := make([]*nmg.Vertex, 0, len(outer)+len(hole)+2)
	out = append(out, outer[:oi+1]...)
	out = append(out, rotatedHole...)
	out = append(out, rotatedHole[0])
	out = append(out, outer[oi])
	out = append(out, outer[oi+1:]...)
	return out, nil
}

func nearestPair(outer, hole []*nmg.Vertex) (oi, hi int) {
	best := -1.0
	for i, ov := range outer {
		for j, hv := range hole {
			d := geom.DistSq(ov.Coord, hv.Coord)
			if best < 0 || d < best {
				best, oi, hi = d, i, j
			}
		}
	}
	return oi, hi
}
