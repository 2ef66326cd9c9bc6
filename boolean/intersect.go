package boolean

import (
	"fmt"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// fragment is one planar polygon produced by classifying (and, where
// needed, clipping) a face of one operand against the other.
type fragment struct {
	Poly  []geom.Vec3
	Class Classification
	Owner byte // 'A' or 'B'
}

// intersectFaces classifies every face of sa against sb and vice versa,
// producing one fragment per outcome: a whole face that matches a face
// of the other shell exactly becomes one ClassSharedSame/Opposite
// fragment (consuming both faces); a coplanar-but-not-congruent match
// is conservatively reported whole as ClassOnBoundary rather than
// computing the exact in-plane overlap polygon; everything else is bbox
// pre-filtered and, where the boxes do overlap, clipped against the
// other shell's supporting half-spaces via clipAgainstSolid.
func intersectFaces(sa, sb *nmg.Shell, tol tolerance.Tolerance) ([]fragment, error) {
	planesA := facePlanes(sa)
	planesB := facePlanes(sb)
	bboxB := sb.BBox(tol)
	bboxA := sa.BBox(tol)

	consumedB := make(map[*nmg.Face]bool, len(sb.Faces))
	var frags []fragment

	for _, fa := range sa.Faces {
		if matched := matchCoplanar(fa, sb.Faces, consumedB, tol, &frags, 'A'); matched {
			continue
		}
		pts := loopVerts(fa.Uses[0])
		if len(pts) < 3 {
			return nil, fmt.Errorf("%w: operand A has a degenerate face with fewer than three vertices", ErrIndeterminate)
		}
		if !fa.BBox().Overlaps(bboxB, tol.Dist) {
			frags = append(frags, fragment{Poly: pts, Class: ClassOutside, Owner: 'A'})
			continue
		}
		inside, outside := clipAgainstSolid(pts, planesB, tol)
		for _, o := range outside {
			frags = append(frags, fragment{Poly: o, Class: ClassOutside, Owner: 'A'})
		}
		if inside != nil {
			frags = append(frags, fragment{Poly: inside, Class: ClassInside, Owner: 'A'})
		}
	}

	for _, fb := range sb.Faces {
		if consumedB[fb] {
			continue
		}
		pts := loopVerts(fb.Uses[0])
		if len(pts) < 3 {
			return nil, fmt.Errorf("%w: operand B has a degenerate face with fewer than three vertices", ErrIndeterminate)
		}
		if !fb.BBox().Overlaps(bboxA, tol.Dist) {
			frags = append(frags, fragment{Poly: pts, Class: ClassOutside, Owner: 'B'})
			continue
		}
		inside, outside := clipAgainstSolid(pts, planesA, tol)
		for _, o := range outside {
			frags = append(frags, fragment{Poly: o, Class: ClassOutside, Owner: 'B'})
		}
		if inside != nil {
			frags = append(frags, fragment{Poly: inside, Class: ClassInside, Owner: 'B'})
		}
	}

	return frags, nil
}

func facePlanes(s *nmg.Shell) []geom.Plane {
	planes := make([]geom.Plane, 0, len(s.Faces))
	for _, f := range s.Faces {
		if p, ok := f.Plane(); ok {
			planes = append(planes, p)
		}
	}
	return planes
}

func matchCoplanar(fa *nmg.Face, bFaces []*nmg.Face, consumedB map[*nmg.Face]bool, tol tolerance.Tolerance, frags *[]fragment, owner byte) bool {
	ptsA := loopVerts(fa.Uses[0])
	for _, fb := range bFaces {
		if consumedB[fb] {
			continue
		}
		same, sameNormal := coplanar(fa, fb, tol)
		if !same {
			continue
		}
		ptsB := loopVerts(fb.Uses[0])
		class := ClassOnBoundary
		if congruent(ptsA, ptsB, tol) {
			if sameNormal {
				class = ClassSharedSame
			} else {
				class = ClassSharedOpposite
			}
		}
		*frags = append(*frags, fragment{Poly: ptsA, Class: class, Owner: owner})
		consumedB[fb] = true
		return true
	}
	return false
}
