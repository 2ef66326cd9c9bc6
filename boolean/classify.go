package boolean

import (
	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// Classification is the outcome of comparing one operand's face (or a
// fragment of one, produced by clipping) against the other operand.
type Classification int

const (
	ClassOutside Classification = iota
	ClassInside
	ClassOnBoundary
	ClassSharedSame
	ClassSharedOpposite
)

func (c Classification) String() string {
	switch c {
	case ClassOutside:
		return "outside"
	case ClassInside:
		return "inside"
	case ClassOnBoundary:
		return "on-boundary"
	case ClassSharedSame:
		return "shared-same"
	case ClassSharedOpposite:
		return "shared-opposite"
	default:
		return "unknown"
	}
}

// coplanar reports whether fa and fb's supporting planes coincide
// within tol, and if so whether their outward normals agree.
func coplanar(fa, fb *nmg.Face, tol tolerance.Tolerance) (same bool, sameNormal bool) {
	pa, ok := fa.Plane()
	if !ok {
		return false, false
	}
	pb, ok := fb.Plane()
	if !ok {
		return false, false
	}
	if !tol.Parallel(pa.Normal, pb.Normal) {
		return false, false
	}
	sameNormal = pa.Normal.Dot(pb.Normal) > 0
	// Distance from plane a's origin-closest point to plane b, measured
	// along a's own normal, accounting for an antiparallel pb.Normal.
	d := pa.Dist - pb.Dist
	if !sameNormal {
		d = pa.Dist + pb.Dist
	}
	if d < 0 {
		d = -d
	}
	return d <= tol.Dist, sameNormal
}

// loopVerts returns the ordered vertex coordinates of fu's outer loop.
func loopVerts(fu *nmg.FaceUse) []geom.Vec3 {
	if len(fu.Loops) == 0 {
		return nil
	}
	outer := fu.Loops[0]
	if outer.Point != nil {
		return []geom.Vec3{outer.Point.V.Coord}
	}
	pts := make([]geom.Vec3, len(outer.Edges))
	for i, eu := range outer.Edges {
		pts[i] = eu.VUse.V.Coord
	}
	return pts
}

// congruent reports whether two same-plane polygons (already confirmed
// coplanar) occupy the same footprint within tol: every vertex of one
// has a coincident vertex in the other. Used to tell an exact face
// match (ClassSharedSame/Opposite) apart from a partial coplanar
// overlap (ClassOnBoundary).
func congruent(a, b []geom.Vec3, tol tolerance.Tolerance) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, pa := range a {
		found := false
		for j, pb := range b {
			if used[j] {
				continue
			}
			if tol.Coincident(pa, pb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
