package boolean

import (
	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// clipHalfspace returns the part of the convex, planar polygon poly
// lying on the inside of plane (SignedDistance <= tol.Dist), using the
// standard Sutherland-Hodgman polygon clip generalized to 3D: poly is
// assumed to already lie in a single plane, so clipping against another
// plane's intersection with that plane is just a linear interpolation
// along each edge that crosses it.
func clipHalfspace(poly []geom.Vec3, plane geom.Plane, tol tolerance.Tolerance) []geom.Vec3 {
	if len(poly) < 2 {
		return nil
	}
	var out []geom.Vec3
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curIn := plane.SignedDistance(cur) <= tol.Dist
		prevIn := plane.SignedDistance(prev) <= tol.Dist
		if curIn != prevIn {
			out = append(out, segPlaneIntersect(prev, cur, plane))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

func segPlaneIntersect(a, b geom.Vec3, plane geom.Plane) geom.Vec3 {
	da := plane.SignedDistance(a)
	db := plane.SignedDistance(b)
	denom := da - db
	if denom == 0 {
		return a
	}
	t := da / denom
	return a.Add(b.Sub(a).Mul(t))
}

// clipAgainstSolid clips poly (a single planar face of one operand)
// against every supporting half-space of planes (the other operand's
// face planes, each oriented so its interior side is where
// SignedDistance <= 0). It returns the remainder that survived every
// half-space — the part of poly entirely inside the solid those planes
// bound — plus one outside fragment per plane that peeled part of poly
// away, using the sequential-remainder technique: each plane only ever
// clips what's left after the previous planes have already removed
// their share.
func clipAgainstSolid(poly []geom.Vec3, planes []geom.Plane, tol tolerance.Tolerance) (inside []geom.Vec3, outsideFrags [][]geom.Vec3) {
	remainder := poly
	for _, p := range planes {
		if len(remainder) < 3 {
			break
		}
		outside := clipHalfspace(remainder, flip(p), tol)
		if len(outside) >= 3 {
			outsideFrags = append(outsideFrags, outside)
		}
		remainder = clipHalfspace(remainder, p, tol)
	}
	if len(remainder) >= 3 {
		inside = remainder
	}
	return inside, outsideFrags
}

func flip(p geom.Plane) geom.Plane {
	return geom.Plane{Normal: p.Normal.Mul(-1), Dist: -p.Dist}
}
