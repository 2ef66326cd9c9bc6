// Package geom provides the 3D vector, plane, and bounding-box primitives
// used throughout nmg, boolean, cleanup, triangulate, and walkshell.
//
// spec.md never defines its own vector algebra — a real NMG kernel needs
// one — so this package is built on github.com/golang/geo's r3 package,
// the same library the golang-geo pack repo (github.com/blevesearch/geo,
// a fork/wrapper of google/s2) exists specifically to wrap for exactly
// this kind of 3D coordinate math.
package geom

import "github.com/golang/geo/r3"

// Vec3 is a point or direction in 3D space.
type Vec3 = r3.Vector

// NewVec3 constructs a Vec3 from components.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Origin is the zero vector.
var Origin = Vec3{}

// DistSq returns the squared Euclidean distance between a and b.
func DistSq(a, b Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Less imposes the deterministic coordinate ordering fuse operations use to
// pick a canonical representative when merging coincident vertices: the
// lexicographically smaller (x, then y, then z) tuple wins.
func Less(a, b Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
