package primitives

import "github.com/BRL-CAD/nmgcore/geom"

// BoxParams describes an axis-aligned box leaf (spec.md §8 S1/S2's unit
// cubes, S4's cube operand).
type BoxParams struct {
	Min, Max geom.Vec3
}

// SphereParams describes a UV-tessellated sphere leaf (S4's sphere
// operand). Segments/Rings default to a tolerance-derived count (see
// sphereResolution) when left at zero.
type SphereParams struct {
	Center         geom.Vec3
	Radius         float64
	Segments, Rings int
}

// ConeParams describes a frustum leaf from BaseCenter (radius
// BaseRadius) to Apex (radius ApexRadius; zero for a true cone, S4's
// cone operand). Segments defaults to a tolerance-derived count when
// left at zero.
type ConeParams struct {
	BaseCenter, Apex        geom.Vec3
	BaseRadius, ApexRadius float64
	Segments                int
}
