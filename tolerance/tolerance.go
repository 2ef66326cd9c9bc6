// Package tolerance defines the distance and angular tolerance bundle that
// governs every coincidence, on-line, and parallelism predicate in the
// nmg/boolean/cleanup/triangulate pipeline (spec.md §4.1), plus the chord
// tolerance pair the CSG tree walker passes to external tessellators
// (spec.md §4.7's ε_t).
package tolerance

import (
	"errors"
	"fmt"
	"math"

	"github.com/BRL-CAD/nmgcore/geom"
)

// ErrInvalid is returned by New when a tolerance field is negative, NaN, or
// when Para < Perp (spec.md's ToleranceInvalid).
var ErrInvalid = errors.New("tolerance: invalid tolerance record")

// Tolerance is the quadruple (dist, dist², perp, para) that every
// downstream predicate consults (spec.md §4.1).
type Tolerance struct {
	Dist   float64 // coincidence distance
	DistSq float64 // Dist * Dist, cached
	Perp   float64 // cosine threshold for perpendicularity
	Para   float64 // 1 - Perp, cosine threshold for parallelism
}

// New builds a Tolerance from a distance and a perpendicularity cosine
// threshold, deriving DistSq and Para. It fails closed: any NaN/negative
// field, or Para < Perp, is rejected rather than silently clamped.
func New(dist, perp float64) (Tolerance, error) {
	para := 1 - perp
	t := Tolerance{Dist: dist, DistSq: dist * dist, Perp: perp, Para: para}
	if err := t.validate(); err != nil {
		return Tolerance{}, err
	}
	return t, nil
}

func (t Tolerance) validate() error {
	for _, f := range []float64{t.Dist, t.DistSq, t.Perp, t.Para} {
		if math.IsNaN(f) || f < 0 {
			return fmt.Errorf("%w: negative or NaN field", ErrInvalid)
		}
	}
	if t.Para < t.Perp {
		return fmt.Errorf("%w: para (%v) < perp (%v)", ErrInvalid, t.Para, t.Perp)
	}
	return nil
}

// Coincident reports whether two points are within Dist of each other
// (spec.md: "coincident iff |p1-p2|^2 <= dist_sq").
func (t Tolerance) Coincident(a, b geom.Vec3) bool {
	return geom.DistSq(a, b) <= t.DistSq
}

// OnLine reports whether p's perpendicular distance to the line through
// linePt with direction lineDir (not required to be unit length) is at
// most Dist.
func (t Tolerance) OnLine(p, linePt, lineDir geom.Vec3) bool {
	dirNorm := lineDir.Norm()
	if dirNorm == 0 {
		return t.Coincident(p, linePt)
	}
	rel := p.Sub(linePt)
	crossNorm := rel.Cross(lineDir).Norm()
	dist := crossNorm / dirNorm
	return dist <= t.Dist
}

// Parallel reports whether two directions are parallel within Para:
// |u_hat . v_hat| >= Para.
func (t Tolerance) Parallel(u, v geom.Vec3) bool {
	un, vn := u.Norm(), v.Norm()
	if un == 0 || vn == 0 {
		return false
	}
	cos := math.Abs(u.Dot(v) / (un * vn))
	return cos >= t.Para
}

// Default returns BRL-CAD's conventional default tolerance (dist=0.0005mm
// equivalent scale, perp=1e-6), used by tests and as a documented starting
// point for callers.
func Default() Tolerance {
	t, _ := New(0.0005, 1e-6)
	return t
}
