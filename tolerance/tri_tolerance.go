package tolerance

import "math"

// TriTolerance ("ε_t" in spec.md §4.2/§4.7) is the chord-tolerance triple a
// tessellator uses to decide how finely to facet a curved primitive.
type TriTolerance struct {
	Abs  float64 // absolute chord deviation allowed
	Rel  float64 // chord deviation relative to primitive size
	Norm float64 // max angle (radians) between adjacent facet normals
}

// NewTri validates a TriTolerance: every field must be non-negative and
// finite, and at least one of Abs/Rel must be positive so a tessellator has
// a concrete stopping criterion.
func NewTri(abs, rel, norm float64) (TriTolerance, error) {
	t := TriTolerance{Abs: abs, Rel: rel, Norm: norm}
	for _, f := range []float64{abs, rel, norm} {
		if math.IsNaN(f) || f < 0 {
			return TriTolerance{}, ErrInvalid
		}
	}
	if abs <= 0 && rel <= 0 {
		return TriTolerance{}, ErrInvalid
	}
	return t, nil
}

// DefaultTri returns a conventional 1% relative chord tolerance with no
// angular cap, matching spec.md §8's S4 scenario ("chord tolerance 0.01
// relative").
func DefaultTri() TriTolerance {
	t, _ := NewTri(0, 0.01, 0)
	return t
}
