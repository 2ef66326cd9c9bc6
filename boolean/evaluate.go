package boolean

import (
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// Evaluate computes the Boolean combination of a and b under op,
// returning a freshly built Shell (owned by its own scratch Model and
// Region) that the caller is responsible for incorporating wherever it
// needs to live. a and b are never mutated; a failed evaluation leaves
// no trace of itself beyond the scratch model, which the caller simply
// discards.
//
// b may be nil for Subtract, Union, or Xor, each of which treats a
// missing b as the empty set: SUBTRACT(A, empty) ≡ A, UNION(A, empty)
// ≡ A, and XOR(A, empty) ≡ A all return a copied-but-otherwise
// unchanged a. Intersect(a, a) (same Shell pointer for both operands)
// is the other named fast path and also short-circuits to a plain
// copy. Intersect(a, nil) has no such identity (intersecting with
// nothing is always empty, not a) and is reported ErrIndeterminate.
func Evaluate(op Op, a, b *nmg.Shell, tol tolerance.Tolerance) (*nmg.Shell, error) {
	if a == nil {
		return nil, ErrIndeterminate
	}
	if b == nil {
		switch op {
		case Subtract, Union, Xor:
			return copyOnly(a, tol)
		default:
			return nil, ErrIndeterminate
		}
	}
	if a == b && op == Intersect {
		return copyOnly(a, tol)
	}

	m := nmg.NewModel()
	r := m.NewRegion()
	scratchA := r.NewShell()
	scratchB := r.NewShell()
	out := r.NewShell()

	vc := newVertexCache(m, tol)
	if err := fuse(scratchA, a, vc); err != nil {
		return nil, err
	}
	if err := fuse(scratchB, b, vc); err != nil {
		return nil, err
	}

	frags, err := intersectFaces(scratchA, scratchB, tol)
	if err != nil {
		return nil, err
	}

	for _, f := range frags {
		keep, flip := cullByOperator(op, f)
		if !keep {
			continue
		}
		if err := stitchFragment(out, vc, f.Poly, flip); err != nil {
			return nil, err
		}
	}
	// The operand copies are no longer needed; drop them so out is the
	// only shell left in the scratch region.
	scratchA.Kill()
	scratchB.Kill()
	// An out shell with no faces is a legitimate result (e.g.
	// SUBTRACT(A, A) culls every fragment), not evidence of ambiguity:
	// intersectFaces already reports ErrIndeterminate itself for the one
	// input condition that actually is degenerate (an operand face with
	// fewer than three vertices), so nothing further needs checking here.
	mergeSharedEdges(out)
	return out, nil
}

func copyOnly(s *nmg.Shell, tol tolerance.Tolerance) (*nmg.Shell, error) {
	m := nmg.NewModel()
	r := m.NewRegion()
	out := r.NewShell()
	vc := newVertexCache(m, tol)
	if err := fuse(out, s, vc); err != nil {
		return nil, err
	}
	mergeSharedEdges(out)
	return out, nil
}
