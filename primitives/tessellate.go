package primitives

import (
	"fmt"

	"github.com/BRL-CAD/nmgcore/csgtree"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// Tessellate is a csgtree.Tessellator that dispatches on leaf.Data's
// concrete type (BoxParams, SphereParams, or ConeParams), the one
// collaborator these reference primitives register with a tree walker.
var Tessellate = csgtree.TessellatorFunc(tessellate)

func tessellate(leaf *csgtree.Leaf, tol tolerance.Tolerance, ttol tolerance.TriTolerance, m *nmg.Model) (*nmg.Region, error) {
	switch p := leaf.Data.(type) {
	case BoxParams:
		return BuildBox(m, p)
	case SphereParams:
		return BuildSphere(m, p, ttol)
	case ConeParams:
		return BuildCone(m, p, ttol)
	default:
		return nil, fmt.Errorf("primitives: leaf %q has unrecognized parameter type %T", leaf.ID, leaf.Data)
	}
}
