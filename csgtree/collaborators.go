package csgtree

import (
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// Tessellator produces an NMG region for leaf, attached to m, within the
// given tolerance pair (spec.md §4.8). A non-nil error means the leaf
// yields the empty set; any §3 invariant violation in a returned region
// is the tessellator's bug, not csgtree's.
type Tessellator interface {
	Tessellate(leaf *Leaf, tol tolerance.Tolerance, ttol tolerance.TriTolerance, m *nmg.Model) (*nmg.Region, error)
}

// TessellatorFunc adapts a plain function to Tessellator.
type TessellatorFunc func(leaf *Leaf, tol tolerance.Tolerance, ttol tolerance.TriTolerance, m *nmg.Model) (*nmg.Region, error)

func (f TessellatorFunc) Tessellate(leaf *Leaf, tol tolerance.Tolerance, ttol tolerance.TriTolerance, m *nmg.Model) (*nmg.Region, error) {
	return f(leaf, tol, ttol, m)
}

// RegionSink consumes a completed, invariant-satisfying region (spec.md
// §4.8's write_region).
type RegionSink interface {
	WriteRegion(r *nmg.Region)
}

// RegionSinkFunc adapts a plain function to RegionSink.
type RegionSinkFunc func(r *nmg.Region)

func (f RegionSinkFunc) WriteRegion(r *nmg.Region) { f(r) }

// TreeSource iterates (region-id, tree) pairs from whatever database the
// caller maintains; csgtree treats it as opaque (spec.md §4.8).
type TreeSource interface {
	Next() (regionID string, root *Tree, ok bool)
}
