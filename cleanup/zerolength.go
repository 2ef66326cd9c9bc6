package cleanup

import (
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// KillZeroLengthEdgeUses fuses, across the entire model, every edge-use
// whose two endpoints are coincident within tol: the two vertices are
// merged into one, the edge-use (and its mate) spliced out of their
// rings, and the underlying edge freed once its radial fan empties. It
// reports whether anything changed. A face any of whose loops (outer
// boundary or hole) collapses below three edges as a result is killed
// outright, since a ring that short can never satisfy nmg's loop-use
// invariant.
func KillZeroLengthEdgeUses(m *nmg.Model, tol tolerance.Tolerance) bool {
	changed := false
	visited := make(map[*nmg.EdgeUse]bool)

	for _, r := range m.Regions {
		for _, s := range r.Shells {
			for _, f := range append([]*nmg.Face(nil), s.Faces...) {
				faceChanged := false
				degenerate := false
				for _, lu := range f.Uses[0].Loops {
					if fuseLoopUseRing(lu, tol, visited) {
						faceChanged = true
					}
					if lu.Point == nil && len(lu.Edges) < 3 {
						degenerate = true
					}
				}
				if faceChanged {
					changed = true
					if degenerate {
						s.KillFace(f)
					}
				}
			}
			for _, lu := range s.WireLoops {
				if fuseLoopUseRing(lu, tol, visited) {
					changed = true
				}
			}
			for _, eu := range append([]*nmg.EdgeUse(nil), s.WireEdges...) {
				if visited[eu] {
					continue
				}
				if !tol.Coincident(eu.VUse.V.Coord, eu.Mate.VUse.V.Coord) {
					continue
				}
				mergeVertices(eu.VUse.V, eu.Mate.VUse.V)
				visited[eu], visited[eu.Mate] = true, true
				eu.Kill()
				s.WireEdges = removeEdgeUse(s.WireEdges, eu)
				changed = true
			}
		}
	}
	return changed
}

// fuseLoopUseRing scans lu's ring (and, via the shared mate edges, its
// opposite loop-use) for zero-length edge-uses and fuses each one's
// endpoints, rebuilding both rings' Edges slices afterward to match the
// surviving Next/Prev linkage.
func fuseLoopUseRing(lu *nmg.LoopUse, tol tolerance.Tolerance, visited map[*nmg.EdgeUse]bool) bool {
	if lu.Point != nil {
		return false
	}
	changed := false
	for _, eu := range append([]*nmg.EdgeUse(nil), lu.Edges...) {
		if visited[eu] {
			continue
		}
		if !tol.Coincident(eu.VUse.V.Coord, eu.Mate.VUse.V.Coord) {
			continue
		}
		mergeVertices(eu.VUse.V, eu.Mate.VUse.V)
		visited[eu], visited[eu.Mate] = true, true
		eu.Kill()
		changed = true
	}
	if changed {
		rebuildRing(lu)
		if lu.Mate != nil {
			rebuildRing(lu.Mate)
		}
	}
	return changed
}

// mergeVertices repoints every use of lose at keep and folds lose's use
// list into keep's, leaving lose an orphaned, dead vertex.
func mergeVertices(keep, lose *nmg.Vertex) {
	if keep == lose {
		return
	}
	for _, vu := range lose.Uses {
		vu.V = keep
	}
	keep.Uses = append(keep.Uses, lose.Uses...)
	lose.Uses = nil
	lose.Dead = true
}

// rebuildRing restores lu.Edges to match the surviving edge-uses'
// Next-chain order after one or more of them were killed out of the
// ring by EdgeUse.Kill (which relinks Next/Prev but does not itself
// touch the owning LoopUse's Edges slice).
func rebuildRing(lu *nmg.LoopUse) {
	var start *nmg.EdgeUse
	for _, eu := range lu.Edges {
		if !eu.Dead {
			start = eu
			break
		}
	}
	if start == nil {
		lu.Edges = nil
		return
	}
	var ring []*nmg.EdgeUse
	cur := start
	for {
		ring = append(ring, cur)
		cur = cur.Next
		if cur == nil || cur == start {
			break
		}
	}
	lu.Edges = ring
}

func removeEdgeUse(eus []*nmg.EdgeUse, target *nmg.EdgeUse) []*nmg.EdgeUse {
	for i, eu := range eus {
		if eu == target {
			return append(eus[:i], eus[i+1:]...)
		}
	}
	return eus
}
