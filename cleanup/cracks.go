package cleanup

import "github.com/BRL-CAD/nmgcore/nmg"

// KillCracks removes every crack in shell: a whole face whose outer
// loop is exactly two edge-uses that traverse the same edge in
// opposite directions, and, within any larger loop, a local fold-back
// spike — a consecutive pair of edge-uses doing the same thing inside
// an otherwise valid polygon (spec.md §4.4's "a sequence of edges that
// folds back on itself"). It reports whether anything changed; killing
// a crack can leave the shell empty, which the caller is responsible
// for noticing (e.g. by checking len(shell.Faces) == 0 and calling
// shell.Kill()).
func KillCracks(shell *nmg.Shell) bool {
	changed := false
	for _, f := range append([]*nmg.Face(nil), shell.Faces...) {
		if isCrackFace(f) {
			shell.KillFace(f)
			changed = true
			continue
		}
		faceChanged, degenerate := killLoopCracks(f)
		if faceChanged {
			changed = true
			if degenerate {
				shell.KillFace(f)
			}
		}
	}
	return changed
}

func isCrackFace(f *nmg.Face) bool {
	lu := f.Uses[0].Loops
	if len(lu) != 1 {
		return false
	}
	edges := lu[0].Edges
	if len(edges) != 2 {
		return false
	}
	return edges[0].Mate == edges[1] || edges[1].Mate == edges[0]
}

// killLoopCracks repairs every fold-back spike in each of f's loops (the
// outer boundary and any holes): a loop-local counterpart to
// isCrackFace's whole-face case, for a spike that sits inside a loop
// with other, legitimate edges around it. It reports whether anything
// was removed, and whether the outer loop shrank below three edges as
// a result (isCrackFace's two-edge whole-loop case is excluded by the
// len(lu.Edges) <= 2 guard below, so this never re-detects that case).
func killLoopCracks(f *nmg.Face) (changed, degenerate bool) {
	for _, lu := range f.Uses[0].Loops {
		if lu.Point != nil || len(lu.Edges) <= 2 {
			continue
		}
		for removeOneSpike(lu) {
			changed = true
		}
		if !lu.Hole && len(lu.Edges) < 3 {
			degenerate = true
		}
	}
	return changed, degenerate
}

// removeOneSpike finds the first consecutive edge-use pair in lu's ring
// that traverse the same edge in opposite directions and kills both,
// rebuilding lu's (and its mate's) Edges slice to match the surviving
// Next-chain afterward. It reports whether it found and removed one, so
// the caller can call it again to catch any new spike the removal
// exposes (two spikes that were not originally adjacent can become
// adjacent once the edges between them are gone).
func removeOneSpike(lu *nmg.LoopUse) bool {
	edges := lu.Edges
	n := len(edges)
	for i := 0; i < n; i++ {
		eu := edges[i]
		next := edges[(i+1)%n]
		if eu.Mate == next {
			eu.Kill()
			rebuildRing(lu)
			if lu.Mate != nil {
				rebuildRing(lu.Mate)
			}
			return true
		}
	}
	return false
}
