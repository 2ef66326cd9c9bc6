package cleanup

import (
	"fmt"
	"sort"

	"github.com/BRL-CAD/nmgcore/internal/topograph"
	"github.com/BRL-CAD/nmgcore/nmg"
)

// Decompose partitions shell's face-use set into maximally connected
// components under "shares at least one edge" and returns one shell per
// component, reusing shell itself as the first (lowest-index) component
// and allocating a fresh sibling shell in the same region for each
// additional component. A shell that is already connected is returned
// as a single-element slice containing shell unchanged.
//
// Output order is deterministic: components are sorted here by the
// lowest Face.Idx among their members (topograph.ConnectedComponents
// itself orders components by lexicographic vertex ID, which for
// "f<idx>" strings is not numeric index order).
func Decompose(shell *nmg.Shell) []*nmg.Shell {
	if len(shell.Faces) <= 1 {
		return []*nmg.Shell{shell}
	}

	g := topograph.New()
	idOf := func(f *nmg.Face) string { return fmt.Sprintf("f%d", f.Idx) }
	byID := make(map[string]*nmg.Face, len(shell.Faces))
	for _, f := range shell.Faces {
		id := idOf(f)
		_, _ = g.AddVertex(id, f)
		byID[id] = f
	}
	for _, e := range sharedEdges(shell.Faces) {
		_ = g.AddEdge(idOf(e.a), idOf(e.b), 1)
	}

	comps := g.ConnectedComponents()
	sort.Slice(comps, func(i, j int) bool {
		return lowestIdx(comps[i], byID) < lowestIdx(comps[j], byID)
	})
	if len(comps) <= 1 {
		return []*nmg.Shell{shell}
	}

	region := shell.RegionP
	out := make([]*nmg.Shell, len(comps))
	out[0] = shell
	for i := range comps[1:] {
		dst := region.NewShell()
		out[i+1] = dst
	}

	// The first component's faces stay in shell; every other
	// component's faces are detached from shell and adopted by that
	// component's new shell.
	for i, comp := range comps {
		if i == 0 {
			continue
		}
		dst := out[i]
		for _, id := range comp {
			f := byID[id]
			shell.DetachFace(f)
			dst.AdoptFace(f)
		}
	}
	return out
}

type facePair struct{ a, b *nmg.Face }

// sharedEdges returns one pair per distinct pair of faces in faces that
// share an edge: each has an edge-use running between the same two
// vertices, whether or not those edge-uses have been spliced onto one
// radial fan (NewFaceFromLoop gives every face its own Edge, so faces
// built separately share vertices but not Edge pointers). A
// non-manifold edge shared by three or more faces contributes one pair
// per distinct pair of its owners, so the resulting adjacency graph is
// correct even when more than two faces meet at one edge.
func sharedEdges(faces []*nmg.Face) []facePair {
	type vertPair struct{ lo, hi int }
	owners := make(map[vertPair][]*nmg.Face)
	for _, f := range faces {
		seenOnF := make(map[vertPair]bool)
		for _, fu := range f.Uses {
			for _, lu := range fu.Loops {
				for _, eu := range lu.Edges {
					k := vertPair{eu.VUse.V.Idx, eu.EndVertex().Idx}
					if k.lo > k.hi {
						k.lo, k.hi = k.hi, k.lo
					}
					if seenOnF[k] {
						continue
					}
					seenOnF[k] = true
					owners[k] = append(owners[k], f)
				}
			}
		}
	}

	seen := make(map[[2]int]bool)
	var pairs []facePair
	for _, fs := range owners {
		for i := 0; i < len(fs); i++ {
			for j := i + 1; j < len(fs); j++ {
				a, b := fs[i], fs[j]
				key := [2]int{a.Idx, b.Idx}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				if seen[key] {
					continue
				}
				seen[key] = true
				pairs = append(pairs, facePair{a: a, b: b})
			}
		}
	}
	return pairs
}

func lowestIdx(comp []string, byID map[string]*nmg.Face) int {
	best := -1
	for _, id := range comp {
		idx := byID[id].Idx
		if best == -1 || idx < best {
			best = idx
		}
	}
	return best
}
