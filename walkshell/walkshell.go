package walkshell

import (
	"errors"
	"fmt"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/internal/topograph"
	"github.com/BRL-CAD/nmgcore/nmg"
)

// Patch is one contiguous run of vertex references: the first three
// entries are a triangle, and every subsequent entry extends the strip
// by one more triangle using the previous two vertices — except where a
// vertex is immediately repeated, which marks a deliberate discontinuity
// (spec.md §4.6: "the repeat marks a discontinuity") rather than a
// degenerate triangle a consumer should render.
type Patch []*nmg.Vertex

// ErrEmptyShell is returned by WalkShellPatches when shell has no
// OT_SAME triangular loop-uses to walk.
var ErrEmptyShell = errors.New("walkshell: shell has no triangulated faces to walk")

// WalkShellPatches walks shell's OT_SAME face-uses (which must already
// be triangulated — see package triangulate) and calls visit exactly
// once with the single resulting Patch (spec.md §4.6 describes "a
// single stream of vertex references", not a sequence of independent
// patches). Every loop-use is marked visited exactly once; the marks
// are kept in a map keyed by loop-use, not in an index-keyed array
// sized to shell.Model().MaxIndex().
func WalkShellPatches(shell *nmg.Shell, visit func(Patch)) error {
	tris := triangleLoopUses(shell)
	if len(tris) == 0 {
		return ErrEmptyShell
	}

	visited := make(map[*nmg.LoopUse]bool, len(tris))
	g, byID := centroidGraph(tris)

	order := make([]*nmg.LoopUse, len(tris))
	copy(order, tris)
	cur := order[0]
	visited[cur] = true

	var stream Patch
	stream = append(stream, triVerts(cur)...)

	for {
		next := radialNeighbor(cur, shell, visited)
		if next != nil {
			shared := sharedEdgeVerts(cur)
			far := farVertex(next, shared)
			stream = append(stream, far)
			visited[next] = true
			cur = next
			continue
		}

		nextID, _, found, err := g.Nearest(loopUseID(cur), func(id string) bool {
			return !visited[byID[id]]
		})
		if err != nil || !found {
			break
		}
		target := byID[nextID]
		verts := triVerts(target)
		stream = append(stream, stream[len(stream)-1]) // discontinuity marker
		stream = append(stream, verts...)
		visited[target] = true
		cur = target
	}

	visit(stream)
	return nil
}

// triangleLoopUses collects every OT_SAME face-use's outer loop-use in
// shell, in shell.Faces order (not re-sorted by Face.Idx). A face not yet
// triangulated (outer loop with more than 3 edges, or any hole loops)
// is skipped; WalkShellPatches is only meaningful post-triangulation.
func triangleLoopUses(shell *nmg.Shell) []*nmg.LoopUse {
	var out []*nmg.LoopUse
	for _, f := range shell.Faces {
		same := f.Uses[0]
		if same.Orientation != nmg.OTSame || len(same.Loops) != 1 {
			continue
		}
		lu := same.Loops[0]
		if lu.Point != nil || len(lu.Edges) != 3 {
			continue
		}
		out = append(out, lu)
	}
	return out
}

func triVerts(lu *nmg.LoopUse) []*nmg.Vertex {
	verts := make([]*nmg.Vertex, len(lu.Edges))
	for i, eu := range lu.Edges {
		verts[i] = eu.VUse.V
	}
	return verts
}

// sharedEdgeVerts returns the two vertices of cur's last ring edge —
// the edge radialNeighbor crosses to find the next triangle.
func sharedEdgeVerts(cur *nmg.LoopUse) [2]*nmg.Vertex {
	last := cur.Edges[len(cur.Edges)-1]
	return [2]*nmg.Vertex{last.VUse.V, last.EndVertex()}
}

// farVertex returns next's one vertex not in shared.
func farVertex(next *nmg.LoopUse, shared [2]*nmg.Vertex) *nmg.Vertex {
	for _, v := range triVerts(next) {
		if v != shared[0] && v != shared[1] {
			return v
		}
	}
	return triVerts(next)[0]
}

// radialNeighbor walks the radial fan of cur's last ring edge looking
// for an unvisited OT_SAME triangular loop-use belonging to a face-use
// of the same shell.
func radialNeighbor(cur *nmg.LoopUse, shell *nmg.Shell, visited map[*nmg.LoopUse]bool) *nmg.LoopUse {
	last := cur.Edges[len(cur.Edges)-1]
	start := last.Mate
	for walk := start.RadialNext; walk != start; walk = walk.RadialNext {
		lu, ok := walk.Parent.(*nmg.LoopUse)
		if !ok || lu.FaceUseP == nil {
			continue
		}
		fu := lu.FaceUseP
		if fu.ShellP != shell || fu.Orientation != nmg.OTSame {
			continue
		}
		if lu.Point != nil || len(lu.Edges) != 3 {
			continue
		}
		if visited[lu] {
			continue
		}
		return lu
	}
	return nil
}

func loopUseID(lu *nmg.LoopUse) string { return fmt.Sprintf("lu%d", lu.Idx) }

func centroidGraph(tris []*nmg.LoopUse) (*topograph.Graph, map[string]*nmg.LoopUse) {
	g := topograph.New()
	byID := make(map[string]*nmg.LoopUse, len(tris))
	centroid := make(map[string]geom.Vec3, len(tris))
	for _, lu := range tris {
		id := loopUseID(lu)
		_, _ = g.AddVertex(id, lu)
		byID[id] = lu
		centroid[id] = triCentroid(lu)
	}
	for i := 0; i < len(tris); i++ {
		for j := i + 1; j < len(tris); j++ {
			idI, idJ := loopUseID(tris[i]), loopUseID(tris[j])
			d := centroid[idI].Sub(centroid[idJ]).Norm()
			_ = g.AddEdge(idI, idJ, d)
		}
	}
	return g, byID
}

func triCentroid(lu *nmg.LoopUse) geom.Vec3 {
	var sum geom.Vec3
	verts := triVerts(lu)
	for _, v := range verts {
		sum = sum.Add(v.Coord)
	}
	return sum.Mul(1 / float64(len(verts)))
}
