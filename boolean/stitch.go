package boolean

import (
	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
)

// stitchFragment adds poly as a new face of dest, reversing its winding
// first if flip is set (the fragment now bounds the result from its
// other side — e.g. the subtracted operand's inner wall). vc routes
// every corner through the running vertex cache so fragments that share
// an edge end up sharing vertices rather than each minting their own.
func stitchFragment(dest *nmg.Shell, vc *vertexCache, poly []geom.Vec3, flip bool) error {
	if flip {
		poly = reversed(poly)
	}
	verts := make([]*nmg.Vertex, len(poly))
	for i, p := range poly {
		verts[i] = vc.get(p)
	}
	_, err := dest.NewFaceFromLoop(verts)
	return err
}

func reversed(poly []geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// mergeSharedEdges splices together the independent edge-use pairs
// stitchFragment minted for any two faces that, thanks to the shared
// vertex cache, turned out to share both endpoints of an edge. Without
// this pass every face's ring is internally consistent but two
// geometrically adjacent faces would each carry their own private
// two-use edge instead of participating in one non-manifold-capable
// radial fan.
func mergeSharedEdges(s *nmg.Shell) {
	type key struct{ lo, hi int }
	canon := func(v1, v2 *nmg.Vertex) key {
		if v1.Idx > v2.Idx {
			v1, v2 = v2, v1
		}
		return key{v1.Idx, v2.Idx}
	}
	groups := make(map[key][]*nmg.EdgeUse)
	for _, f := range s.Faces {
		for _, lu := range f.Uses[0].Loops {
			for _, eu := range lu.Edges {
				k := canon(eu.VUse.V, eu.EndVertex())
				groups[k] = append(groups[k], eu)
			}
		}
	}
	for _, eus := range groups {
		for i := 1; i < len(eus); i++ {
			eus[0].InsertRadial(eus[i])
		}
	}
}
