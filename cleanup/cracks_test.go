package cleanup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
)

// TestKillCracksRemovesWholeFaceCrack builds a face whose outer loop is
// overwritten to be exactly two mated edge-uses (the whole-face crack
// isCrackFace detects) and checks KillCracks removes the face outright.
func TestKillCracksRemovesWholeFaceCrack(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()

	va := m.NewVertex(geom.NewVec3(0, 0, 0))
	vb := m.NewVertex(geom.NewVec3(1, 0, 0))
	vc := m.NewVertex(geom.NewVec3(1, 1, 0))
	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{va, vb, vc})
	require.NoError(t, err)
	f := fu.Face

	ab, err := s.NewWireEdge(va, vb)
	require.NoError(t, err)
	ba := ab.Mate
	s.WireEdges = removeEdgeUse(s.WireEdges, ab)

	luSame, luOpp := f.Uses[0].Loops[0], f.Uses[1].Loops[0]
	ab.Parent, ba.Parent = luSame, luSame
	luSame.Edges = []*nmg.EdgeUse{ab, ba}
	luOpp.Edges = nil

	require.True(t, KillCracks(s))
	require.Empty(t, s.Faces)
}

// TestKillCracksRepairsLoopLocalSpike builds a valid quad loop A-B-C-D,
// then splices a wire edge's two mated uses in as a fold-back spike
// B->P->B between AB and BC, so the ring becomes
// AB, BP, PB, BC, CD, DA. KillCracks should remove the spike in place
// and leave the face a valid quad, not kill the whole face (that's
// isCrackFace's separate two-edge whole-loop case).
func TestKillCracksRepairsLoopLocalSpike(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()

	va := m.NewVertex(geom.NewVec3(0, 0, 0))
	vb := m.NewVertex(geom.NewVec3(1, 0, 0))
	vc := m.NewVertex(geom.NewVec3(1, 1, 0))
	vd := m.NewVertex(geom.NewVec3(0, 1, 0))
	vp := m.NewVertex(geom.NewVec3(2, 0, 0))

	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{va, vb, vc, vd})
	require.NoError(t, err)
	f := fu.Face
	luSame := f.Uses[0].Loops[0]
	require.Len(t, luSame.Edges, 4)

	ab, bc, cd, da := luSame.Edges[0], luSame.Edges[1], luSame.Edges[2], luSame.Edges[3]
	require.Equal(t, vb, ab.EndVertex())

	bp, err := s.NewWireEdge(vb, vp)
	require.NoError(t, err)
	pb := bp.Mate
	s.WireEdges = removeEdgeUse(s.WireEdges, bp)

	bp.Parent, pb.Parent = luSame, luSame
	ab.Next, bp.Prev = bp, ab
	bp.Next, pb.Prev = pb, bp
	pb.Next, bc.Prev = bc, pb
	luSame.Edges = []*nmg.EdgeUse{ab, bp, pb, bc, cd, da}

	require.True(t, KillCracks(s))
	require.Len(t, s.Faces, 1)
	require.Len(t, luSame.Edges, 4)
	require.Equal(t, []*nmg.EdgeUse{ab, bc, cd, da}, luSame.Edges)
}
