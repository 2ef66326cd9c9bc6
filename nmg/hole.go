package nmg

// AddHoleLoop adds an additional closed ring to f as a hole: both of
// f's FaceUses gain a new Loops entry (mates of each other, like the
// outer loop pair), each marked Hole. verts should wind opposite the
// outer loop as seen from the OT_SAME side (clockwise, if the outer
// winds counter-clockwise) so the hole's interior reads as excluded
// material; AddHoleLoop does not itself check or correct winding.
func (f *Face) AddHoleLoop(verts []*Vertex) (*LoopUse, error) {
	if len(verts) < 3 {
		return nil, ErrTooFewVertices
	}
	m := f.model
	fuSame, fuOpp := f.Uses[0], f.Uses[1]

	luSame, luOpp := newLoopUsePair(m)
	luSame.FaceUseP, luOpp.FaceUseP = fuSame, fuOpp
	luSame.Hole, luOpp.Hole = true, true

	n := len(verts)
	sameRing := make([]*EdgeUse, n)
	oppRing := make([]*EdgeUse, n)
	for i := 0; i < n; i++ {
		v1, v2 := verts[i], verts[(i+1)%n]
		euSame, euOpp := newEdgeUsePair(m, v1, v2)
		euSame.Parent, euOpp.Parent = luSame, luOpp
		sameRing[i] = euSame
		oppRing[n-1-i] = euOpp
	}
	for i := 0; i < n; i++ {
		sameRing[i].Next = sameRing[(i+1)%n]
		sameRing[i].Prev = sameRing[(i-1+n)%n]
		oppRing[i].Next = oppRing[(i+1)%n]
		oppRing[i].Prev = oppRing[(i-1+n)%n]
	}
	luSame.Edges = sameRing
	luOpp.Edges = oppRing

	fuSame.Loops = append(fuSame.Loops, luSame)
	fuOpp.Loops = append(fuOpp.Loops, luOpp)
	f.invalidate()
	return luSame, nil
}
