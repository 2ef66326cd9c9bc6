package nmg

// EdgeGeom optionally attaches a parametric curve to an Edge. A nil
// EdgeGeom means "straight line between the edge's two vertices", the
// common case; curved edges (e.g. from a cylinder's silhouette) carry
// enough parameters for a tessellator to re-sample the arc.
type EdgeGeom struct {
	Kind   string
	Params []float64
}

// Edge is the shared curve between two vertices. It is referenced by
// every EdgeUse in its radial fan — one pair of uses per face that
// borders it, plus any wire-edge uses. An edge bordering one face (or a
// wire edge) has exactly two uses in its radial fan (one OT_SAME, one
// OT_OPPOSITE); a manifold edge shared by two faces has four, and a
// non-manifold edge shared by three or more faces has more.
type Edge struct {
	Obj
	model  *Model
	Radial *EdgeUse // one representative use in the radial fan; nil once unreferenced
	Geom   *EdgeGeom
}

func (e *Edge) Model() *Model { return e.model }

// EdgeUse is one directed traversal of an Edge, belonging to a LoopUse
// ring or to a Shell's wire-edge list.
type EdgeUse struct {
	Obj
	model *Model

	Edge        *Edge
	Orientation Orientation
	VUse        *VertexUse // start vertex-use of this traversal

	Mate                   *EdgeUse // paired opposite-orientation use
	RadialNext, RadialPrev *EdgeUse
	Next, Prev             *EdgeUse // position within the containing ring

	// Parent is the *LoopUse or *Shell (wire edge) this use belongs to.
	Parent any
}

func (eu *EdgeUse) Model() *Model { return eu.model }

// EndVertex returns the vertex this edge-use travels to, i.e. the start
// vertex of the next use in its ring.
func (eu *EdgeUse) EndVertex() *Vertex {
	if eu.Next == nil {
		return eu.VUse.V
	}
	return eu.Next.VUse.V
}

// newEdgeUsePair allocates a fresh Edge and its two mated EdgeUses
// (OT_SAME from v1->v2, OT_OPPOSITE from v2->v1), radially linked to
// each other as the edge's sole fan members so far. Callers (shell/loop
// construction, or fuse splicing a new face onto an existing edge) wire
// Next/Prev/Parent afterward.
func newEdgeUsePair(m *Model, v1, v2 *Vertex) (*EdgeUse, *EdgeUse) {
	e := &Edge{Obj: m.alloc(KindEdge), model: m}
	euSame := &EdgeUse{Obj: m.alloc(KindEdgeUse), model: m, Edge: e, Orientation: OTSame}
	euOpp := &EdgeUse{Obj: m.alloc(KindEdgeUse), model: m, Edge: e, Orientation: OTOpposite}
	euSame.VUse = newVertexUse(m, v1, euSame)
	euOpp.VUse = newVertexUse(m, v2, euOpp)
	euSame.Mate = euOpp
	euOpp.Mate = euSame
	euSame.RadialNext, euSame.RadialPrev = euOpp, euOpp
	euOpp.RadialNext, euOpp.RadialPrev = euSame, euSame
	e.Radial = euSame
	return euSame, euOpp
}

// InsertRadial splices other and its mate into eu's radial fan, for the
// case where a second face's edge-use pair needs to share eu's Edge
// (fuse discovering two independently-tessellated edges are the same
// curve between the same two vertices). other's own Edge is abandoned;
// its edge-uses are repointed at eu.Edge.
func (eu *EdgeUse) InsertRadial(other *EdgeUse) {
	om := other.Mate
	other.Edge = eu.Edge
	om.Edge = eu.Edge
	last := eu.RadialPrev
	last.RadialNext = other
	other.RadialPrev = last
	other.RadialNext = om
	om.RadialPrev = other
	om.RadialNext = eu
	eu.RadialPrev = om
}

// Kill removes eu and its mate from the radial fan and from their
// containing ring, freeing their vertex-uses and, if eu.Edge's radial
// fan becomes empty, the Edge itself.
func (eu *EdgeUse) Kill() {
	if eu.Dead {
		return
	}
	mate := eu.Mate
	for _, u := range []*EdgeUse{eu, mate} {
		if u == nil || u.Dead {
			continue
		}
		u.Dead = true
		if u.RadialNext == u {
			u.Edge.Dead = true
		} else {
			u.RadialPrev.RadialNext = u.RadialNext
			u.RadialNext.RadialPrev = u.RadialPrev
			if u.Edge.Radial == u {
				u.Edge.Radial = u.RadialNext
			}
		}
		if u.Prev != nil {
			u.Prev.Next = u.Next
		}
		if u.Next != nil {
			u.Next.Prev = u.Prev
		}
		u.VUse.Kill()
	}
}
