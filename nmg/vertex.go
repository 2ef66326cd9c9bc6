package nmg

import "github.com/BRL-CAD/nmgcore/geom"

// Vertex is a point in space shared by every VertexUse that references
// it. Unlike Face/Loop/Edge, a Vertex does not have exactly two uses —
// it can be referenced by arbitrarily many VertexUses, one per edge-use
// endpoint, point-loop, or lone-vertex that touches it.
type Vertex struct {
	Obj
	model *Model
	Coord geom.Vec3
	Uses  []*VertexUse
}

func (v *Vertex) Model() *Model { return v.model }

// VertexUse is a single reference to a Vertex from some parent: an
// EdgeUse endpoint, a point LoopUse, or a Shell's lone-vertex list.
type VertexUse struct {
	Obj
	model *Model
	V     *Vertex

	// Parent is the *EdgeUse, *LoopUse, or *Shell this use belongs to.
	Parent any
}

func (vu *VertexUse) Model() *Model { return vu.model }

func newVertexUse(m *Model, v *Vertex, parent any) *VertexUse {
	vu := &VertexUse{Obj: m.alloc(KindVertexUse), model: m, V: v, Parent: parent}
	v.Uses = append(v.Uses, vu)
	return vu
}

// Kill detaches vu from its Vertex. If that was the Vertex's last use,
// the Vertex itself is freed.
func (vu *VertexUse) Kill() {
	if vu.Dead {
		return
	}
	vu.Dead = true
	v := vu.V
	for i, u := range v.Uses {
		if u == vu {
			v.Uses = append(v.Uses[:i], v.Uses[i+1:]...)
			break
		}
	}
	if len(v.Uses) == 0 {
		v.Dead = true
	}
}
