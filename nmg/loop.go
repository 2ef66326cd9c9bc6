package nmg

// Loop is the shared closed boundary (or single point) between a
// FaceUse's two orientations, or between a Shell's wire-loop pair.
type Loop struct {
	Obj
	model *Model
}

func (l *Loop) Model() *Model { return l.model }

// LoopUse is one oriented traversal of a Loop: a ring of EdgeUses for an
// ordinary boundary loop, or a single Point VertexUse for a point loop
// (a degenerate face reduced to a vertex).
type LoopUse struct {
	Obj
	model *Model

	Loop        *Loop
	Orientation Orientation
	Mate        *LoopUse

	// Exactly one of FaceUseP/ShellP is non-nil: a LoopUse either bounds
	// a FaceUse or is a wire loop directly in a Shell.
	FaceUseP *FaceUse
	ShellP   *Shell

	Edges []*EdgeUse // ring order; empty iff Point != nil
	Point *VertexUse

	// Hole marks a loop-use as an OT_OPPOSITE hole within its FaceUse's
	// Loops list (spec.md §3: "Loop orientations distinguish outer
	// boundaries from holes"), as opposed to the outer boundary loop
	// (always Loops[0], Hole == false). Distinct from Orientation, which
	// tags this loop-use's mate-pair relationship to its sibling
	// FaceUse's copy of the same Loop.
	Hole bool
}

func (lu *LoopUse) Model() *Model { return lu.model }

// newLoopUsePair allocates a Loop and its two mated LoopUses. Callers
// populate Edges/Point and FaceUseP/ShellP.
func newLoopUsePair(m *Model) (*LoopUse, *LoopUse) {
	l := &Loop{Obj: m.alloc(KindLoop), model: m}
	luSame := &LoopUse{Obj: m.alloc(KindLoopUse), model: m, Loop: l, Orientation: OTSame}
	luOpp := &LoopUse{Obj: m.alloc(KindLoopUse), model: m, Loop: l, Orientation: OTOpposite}
	luSame.Mate, luOpp.Mate = luOpp, luSame
	return luSame, luOpp
}

// Kill frees lu's ring (or point) and its mate's, then marks the Loop
// dead. It does not detach lu from its FaceUseP/ShellP's Loops slice;
// callers that own that slice (Face.Kill, Shell wire-loop removal) do
// that themselves since they know which slice to search.
func (lu *LoopUse) Kill() {
	if lu.Dead {
		return
	}
	for _, u := range []*LoopUse{lu, lu.Mate} {
		if u == nil || u.Dead {
			continue
		}
		u.Dead = true
		if u.Point != nil {
			u.Point.Kill()
			continue
		}
		for _, eu := range u.Edges {
			eu.Kill()
		}
	}
	lu.Loop.Dead = true
}
