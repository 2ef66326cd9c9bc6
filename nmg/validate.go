package nmg

// Validate walks every live object reachable from m.Regions and checks
// the structural invariants the rest of this package's constructors and
// Kill methods are meant to preserve: mate pairs point back at each
// other, radial fans and loop rings close, every vertex-use is
// reachable from its vertex, and every loop is either a point or has at
// least three edges. It returns the first violation found, wrapped as
// an *ErrInvariant.
func Validate(m *Model) error {
	for _, r := range m.Regions {
		if r.Dead {
			return bomb(InvariantDanglingParent, r.Handle(), "dead region still listed in model")
		}
		for _, s := range r.Shells {
			if s.RegionP != r {
				return bomb(InvariantDanglingParent, s.Handle(), "shell's RegionP does not match owning region")
			}
			if err := validateShell(s); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateShell(s *Shell) error {
	for _, f := range s.Faces {
		if err := validateFace(f); err != nil {
			return err
		}
	}
	for _, lu := range s.WireLoops {
		if lu.ShellP != s {
			return bomb(InvariantDanglingParent, lu.Handle(), "wire loop-use's ShellP does not match owning shell")
		}
		if err := validateLoopUse(lu); err != nil {
			return err
		}
	}
	for _, eu := range s.WireEdges {
		if err := validateEdgeUse(eu); err != nil {
			return err
		}
	}
	for _, vu := range s.LoneVerts {
		if err := validateVertexUse(vu); err != nil {
			return err
		}
	}
	return nil
}

func validateFace(f *Face) error {
	same, opp := f.Uses[0], f.Uses[1]
	if same == nil || opp == nil {
		return bomb(InvariantMateMismatch, f.Handle(), "face missing a use")
	}
	if same.Mate != opp || opp.Mate != same {
		return bomb(InvariantMateMismatch, same.Handle(), "faceuse mate pair does not point back")
	}
	if same.Orientation == opp.Orientation {
		return bomb(InvariantMateMismatch, same.Handle(), "faceuse mates share an orientation")
	}
	for _, fu := range f.Uses {
		for _, lu := range fu.Loops {
			if lu.FaceUseP != fu {
				return bomb(InvariantDanglingParent, lu.Handle(), "loop-use's FaceUseP does not match owning faceuse")
			}
			if err := validateLoopUse(lu); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateLoopUse(lu *LoopUse) error {
	if lu.Mate == nil || lu.Mate.Mate != lu {
		return bomb(InvariantMateMismatch, lu.Handle(), "loopuse mate pair does not point back")
	}
	if lu.Point != nil {
		return validateVertexUse(lu.Point)
	}
	if len(lu.Edges) < 3 {
		return bomb(InvariantDegenerateLoop, lu.Handle(), "ring has fewer than 3 edges")
	}
	n := len(lu.Edges)
	for i, eu := range lu.Edges {
		if eu.Next != lu.Edges[(i+1)%n] || eu.Prev != lu.Edges[(i-1+n)%n] {
			return bomb(InvariantRingBroken, eu.Handle(), "ring linkage does not match Edges slice order")
		}
		if eu.Parent != any(lu) {
			return bomb(InvariantDanglingParent, eu.Handle(), "edgeuse's Parent does not match owning loopuse")
		}
		if err := validateEdgeUse(eu); err != nil {
			return err
		}
	}
	return nil
}

func validateEdgeUse(eu *EdgeUse) error {
	if eu.Mate == nil || eu.Mate.Mate != eu {
		return bomb(InvariantMateMismatch, eu.Handle(), "edgeuse mate pair does not point back")
	}
	if eu.Mate.Edge != eu.Edge {
		return bomb(InvariantMateMismatch, eu.Handle(), "edgeuse mate does not share the same edge")
	}
	seen := 0
	for cur := eu.Edge.Radial; ; cur = cur.RadialNext {
		if cur.Edge != eu.Edge {
			return bomb(InvariantRadialBroken, cur.Handle(), "radial fan member points at a different edge")
		}
		seen++
		if cur == eu {
			break
		}
		if seen > 1<<20 {
			return bomb(InvariantRadialBroken, eu.Handle(), "radial fan does not close")
		}
	}
	return validateVertexUse(eu.VUse)
}

func validateVertexUse(vu *VertexUse) error {
	for _, u := range vu.V.Uses {
		if u == vu {
			return nil
		}
	}
	return bomb(InvariantOrphanVertexUse, vu.Handle(), "vertex-use missing from its vertex's Uses list")
}
