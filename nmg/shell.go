package nmg

import (
	"errors"
	"fmt"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// ErrTooFewVertices is returned by NewFaceFromLoop when given fewer
// than three vertices.
var ErrTooFewVertices = errors.New("nmg: face loop needs at least 3 vertices")

// Shell is a maximal connected set of face-uses, wire loops, wire edges,
// and lone vertices within a Region. A solid region's outer boundary and
// each of its internal voids are each one Shell.
type Shell struct {
	Obj
	model  *Model
	RegionP *Region

	Faces     []*Face
	WireLoops []*LoopUse
	WireEdges []*EdgeUse
	LoneVerts []*VertexUse

	bbox *geom.BBox
}

func (s *Shell) Model() *Model { return s.model }

func (s *Shell) invalidate() {
	s.bbox = nil
	if s.RegionP != nil {
		s.RegionP.invalidate()
	}
}

// NewFaceFromLoop builds a planar Face bounded by a single outer loop
// visiting verts in order, with both FaceUses added to s. At least
// three vertices are required; callers are responsible for the loop
// being planar within whatever tolerance matters to them (Face.Plane
// computes from the first three points only).
func (s *Shell) NewFaceFromLoop(verts []*Vertex) (*FaceUse, error) {
	if len(verts) < 3 {
		return nil, ErrTooFewVertices
	}
	m := s.model
	f := &Face{Obj: m.alloc(KindFace), model: m}
	fuSame := &FaceUse{Obj: m.alloc(KindFaceUse), model: m, Face: f, Orientation: OTSame, ShellP: s}
	fuOpp := &FaceUse{Obj: m.alloc(KindFaceUse), model: m, Face: f, Orientation: OTOpposite, ShellP: s}
	fuSame.Mate, fuOpp.Mate = fuOpp, fuSame
	f.Uses = [2]*FaceUse{fuSame, fuOpp}

	luSame, luOpp := newLoopUsePair(m)
	luSame.FaceUseP, luOpp.FaceUseP = fuSame, fuOpp
	fuSame.Loops = []*LoopUse{luSame}
	fuOpp.Loops = []*LoopUse{luOpp}

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

	s.Faces = append(s.Faces, f)
	s.invalidate()
	return fuSame, nil
}

// NewFaceFromVertex creates a degenerate point-loop Face at v: both of
// its FaceUses consist of a single Point loop-use rather than a ring.
func (s *Shell) NewFaceFromVertex(v *Vertex) (*FaceUse, error) {
	m := s.model
	f := &Face{Obj: m.alloc(KindFace), model: m}
	fuSame := &FaceUse{Obj: m.alloc(KindFaceUse), model: m, Face: f, Orientation: OTSame, ShellP: s}
	fuOpp := &FaceUse{Obj: m.alloc(KindFaceUse), model: m, Face: f, Orientation: OTOpposite, ShellP: s}
	fuSame.Mate, fuOpp.Mate = fuOpp, fuSame
	f.Uses = [2]*FaceUse{fuSame, fuOpp}

	luSame, luOpp := newLoopUsePair(m)
	luSame.FaceUseP, luOpp.FaceUseP = fuSame, fuOpp
	luSame.Point = newVertexUse(m, v, luSame)
	luOpp.Point = newVertexUse(m, v, luOpp)
	fuSame.Loops = []*LoopUse{luSame}
	fuOpp.Loops = []*LoopUse{luOpp}

	s.Faces = append(s.Faces, f)
	s.invalidate()
	return fuSame, nil
}

// NewWireEdge adds a wire edge (one not bounding any face) directly
// between v1 and v2, owned by s.
func (s *Shell) NewWireEdge(v1, v2 *Vertex) (*EdgeUse, error) {
	if v1 == v2 {
		return nil, fmt.Errorf("nmg: wire edge needs two distinct vertices")
	}
	m := s.model
	euSame, euOpp := newEdgeUsePair(m, v1, v2)
	euSame.Parent, euOpp.Parent = s, s
	s.WireEdges = append(s.WireEdges, euSame)
	s.invalidate()
	return euSame, nil
}

// NewLoneVertex adds a standalone vertex-use (not part of any loop or
// edge) directly to s.
func (s *Shell) NewLoneVertex(v *Vertex) *VertexUse {
	vu := newVertexUse(s.model, v, s)
	s.LoneVerts = append(s.LoneVerts, vu)
	s.invalidate()
	return vu
}

// BBox returns s's bounding box, lazily unioning every face, wire-loop,
// wire-edge, and lone-vertex coordinate, then padding it by tol.Dist so
// downstream Overlaps/Contains checks against this box inherit the same
// fuzz as the point predicates that built it.
func (s *Shell) BBox(tol tolerance.Tolerance) geom.BBox {
	if s.bbox == nil {
		b := geom.EmptyBBox()
		for _, f := range s.Faces {
			b = b.Union(f.BBox())
		}
		for _, lu := range s.WireLoops {
			for _, eu := range lu.Edges {
				b = b.Extend(eu.VUse.V.Coord)
			}
		}
		for _, eu := range s.WireEdges {
			b = b.Extend(eu.VUse.V.Coord)
			b = b.Extend(eu.Mate.VUse.V.Coord)
		}
		for _, vu := range s.LoneVerts {
			b = b.Extend(vu.V.Coord)
		}
		s.bbox = &b
	}
	return s.bbox.Pad(tol.Dist)
}

// FindTopFace returns the Face among s's faces whose bounding box
// reaches highest in Z, the heuristic used to decide a shell's
// "outward" sense when classifying it as a void versus an external
// boundary. marks, if non-nil, is updated with every face considered so
// a caller sweeping many shells can reuse one bitmark array across
// calls. It errors if s has no faces.
func (s *Shell) FindTopFace(marks *MarkSet) (*Face, error) {
	if len(s.Faces) == 0 {
		return nil, errors.New("nmg: shell has no faces to find a top face among")
	}
	best := s.Faces[0]
	bestZ := best.BBox().Max.Z
	if marks != nil {
		marks.Mark(best.Handle())
	}
	for _, f := range s.Faces[1:] {
		if marks != nil {
			marks.Mark(f.Handle())
		}
		if z := f.BBox().Max.Z; z > bestZ {
			best, bestZ = f, z
		}
	}
	return best, nil
}

// PrBriefly returns a one-line human-readable summary of s's contents,
// modeled on the terse dump routines debugging tools print during
// interactive inspection.
func (s *Shell) PrBriefly() string {
	return fmt.Sprintf("shell[%d]: %d faces, %d wire loops, %d wire edges, %d lone verts",
		s.Idx, len(s.Faces), len(s.WireLoops), len(s.WireEdges), len(s.LoneVerts))
}

// DetachFace removes f from s.Faces without killing it, repointing both
// of its FaceUses' ShellP at nil. The caller must immediately hand f to
// another shell via AdoptFace; a detached-but-unadopted face is not a
// valid topology state. Reports whether f was found in s.
func (s *Shell) DetachFace(f *Face) bool {
	for i, ff := range s.Faces {
		if ff == f {
			s.Faces = append(s.Faces[:i], s.Faces[i+1:]...)
			for _, fu := range f.Uses {
				if fu != nil {
					fu.ShellP = nil
				}
			}
			s.invalidate()
			return true
		}
	}
	return false
}

// AdoptFace adds f to s.Faces and repoints both of its FaceUses' ShellP
// at s. Used by cleanup's Decompose and MergeShells to reassign a face
// detached from one shell to another without rebuilding its topology.
func (s *Shell) AdoptFace(f *Face) {
	for _, fu := range f.Uses {
		if fu != nil {
			fu.ShellP = s
		}
	}
	s.Faces = append(s.Faces, f)
	s.invalidate()
}

// KillFace kills f and removes it from s.Faces. Unlike Face.Kill alone,
// this is the entry point cleanup operations should use when removing a
// single face from a shell that continues to exist (e.g. a degenerate
// face found during crack killing), since it keeps s.Faces consistent.
func (s *Shell) KillFace(f *Face) {
	f.Kill()
	for i, ff := range s.Faces {
		if ff == f {
			s.Faces = append(s.Faces[:i], s.Faces[i+1:]...)
			break
		}
	}
	s.invalidate()
}

// Kill frees every face, wire loop, wire edge, and lone vertex owned by
// s, then removes s from its Region.
func (s *Shell) Kill() {
	if s.Dead {
		return
	}
	s.Dead = true
	for _, f := range s.Faces {
		f.Kill()
	}
	for _, lu := range s.WireLoops {
		lu.Kill()
	}
	for _, eu := range s.WireEdges {
		eu.Kill()
	}
	for _, vu := range s.LoneVerts {
		vu.Kill()
	}
	if s.RegionP != nil {
		s.RegionP.Shells = removeShell(s.RegionP.Shells, s)
		s.RegionP.invalidate()
	}
}

func removeShell(shells []*Shell, s *Shell) []*Shell {
	for i, ss := range shells {
		if ss == s {
			return append(shells[:i], shells[i+1:]...)
		}
	}
	return shells
}
