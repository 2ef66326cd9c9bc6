package cleanup

import (
	"fmt"
	"sort"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

// OrientationMode selects the heuristic FindVoidShells uses to decide
// whether a shell's top face points "outward" (external) or "inward"
// (void). spec.md §4.4 only specifies OrientationZ; OrientationCentroid
// is this module's resolution of Open Question 2 (§9) for callers whose
// geometry is not Z-aligned.
type OrientationMode int

const (
	// OrientationZ classifies by the top face's +Z/-Z outward normal,
	// exactly spec.md §4.4's rule. Default, for parity with spec.md's
	// worked examples (S1-S6).
	OrientationZ OrientationMode = iota
	// OrientationCentroid classifies by whether the top face's outward
	// normal points away from (external) or toward (void) its own
	// shell's centroid — rotation-invariant, since an external shell's
	// OT_SAME normals always point away from the material they bound
	// while a void shell's point into the cavity they bound.
	OrientationCentroid
)

type config struct {
	mode OrientationMode
}

// Option configures FindVoidShells/AssocVoidShells.
type Option func(*config)

// WithOrientation selects the classification heuristic.
func WithOrientation(mode OrientationMode) Option {
	return func(c *config) { c.mode = mode }
}

// VoidReport is the result of FindVoidShells: every shell in the region
// classified as external (assigned a unique positive ID, per spec.md
// §4.4 step 2's "2, 3, ...") or void (pending association). AssocVoidShells
// fills in VoidTag (the negated ID of each void's enclosing external) and
// Dangling (voids with no enclosing external, promoted to their own
// external ID per spec.md §7's non-fatal DanglingVoid handling).
type VoidReport struct {
	ExternalID map[*nmg.Shell]int
	Externals  []*nmg.Shell
	Voids      []*nmg.Shell
	VoidTag    map[*nmg.Shell]int
	Dangling   []*nmg.Shell

	nextID int
}

// FindVoidShells classifies every shell of region as external or void
// (spec.md §4.4 steps 1-2), assigning externals unique positive IDs in
// ascending shell-index order starting at 2.
func FindVoidShells(region *nmg.Region, tol tolerance.Tolerance, opts ...Option) (VoidReport, error) {
	cfg := config{mode: OrientationZ}
	for _, o := range opts {
		o(&cfg)
	}

	shells := append([]*nmg.Shell(nil), region.Shells...)
	sort.Slice(shells, func(i, j int) bool { return shells[i].Idx < shells[j].Idx })

	report := VoidReport{
		ExternalID: make(map[*nmg.Shell]int),
		VoidTag:    make(map[*nmg.Shell]int),
		nextID:     2,
	}
	marks := nmg.NewMarkSet(region.Model())
	for _, s := range shells {
		external, err := classifyShell(s, marks, cfg.mode, tol)
		if err != nil {
			return VoidReport{}, err
		}
		if external {
			report.ExternalID[s] = report.nextID
			report.Externals = append(report.Externals, s)
			report.nextID++
		} else {
			report.Voids = append(report.Voids, s)
		}
	}
	return report, nil
}

func classifyShell(s *nmg.Shell, marks *nmg.MarkSet, mode OrientationMode, tol tolerance.Tolerance) (external bool, err error) {
	top, err := s.FindTopFace(marks)
	if err != nil {
		return false, err
	}
	fu := top.Uses[0]
	n, ok := fu.Normal()
	if !ok {
		return false, fmt.Errorf("cleanup: shell %d's top face has no plane", s.Idx)
	}
	switch mode {
	case OrientationCentroid:
		centroid := s.BBox(tol).Centroid()
		faceCentroid := faceCentroidOf(top)
		dir := faceCentroid.Sub(centroid)
		return n.Dot(dir) > 0, nil
	default:
		return n.Z > 0, nil
	}
}

func faceCentroidOf(f *nmg.Face) geom.Vec3 {
	outer := f.Uses[0].Loops
	if len(outer) == 0 {
		return geom.Origin
	}
	lu := outer[0]
	if lu.Point != nil {
		return lu.Point.V.Coord
	}
	var sum geom.Vec3
	for _, eu := range lu.Edges {
		sum = sum.Add(eu.VUse.V.Coord)
	}
	return sum.Mul(1 / float64(len(lu.Edges)))
}

// AssocVoidShells resolves each void shell in report to its enclosing
// external (spec.md §4.4 steps 3-4): the external whose bounding box
// contains the void's and is the smallest (innermost) such candidate.
// When two externals both contain a void (Open Question 1), the
// smallest-bounding-box-volume external wins, ties broken by lowest
// shell index — this module's deterministic resolution in place of the
// source's visit-order-dependent pick. A void with no containing
// external is reported via the returned error (wrapping
// ErrDanglingVoid) and is, non-fatally, promoted to its own external ID
// in report and appended to report.Dangling; the caller may ignore the
// error and continue.
func AssocVoidShells(region *nmg.Region, report *VoidReport, tol tolerance.Tolerance) error {
	voids := append([]*nmg.Shell(nil), report.Voids...)
	sort.Slice(voids, func(i, j int) bool {
		vi, vj := voids[i].BBox(tol).Volume(), voids[j].BBox(tol).Volume()
		if vi != vj {
			return vi < vj
		}
		return voids[i].Idx < voids[j].Idx
	})

	var dangling []*nmg.Shell
	for _, v := range voids {
		vbox := v.BBox(tol)
		best := (*nmg.Shell)(nil)
		bestVol := 0.0
		for _, e := range report.Externals {
			ebox := e.BBox(tol)
			if !ebox.Contains(vbox, tol.Dist) {
				continue
			}
			vol := ebox.Volume()
			if best == nil || vol < bestVol || (vol == bestVol && e.Idx < best.Idx) {
				best, bestVol = e, vol
			}
		}
		if best == nil {
			dangling = append(dangling, v)
			continue
		}
		report.VoidTag[v] = -report.ExternalID[best]
	}

	if len(dangling) == 0 {
		return nil
	}
	for _, v := range dangling {
		report.ExternalID[v] = report.nextID
		report.nextID++
		report.Externals = append(report.Externals, v)
		report.Dangling = append(report.Dangling, v)
	}
	return fmt.Errorf("%w: %d void shell(s) with no enclosing external", ErrDanglingVoid, len(dangling))
}

// MergeShells merges void's entire face-use, wire-loop, wire-edge, and
// lone-vertex set into ext (spec.md §4.4 step 5), then kills the
// now-empty void shell. ext and void must belong to the same region; a
// no-op if they are the same shell.
func MergeShells(ext, void *nmg.Shell) error {
	if ext == nil || void == nil {
		return fmt.Errorf("cleanup: MergeShells requires two non-nil shells")
	}
	if ext == void {
		return nil
	}
	if ext.RegionP != void.RegionP {
		return fmt.Errorf("cleanup: MergeShells requires shells from the same region")
	}

	for _, f := range append([]*nmg.Face(nil), void.Faces...) {
		void.DetachFace(f)
		ext.AdoptFace(f)
	}
	for _, lu := range void.WireLoops {
		lu.ShellP = ext
	}
	ext.WireLoops = append(ext.WireLoops, void.WireLoops...)
	void.WireLoops = nil

	for _, eu := range void.WireEdges {
		eu.Parent = ext
	}
	ext.WireEdges = append(ext.WireEdges, void.WireEdges...)
	void.WireEdges = nil

	for _, vu := range void.LoneVerts {
		vu.Parent = ext
	}
	ext.LoneVerts = append(ext.LoneVerts, void.LoneVerts...)
	void.LoneVerts = nil

	void.Kill()
	return nil
}
