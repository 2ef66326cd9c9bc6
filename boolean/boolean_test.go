package boolean

import (
	"testing"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
	"github.com/stretchr/testify/require"
)

// buildBox adds a closed, outward-wound unit-ish box [min, max] to a
// fresh shell of r and returns it.
func buildBox(t *testing.T, r *nmg.Region, min, max geom.Vec3) *nmg.Shell {
	t.Helper()
	m := r.Model()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }

	v000 := v(min.X, min.Y, min.Z)
	v100 := v(max.X, min.Y, min.Z)
	v110 := v(max.X, max.Y, min.Z)
	v010 := v(min.X, max.Y, min.Z)
	v001 := v(min.X, min.Y, max.Z)
	v101 := v(max.X, min.Y, max.Z)
	v111 := v(max.X, max.Y, max.Z)
	v011 := v(min.X, max.Y, max.Z)

	s := r.NewShell()
	faces := [][]*nmg.Vertex{
		{v000, v010, v110, v100}, // bottom, normal -Z
		{v001, v101, v111, v011}, // top, normal +Z
		{v000, v100, v101, v001}, // front, normal -Y
		{v010, v011, v111, v110}, // back, normal +Y
		{v000, v001, v011, v010}, // left, normal -X
		{v100, v110, v111, v101}, // right, normal +X
	}
	for _, verts := range faces {
		_, err := s.NewFaceFromLoop(verts)
		require.NoError(t, err)
	}
	return s
}

func volumeOf(t *testing.T, s *nmg.Shell, tol tolerance.Tolerance) float64 {
	t.Helper()
	return s.BBox(tol).Pad(-tol.Dist).Volume()
}

func TestEvaluateUnionOfTwoDisjointBoxes(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))
	b := buildBox(t, r, geom.NewVec3(2, 2, 2), geom.NewVec3(3, 3, 3))

	out, err := Evaluate(Union, a, b, tol)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.Faces, 12)
}

func TestEvaluateIntersectOfOverlappingBoxes(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))
	b := buildBox(t, r, geom.NewVec3(0.5, 0.5, 0.5), geom.NewVec3(1.5, 1.5, 1.5))

	out, err := Evaluate(Intersect, a, b, tol)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Faces)

	box := out.BBox(tol).Pad(-tol.Dist)
	require.InDelta(t, 0.5, box.Min.X, 1e-6)
	require.InDelta(t, 1.0, box.Max.X, 1e-6)
}

func TestEvaluateSubtractCarvesCavity(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(2, 2, 2))
	b := buildBox(t, r, geom.NewVec3(0.5, 0.5, 0.5), geom.NewVec3(1.5, 1.5, 1.5))

	out, err := Evaluate(Subtract, a, b, tol)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Faces)
}

func TestEvaluateXorOfOverlappingBoxes(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))
	b := buildBox(t, r, geom.NewVec3(0.5, 0.5, 0.5), geom.NewVec3(1.5, 1.5, 1.5))

	out, err := Evaluate(Xor, a, b, tol)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Faces)
}

func TestEvaluateSubtractNilIsFastPath(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	out, err := Evaluate(Subtract, a, nil, tol)
	require.NoError(t, err)
	require.Len(t, out.Faces, 6)
}

func TestEvaluateIntersectSameShellIsFastPath(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	out, err := Evaluate(Intersect, a, a, tol)
	require.NoError(t, err)
	require.Len(t, out.Faces, 6)
}

func TestEvaluateUnionNilBIsCongruentToA(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	out, err := Evaluate(Union, a, nil, tol)
	require.NoError(t, err)
	require.Len(t, out.Faces, 6)
}

func TestEvaluateXorNilBIsCongruentToA(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	out, err := Evaluate(Xor, a, nil, tol)
	require.NoError(t, err)
	require.Len(t, out.Faces, 6)
}

func TestEvaluateIntersectNilBIsIndeterminate(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	_, err := Evaluate(Intersect, a, nil, tol)
	require.ErrorIs(t, err, ErrIndeterminate)
}

// TestEvaluateSubtractSelfIsEmpty locks in spec.md §8 testable property
// 7, boolean(SUBTRACT, A, A) ≡ empty: every fragment intersectFaces
// produces for an operand subtracted from an exact copy of itself is
// ClassSharedSame/owner 'A', which cullByOperator's Subtract table
// always discards, so Evaluate succeeds with a legitimately empty
// shell rather than reporting ErrIndeterminate.
func TestEvaluateSubtractSelfIsEmpty(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	a := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))
	b := buildBox(t, r, geom.NewVec3(0, 0, 0), geom.NewVec3(1, 1, 1))

	out, err := Evaluate(Subtract, a, b, tol)
	require.NoError(t, err)
	require.Empty(t, out.Faces)
}

func TestCullByOperatorTable(t *testing.T) {
	outsideA := fragment{Class: ClassOutside, Owner: 'A'}
	insideA := fragment{Class: ClassInside, Owner: 'A'}
	insideB := fragment{Class: ClassInside, Owner: 'B'}
	sharedSame := fragment{Class: ClassSharedSame, Owner: 'A'}

	keep, flip := cullByOperator(Union, outsideA)
	require.True(t, keep)
	require.False(t, flip)

	keep, _ = cullByOperator(Union, insideA)
	require.False(t, keep)

	keep, flip = cullByOperator(Subtract, insideB)
	require.True(t, keep)
	require.True(t, flip)

	keep, _ = cullByOperator(Intersect, sharedSame)
	require.True(t, keep)
}

func TestCoplanarAndCongruent(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()

	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }
	fu1, err := s.NewFaceFromLoop([]*nmg.Vertex{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)})
	require.NoError(t, err)
	fu2, err := s.NewFaceFromLoop([]*nmg.Vertex{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)})
	require.NoError(t, err)

	same, sameNormal := coplanar(fu1.Face, fu2.Face, tol)
	require.True(t, same)
	require.True(t, sameNormal)

	pts1 := loopVerts(fu1)
	pts2 := loopVerts(fu2)
	require.True(t, congruent(pts1, pts2, tol))
}
