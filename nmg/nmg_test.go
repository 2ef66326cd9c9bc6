package nmg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

func buildTriangle(t *testing.T) (*nmg.Model, *nmg.Shell, *nmg.FaceUse) {
	t.Helper()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v1 := m.NewVertex(geom.NewVec3(0, 0, 0))
	v2 := m.NewVertex(geom.NewVec3(1, 0, 0))
	v3 := m.NewVertex(geom.NewVec3(0, 1, 0))
	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{v1, v2, v3})
	require.NoError(t, err)
	return m, s, fu
}

func TestNewFaceFromLoopValidates(t *testing.T) {
	m, _, _ := buildTriangle(t)
	require.NoError(t, nmg.Validate(m))
}

func TestNewFaceFromLoopRejectsTooFew(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v1 := m.NewVertex(geom.NewVec3(0, 0, 0))
	v2 := m.NewVertex(geom.NewVec3(1, 0, 0))
	_, err := s.NewFaceFromLoop([]*nmg.Vertex{v1, v2})
	require.ErrorIs(t, err, nmg.ErrTooFewVertices)
}

func TestFaceUseNormal(t *testing.T) {
	_, _, fu := buildTriangle(t)
	n, ok := fu.Normal()
	require.True(t, ok)
	require.InDelta(t, 0, n.X, 1e-9)
	require.InDelta(t, 0, n.Y, 1e-9)
	require.InDelta(t, 1, n.Z, 1e-9)

	mateN, ok := fu.Mate.Normal()
	require.True(t, ok)
	require.InDelta(t, -1, mateN.Z, 1e-9)
}

func TestShellBBox(t *testing.T) {
	_, s, _ := buildTriangle(t)
	tol := tolerance.Default()
	b := s.BBox(tol)
	require.InDelta(t, -tol.Dist, b.Min.X, 1e-12)
	require.InDelta(t, -tol.Dist, b.Min.Y, 1e-12)
	require.InDelta(t, 1+tol.Dist, b.Max.X, 1e-12)
	require.InDelta(t, 1+tol.Dist, b.Max.Y, 1e-12)
}

func TestFindTopFace(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	low := []*nmg.Vertex{
		m.NewVertex(geom.NewVec3(0, 0, 0)),
		m.NewVertex(geom.NewVec3(1, 0, 0)),
		m.NewVertex(geom.NewVec3(0, 1, 0)),
	}
	high := []*nmg.Vertex{
		m.NewVertex(geom.NewVec3(0, 0, 5)),
		m.NewVertex(geom.NewVec3(1, 0, 5)),
		m.NewVertex(geom.NewVec3(0, 1, 5)),
	}
	_, err := s.NewFaceFromLoop(low)
	require.NoError(t, err)
	topFU, err := s.NewFaceFromLoop(high)
	require.NoError(t, err)

	marks := nmg.NewMarkSet(m)
	top, err := s.FindTopFace(marks)
	require.NoError(t, err)
	require.Same(t, topFU.Face, top)
	require.True(t, marks.Marked(topFU.Face.Handle()))
}

func TestKillFaceRemovesFromShell(t *testing.T) {
	m, s, fu := buildTriangle(t)
	s.KillFace(fu.Face)
	require.Empty(t, s.Faces)
	require.NoError(t, nmg.Validate(m))
}

func TestKillShellRemovesFromRegion(t *testing.T) {
	m, s, _ := buildTriangle(t)
	r := s.RegionP
	s.Kill()
	require.Empty(t, r.Shells)
	require.NoError(t, nmg.Validate(m))
}

func TestNewWireEdgeAndLoneVertex(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v1 := m.NewVertex(geom.NewVec3(0, 0, 0))
	v2 := m.NewVertex(geom.NewVec3(1, 1, 1))
	_, err := s.NewWireEdge(v1, v2)
	require.NoError(t, err)

	v3 := m.NewVertex(geom.NewVec3(5, 5, 5))
	s.NewLoneVertex(v3)

	require.NoError(t, nmg.Validate(m))
	tol := tolerance.Default()
	b := s.BBox(tol)
	require.InDelta(t, -tol.Dist, b.Min.X, 1e-12)
	require.InDelta(t, 5+tol.Dist, b.Max.X, 1e-12)
}

func TestMarkSet(t *testing.T) {
	m, _, fu := buildTriangle(t)
	ms := nmg.NewMarkSet(m)
	require.False(t, ms.Marked(fu.Handle()))
	ms.Mark(fu.Handle())
	require.True(t, ms.Marked(fu.Handle()))
}
