package triangulate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
)

func TestTriangulateFaceQuadYieldsTwoTriangles(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }
	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)})
	require.NoError(t, err)
	f := fu.Face

	require.NoError(t, TriangulateFace(f, tol))
	require.Len(t, s.Faces, 2)
	for _, nf := range s.Faces {
		require.Len(t, nf.Uses[0].Loops[0].Edges, 3)
	}
}

func TestTriangulateFacePentagonYieldsThreeTriangles(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }
	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{
		v(0, 0, 0), v(2, 0, 0), v(2.5, 1, 0), v(1, 2, 0), v(-0.5, 1, 0),
	})
	require.NoError(t, err)

	require.NoError(t, TriangulateFace(fu.Face, tol))
	require.Len(t, s.Faces, 3)
}

func TestTriangulateFaceIsIdempotent(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }
	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)})
	require.NoError(t, err)

	require.NoError(t, TriangulateFace(fu.Face, tol))
	require.Len(t, s.Faces, 1)
	require.NoError(t, TriangulateFace(s.Faces[0], tol))
	require.Len(t, s.Faces, 1)
}

func TestTriangulateModelOnCubeYieldsTwelveTriangles(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }

	v000, v100, v110, v010 := v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)
	v001, v101, v111, v011 := v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)
	faces := [][]*nmg.Vertex{
		{v000, v010, v110, v100},
		{v001, v101, v111, v011},
		{v000, v100, v101, v001},
		{v010, v011, v111, v110},
		{v000, v001, v011, v010},
		{v100, v110, v111, v101},
	}
	for _, verts := range faces {
		_, err := s.NewFaceFromLoop(verts)
		require.NoError(t, err)
	}

	require.NoError(t, TriangulateModel(m, tol))
	require.Len(t, s.Faces, 12)

	require.NoError(t, nmg.Validate(m))
}

func TestTriangulateFaceWithHole(t *testing.T) {
	tol := tolerance.Default()
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }

	fu, err := s.NewFaceFromLoop([]*nmg.Vertex{v(0, 0, 0), v(10, 0, 0), v(10, 10, 0), v(0, 10, 0)})
	require.NoError(t, err)
	// Hole wound opposite the outer loop (clockwise as seen from +Z).
	_, err = fu.Face.AddHoleLoop([]*nmg.Vertex{v(6, 4, 0), v(4, 4, 0), v(4, 6, 0), v(6, 6, 0)})
	require.NoError(t, err)

	require.NoError(t, TriangulateFace(fu.Face, tol))
	for _, nf := range s.Faces {
		require.Len(t, nf.Uses[0].Loops[0].Edges, 3)
		require.Len(t, nf.Uses[0].Loops, 1)
	}
	require.Greater(t, len(s.Faces), 2)
}
