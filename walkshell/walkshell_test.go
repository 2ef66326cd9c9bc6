package walkshell

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BRL-CAD/nmgcore/geom"
	"github.com/BRL-CAD/nmgcore/nmg"
	"github.com/BRL-CAD/nmgcore/tolerance"
	"github.com/BRL-CAD/nmgcore/triangulate"
)

func buildCube(t *testing.T) *nmg.Shell {
	t.Helper()
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

	tol := tolerance.Default()
	require.NoError(t, triangulate.TriangulateModel(m, tol))
	require.Len(t, s.Faces, 12)
	return s
}

func TestWalkShellPatchesEmitsOneStreamCoveringCube(t *testing.T) {
	s := buildCube(t)

	var patches []Patch
	err := WalkShellPatches(s, func(p Patch) { patches = append(patches, p) })
	require.NoError(t, err)
	require.Len(t, patches, 1)

	stream := patches[0]
	require.GreaterOrEqual(t, len(stream), 12*3)

	triCount := 0
	for _, f := range s.Faces {
		for _, eu := range f.Uses[0].Loops[0].Edges {
			_ = eu
		}
		triCount++
	}
	require.Equal(t, 12, triCount)
}

func TestWalkShellPatchesEmptyShellErrors(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()

	err := WalkShellPatches(s, func(Patch) {})
	require.ErrorIs(t, err, ErrEmptyShell)
}

func TestWalkShellPatchesSingleTriangleShell(t *testing.T) {
	m := nmg.NewModel()
	r := m.NewRegion()
	s := r.NewShell()
	v := func(x, y, z float64) *nmg.Vertex { return m.NewVertex(geom.NewVec3(x, y, z)) }
	_, err := s.NewFaceFromLoop([]*nmg.Vertex{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)})
	require.NoError(t, err)

	var got Patch
	err = WalkShellPatches(s, func(p Patch) { got = p })
	require.NoError(t, err)
	require.Len(t, got, 3)
}
