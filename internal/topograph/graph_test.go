package topograph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BRL-CAD/nmgcore/internal/topograph"
)

func TestConnectedComponents(t *testing.T) {
	g := topograph.New()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, err := g.AddVertex(id, nil)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))
	require.NoError(t, g.AddEdge("d", "e", 1))

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	require.ElementsMatch(t, []string{"a", "b", "c"}, comps[0])
	require.ElementsMatch(t, []string{"d", "e"}, comps[1])
}

func TestConnectedComponentsMultiEdge(t *testing.T) {
	g := topograph.New()
	_, _ = g.AddVertex("f1", nil)
	_, _ = g.AddVertex("f2", nil)
	require.NoError(t, g.AddEdge("f1", "f2", 1))
	require.NoError(t, g.AddEdge("f1", "f2", 1)) // non-manifold: two shared edges
	comps := g.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, g.Neighbors("f1"), 2)
}

func TestPostOrder(t *testing.T) {
	g := topograph.New()
	for _, id := range []string{"ext", "void1", "void2"} {
		_, _ = g.AddVertex(id, nil)
	}
	require.NoError(t, g.AddEdge("ext", "void1", 0))
	require.NoError(t, g.AddEdge("void1", "void2", 0))

	order := g.PostOrder("ext")
	require.Equal(t, []string{"void2", "void1", "ext"}, order)
}

func TestNearest(t *testing.T) {
	g := topograph.New()
	for _, id := range []string{"cur", "a", "b"} {
		_, _ = g.AddVertex(id, nil)
	}
	require.NoError(t, g.AddEdge("cur", "a", 5))
	require.NoError(t, g.AddEdge("cur", "b", 1))

	id, dist, found, err := g.Nearest("cur", func(id string) bool { return id == "a" || id == "b" })
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "b", id)
	require.Equal(t, 1.0, dist)
}

func TestNearestUnknownSource(t *testing.T) {
	g := topograph.New()
	_, _, _, err := g.Nearest("missing", func(string) bool { return true })
	require.ErrorIs(t, err, topograph.ErrSourceNotFound)
}
