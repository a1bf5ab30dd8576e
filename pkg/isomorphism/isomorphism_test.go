package isomorphism

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/proteinnetworks/insight/pkg/insight"
)

func undirected(edges [][2]int64, isolated ...int64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, n := range isolated {
		g.AddNode(simple.Node(n))
	}
	for _, e := range edges {
		g.SetEdge(g.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}
	return g
}

func triangle(base int64) *simple.UndirectedGraph {
	return undirected([][2]int64{
		{base, base + 1},
		{base + 1, base + 2},
		{base + 2, base},
	})
}

func TestIsomorphic(t *testing.T) {
	t.Run("DirectedGraphRejected", func(t *testing.T) {
		d := simple.NewDirectedGraph()
		d.SetEdge(d.NewEdge(simple.Node(1), simple.Node(2)))

		_, err := Isomorphic(d, triangle(1))
		assert.True(t, errors.Is(err, insight.ErrInputType))

		_, err = Isomorphic(triangle(1), d)
		assert.True(t, errors.Is(err, insight.ErrInputType))
	})

	t.Run("RelabeledTriangles", func(t *testing.T) {
		iso, err := Isomorphic(triangle(1), triangle(100))
		require.NoError(t, err)
		assert.True(t, iso)
	})

	t.Run("DifferentNodeCounts", func(t *testing.T) {
		iso, err := Isomorphic(triangle(1), undirected([][2]int64{{1, 2}}))
		require.NoError(t, err)
		assert.False(t, iso)
	})

	t.Run("TriangleVersusPath", func(t *testing.T) {
		path := undirected([][2]int64{{1, 2}, {2, 3}})
		iso, err := Isomorphic(triangle(1), path)
		require.NoError(t, err)
		assert.False(t, iso)
	})

	t.Run("SameDegreeSequenceNotIsomorphic", func(t *testing.T) {
		// A 6-cycle and two disjoint triangles both have six degree-2
		// nodes and six edges.
		cycle := undirected([][2]int64{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 1}})
		triangles := undirected([][2]int64{{1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 6}, {6, 4}})

		iso, err := Isomorphic(cycle, triangles)
		require.NoError(t, err)
		assert.False(t, iso)
	})

	t.Run("EmptyGraphs", func(t *testing.T) {
		iso, err := Isomorphic(simple.NewUndirectedGraph(), simple.NewUndirectedGraph())
		require.NoError(t, err)
		assert.True(t, iso)
	})
}

func TestMCS(t *testing.T) {
	t.Run("DirectedGraphRejected", func(t *testing.T) {
		d := simple.NewDirectedGraph()
		d.SetEdge(d.NewEdge(simple.Node(1), simple.Node(2)))

		_, err := MCS(d, triangle(1))
		assert.True(t, errors.Is(err, insight.ErrInputType))
	})

	t.Run("IsomorphicGraphs", func(t *testing.T) {
		mcs, err := MCS(triangle(1), triangle(50))
		require.NoError(t, err)
		require.NotNil(t, mcs)

		assert.Equal(t, 3, mcs.Nodes().Len())
		iso, err := Isomorphic(mcs, triangle(1))
		require.NoError(t, err)
		assert.True(t, iso)
	})

	t.Run("PerfectSubgraph", func(t *testing.T) {
		withPendant := undirected([][2]int64{{1, 2}, {2, 3}, {3, 1}, {3, 4}})

		mcs, err := MCS(triangle(1), withPendant)
		require.NoError(t, err)
		require.NotNil(t, mcs)

		assert.Equal(t, 3, mcs.Nodes().Len())
		iso, err := Isomorphic(mcs, triangle(1))
		require.NoError(t, err)
		assert.True(t, iso)
	})

	t.Run("SingleNodeGraph", func(t *testing.T) {
		single := undirected(nil, 7)

		mcs, err := MCS(triangle(1), single)
		require.NoError(t, err)
		require.NotNil(t, mcs)
		assert.Equal(t, 1, mcs.Nodes().Len())
	})

	t.Run("DisconnectedGraphs", func(t *testing.T) {
		twoTriangles := undirected([][2]int64{
			{1, 2}, {2, 3}, {3, 1},
			{4, 5}, {5, 6}, {6, 4},
		})

		mcs, err := MCS(triangle(1), twoTriangles)
		require.NoError(t, err)
		require.NotNil(t, mcs)

		assert.Equal(t, 3, mcs.Nodes().Len())
		iso, err := Isomorphic(mcs, triangle(1))
		require.NoError(t, err)
		assert.True(t, iso)
	})

	t.Run("KeepsSmallerGraphNodeIDs", func(t *testing.T) {
		mcs, err := MCS(triangle(10), undirected([][2]int64{{1, 2}, {2, 3}, {3, 1}, {3, 4}}))
		require.NoError(t, err)
		require.NotNil(t, mcs)

		for _, id := range []int64{10, 11, 12} {
			assert.NotNil(t, mcs.Node(id))
		}
	})

	t.Run("TooLarge", func(t *testing.T) {
		var edges [][2]int64
		for i := int64(1); i < 26; i++ {
			edges = append(edges, [2]int64{i, i + 1})
		}
		big := undirected(edges) // 26-node path

		_, err := MCS(triangle(1), big)
		assert.True(t, errors.Is(err, ErrInfeasible))
	})

	t.Run("EmptyGraphHasNoMCS", func(t *testing.T) {
		mcs, err := MCS(simple.NewUndirectedGraph(), triangle(1))
		require.NoError(t, err)
		assert.Nil(t, mcs)
	})
}
