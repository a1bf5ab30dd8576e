// Package isomorphism implements exact graph isomorphism testing and
// maximum common subgraph extraction for small unweighted undirected graphs,
// such as protein supernetworks with a handful of communities.
package isomorphism

import (
	"errors"
	"fmt"
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"

	"github.com/proteinnetworks/insight/pkg/insight"
)

// ErrInfeasible reports a graph too large for exact subgraph matching.
var ErrInfeasible = errors.New("graph too large for exact matching")

// MaxExactNodes bounds the larger graph in an MCS search. Exhaustive
// subgraph enumeration beyond this is hopeless.
const MaxExactNodes = 25

func asUndirected(g gonumgraph.Graph) (gonumgraph.Undirected, error) {
	u, ok := g.(gonumgraph.Undirected)
	if !ok {
		return nil, fmt.Errorf("%w: expected an undirected graph, got %T",
			insight.ErrInputType, g)
	}
	return u, nil
}

// nodeIDs returns the graph's node ids in ascending order.
func nodeIDs(g gonumgraph.Graph) []int64 {
	it := g.Nodes()
	ids := make([]int64, 0, it.Len())
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// adjacency builds a boolean adjacency matrix over the given node ordering.
func adjacency(g gonumgraph.Undirected, ids []int64) [][]bool {
	n := len(ids)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdgeBetween(ids[i], ids[j]) {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}
	return adj
}

func degreeSequence(adj [][]bool) []int {
	degrees := make([]int, len(adj))
	for i, row := range adj {
		for _, connected := range row {
			if connected {
				degrees[i]++
			}
		}
	}
	return degrees
}

func sortedCopy(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameAdjacencyUnderSomeMapping runs a backtracking search for a node
// bijection between two equal-size adjacency matrices that preserves
// adjacency. Candidates are pruned on degree.
func sameAdjacencyUnderSomeMapping(a, b [][]bool) bool {
	n := len(a)
	if n == 0 {
		return true
	}

	degA := degreeSequence(a)
	degB := degreeSequence(b)
	if !equalInts(sortedCopy(degA), sortedCopy(degB)) {
		return false
	}

	mapping := make([]int, n)
	used := make([]bool, n)

	var assign func(i int) bool
	assign = func(i int) bool {
		if i == n {
			return true
		}
		for j := 0; j < n; j++ {
			if used[j] || degB[j] != degA[i] {
				continue
			}
			consistent := true
			for k := 0; k < i; k++ {
				if a[i][k] != b[j][mapping[k]] {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}
			mapping[i] = j
			used[j] = true
			if assign(i + 1) {
				return true
			}
			used[j] = false
		}
		return false
	}
	return assign(0)
}

// Isomorphic reports whether two undirected graphs are isomorphic, ignoring
// edge weights. Node and edge counts and degree sequences are compared
// before the exact search.
func Isomorphic(a, b gonumgraph.Graph) (bool, error) {
	ua, err := asUndirected(a)
	if err != nil {
		return false, err
	}
	ub, err := asUndirected(b)
	if err != nil {
		return false, err
	}

	idsA := nodeIDs(ua)
	idsB := nodeIDs(ub)
	if len(idsA) != len(idsB) {
		return false, nil
	}

	adjA := adjacency(ua, idsA)
	adjB := adjacency(ub, idsB)
	return sameAdjacencyUnderSomeMapping(adjA, adjB), nil
}
