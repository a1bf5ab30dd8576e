package isomorphism

import (
	"fmt"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/stat/combin"
)

// MCS finds a maximum common subgraph of two undirected graphs by exhaustive
// search: induced subgraphs of the smaller graph are enumerated in
// descending size and tested against every same-size induced subgraph of the
// larger graph. The first match wins and is returned as an induced subgraph
// of the smaller input, keeping its node ids. A nil graph means no common
// subgraph exists, which only happens when one input is empty.
//
// Returns ErrInfeasible when the larger graph exceeds MaxExactNodes.
func MCS(a, b gonumgraph.Graph) (*simple.UndirectedGraph, error) {
	ua, err := asUndirected(a)
	if err != nil {
		return nil, err
	}
	ub, err := asUndirected(b)
	if err != nil {
		return nil, err
	}

	smallIDs, largeIDs := nodeIDs(ua), nodeIDs(ub)
	small := ua
	if len(smallIDs) > len(largeIDs) {
		small = ub
		smallIDs, largeIDs = largeIDs, smallIDs
	}

	if len(largeIDs) > MaxExactNodes {
		return nil, fmt.Errorf("%w: %d nodes exceeds the %d node limit",
			ErrInfeasible, len(largeIDs), MaxExactNodes)
	}

	var adjSmall, adjLarge [][]bool
	if small == ua {
		adjSmall, adjLarge = adjacency(ua, smallIDs), adjacency(ub, largeIDs)
	} else {
		adjSmall, adjLarge = adjacency(ub, smallIDs), adjacency(ua, largeIDs)
	}

	for k := len(smallIDs); k >= 1; k-- {
		pick := make([]int, k)
		pickOther := make([]int, k)
		genSmall := combin.NewCombinationGenerator(len(smallIDs), k)
		for genSmall.Next() {
			genSmall.Combination(pick)
			subSmall := submatrix(adjSmall, pick)

			genLarge := combin.NewCombinationGenerator(len(largeIDs), k)
			for genLarge.Next() {
				genLarge.Combination(pickOther)
				if sameAdjacencyUnderSomeMapping(subSmall, submatrix(adjLarge, pickOther)) {
					return inducedSubgraph(small, smallIDs, pick), nil
				}
			}
		}
	}
	return nil, nil
}

func submatrix(adj [][]bool, pick []int) [][]bool {
	k := len(pick)
	sub := make([][]bool, k)
	for i := range sub {
		sub[i] = make([]bool, k)
		for j := range sub[i] {
			sub[i][j] = adj[pick[i]][pick[j]]
		}
	}
	return sub
}

func inducedSubgraph(g gonumgraph.Undirected, ids []int64, pick []int) *simple.UndirectedGraph {
	sub := simple.NewUndirectedGraph()
	for _, p := range pick {
		sub.AddNode(simple.Node(ids[p]))
	}
	for i, p := range pick {
		for _, q := range pick[i+1:] {
			if g.HasEdgeBetween(ids[p], ids[q]) {
				sub.SetEdge(sub.NewEdge(simple.Node(ids[p]), simple.Node(ids[q])))
			}
		}
	}
	return sub
}
