// Package graph holds the weighted undirected graph representation shared by
// the partition-quality metrics and the supernetwork builder. Edge lists use
// 1-based node ids, matching the label arrays of pkg/insight.
package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/proteinnetworks/insight/pkg/insight"
)

// Edge is a weighted undirected edge between two 1-based node ids. The
// weight is a contact count or geometric score, never negative.
type Edge struct {
	I      int     `json:"i"`
	J      int     `json:"j"`
	Weight float64 `json:"weight"`
}

// Graph represents a weighted undirected graph using adjacency arrays.
type Graph struct {
	NumNodes    int
	Adjacency   [][]int     // Adjacency[i] = neighbors of node i (0-based)
	Weights     [][]float64 // Weights[i][k] = weight of edge to Adjacency[i][k]
	Degrees     []float64   // weighted degree per node
	TotalWeight float64     // sum of all edge weights
}

// NewGraph creates an empty graph with n nodes.
func NewGraph(numNodes int) *Graph {
	return &Graph{
		NumNodes:  numNodes,
		Adjacency: make([][]int, numNodes),
		Weights:   make([][]float64, numNodes),
		Degrees:   make([]float64, numNodes),
	}
}

// AddEdge adds a weighted undirected edge between two 0-based node indices.
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if u < 0 || u >= g.NumNodes || v < 0 || v >= g.NumNodes {
		return fmt.Errorf("%w: node index out of range: u=%d, v=%d, numNodes=%d",
			insight.ErrInputValue, u, v, g.NumNodes)
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative edge weight %f", insight.ErrInputValue, weight)
	}

	g.Adjacency[u] = append(g.Adjacency[u], v)
	g.Weights[u] = append(g.Weights[u], weight)
	g.Degrees[u] += weight

	if u != v {
		g.Adjacency[v] = append(g.Adjacency[v], u)
		g.Weights[v] = append(g.Weights[v], weight)
		g.Degrees[v] += weight
	} else {
		// Self-loop: weight counts twice towards the degree.
		g.Degrees[u] += weight
	}

	g.TotalWeight += weight
	return nil
}

// FromEdgeList builds a graph from edge triples, summing the weights of
// parallel and duplicate edges regardless of orientation. The node count is
// the largest node id seen.
func FromEdgeList(edges []Edge) (*Graph, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: empty edge list", insight.ErrInputValue)
	}

	numNodes := 0
	for _, e := range edges {
		if e.I < 1 || e.J < 1 {
			return nil, fmt.Errorf("%w: node ids are 1-based, got edge (%d, %d)",
				insight.ErrInputValue, e.I, e.J)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: negative edge weight %f on edge (%d, %d)",
				insight.ErrInputValue, e.Weight, e.I, e.J)
		}
		if e.I > numNodes {
			numNodes = e.I
		}
		if e.J > numNodes {
			numNodes = e.J
		}
	}

	// Collapse duplicate pairs on the order-independent node pair before
	// touching the adjacency arrays.
	type pair struct{ lo, hi int }
	combined := make(map[pair]float64)
	var order []pair
	for _, e := range edges {
		p := pair{e.I - 1, e.J - 1}
		if p.lo > p.hi {
			p.lo, p.hi = p.hi, p.lo
		}
		if _, seen := combined[p]; !seen {
			order = append(order, p)
		}
		combined[p] += e.Weight
	}

	g := NewGraph(numNodes)
	for _, p := range order {
		if err := g.AddEdge(p.lo, p.hi, combined[p]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AdjacencyMatrix returns the symmetric weighted adjacency matrix.
func (g *Graph) AdjacencyMatrix() *mat.SymDense {
	adj := mat.NewSymDense(g.NumNodes, nil)
	for u := 0; u < g.NumNodes; u++ {
		for k, v := range g.Adjacency[u] {
			if v >= u {
				adj.SetSym(u, v, g.Weights[u][k])
			}
		}
	}
	return adj
}

// EdgeWeight returns the weight between two 0-based nodes, 0 if absent.
func (g *Graph) EdgeWeight(u, v int) float64 {
	if u < 0 || u >= g.NumNodes || v < 0 || v >= g.NumNodes {
		return 0
	}
	for k, neighbor := range g.Adjacency[u] {
		if neighbor == v {
			return g.Weights[u][k]
		}
	}
	return 0
}
