// Package quality implements partition quality metrics over weighted
// undirected graphs: Newman modularity and per-community conductance.
package quality

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/proteinnetworks/insight/pkg/graph"
	"github.com/proteinnetworks/insight/pkg/insight"
)

// ModularityFromAdjacency computes Newman's modularity of a partition over a
// symmetric weighted adjacency matrix. The partition assigns a 1-based
// community label to each node, in node order.
func ModularityFromAdjacency(adjacency *mat.SymDense, partition []int) (float64, error) {
	n := adjacency.SymmetricDim()
	if len(partition) != n {
		return 0, fmt.Errorf("%w: partition has %d entries for %d nodes",
			insight.ErrInputValue, len(partition), n)
	}
	if err := insight.ValidateLabels(partition); err != nil {
		return 0, err
	}

	degrees := make([]float64, n)
	m2 := 0.0 // sum over all ordered pairs, i.e. twice the edge weight
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			degrees[i] += adjacency.At(i, j)
		}
		m2 += degrees[i]
	}
	if m2 == 0 {
		return 0, nil
	}

	numCommunities := 0
	for _, label := range partition {
		if label > numCommunities {
			numCommunities = label
		}
	}

	internal := make([]float64, numCommunities)
	total := make([]float64, numCommunities)
	for i := 0; i < n; i++ {
		c := partition[i] - 1
		total[c] += degrees[i]
		for j := 0; j < n; j++ {
			if partition[j] == partition[i] {
				internal[c] += adjacency.At(i, j)
			}
		}
	}

	modularity := 0.0
	for c := 0; c < numCommunities; c++ {
		modularity += internal[c]/m2 - (total[c]/m2)*(total[c]/m2)
	}
	return modularity, nil
}

// ModularityFromEdges computes Newman's modularity of a partition over an
// edge list, collapsing duplicate pairs first.
func ModularityFromEdges(edges []graph.Edge, partition []int) (float64, error) {
	g, err := graph.FromEdgeList(edges)
	if err != nil {
		return 0, err
	}
	return ModularityFromAdjacency(g.AdjacencyMatrix(), partition)
}

// ConductanceFromNodeSubset computes the conductance of a node subset given
// as a boolean mask over the nodes of a symmetric adjacency matrix:
// cut weight divided by the smaller of the subset and complement volumes.
// A subset with no incident edge weight on either side has conductance 0.
func ConductanceFromNodeSubset(subset []bool, adjacency *mat.SymDense) (float64, error) {
	n := adjacency.SymmetricDim()
	if len(subset) != n {
		return 0, fmt.Errorf("%w: subset mask has %d entries for %d nodes",
			insight.ErrInputValue, len(subset), n)
	}

	cut := 0.0
	volumeIn := 0.0
	volumeOut := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := adjacency.At(i, j)
			if subset[i] {
				volumeIn += w
				if !subset[j] {
					cut += w
				}
			} else {
				volumeOut += w
			}
		}
	}

	minVolume := volumeIn
	if volumeOut < minVolume {
		minVolume = volumeOut
	}
	if minVolume == 0 {
		return 0, nil
	}
	return cut / minVolume, nil
}

// ConductanceFromPartition computes the conductance of every community in a
// partition over an edge list, returned in ascending label order.
func ConductanceFromPartition(edges []graph.Edge, partition []int) ([]float64, error) {
	g, err := graph.FromEdgeList(edges)
	if err != nil {
		return nil, err
	}
	if len(partition) != g.NumNodes {
		return nil, fmt.Errorf("%w: partition has %d entries for %d nodes",
			insight.ErrInputValue, len(partition), g.NumNodes)
	}
	if err := insight.ValidateLabels(partition); err != nil {
		return nil, err
	}

	adjacency := g.AdjacencyMatrix()
	numCommunities := 0
	for _, label := range partition {
		if label > numCommunities {
			numCommunities = label
		}
	}

	conductances := make([]float64, 0, numCommunities)
	subset := make([]bool, g.NumNodes)
	for c := 1; c <= numCommunities; c++ {
		for i, label := range partition {
			subset[i] = label == c
		}
		phi, err := ConductanceFromNodeSubset(subset, adjacency)
		if err != nil {
			return nil, err
		}
		conductances = append(conductances, phi)
	}
	return conductances, nil
}
