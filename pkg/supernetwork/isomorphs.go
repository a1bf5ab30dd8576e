package supernetwork

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/proteinnetworks/insight/pkg/isomorphism"
)

// WeakIsomorph records a pair of supernetworks whose maximum common subgraph
// covers more than the similarity threshold of the larger one.
type WeakIsomorph struct {
	ProteinRef string  `json:"proteinRef"`
	OtherRef   string  `json:"otherRef"`
	Similarity float64 `json:"similarity"`
}

// toSimpleGraph converts a supernetwork's edges to an unweighted gonum
// graph. Community ids become node ids.
func toSimpleGraph(sn *SuperNetwork) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, e := range sn.Edges {
		if e.I == e.J {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(e.I), simple.Node(e.J)))
	}
	return g
}

// FindIsomorphs returns the protein references of every stored supernetwork
// exactly isomorphic to the given one, excluding the protein's own entries.
func (b *Builder) FindIsomorphs(sn *SuperNetwork) ([]string, error) {
	candidates, err := b.store.AllSuperNetworksFor(sn.ProteinRef)
	if err != nil {
		return nil, fmt.Errorf("list supernetworks: %w", err)
	}

	g := toSimpleGraph(sn)
	var isomorphs []string
	for _, candidate := range candidates {
		iso, err := isomorphism.Isomorphic(g, toSimpleGraph(candidate))
		if err != nil {
			return nil, fmt.Errorf("compare %s with %s: %w",
				sn.ProteinRef, candidate.ProteinRef, err)
		}
		if iso {
			isomorphs = append(isomorphs, candidate.ProteinRef)
		}
	}
	return isomorphs, nil
}

// FindWeakIsomorphs scans candidate supernetworks for weak isomorphs of the
// given one: pairs whose maximum common subgraph node count, divided by the
// larger graph's node count, exceeds the similarity threshold.
//
// A nil subset scans the whole store, excluding the protein's own entries;
// an empty non-nil subset scans nothing. Candidates too large for exact
// matching are skipped. Results keep candidate order.
func (b *Builder) FindWeakIsomorphs(sn *SuperNetwork, subset []*SuperNetwork) ([]WeakIsomorph, error) {
	candidates := subset
	if candidates == nil {
		var err error
		candidates, err = b.store.AllSuperNetworksFor(sn.ProteinRef)
		if err != nil {
			return nil, fmt.Errorf("list supernetworks: %w", err)
		}
	}

	g := toSimpleGraph(sn)
	numNodes := g.Nodes().Len()

	matches := make([]*WeakIsomorph, len(candidates))
	errs := make([]error, len(candidates))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < b.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				candidate := candidates[idx]
				other := toSimpleGraph(candidate)

				mcs, err := isomorphism.MCS(g, other)
				if errors.Is(err, isomorphism.ErrInfeasible) {
					b.logger.Debug("skipping infeasible candidate",
						zap.String("proteinRef", sn.ProteinRef),
						zap.String("otherRef", candidate.ProteinRef))
					continue
				}
				if err != nil {
					errs[idx] = fmt.Errorf("compare %s with %s: %w",
						sn.ProteinRef, candidate.ProteinRef, err)
					continue
				}

				similarity := 0.0
				if mcs != nil {
					larger := numNodes
					if n := other.Nodes().Len(); n > larger {
						larger = n
					}
					similarity = float64(mcs.Nodes().Len()) / float64(larger)
				}
				if similarity > b.config.SimilarityThreshold {
					matches[idx] = &WeakIsomorph{
						ProteinRef: sn.ProteinRef,
						OtherRef:   candidate.ProteinRef,
						Similarity: similarity,
					}
				}
			}
		}()
	}

	for idx := range candidates {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var results []WeakIsomorph
	for _, match := range matches {
		if match != nil {
			results = append(results, *match)
		}
	}
	return results, nil
}
