package supernetwork

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/proteinnetworks/insight/pkg/graph"
	"github.com/proteinnetworks/insight/pkg/insight"
)

// BuilderConfig holds the tunables of a Builder.
type BuilderConfig struct {
	// NumWorkers bounds the goroutines used by FindWeakIsomorphs.
	NumWorkers int

	// SimilarityThreshold is the minimum maximum-common-subgraph
	// similarity for two supernetworks to count as weakly isomorphic.
	SimilarityThreshold float64

	Logger *zap.Logger
}

// DefaultBuilderConfig returns the standard builder settings.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		NumWorkers:          4,
		SimilarityThreshold: 0.5,
		Logger:              zap.NewNop(),
	}
}

// Builder creates supernetworks from partition sources, caching results in a
// Store, and scans the store for isomorphic matches.
type Builder struct {
	store  Store
	config BuilderConfig
	logger *zap.Logger
}

// NewBuilder creates a Builder over the given store.
func NewBuilder(store Store, config BuilderConfig) *Builder {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.NumWorkers < 1 {
		config.NumWorkers = 1
	}
	return &Builder{store: store, config: config, logger: logger}
}

// Build returns the supernetwork for the source's partition, from the store
// when already deposited, otherwise built and deposited.
//
// The partition level with the highest modified Jaccard against the
// reference domains is collapsed: every community becomes a node, and each
// contact edge between two distinct communities adds one to the weight
// between them. Ties on the Jaccard keep the earliest level.
func (b *Builder) Build(source PartitionSource) (*SuperNetwork, error) {
	proteinRef := source.ProteinRef()
	partitionID := source.PartitionID()

	cached, found, err := b.store.Lookup(proteinRef, partitionID)
	if err != nil {
		return nil, fmt.Errorf("lookup supernetwork for %s: %w", proteinRef, err)
	}
	if found {
		b.logger.Debug("supernetwork found in store",
			zap.String("proteinRef", proteinRef),
			zap.String("partitionID", partitionID.String()))
		return cached, nil
	}

	domains, err := source.ReferenceDomains()
	if err != nil {
		return nil, fmt.Errorf("cannot build supernetwork for %s: %w", proteinRef, err)
	}

	levels := source.Levels()
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: partition for %s has no levels",
			insight.ErrInputValue, proteinRef)
	}

	bestLevel := -1
	bestJaccard := -1.0
	for i, level := range levels {
		jaccard, err := insight.ModifiedJaccard(domains, level)
		if err != nil {
			return nil, fmt.Errorf("score level %d of %s: %w", i, proteinRef, err)
		}
		b.logger.Debug("scored partition level",
			zap.String("proteinRef", proteinRef),
			zap.Int("level", i),
			zap.Float64("jaccard", jaccard))
		if jaccard > bestJaccard {
			bestJaccard = jaccard
			bestLevel = i
		}
	}

	edges, err := source.EdgeList()
	if err != nil {
		return nil, fmt.Errorf("edge list for %s: %w", proteinRef, err)
	}

	coarse, err := collapse(edges, levels[bestLevel])
	if err != nil {
		return nil, fmt.Errorf("collapse level %d of %s: %w", bestLevel, proteinRef, err)
	}

	sn := &SuperNetwork{
		ProteinRef:  proteinRef,
		PartitionID: partitionID,
		Level:       bestLevel,
		Edges:       coarse,
	}
	if err := b.store.Deposit(sn); err != nil {
		return nil, fmt.Errorf("deposit supernetwork for %s: %w", proteinRef, err)
	}

	b.logger.Info("built supernetwork",
		zap.String("proteinRef", proteinRef),
		zap.Int("level", bestLevel),
		zap.Float64("jaccard", bestJaccard),
		zap.Int("edges", len(coarse)))
	return sn, nil
}

// collapse reduces a contact edge list to community-level edges. Each row
// whose endpoints fall in distinct communities adds one to that community
// pair's weight; the pair keeps the orientation it was first seen with.
// Output rows are sorted lexicographically.
func collapse(edges []graph.Edge, partition []int) ([]graph.Edge, error) {
	type pair struct{ i, j int }
	weights := make(map[pair]float64)

	for _, e := range edges {
		if e.I < 1 || e.I > len(partition) || e.J < 1 || e.J > len(partition) {
			return nil, fmt.Errorf("%w: edge (%d, %d) outside partition of %d nodes",
				insight.ErrInputValue, e.I, e.J, len(partition))
		}
		ci, cj := partition[e.I-1], partition[e.J-1]
		if ci == cj {
			continue
		}
		forward := pair{ci, cj}
		if _, seen := weights[forward]; seen {
			weights[forward]++
			continue
		}
		if _, seen := weights[pair{cj, ci}]; seen {
			weights[pair{cj, ci}]++
			continue
		}
		weights[forward] = 1
	}

	coarse := make([]graph.Edge, 0, len(weights))
	for p, w := range weights {
		coarse = append(coarse, graph.Edge{I: p.i, J: p.j, Weight: w})
	}
	sort.Slice(coarse, func(a, b int) bool {
		if coarse[a].I != coarse[b].I {
			return coarse[a].I < coarse[b].I
		}
		return coarse[a].J < coarse[b].J
	})
	return coarse, nil
}
