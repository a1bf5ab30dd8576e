// Package supernetwork builds and compares community-level graphs. A
// supernetwork collapses every community of a chosen partition level into a
// single node, with edge weights counting the inter-community contacts.
package supernetwork

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/proteinnetworks/insight/pkg/graph"
	"github.com/proteinnetworks/insight/pkg/insight"
)

// SuperNetwork is the coarse graph built from one partition of one protein.
type SuperNetwork struct {
	ProteinRef  string       `json:"proteinRef"`
	PartitionID uuid.UUID    `json:"partitionId"`
	Level       int          `json:"level"`
	Edges       []graph.Edge `json:"edges"`
}

// PartitionSource supplies everything needed to build a supernetwork: the
// hierarchical partition levels of a protein, its contact edge list, and the
// reference domain assignment used to pick the best level.
type PartitionSource interface {
	ProteinRef() string
	PartitionID() uuid.UUID

	// Levels returns the community assignment per hierarchy level,
	// coarsest first. Each level assigns a 1-based label to every node.
	Levels() [][]int

	// EdgeList returns the protein's contact edges with 1-based node ids.
	EdgeList() ([]graph.Edge, error)

	// ReferenceDomains returns the reference domain label per node, or an
	// error when the protein has no domain annotation.
	ReferenceDomains() ([]int, error)
}

// Store persists supernetworks keyed by protein reference and partition id.
type Store interface {
	// Lookup returns the stored supernetwork for the pair, if present.
	Lookup(proteinRef string, partitionID uuid.UUID) (*SuperNetwork, bool, error)

	// Deposit stores a supernetwork, replacing any previous entry for its
	// protein reference and partition id.
	Deposit(sn *SuperNetwork) error

	// AllSuperNetworksFor returns every stored supernetwork except those
	// belonging to the given protein reference.
	AllSuperNetworksFor(proteinRef string) ([]*SuperNetwork, error)
}

// Hierarchy is an in-memory PartitionSource.
type Hierarchy struct {
	proteinRef  string
	partitionID uuid.UUID
	levels      [][]int
	edges       []graph.Edge
	domains     []int // nil when the protein has no domain annotation
}

// NewHierarchy builds a PartitionSource from partition levels and a contact
// edge list. Pass nil domains for proteins without a domain annotation.
func NewHierarchy(proteinRef string, partitionID uuid.UUID, levels [][]int, edges []graph.Edge, domains []int) (*Hierarchy, error) {
	if proteinRef == "" {
		return nil, fmt.Errorf("%w: empty protein reference", insight.ErrInputValue)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: partition has no levels", insight.ErrInputValue)
	}
	numNodes := len(levels[0])
	for i, level := range levels {
		if len(level) != numNodes {
			return nil, fmt.Errorf("%w: level %d has %d nodes, expected %d",
				insight.ErrInputValue, i, len(level), numNodes)
		}
		if err := insight.ValidateLabels(level); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}
	if domains != nil && len(domains) != numNodes {
		return nil, fmt.Errorf("%w: domain array has %d nodes, expected %d",
			insight.ErrInputValue, len(domains), numNodes)
	}
	return &Hierarchy{
		proteinRef:  proteinRef,
		partitionID: partitionID,
		levels:      levels,
		edges:       edges,
		domains:     domains,
	}, nil
}

func (h *Hierarchy) ProteinRef() string     { return h.proteinRef }
func (h *Hierarchy) PartitionID() uuid.UUID { return h.partitionID }
func (h *Hierarchy) Levels() [][]int        { return h.levels }

func (h *Hierarchy) EdgeList() ([]graph.Edge, error) {
	if len(h.edges) == 0 {
		return nil, fmt.Errorf("%w: hierarchy for %s has no edge list",
			insight.ErrInputValue, h.proteinRef)
	}
	return h.edges, nil
}

func (h *Hierarchy) ReferenceDomains() ([]int, error) {
	if h.domains == nil {
		return nil, fmt.Errorf("%w: no domain annotation for %s",
			insight.ErrInputValue, h.proteinRef)
	}
	return h.domains, nil
}
