// Package store provides supernetwork.Store implementations: an in-memory
// map, a BadgerDB-backed store, and a ristretto read-through cache that can
// wrap either.
package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/proteinnetworks/insight/pkg/supernetwork"
)

type memoryKey struct {
	proteinRef  string
	partitionID uuid.UUID
}

// MemoryStore keeps supernetworks in a map. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	networks map[memoryKey]*supernetwork.SuperNetwork
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{networks: make(map[memoryKey]*supernetwork.SuperNetwork)}
}

func (s *MemoryStore) Lookup(proteinRef string, partitionID uuid.UUID) (*supernetwork.SuperNetwork, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sn, found := s.networks[memoryKey{proteinRef, partitionID}]
	return sn, found, nil
}

func (s *MemoryStore) Deposit(sn *supernetwork.SuperNetwork) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[memoryKey{sn.ProteinRef, sn.PartitionID}] = sn
	return nil
}

func (s *MemoryStore) AllSuperNetworksFor(proteinRef string) ([]*supernetwork.SuperNetwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*supernetwork.SuperNetwork
	for key, sn := range s.networks {
		if key.proteinRef != proteinRef {
			out = append(out, sn)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProteinRef != out[j].ProteinRef {
			return out[i].ProteinRef < out[j].ProteinRef
		}
		return out[i].PartitionID.String() < out[j].PartitionID.String()
	})
	return out, nil
}
