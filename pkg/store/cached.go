package store

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"

	"github.com/proteinnetworks/insight/pkg/supernetwork"
)

const (
	cacheNumCounters = 1e5
	cacheMaxCost     = 1e7
	cacheBufferItems = 64
)

// CachedStore wraps a Store with a ristretto read-through cache on Lookup.
// Deposits write through. AllSuperNetworksFor always hits the backing store.
type CachedStore struct {
	backing supernetwork.Store
	cache   *ristretto.Cache
}

// NewCachedStore wraps the backing store with a lookup cache.
func NewCachedStore(backing supernetwork.Store) (*CachedStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	return &CachedStore{backing: backing, cache: cache}, nil
}

func cacheKey(proteinRef string, partitionID uuid.UUID) string {
	return proteinRef + ":" + partitionID.String()
}

func cacheCost(sn *supernetwork.SuperNetwork) int64 {
	return int64(len(sn.ProteinRef)) + int64(len(sn.Edges))*24 + 64
}

func (s *CachedStore) Lookup(proteinRef string, partitionID uuid.UUID) (*supernetwork.SuperNetwork, bool, error) {
	key := cacheKey(proteinRef, partitionID)
	if value, found := s.cache.Get(key); found {
		if sn, ok := value.(*supernetwork.SuperNetwork); ok {
			return sn, true, nil
		}
	}

	sn, found, err := s.backing.Lookup(proteinRef, partitionID)
	if err != nil || !found {
		return nil, false, err
	}
	s.cache.Set(key, sn, cacheCost(sn))
	return sn, true, nil
}

func (s *CachedStore) Deposit(sn *supernetwork.SuperNetwork) error {
	if err := s.backing.Deposit(sn); err != nil {
		return err
	}
	s.cache.Set(cacheKey(sn.ProteinRef, sn.PartitionID), sn, cacheCost(sn))
	return nil
}

func (s *CachedStore) AllSuperNetworksFor(proteinRef string) ([]*supernetwork.SuperNetwork, error) {
	return s.backing.AllSuperNetworksFor(proteinRef)
}

// Wait blocks until pending cache writes are applied. Test helper.
func (s *CachedStore) Wait() {
	s.cache.Wait()
}

// Close releases the cache. The backing store is not closed.
func (s *CachedStore) Close() {
	s.cache.Close()
}
