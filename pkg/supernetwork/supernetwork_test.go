package supernetwork

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteinnetworks/insight/pkg/graph"
	"github.com/proteinnetworks/insight/pkg/insight"
)

// memStore is a minimal in-memory Store for builder tests.
type memStore struct {
	networks []*SuperNetwork
	deposits int
}

func (s *memStore) Lookup(proteinRef string, partitionID uuid.UUID) (*SuperNetwork, bool, error) {
	for _, sn := range s.networks {
		if sn.ProteinRef == proteinRef && sn.PartitionID == partitionID {
			return sn, true, nil
		}
	}
	return nil, false, nil
}

func (s *memStore) Deposit(sn *SuperNetwork) error {
	s.deposits++
	s.networks = append(s.networks, sn)
	return nil
}

func (s *memStore) AllSuperNetworksFor(proteinRef string) ([]*SuperNetwork, error) {
	var out []*SuperNetwork
	for _, sn := range s.networks {
		if sn.ProteinRef != proteinRef {
			out = append(out, sn)
		}
	}
	return out, nil
}

func bridgedTriangles() []graph.Edge {
	return []graph.Edge{
		{I: 1, J: 2, Weight: 1},
		{I: 2, J: 3, Weight: 1},
		{I: 3, J: 1, Weight: 1},
		{I: 4, J: 5, Weight: 1},
		{I: 5, J: 6, Weight: 1},
		{I: 6, J: 4, Weight: 1},
		{I: 3, J: 4, Weight: 1},
	}
}

func TestNewHierarchy(t *testing.T) {
	id := uuid.New()

	t.Run("EmptyProteinRef", func(t *testing.T) {
		_, err := NewHierarchy("", id, [][]int{{1, 1}}, nil, nil)
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("NoLevels", func(t *testing.T) {
		_, err := NewHierarchy("1abc", id, nil, nil, nil)
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("RaggedLevels", func(t *testing.T) {
		_, err := NewHierarchy("1abc", id, [][]int{{1, 1, 1}, {1, 2}}, nil, nil)
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("NonContiguousLevel", func(t *testing.T) {
		_, err := NewHierarchy("1abc", id, [][]int{{1, 3, 3}}, nil, nil)
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("DomainLengthMismatch", func(t *testing.T) {
		_, err := NewHierarchy("1abc", id, [][]int{{1, 1, 2}}, nil, []int{1, 2})
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("MissingDomains", func(t *testing.T) {
		h, err := NewHierarchy("1abc", id, [][]int{{1, 1, 2}}, nil, nil)
		require.NoError(t, err)
		_, err = h.ReferenceDomains()
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})
}

func TestCollapse(t *testing.T) {
	t.Run("EdgeOutsideNodeRange", func(t *testing.T) {
		_, err := collapse([]graph.Edge{{I: 1, J: 9, Weight: 1}}, []int{1, 2})
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("OrientationAndSorting", func(t *testing.T) {
		partition := []int{1, 1, 2, 2, 3}
		edges := []graph.Edge{
			{I: 1, J: 3, Weight: 1},
			{I: 2, J: 3, Weight: 1},
			{I: 3, J: 5, Weight: 1},
			{I: 5, J: 1, Weight: 1}, // pair (3,1) first seen in this orientation
			{I: 4, J: 2, Weight: 1}, // reversed duplicate of (1,2)
			{I: 1, J: 2, Weight: 1}, // same community, skipped
			{I: 5, J: 3, Weight: 1}, // reversed duplicate of (2,3)
		}

		coarse, err := collapse(edges, partition)
		require.NoError(t, err)
		assert.Equal(t, []graph.Edge{
			{I: 1, J: 2, Weight: 3},
			{I: 2, J: 3, Weight: 2},
			{I: 3, J: 1, Weight: 1},
		}, coarse)
	})

	t.Run("WeightsCountEdgesNotContactWeights", func(t *testing.T) {
		coarse, err := collapse([]graph.Edge{{I: 1, J: 2, Weight: 7.5}}, []int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, []graph.Edge{{I: 1, J: 2, Weight: 1}}, coarse)
	})
}

func TestBuild(t *testing.T) {
	id := uuid.New()
	levels := [][]int{
		{1, 1, 1, 1, 1, 1},
		{1, 1, 1, 2, 2, 2},
	}
	domains := []int{1, 1, 1, 2, 2, 2}

	t.Run("PicksBestLevelAndDeposits", func(t *testing.T) {
		h, err := NewHierarchy("1abc", id, levels, bridgedTriangles(), domains)
		require.NoError(t, err)

		store := &memStore{}
		b := NewBuilder(store, DefaultBuilderConfig())

		sn, err := b.Build(h)
		require.NoError(t, err)

		assert.Equal(t, "1abc", sn.ProteinRef)
		assert.Equal(t, 1, sn.Level)
		assert.Equal(t, []graph.Edge{{I: 1, J: 2, Weight: 1}}, sn.Edges)
		assert.Equal(t, 1, store.deposits)
	})

	t.Run("SecondBuildHitsStore", func(t *testing.T) {
		h, err := NewHierarchy("1abc", id, levels, bridgedTriangles(), domains)
		require.NoError(t, err)

		store := &memStore{}
		b := NewBuilder(store, DefaultBuilderConfig())

		first, err := b.Build(h)
		require.NoError(t, err)
		second, err := b.Build(h)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, store.deposits)
	})

	t.Run("MissingDomainsFailBuild", func(t *testing.T) {
		h, err := NewHierarchy("1abc", id, levels, bridgedTriangles(), nil)
		require.NoError(t, err)

		b := NewBuilder(&memStore{}, DefaultBuilderConfig())
		_, err = b.Build(h)
		assert.True(t, errors.Is(err, insight.ErrInputValue))
	})

	t.Run("JaccardTieKeepsEarlierLevel", func(t *testing.T) {
		tied := [][]int{
			{1, 1, 1, 2, 2, 2},
			{1, 1, 1, 2, 2, 2},
		}
		h, err := NewHierarchy("1abc", id, tied, bridgedTriangles(), domains)
		require.NoError(t, err)

		b := NewBuilder(&memStore{}, DefaultBuilderConfig())
		sn, err := b.Build(h)
		require.NoError(t, err)
		assert.Equal(t, 0, sn.Level)
	})
}
