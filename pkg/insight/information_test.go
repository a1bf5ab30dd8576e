package insight

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShannonEntropy(t *testing.T) {
	t.Run("NonContiguousLabels", func(t *testing.T) {
		_, err := ShannonEntropy(repeat([2]int{2, 5}, [2]int{4, 5}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInputValue))
	})

	t.Run("SingleCommunity", func(t *testing.T) {
		h, err := ShannonEntropy(repeat([2]int{1, 100}))
		require.NoError(t, err)
		assert.Equal(t, 0.0, h)
	})

	t.Run("UnitCommunities", func(t *testing.T) {
		h, err := ShannonEntropy(sequence(1, 100))
		require.NoError(t, err)
		assert.InDelta(t, -math.Log(1.0/100.0), h, 1e-12)
	})

	t.Run("EqualBipartition", func(t *testing.T) {
		h, err := ShannonEntropy(repeat([2]int{1, 10}, [2]int{2, 10}))
		require.NoError(t, err)
		assert.InDelta(t, -math.Log(0.5), h, 1e-12)
	})
}

func TestMutualInformation(t *testing.T) {
	t.Run("NonContiguousLabels", func(t *testing.T) {
		bad := repeat([2]int{2, 5}, [2]int{4, 5})
		_, err := MutualInformation(bad, bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInputValue))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		p1 := repeat([2]int{1, 5}, [2]int{2, 5}, [2]int{3, 5})
		p2 := repeat([2]int{1, 5}, [2]int{2, 5})
		_, err := MutualInformation(p1, p2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInputType))
	})

	t.Run("IdenticalSingleCommunity", func(t *testing.T) {
		p := repeat([2]int{1, 100})
		info, err := MutualInformation(p, p)
		require.NoError(t, err)
		assert.Equal(t, 0.0, info)
	})

	t.Run("IdenticalUnitCommunities", func(t *testing.T) {
		p := sequence(1, 100)
		info, err := MutualInformation(p, p)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(100), info, 1e-12)
	})

	t.Run("IdenticalBipartitions", func(t *testing.T) {
		p := repeat([2]int{1, 10}, [2]int{2, 10})
		info, err := MutualInformation(p, p)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(2), info, 1e-12)
	})
}

func TestNMI(t *testing.T) {
	t.Run("PerfectMatch", func(t *testing.T) {
		p := repeat([2]int{1, 10}, [2]int{2, 10})
		nmi, err := NMI(p, p)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, nmi, 1e-12)
	})

	t.Run("DegenerateSingleCommunities", func(t *testing.T) {
		p := repeat([2]int{1, 50})
		nmi, err := NMI(p, p)
		require.NoError(t, err)
		assert.Equal(t, 1.0, nmi)
	})

	t.Run("SingleCommunityVersusSplit", func(t *testing.T) {
		single := repeat([2]int{1, 20})
		split := repeat([2]int{1, 10}, [2]int{2, 10})
		nmi, err := NMI(single, split)
		require.NoError(t, err)
		assert.Equal(t, 0.0, nmi)
	})
}

// randomPartition builds a contiguous random partition of the given size.
func randomPartition(rng *rand.Rand, size int) []int {
	labels := make([]int, 0, size)
	next := 1
	for len(labels) < size {
		blockSize := rng.Intn(size/2+1) + 1
		for i := 0; i < blockSize && len(labels) < size; i++ {
			labels = append(labels, next)
		}
		next++
	}
	rng.Shuffle(len(labels), func(a, b int) { labels[a], labels[b] = labels[b], labels[a] })
	return labels
}

func TestNMIRandomPartitionsBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	rng := rand.New(rand.NewSource(1))

	properties.Property("nmi of random partitions stays in [0,1]", prop.ForAll(
		func(size int) bool {
			p1 := randomPartition(rng, size)
			p2 := randomPartition(rng, size)
			nmi, err := NMI(p1, p2)
			if err != nil {
				return false
			}
			return nmi >= 0 && nmi <= 1
		},
		gen.IntRange(2, 300),
	))

	properties.TestingRun(t)
}
