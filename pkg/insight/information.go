package insight

import (
	"fmt"
	"math"
)

// ShannonEntropy computes H = -sum_i (n_i/N) ln(n_i/N) over the community
// sizes n_i of a partition. A single community has entropy 0; all-unit
// communities have entropy ln(N).
func ShannonEntropy(partition []int) (float64, error) {
	if err := ValidateLabels(partition); err != nil {
		return 0, err
	}

	total := float64(len(partition))
	entropy := 0.0
	for _, size := range communitySizes(partition) {
		p := float64(size) / total
		entropy -= p * math.Log(p)
	}
	return entropy, nil
}

// MutualInformation computes the discrete mutual information between two
// partitions of the same node set, from the joint co-membership counts:
//
//	I = sum_{i,j} (n_ij/N) ln((n_ij/N) / ((n_i/N)(n_j/N)))
//
// Both arrays must pass label validation; a length mismatch means the two
// arrays do not describe the same nodes and is rejected as a type error.
func MutualInformation(p1, p2 []int) (float64, error) {
	if err := ValidateLabels(p1); err != nil {
		return 0, err
	}
	if err := ValidateLabels(p2); err != nil {
		return 0, err
	}
	if len(p1) != len(p2) {
		return 0, fmt.Errorf("%w: partitions have different lengths (%d vs %d)",
			ErrInputType, len(p1), len(p2))
	}

	total := float64(len(p1))
	sizes1 := communitySizes(p1)
	sizes2 := communitySizes(p2)

	joint := make(map[[2]int]int)
	for i := range p1 {
		joint[[2]int{p1[i], p2[i]}]++
	}

	info := 0.0
	for pair, count := range joint {
		pij := float64(count) / total
		pi := float64(sizes1[pair[0]-1]) / total
		pj := float64(sizes2[pair[1]-1]) / total
		info += pij * math.Log(pij/(pi*pj))
	}
	return info, nil
}

// NMI computes the normalized mutual information 2*I/(H1+H2), scaled to
// [0,1]. When both partitions are a single community the entropies vanish
// and the result is defined to be 1.
func NMI(p1, p2 []int) (float64, error) {
	h1, err := ShannonEntropy(p1)
	if err != nil {
		return 0, err
	}
	h2, err := ShannonEntropy(p2)
	if err != nil {
		return 0, err
	}

	info, err := MutualInformation(p1, p2)
	if err != nil {
		return 0, err
	}

	if h1 == 0 && h2 == 0 {
		return 1, nil
	}

	nmi := 2 * info / (h1 + h2)
	if nmi < 0 {
		nmi = 0
	}
	if nmi > 1 {
		nmi = 1
	}
	return nmi, nil
}
