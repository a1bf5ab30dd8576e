// Package insight provides the community-structure evaluation metrics:
// modified-Jaccard correspondence against a reference domain labeling,
// information-theoretic partition comparison (entropy, mutual information,
// NMI), structure-preserving null models and z-score significance testing.
//
// All functions operate on label arrays: one positive integer community
// label per node, 1-based node indexing implied by position. Labels must
// occupy the contiguous range 1..K with no gaps; this is validated at the
// boundary of every function, never assumed.
package insight

import "fmt"

// ValidateLabels checks that a label array is non-empty and that its labels
// cover a contiguous range starting at 1 with no gaps.
func ValidateLabels(labels []int) error {
	if len(labels) == 0 {
		return fmt.Errorf("%w: empty label array", ErrInputValue)
	}

	maxLabel := 0
	seen := make(map[int]bool)
	for _, label := range labels {
		if label < 1 {
			return fmt.Errorf("%w: label %d out of range, labels start at 1", ErrInputValue, label)
		}
		seen[label] = true
		if label > maxLabel {
			maxLabel = label
		}
	}

	if len(seen) != maxLabel {
		return fmt.Errorf("%w: labels must cover 1..%d without gaps, found %d distinct labels",
			ErrInputValue, maxLabel, len(seen))
	}

	return nil
}

// communitySizes returns the number of nodes per community, indexed by
// label-1. Assumes the array already passed ValidateLabels.
func communitySizes(labels []int) []int {
	maxLabel := 0
	for _, label := range labels {
		if label > maxLabel {
			maxLabel = label
		}
	}

	sizes := make([]int, maxLabel)
	for _, label := range labels {
		sizes[label-1]++
	}
	return sizes
}

// countTransitions counts the positions where the label differs from the
// previous position's label.
func countTransitions(labels []int) int {
	transitions := 0
	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[i-1] {
			transitions++
		}
	}
	return transitions
}
