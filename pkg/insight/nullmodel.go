package insight

import "math/rand"

// GenerateNullModel produces a randomized control partition with the same
// structural footprint as the input: the number of distinct communities and
// the number of adjacent-position label transitions are preserved exactly,
// while community identity and spatial arrangement are randomized.
//
// The input is decomposed into runs of equal labels; the run lengths are
// rearranged by a feasibility-preserving interleave (a run never lands next
// to another run of the same community, so no transition is lost) and the
// community identities are renamed by a random bijection. Only the two
// invariants are guaranteed across calls; the output is not deterministic.
func GenerateNullModel(partition []int) ([]int, error) {
	if err := ValidateLabels(partition); err != nil {
		return nil, err
	}

	// Run decomposition: lengths grouped per community, in random order so
	// run lengths are reassigned independently of their original positions.
	runLengths := make(map[int][]int)
	remaining := make(map[int]int)
	runCount := 0
	start := 0
	for i := 1; i <= len(partition); i++ {
		if i == len(partition) || partition[i] != partition[start] {
			label := partition[start]
			runLengths[label] = append(runLengths[label], i-start)
			remaining[label]++
			runCount++
			start = i
		}
	}
	for label := range runLengths {
		lengths := runLengths[label]
		rand.Shuffle(len(lengths), func(a, b int) { lengths[a], lengths[b] = lengths[b], lengths[a] })
	}

	// Interleave the runs. Picking among the most-constrained communities
	// first (ties broken at random) keeps the arrangement feasible: in any
	// valid run sequence no community holds more than half the runs.
	out := make([]int, 0, len(partition))
	prev := 0
	for placed := 0; placed < runCount; placed++ {
		maxCount := 0
		var candidates []int
		for label, count := range remaining {
			if label == prev || count == 0 {
				continue
			}
			if count > maxCount {
				maxCount = count
				candidates = candidates[:0]
			}
			if count == maxCount {
				candidates = append(candidates, label)
			}
		}
		label := candidates[rand.Intn(len(candidates))]

		lengths := runLengths[label]
		length := lengths[len(lengths)-1]
		runLengths[label] = lengths[:len(lengths)-1]
		remaining[label]--

		for i := 0; i < length; i++ {
			out = append(out, label)
		}
		prev = label
	}

	// Random bijection on community identities, kept contiguous in 1..K.
	numCommunities := len(runLengths)
	perm := rand.Perm(numCommunities)
	relabel := make(map[int]int, numCommunities)
	next := 0
	for _, label := range out {
		if _, ok := relabel[label]; !ok {
			relabel[label] = perm[next] + 1
			next++
		}
	}
	for i, label := range out {
		out[i] = relabel[label]
	}

	return out, nil
}
