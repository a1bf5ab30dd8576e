package insight

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ModifiedJaccard scores how well a generated partition corresponds to a
// reference domain labeling. Reference label 1 means "no annotated domain";
// labels 2..K denote distinct reference domains.
//
// For each domain, the communities overlapping it are scored by their
// Jaccard index against the domain and averaged with weights proportional
// to the overlap size. The returned score is the unweighted mean over all
// domains. A domain perfectly contained in a single community scores 1.
func ModifiedJaccard(reference, generated []int) (float64, error) {
	if len(reference) == 0 || len(generated) == 0 {
		return 0, fmt.Errorf("%w: empty label array", ErrInputValue)
	}
	if len(reference) != len(generated) {
		return 0, fmt.Errorf("%w: length mismatch: reference has %d labels, generated has %d",
			ErrInputValue, len(reference), len(generated))
	}

	maxRef := 0
	distinct := make(map[int]bool)
	for _, label := range reference {
		distinct[label] = true
		if label > maxRef {
			maxRef = label
		}
	}
	if len(distinct) < 2 {
		return 0, fmt.Errorf("%w: reference labeling contains no annotated domain", ErrInputValue)
	}

	var domainScores []float64
	for domain := 2; domain <= maxRef; domain++ {
		overlapping := make(map[int]bool)
		for pos, label := range reference {
			if label == domain {
				overlapping[generated[pos]] = true
			}
		}
		if len(overlapping) == 0 {
			continue
		}

		// Intersection-weighted mean Jaccard over the overlapping communities.
		weightedSum := 0.0
		totalIntersection := 0
		for community := range overlapping {
			intersection := 0
			union := 0
			for pos := range reference {
				inCommunity := generated[pos] == community
				inDomain := reference[pos] == domain
				if inCommunity && inDomain {
					intersection++
				}
				if inCommunity || inDomain {
					union++
				}
			}
			weightedSum += float64(intersection) / float64(union) * float64(intersection)
			totalIntersection += intersection
		}
		domainScores = append(domainScores, weightedSum/float64(totalIntersection))
	}

	if len(domainScores) == 0 {
		return 0, fmt.Errorf("%w: reference labeling contains no annotated domain", ErrInputValue)
	}
	return stat.Mean(domainScores, nil), nil
}
