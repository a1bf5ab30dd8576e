package insight

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ScoreFunc is a correspondence measure between a reference labeling and a
// generated partition, as used by ZScoreWith. ModifiedJaccard is the usual
// choice for domain comparisons.
type ScoreFunc func(reference, generated []int) (float64, error)

// ZScore measures how significant the modified-Jaccard correspondence
// between reference and generated is, against numTrials structure-preserving
// null models drawn from the generated partition.
func ZScore(reference, generated []int, numTrials int) (float64, error) {
	return ZScoreWith(reference, generated, numTrials, ModifiedJaccard)
}

// ZScoreWith is ZScore with a caller-supplied correspondence measure.
//
// The result is (S0 - mean(S_i)) / std(S_i) with the population standard
// deviation over the null scores S_i. Positive means the observed partition
// correlates with the reference better than random shuffles that keep the
// community-size and transition structure; negative means worse. A
// zero-variance null distribution (single community, all-unit communities)
// yields exactly 0.
func ZScoreWith(reference, generated []int, numTrials int, score ScoreFunc) (float64, error) {
	if numTrials <= 0 {
		return 0, fmt.Errorf("%w: number of trials must be positive, got %d", ErrInputValue, numTrials)
	}

	observed, err := score(reference, generated)
	if err != nil {
		return 0, err
	}

	scores := make([]float64, numTrials)
	for i := range scores {
		nullModel, err := GenerateNullModel(generated)
		if err != nil {
			return 0, err
		}
		s, err := score(reference, nullModel)
		if err != nil {
			return 0, err
		}
		scores[i] = s
	}

	// All-identical null scores mean zero variance; checked directly so the
	// result is exactly 0 rather than an accumulation artifact.
	identical := true
	for _, s := range scores[1:] {
		if s != scores[0] {
			identical = false
			break
		}
	}
	if identical {
		return 0, nil
	}

	mean := stat.Mean(scores, nil)
	std := stat.PopStdDev(scores, nil)
	if std == 0 {
		return 0, nil
	}
	return (observed - mean) / std, nil
}
