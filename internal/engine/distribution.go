package engine

import (
	"math"

	"moodtune/internal/model"
)

// Share is the probability that Select returns Track.
type Share struct {
	Track       model.Track
	Probability float64
}

// Distribution computes the exact selection probabilities Select realises for
// candidates with a uniform source, including the zero-total and fallback cases.
func Distribution(candidates []model.Track) []Share {
	n := len(candidates)
	shares := make([]Share, n)
	for i, t := range candidates {
		shares[i].Track = t
	}
	if n == 0 {
		return shares
	}

	if i := lowestRank(candidates); i >= 0 {
		shares[i].Probability = 1
		return shares
	}

	prefix := make([]float64, n)
	total := 0.0
	for i, t := range candidates {
		total += t.EffectiveWeight()
		prefix[i] = total
	}

	// Candidate i wins for draws u where u*total <= prefix[i] first holds.
	switch {
	case total > 0:
		covered := 0.0
		for i := range candidates {
			upper := math.Min(prefix[i]/total, 1)
			if upper > covered {
				shares[i].Probability = upper - covered
				covered = upper
			}
		}
		shares[n-1].Probability += 1 - covered

	case total < 0:
		// dividing by a negative total flips the inequality: u >= prefix[i]/total
		covered := 1.0
		for i := range candidates {
			lower := math.Max(prefix[i]/total, 0)
			if lower < covered {
				shares[i].Probability = covered - lower
				covered = lower
			}
		}
		shares[n-1].Probability += covered

	default:
		winner := n - 1
		for i := range candidates {
			if prefix[i] >= 0 {
				winner = i
				break
			}
		}
		shares[winner].Probability = 1
	}
	return shares
}
