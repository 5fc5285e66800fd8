package engine

import (
	"moodtune/internal/model"
)

// Phase names the rule that decided a selection.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseRank
	PhaseWeighted
)

func (p Phase) String() string {
	switch p {
	case PhaseRank:
		return "rank"
	case PhaseWeighted:
		return "weighted"
	default:
		return "none"
	}
}

// Select picks one track from candidates. ok is false when candidates is empty.
//
// Ranked tracks always win: the lowest rank is chosen and equal ranks go to the
// earliest candidate. Only when nothing is ranked is a track drawn with probability
// proportional to its effective weight. A zero total weight selects the first
// candidate.
func Select(candidates []model.Track, src RandomSource) (track model.Track, phase Phase, ok bool) {
	if len(candidates) == 0 {
		return model.Track{}, PhaseNone, false
	}

	if i := lowestRank(candidates); i >= 0 {
		return candidates[i], PhaseRank, true
	}

	return candidates[weightedIndex(candidates, src)], PhaseWeighted, true
}

// lowestRank returns the index of the ranked candidate with the smallest rank, or -1.
func lowestRank(candidates []model.Track) int {
	best := -1
	for i, t := range candidates {
		if !t.Ranked() {
			continue
		}
		// strict comparison keeps the first of equal ranks
		if best < 0 || t.Rank.Value < candidates[best].Rank.Value {
			best = i
		}
	}
	return best
}

func weightedIndex(candidates []model.Track, src RandomSource) int {
	total := 0.0
	for _, t := range candidates {
		total += t.EffectiveWeight()
	}

	r := src.Float64() * total
	for i, t := range candidates {
		r -= t.EffectiveWeight()
		if r <= 0 {
			return i
		}
	}
	// rounding left r positive
	return len(candidates) - 1
}
