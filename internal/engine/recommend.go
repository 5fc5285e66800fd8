package engine

import (
	"moodtune/internal/model"
)

// Outcome classifies a recommendation. Only OutcomeSelected carries a track;
// the others are normal results callers branch on, not failures.
type Outcome int

const (
	OutcomeSelected Outcome = iota
	OutcomeNoCandidates
	OutcomeNoSelection
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeNoCandidates:
		return "no_candidates"
	case OutcomeNoSelection:
		return "no_selection"
	default:
		return "unknown"
	}
}

type Result struct {
	Food       string
	Mood       string
	Track      model.Track
	Outcome    Outcome
	Phase      Phase
	Candidates int
}

// Selected reports whether the result carries a track.
func (r Result) Selected() bool {
	return r.Outcome == OutcomeSelected
}

// Recommend resolves the candidates for (food, mood) and selects one of them.
func Recommend(catalog model.Catalog, food, mood string, src RandomSource) Result {
	candidates := Resolve(catalog, food, mood)
	if len(candidates) == 0 {
		return Result{Food: food, Mood: mood, Outcome: OutcomeNoCandidates}
	}

	res := Choose(candidates, src)
	res.Food, res.Mood = food, mood
	return res
}

// Choose runs selection over an already resolved candidate set.
func Choose(candidates []model.Track, src RandomSource) Result {
	track, phase, ok := Select(candidates, src)
	if !ok {
		return Result{Outcome: OutcomeNoSelection}
	}
	return Result{
		Track:      track,
		Outcome:    OutcomeSelected,
		Phase:      phase,
		Candidates: len(candidates),
	}
}
