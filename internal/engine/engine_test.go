package engine_test

import (
	"math"
	"testing"

	"moodtune/internal/engine"
	"moodtune/internal/model"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

// sequence replays fixed draws, repeating the last one when exhausted.
type sequence struct {
	vals []float64
	i    int
}

func (s *sequence) Float64() float64 {
	v := s.vals[s.i]
	if s.i < len(s.vals)-1 {
		s.i++
	}
	return v
}

func fixed(vals ...float64) *sequence { return &sequence{vals: vals} }

func tr(uri string) model.Track { return model.Track{URI: uri} }

func ranked(uri string, rank float64) model.Track {
	return model.Track{URI: uri, Rank: model.Num(rank)}
}

func weighted(uri string, w float64) model.Track {
	return model.Track{URI: uri, Weight: model.Num(w)}
}

func TestResolve(t *testing.T) {
	catalog := model.Catalog{
		"curry": {
			Options: []string{"spicy"},
			Music: map[string][]model.Track{
				"focus": {tr("a"), tr("   "), tr(""), {Title: "no uri"}, tr(" b "), tr("c")},
				"calm":  {},
			},
		},
	}

	tests := []struct {
		name       string
		food, mood string
		want       []string
	}{
		{"filters blank uris and keeps order", "curry", "focus", []string{"a", " b ", "c"}},
		{"unknown food", "unknown_food", "any_mood", nil},
		{"unknown mood", "curry", "energetic", nil},
		{"empty list", "curry", "calm", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Resolve(catalog, tt.food, tt.mood)
			var uris []string
			for _, c := range got {
				uris = append(uris, c.URI)
			}
			if diff := cmp.Diff(tt.want, uris); diff != "" {
				t.Errorf("Resolve(%q, %q) mismatch (-want +got):\n%s", tt.food, tt.mood, diff)
			}
		})
	}
}

func TestResolveDoesNotMutateCatalog(t *testing.T) {
	tracks := []model.Track{tr(""), tr("a")}
	catalog := model.Catalog{"x": {Music: map[string][]model.Track{"m": tracks}}}

	got := engine.Resolve(catalog, "x", "m")
	got[0].URI = "changed"

	if tracks[0].URI != "" || tracks[1].URI != "a" {
		t.Errorf("catalog mutated: %+v", tracks)
	}
}

func TestSelect_Empty(t *testing.T) {
	_, phase, ok := engine.Select(nil, fixed(0.5))
	if ok {
		t.Fatal("Select(nil) reported a selection")
	}
	if phase != engine.PhaseNone {
		t.Errorf("phase = %v, want none", phase)
	}

	res := engine.Choose([]model.Track{}, fixed(0.5))
	if res.Outcome != engine.OutcomeNoSelection || res.Selected() {
		t.Errorf("Choose([]) = %+v, want no_selection", res)
	}
}

func TestSelect_RankPrecedence(t *testing.T) {
	candidates := []model.Track{ranked("a", 5), ranked("b", 1), weighted("c", 100)}

	for _, draw := range []float64{0, 0.5, 0.999} {
		got, phase, ok := engine.Select(candidates, fixed(draw))
		if !ok || got.URI != "b" {
			t.Errorf("draw %v: got %q, want b", draw, got.URI)
		}
		if phase != engine.PhaseRank {
			t.Errorf("draw %v: phase = %v, want rank", draw, phase)
		}
	}
}

func TestSelect_RankTieKeepsCandidateOrder(t *testing.T) {
	candidates := []model.Track{tr("u"), ranked("first", 2), ranked("second", 2), ranked("third", 3)}
	for i := 0; i < 20; i++ {
		got, _, _ := engine.Select(candidates, engine.GlobalSource())
		if got.URI != "first" {
			t.Fatalf("iteration %d: got %q, want first", i, got.URI)
		}
	}
}

func TestSelect_NonFiniteRankIsUnranked(t *testing.T) {
	candidates := []model.Track{
		ranked("nan", math.NaN()),
		ranked("inf", math.Inf(-1)),
		weighted("w", 1),
	}
	got, phase, _ := engine.Select(candidates, fixed(0))
	if phase != engine.PhaseWeighted {
		t.Fatalf("phase = %v, want weighted", phase)
	}
	if got.URI != "nan" {
		t.Errorf("got %q, want the first candidate for a zero draw", got.URI)
	}
}

func TestSelect_NegativeRankWins(t *testing.T) {
	candidates := []model.Track{ranked("zero", 0), ranked("neg", -3)}
	got, _, _ := engine.Select(candidates, fixed(0.1))
	if got.URI != "neg" {
		t.Errorf("got %q, want neg", got.URI)
	}
}

func TestSelect_WeightedBoundaries(t *testing.T) {
	// weights 1 and 3: the first owns draws in [0, 0.25]
	candidates := []model.Track{weighted("x", 1), weighted("y", 3)}

	tests := []struct {
		draw float64
		want string
	}{
		{0, "x"},
		{0.2, "x"},
		{0.25, "x"},
		{0.26, "y"},
		{0.999, "y"},
	}
	for _, tt := range tests {
		got, _, _ := engine.Select(candidates, fixed(tt.draw))
		if got.URI != tt.want {
			t.Errorf("draw %v: got %q, want %q", tt.draw, got.URI, tt.want)
		}
	}
}

func TestSelect_ZeroTotalPicksFirst(t *testing.T) {
	candidates := []model.Track{weighted("a", 0), weighted("b", 0), weighted("c", 0)}
	for _, draw := range []float64{0, 0.5, 0.99} {
		got, _, _ := engine.Select(candidates, fixed(draw))
		if got.URI != "a" {
			t.Errorf("draw %v: got %q, want a", draw, got.URI)
		}
	}
}

func TestSelect_FallbackToLast(t *testing.T) {
	// a misbehaving source above 1 exhausts the loop
	candidates := []model.Track{weighted("a", 1), weighted("b", 1), weighted("c", 1)}
	got, _, _ := engine.Select(candidates, fixed(1.5))
	if got.URI != "c" {
		t.Errorf("got %q, want c", got.URI)
	}
}

func TestSelect_ReturnsCandidateUnchanged(t *testing.T) {
	inst := true
	want := model.Track{URI: "audio/a.mp3", Title: "A", Artist: "X", Weight: model.Num(2), Instrumental: &inst}
	got, _, _ := engine.Select([]model.Track{want}, fixed(0.3))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selected track differs (-want +got):\n%s", diff)
	}
}

func TestSelect_WeightedProportionality(t *testing.T) {
	candidates := []model.Track{weighted("x", 1), weighted("y", 3)}
	src := engine.NewSeededSource(42)

	counts := map[string]int{}
	const trials = 10000
	for i := 0; i < trials; i++ {
		got, _, _ := engine.Select(candidates, src)
		counts[got.URI]++
	}

	ratio := float64(counts["y"]) / float64(counts["x"])
	if ratio < 2.7 || ratio > 3.3 {
		t.Errorf("y/x = %.3f (x=%d y=%d), want ~3", ratio, counts["x"], counts["y"])
	}
}

func TestSelect_DefaultWeightMatchesOne(t *testing.T) {
	implicit := []model.Track{tr("a"), weighted("b", 1)}
	src := engine.NewSeededSource(7)

	counts := map[string]int{}
	const trials = 10000
	for i := 0; i < trials; i++ {
		got, _, _ := engine.Select(implicit, src)
		counts[got.URI]++
	}
	share := float64(counts["a"]) / trials
	if math.Abs(share-0.5) > 0.03 {
		t.Errorf("share of unweighted track = %.3f, want ~0.5", share)
	}
}

func TestRecommend_EndToEnd(t *testing.T) {
	doc := `{"curry": {"music": {"energetic": [{"uri":"a.mp3","rank":2},{"uri":"b.mp3","rank":1}]}}}`
	var catalog model.Catalog
	if err := json.Unmarshal([]byte(doc), &catalog); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	candidates := engine.Resolve(catalog, "curry", "energetic")
	want := []model.Track{ranked("a.mp3", 2), ranked("b.mp3", 1)}
	if diff := cmp.Diff(want, candidates); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}

	res := engine.Recommend(catalog, "curry", "energetic", engine.GlobalSource())
	if !res.Selected() {
		t.Fatalf("outcome = %v, want selected", res.Outcome)
	}
	if diff := cmp.Diff(ranked("b.mp3", 1), res.Track); diff != "" {
		t.Errorf("Recommend track mismatch (-want +got):\n%s", diff)
	}
	if res.Phase != engine.PhaseRank || res.Candidates != 2 {
		t.Errorf("phase=%v candidates=%d, want rank/2", res.Phase, res.Candidates)
	}
}

func TestRecommend_NoCandidates(t *testing.T) {
	catalog := model.Catalog{"curry": {Music: map[string][]model.Track{"calm": {tr("  ")}}}}

	for _, key := range [][2]string{{"curry", "calm"}, {"curry", "focus"}, {"ramen", "calm"}} {
		res := engine.Recommend(catalog, key[0], key[1], fixed(0.5))
		if res.Outcome != engine.OutcomeNoCandidates {
			t.Errorf("Recommend(%q, %q) = %v, want no_candidates", key[0], key[1], res.Outcome)
		}
	}
}

func TestDistribution(t *testing.T) {
	tests := []struct {
		name       string
		candidates []model.Track
		want       []float64
	}{
		{"empty", nil, []float64{}},
		{"ranked winner", []model.Track{weighted("w", 9), ranked("r", 4), ranked("s", 1)}, []float64{0, 0, 1}},
		{"weights", []model.Track{weighted("x", 1), weighted("y", 3)}, []float64{0.25, 0.75}},
		{"default weight", []model.Track{tr("a"), weighted("b", 2), tr("c")}, []float64{0.25, 0.5, 0.25}},
		{"zero total", []model.Track{weighted("a", 0), weighted("b", 0)}, []float64{1, 0}},
		{"zero weight in the middle", []model.Track{weighted("a", 1), weighted("b", 0), weighted("c", 1)}, []float64{0.5, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := engine.Distribution(tt.candidates)
			got := make([]float64, len(shares))
			for i, s := range shares {
				got[i] = s.Probability
			}
			approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Distribution mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistributionMatchesSelect(t *testing.T) {
	// negative weights are passed through untouched; the exact shares must still agree with sampling
	candidates := []model.Track{weighted("a", 2), weighted("b", -1), weighted("c", 1.5), tr("d")}
	shares := engine.Distribution(candidates)

	src := engine.NewSeededSource(99)
	counts := map[string]int{}
	const trials = 20000
	for i := 0; i < trials; i++ {
		got, _, _ := engine.Select(candidates, src)
		counts[got.URI]++
	}

	sum := 0.0
	for _, s := range shares {
		sum += s.Probability
		observed := float64(counts[s.Track.URI]) / trials
		if math.Abs(observed-s.Probability) > 0.02 {
			t.Errorf("%s: observed %.3f, expected %.3f", s.Track.URI, observed, s.Probability)
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("shares sum to %v", sum)
	}
}
