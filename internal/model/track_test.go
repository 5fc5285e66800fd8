package model_test

import (
	"math"
	"testing"

	"moodtune/internal/model"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func boolPtr(b bool) *bool { return &b }

func TestTrackUnmarshalJSON_Lenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.Track
	}{
		{
			name: "full record",
			in:   `{"uri":"audio/a.mp3","title":"A","artist":"X","rank":2,"weight":0.5,"instrumental":true}`,
			want: model.Track{URI: "audio/a.mp3", Title: "A", Artist: "X", Rank: model.Num(2), Weight: model.Num(0.5), Instrumental: boolPtr(true)},
		},
		{
			name: "rank as string is unranked",
			in:   `{"uri":"b","rank":"1"}`,
			want: model.Track{URI: "b"},
		},
		{
			name: "weight as object is absent",
			in:   `{"uri":"b","weight":{"v":3}}`,
			want: model.Track{URI: "b"},
		},
		{
			name: "numeric uri keeps its text",
			in:   `{"uri":123}`,
			want: model.Track{URI: "123"},
		},
		{
			name: "missing uri",
			in:   `{"title":"no link"}`,
			want: model.Track{Title: "no link"},
		},
		{
			name: "null instrumental",
			in:   `{"uri":"c","instrumental":null}`,
			want: model.Track{URI: "c"},
		},
		{
			name: "not an object",
			in:   `"just a string"`,
			want: model.Track{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Track
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("track mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrackListWithMalformedElements(t *testing.T) {
	in := `[{"uri":"a"}, null, 7, {"uri":"  "}, {"uri":"b","rank":1}]`
	var got []model.Track
	if err := json.Unmarshal([]byte(in), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	playable := 0
	for _, tr := range got {
		if tr.Playable() {
			playable++
		}
	}
	if playable != 2 {
		t.Errorf("playable = %d, want 2", playable)
	}
}

func TestTrackUnmarshalYAML_NonFinite(t *testing.T) {
	in := `
- uri: a.mp3
  rank: .nan
  weight: .inf
- uri: b.mp3
  rank: 3
  weight: "heavy"
- uri: [not, a, string]
`
	var got []model.Track
	if err := yaml.Unmarshal([]byte(in), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Ranked() {
		t.Error("NaN rank counted as ranked")
	}
	if !got[0].Rank.Valid || !math.IsNaN(got[0].Rank.Value) {
		t.Errorf("rank = %+v, want valid NaN", got[0].Rank)
	}
	if w := got[0].EffectiveWeight(); w != 1.0 {
		t.Errorf("infinite weight: EffectiveWeight = %v, want 1", w)
	}
	if !got[1].Ranked() || got[1].Rank.Value != 3 {
		t.Errorf("rank = %+v, want 3", got[1].Rank)
	}
	if got[1].Weight.Valid {
		t.Errorf("string weight decoded as %+v", got[1].Weight)
	}
	if got[2].Playable() {
		t.Errorf("sequence uri decoded as %q", got[2].URI)
	}
}

func TestTrackEffectiveWeight(t *testing.T) {
	tests := []struct {
		weight model.Number
		want   float64
	}{
		{model.Number{}, 1.0},
		{model.Num(0), 0},
		{model.Num(2.5), 2.5},
		{model.Num(math.NaN()), 1.0},
		{model.Num(math.Inf(-1)), 1.0},
	}
	for _, tt := range tests {
		if got := (model.Track{Weight: tt.weight}).EffectiveWeight(); got != tt.want {
			t.Errorf("EffectiveWeight(%+v) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestTrackMarshalJSON_DropsNonFinite(t *testing.T) {
	tr := model.Track{URI: "x", Rank: model.Num(math.Inf(1)), Weight: model.Num(2)}
	out, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `{"uri":"x","weight":2}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}
