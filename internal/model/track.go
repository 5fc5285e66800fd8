package model

import (
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Track is a playable candidate. Raw catalog data is not trusted: URI may be blank
// and Rank/Weight may be missing or non-finite.
type Track struct {
	URI          string
	Title        string
	Artist       string
	Rank         Number
	Weight       Number
	Instrumental *bool
}

// Playable reports whether the track has a non-blank URI.
func (t Track) Playable() bool {
	return strings.TrimSpace(t.URI) != ""
}

// Ranked reports whether the track carries a usable priority.
func (t Track) Ranked() bool {
	return t.Rank.Finite()
}

// EffectiveWeight is the sampling weight, 1.0 unless a finite weight is set.
func (t Track) EffectiveWeight() float64 {
	if t.Weight.Finite() {
		return t.Weight.Value
	}
	return 1.0
}

// DisplayTitle falls back to a placeholder for untitled tracks.
func (t Track) DisplayTitle() string {
	if t.Title == "" {
		return "(untitled)"
	}
	return t.Title
}

// trackDoc is the on-disk shape of a track.
type trackDoc struct {
	URI          string   `json:"uri" yaml:"uri"`
	Title        string   `json:"title,omitempty" yaml:"title,omitempty"`
	Artist       string   `json:"artist,omitempty" yaml:"artist,omitempty"`
	Rank         *float64 `json:"rank,omitempty" yaml:"rank,omitempty"`
	Weight       *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Instrumental *bool    `json:"instrumental,omitempty" yaml:"instrumental,omitempty"`
}

func (t Track) doc() trackDoc {
	return trackDoc{
		URI:          t.URI,
		Title:        t.Title,
		Artist:       t.Artist,
		Rank:         t.Rank.Ptr(),
		Weight:       t.Weight.Ptr(),
		Instrumental: t.Instrumental,
	}
}

func (t Track) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.doc())
}

func (t Track) MarshalYAML() (interface{}, error) {
	return t.doc(), nil
}

// UnmarshalJSON decodes field by field so one malformed value cannot fail the
// whole catalog. A non-object element becomes a blank (unplayable) track.
func (t *Track) UnmarshalJSON(data []byte) error {
	var raw struct {
		URI          json.RawMessage `json:"uri"`
		Title        json.RawMessage `json:"title"`
		Artist       json.RawMessage `json:"artist"`
		Rank         Number          `json:"rank"`
		Weight       Number          `json:"weight"`
		Instrumental json.RawMessage `json:"instrumental"`
	}
	*t = Track{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	t.URI = jsonText(raw.URI)
	t.Title = jsonText(raw.Title)
	t.Artist = jsonText(raw.Artist)
	t.Rank = raw.Rank
	t.Weight = raw.Weight
	var inst bool
	if len(raw.Instrumental) > 0 && string(raw.Instrumental) != "null" && json.Unmarshal(raw.Instrumental, &inst) == nil {
		t.Instrumental = &inst
	}
	return nil
}

// jsonText returns strings as-is and numbers in their literal form. Anything else is blank.
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (t *Track) UnmarshalYAML(value *yaml.Node) error {
	*t = Track{}
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "uri":
			t.URI = yamlText(val)
		case "title":
			t.Title = yamlText(val)
		case "artist":
			t.Artist = yamlText(val)
		case "rank":
			_ = t.Rank.UnmarshalYAML(val)
		case "weight":
			_ = t.Weight.UnmarshalYAML(val)
		case "instrumental":
			var inst bool
			if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!bool" && val.Decode(&inst) == nil {
				t.Instrumental = &inst
			}
		}
	}
	return nil
}

func yamlText(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode {
		return ""
	}
	switch n.ShortTag() {
	case "!!str", "!!int", "!!float":
		return n.Value
	}
	return ""
}
