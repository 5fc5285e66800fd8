// Package vocab normalizes the open taste and mood vocabularies and renders
// display labels for them. Unknown words pass through, lower-cased or verbatim.
package vocab

import (
	"strings"
)

// Canonical moods, in the order the selection UI offers them.
var Moods = []string{"relaxation", "excitement", "focus", "calm"}

// Canonical tastes.
var Tastes = []string{"sweet", "sour", "bitter", "salty", "spicy", "umami"}

var tasteAliases = map[string]string{
	"甘味": "sweet", "あまい": "sweet", "sweet": "sweet",
	"酸味": "sour", "すっぱい": "sour", "sour": "sour",
	"苦味": "bitter", "にがい": "bitter", "bitter": "bitter",
	"塩味": "salty", "しょっぱい": "salty", "salty": "salty",
	"辛味": "spicy", "からい": "spicy", "spicy": "spicy",
	"旨味": "umami", "うまみ": "umami", "umami": "umami",
}

var moodAliases = map[string]string{
	"リラックス": "relaxation", "relax": "relaxation", "relaxation": "relaxation",
	"元気": "excitement", "genki": "excitement", "excitement": "excitement",
	"集中": "focus", "shuchu": "focus", "focus": "focus",
	"落ち着き": "calm", "ochitsuki": "calm", "calm": "calm",
}

var labels = map[string]map[string]string{
	"ja": {
		"sweet": "甘味", "sour": "酸味", "bitter": "苦味", "salty": "塩味", "spicy": "辛味", "umami": "旨味",
		"relaxation": "リラックス", "excitement": "元気", "focus": "集中", "calm": "落ち着き",
	},
	"en": {
		"sweet": "Sweet", "sour": "Sour", "bitter": "Bitter", "salty": "Salty", "spicy": "Spicy", "umami": "Umami",
		"relaxation": "Relaxation", "excitement": "Excitement", "focus": "Focus", "calm": "Calm",
	},
}

// NormalizeTaste maps a raw taste word to its canonical key.
func NormalizeTaste(s string) string {
	return normalize(tasteAliases, s)
}

// NormalizeMood maps a raw mood word to its canonical key.
func NormalizeMood(s string) string {
	return normalize(moodAliases, s)
}

func normalize(aliases map[string]string, s string) string {
	s = strings.TrimSpace(s)
	if key, ok := aliases[s]; ok {
		return key
	}
	return strings.ToLower(s)
}

// TasteLabel returns the display label of a taste key in lang.
func TasteLabel(lang, taste string) string {
	return label(lang, taste)
}

// MoodLabel returns the display label of a mood key in lang.
func MoodLabel(lang, mood string) string {
	return label(lang, mood)
}

func label(lang, key string) string {
	if l, ok := labels[lang][key]; ok {
		return l
	}
	return key
}

// Languages lists the supported label languages.
func Languages() []string {
	return []string{"en", "ja"}
}

// Supported reports whether lang has a label table.
func Supported(lang string) bool {
	_, ok := labels[lang]
	return ok
}
