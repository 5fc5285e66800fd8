package model

import (
	"sort"
)

// Catalog maps a food name to its entry.
type Catalog map[string]FoodEntry

type FoodEntry struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Taste string `json:"taste,omitempty" yaml:"taste,omitempty"`

	// Options are taste tags offered to the user. Selection ignores them.
	Options []string `json:"options" yaml:"options"`

	// Music maps a mood to its ordered track list.
	Music map[string][]Track `json:"music" yaml:"music"`
}

// Foods returns the food names in display order.
func (c Catalog) Foods() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Moods returns the moods a food has a track list for, in display order.
func (e FoodEntry) Moods() []string {
	moods := make([]string, 0, len(e.Music))
	for mood := range e.Music {
		moods = append(moods, mood)
	}
	sort.Strings(moods)
	return moods
}

// HasOption reports whether taste is one of the entry's selectable tastes.
func (e FoodEntry) HasOption(taste string) bool {
	for _, o := range e.Options {
		if o == taste {
			return true
		}
	}
	return false
}
