package engine

import (
	"moodtune/internal/model"
)

// Resolve returns the playable tracks listed for (food, mood), in catalog order.
// Unknown foods and moods yield an empty result, never an error.
func Resolve(catalog model.Catalog, food, mood string) []model.Track {
	entry, ok := catalog[food]
	if !ok {
		return nil
	}
	tracks := entry.Music[mood]

	candidates := make([]model.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Playable() {
			candidates = append(candidates, t)
		}
	}
	return candidates
}
