package catalog

import (
	"fmt"
	"math"
	"os"
	"slices"
	"sort"
	"strings"

	"moodtune/internal/db"
	"moodtune/internal/logger"
	"moodtune/internal/model"
	"moodtune/internal/vocab"
)

// SQLiteSource reads the tabular catalog: one table of foods with their default
// and optional tastes, one table of tracks keyed by (taste, mood). Each food
// receives the track lists of its default taste.
type SQLiteSource struct{}

func (s *SQLiteSource) Load(path string) (model.Catalog, error) {
	// sqlite would silently create a missing file
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	database, err := db.Connect(path)
	if err != nil {
		return nil, err
	}
	defer db.Close(database)

	var foods []model.FoodRow
	if err := database.Order("id").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to read foods: %w", err)
	}

	var tracks []model.TrackRow
	if err := database.Order("id").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("failed to read taste_tracks: %w", err)
	}

	logger.Log.Debugf("Read %d food rows and %d track rows", len(foods), len(tracks))
	return Assemble(foods, tracks), nil
}

// Assemble builds a catalog from table rows, in row order.
//
// Tastes and moods are normalized. Track rows missing a taste, mood, title or uri
// are dropped. When any row is ranked, rows are ordered by (taste, mood, rank)
// with unranked rows last; otherwise by (taste, mood) keeping row order.
// Every food starts with an empty list for each canonical mood.
func Assemble(foods []model.FoodRow, tracks []model.TrackRow) model.Catalog {
	byTaste := groupTracks(tracks)

	cat := model.Catalog{}
	for _, r := range foods {
		name := strings.TrimSpace(r.FoodName)
		if name == "" {
			continue
		}

		entry, ok := cat[name]
		if !ok {
			entry = model.FoodEntry{
				ID:      strings.TrimSpace(r.FoodID),
				Taste:   vocab.NormalizeTaste(r.DefaultTaste),
				Options: []string{},
				Music:   make(map[string][]model.Track, len(vocab.Moods)),
			}
			for _, mood := range vocab.Moods {
				entry.Music[mood] = []model.Track{}
			}
		}

		if opt := strings.TrimSpace(r.OptionTaste); opt != "" {
			entry.Options = append(entry.Options, vocab.NormalizeTaste(opt))
		}
		cat[name] = entry
	}

	for _, entry := range cat {
		for mood, list := range byTaste[entry.Taste] {
			entry.Music[mood] = slices.Clone(list)
		}
	}
	return cat
}

type trackRow struct {
	taste, mood string
	rank        *float64
	track       model.Track
}

func groupTracks(rows []model.TrackRow) map[string]map[string][]model.Track {
	var kept []trackRow
	anyRanked := false

	for _, r := range rows {
		tr := trackRow{
			taste: vocab.NormalizeTaste(r.Taste),
			mood:  vocab.NormalizeMood(r.Mood),
			rank:  finite(r.Rank),
			track: model.Track{
				URI:          strings.TrimSpace(r.URI),
				Title:        strings.TrimSpace(r.SongTitle),
				Artist:       strings.TrimSpace(r.Artist),
				Weight:       model.Num(1.0),
				Instrumental: r.Instrumental,
			},
		}
		if tr.taste == "" || tr.mood == "" || tr.track.Title == "" || tr.track.URI == "" {
			continue
		}
		if w := finite(r.Weight); w != nil {
			tr.track.Weight = model.Num(*w)
		}
		if tr.rank != nil {
			// ranks are whole numbers in the document
			tr.track.Rank = model.Num(math.Trunc(*tr.rank))
			anyRanked = true
		}
		kept = append(kept, tr)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.taste != b.taste {
			return a.taste < b.taste
		}
		if a.mood != b.mood {
			return a.mood < b.mood
		}
		if !anyRanked {
			return false
		}
		switch {
		case a.rank == nil:
			return false
		case b.rank == nil:
			return true
		default:
			return *a.rank < *b.rank
		}
	})

	grouped := make(map[string]map[string][]model.Track)
	for _, tr := range kept {
		if grouped[tr.taste] == nil {
			grouped[tr.taste] = make(map[string][]model.Track)
		}
		grouped[tr.taste][tr.mood] = append(grouped[tr.taste][tr.mood], tr.track)
	}
	return grouped
}

func finite(p *float64) *float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	return p
}

func init() {
	Register("sqlite", func() Source { return &SQLiteSource{} })
}
