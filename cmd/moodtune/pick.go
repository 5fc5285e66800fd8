package main

import (
	"fmt"
	"os"

	"moodtune/internal/catalog"
	"moodtune/internal/config"
	"moodtune/internal/engine"
	"moodtune/internal/logger"
	"moodtune/internal/model"
	"moodtune/internal/playback"
	"moodtune/internal/vocab"

	"github.com/spf13/cobra"
)

var (
	flagTaste  string
	flagSeed   uint64
	flagPlayer string
)

var noTrackNotice = map[string]string{
	"ja": "この組み合わせの曲が未登録です。カタログに曲を追加してください。",
	"en": "No track is registered for this combination yet. Add one to the catalog.",
}

var pickCmd = &cobra.Command{
	Use:   "pick <food> <mood>",
	Short: "Recommend one track for a food and a mood",
	Long:  `Resolve the catalog entries for the food and mood, pick one track (lowest rank first, otherwise weighted at random) and hand it to the configured player.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			cfg.Selection.Seed = flagSeed
		}
		if flagPlayer != "" {
			cfg.Playback.Player = flagPlayer
		}

		player, err := playback.Get(cfg.Playback.Player)
		if err != nil {
			logger.Log.Fatalf("Error selecting player: %v", err)
		}

		cat := loadCatalog(cfg)
		food := args[0]
		mood := moodKey(cat, food, args[1])

		if flagTaste != "" {
			taste := vocab.NormalizeTaste(flagTaste)
			if entry, ok := cat[food]; ok && !entry.HasOption(taste) {
				logger.Log.Fatalf("Taste %q is not offered for %s (options: %v)", flagTaste, food, entry.Options)
			}
			logger.Log.Infof("🍽️  Taste: %s", vocab.TasteLabel(cfg.Labels.Language, taste))
		}

		res := engine.Recommend(cat, food, mood, newSource(cfg.Selection.Seed))
		logger.Log.Debugf("Outcome %s after %d candidates (phase %s)", res.Outcome, res.Candidates, res.Phase)

		if !res.Selected() {
			notice, ok := noTrackNotice[cfg.Labels.Language]
			if !ok {
				notice = noTrackNotice["en"]
			}
			fmt.Println(notice)
			return
		}

		router := playback.NewRouter(cfg.Playback.LocalPrefixes, cfg.Playback.LocalExtensions)
		a := playback.Announcement{
			Food:      food,
			Mood:      mood,
			MoodLabel: vocab.MoodLabel(cfg.Labels.Language, mood),
			Decision:  router.Route(res.Track),
		}
		if err := player.Play(os.Stdout, a); err != nil {
			logger.Log.Fatalf("Playback failed: %v", err)
		}
	},
}

// Helpers

func loadCatalog(cfg *config.Config) model.Catalog {
	cat, err := catalog.Load(cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		logger.Log.Fatalf("Error loading catalog: %v", err)
	}
	return cat
}

// moodKey keeps raw when the food lists it verbatim and otherwise maps it
// through the mood aliases, so "落ち着き" and "Calm" both reach "calm".
func moodKey(cat model.Catalog, food, raw string) string {
	if entry, ok := cat[food]; ok {
		if _, ok := entry.Music[raw]; ok {
			return raw
		}
	}
	return vocab.NormalizeMood(raw)
}

func newSource(seed uint64) engine.RandomSource {
	if seed == 0 {
		return engine.GlobalSource()
	}
	return engine.NewSeededSource(seed)
}

func init() {
	pickCmd.Flags().StringVar(&flagTaste, "taste", "", "Taste to serve the food with; must be one of its options")
	pickCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Seed for the random draw (0 uses the global generator)")
	pickCmd.Flags().StringVar(&flagPlayer, "player", "", "Player to announce with (stdout, json)")
	rootCmd.AddCommand(pickCmd)
}
