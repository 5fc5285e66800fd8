package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"moodtune/internal/catalog"
	"moodtune/internal/config"
	"moodtune/internal/engine"
	"moodtune/internal/logger"
	"moodtune/internal/model"
	"moodtune/internal/vocab"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [food]",
	Short: "Show catalog contents and selection odds",
	Long:  `Displays a dashboard of the loaded catalog: foods, their tastes and options, and playable candidates per mood. With a food argument, lists that food's tracks together with the chance each one has of being picked.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		cat := loadCatalog(cfg)

		if len(args) == 1 {
			entry, ok := cat[args[0]]
			if !ok {
				logger.Log.Errorf("❌ Food %q is not in the catalog.", args[0])
				return
			}
			printFood(cfg, cat, args[0], entry)
			return
		}
		printDashboard(cfg, cat)
	},
}

func printDashboard(cfg *config.Config, cat model.Catalog) {
	lang := cfg.Labels.Language
	source := cfg.Catalog.Source
	if source == "" {
		source = catalog.Detect(cfg.Catalog.Path)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Println("\n📊 \033[1mMOODTUNE CATALOG\033[0m")
	fmt.Println("────────────────────────────────────────")

	fmt.Fprintln(w, "\033[1;36m[ SOURCE ]\033[0m\t")
	fmt.Fprintf(w, "  Path:\t%s\n", cfg.Catalog.Path)
	fmt.Fprintf(w, "  Format:\t%s\n", source)
	if fi, err := os.Stat(cfg.Catalog.Path); err == nil {
		fmt.Fprintf(w, "  Size:\t%s\n", humanize.Bytes(uint64(fi.Size())))
	}
	fmt.Fprintf(w, "  Foods:\t%d\n", len(cat))
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "\033[1;36m[ FOODS ]\033[0m\t")
	if len(cat) == 0 {
		fmt.Fprintln(w, "  (No foods registered)")
	} else {
		header := []string{"  Food", "Taste", "Options"}
		for _, m := range vocab.Moods {
			header = append(header, vocab.MoodLabel(lang, m))
		}
		fmt.Fprintln(w, strings.Join(header, "\t"))

		for _, name := range cat.Foods() {
			entry := cat[name]
			row := []string{"  " + name, tasteLabel(lang, entry.Taste), optionLabels(lang, entry.Options)}
			for _, m := range vocab.Moods {
				row = append(row, fmt.Sprint(len(engine.Resolve(cat, name, m))))
			}
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
	}

	w.Flush()
	fmt.Println("")
}

func printFood(cfg *config.Config, cat model.Catalog, food string, entry model.FoodEntry) {
	lang := cfg.Labels.Language
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Printf("\n🍽️  \033[1m%s\033[0m  taste: %s  options: %s\n", food, tasteLabel(lang, entry.Taste), optionLabels(lang, entry.Options))
	fmt.Println("────────────────────────────────────────")

	for _, mood := range entry.Moods() {
		fmt.Fprintf(w, "\033[1;36m[ %s ]\033[0m\t\n", vocab.MoodLabel(lang, mood))

		shares := engine.Distribution(engine.Resolve(cat, food, mood))
		if len(shares) == 0 {
			fmt.Fprintln(w, "  (No playable tracks)")
			fmt.Fprintln(w, "\t")
			continue
		}

		fmt.Fprintln(w, "  Title\tURI\tRank\tWeight\tChance")
		for _, s := range shares {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%.1f%%\n",
				s.Track.DisplayTitle(), s.Track.URI, formatRank(s.Track), formatWeight(s.Track), s.Probability*100)
		}
		fmt.Fprintln(w, "\t")
	}

	w.Flush()
}

// Helpers

func tasteLabel(lang, taste string) string {
	if taste == "" {
		return "-"
	}
	return vocab.TasteLabel(lang, taste)
}

func optionLabels(lang string, options []string) string {
	if len(options) == 0 {
		return "-"
	}
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = vocab.TasteLabel(lang, o)
	}
	return strings.Join(labels, ", ")
}

func formatRank(t model.Track) string {
	if !t.Ranked() {
		return "-"
	}
	return fmt.Sprintf("%g", t.Rank.Value)
}

func formatWeight(t model.Track) string {
	if !t.Weight.Finite() {
		return fmt.Sprintf("%g (default)", t.EffectiveWeight())
	}
	return fmt.Sprintf("%g", t.Weight.Value)
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
