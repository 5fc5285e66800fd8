package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"

	"moodtune/internal/config"
	"moodtune/internal/engine"
	"moodtune/internal/logger"
	"moodtune/internal/metrics"
	"moodtune/internal/model"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	flagTrials  int
	flagWorkers int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <food> <mood>",
	Short: "Repeat the selection many times and compare observed picks with the expected odds",
	Long:  `Run the selection for one food and mood repeatedly across a worker pool. Each worker draws from its own seeded source; the report shows how often every candidate was picked next to its exact probability.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		if flagTrials > 0 {
			cfg.Simulate.Trials = flagTrials
		}
		if flagWorkers > 0 {
			cfg.Simulate.Workers = flagWorkers
		}
		if cmd.Flags().Changed("seed") {
			cfg.Selection.Seed = flagSeed
		}

		cat := loadCatalog(cfg)
		food := args[0]
		mood := moodKey(cat, food, args[1])

		candidates := engine.Resolve(cat, food, mood)
		if len(candidates) == 0 {
			logger.Log.Error("❌ No playable candidates for this combination. Exiting.")
			return
		}

		seed := cfg.Selection.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		logger.Log.Infof("🎲 Simulating %d trials over %d candidates (%d workers, seed %d)...",
			cfg.Simulate.Trials, len(candidates), cfg.Simulate.Workers, seed)

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer cancel()

		bar := progressbar.NewOptions(cfg.Simulate.Trials,
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan]Sampling...[reset]"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)

		collector := metrics.New()
		err = runTrials(ctx, candidates, cfg.Simulate, seed, collector, func() { _ = bar.Add(1) })
		_ = bar.Finish()
		if err != nil {
			logger.Log.Warnf("⚠️  Simulation stopped early: %v", err)
		}

		collector.PrintReport(os.Stdout, engine.Distribution(candidates))
	},
}

// runTrials splits cfg.Trials across cfg.Workers goroutines. Worker i draws
// from a source seeded with seed+i, so a fixed seed and worker count reproduce
// the same counts.
func runTrials(ctx context.Context, candidates []model.Track, cfg config.SimulateConfig, seed uint64, collector *metrics.Collector, tick func()) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > cfg.Trials && cfg.Trials > 0 {
		workers = cfg.Trials
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		n := cfg.Trials / workers
		if i < cfg.Trials%workers {
			n++
		}
		src := engine.NewSeededSource(seed + uint64(i))

		g.Go(func() error {
			for j := 0; j < n; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				collector.Record(engine.Choose(candidates, src))
				if tick != nil {
					tick()
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func init() {
	simulateCmd.Flags().IntVar(&flagTrials, "trials", 0, "Number of selections to run (default from config)")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Number of concurrent workers (default from config)")
	simulateCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Base seed; worker i uses seed+i (0 picks one at random)")
	rootCmd.AddCommand(simulateCmd)
}
