package main

import (
	"moodtune/internal/catalog"
	"moodtune/internal/config"
	"moodtune/internal/logger"

	"github.com/spf13/cobra"
)

var flagFrom string

var convertCmd = &cobra.Command{
	Use:   "convert <out>",
	Short: "Export the catalog as a JSON or YAML document",
	Long:  `Load the configured catalog source (or --from) and write it to out. Files ending in .yaml or .yml are written as YAML, anything else as JSON. Converting a sqlite catalog produces the document the pick command reads.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		if flagFrom != "" {
			cfg.Catalog.Path = flagFrom
			cfg.Catalog.Source = ""
		}

		cat := loadCatalog(cfg)
		if len(cat) == 0 {
			logger.Log.Warn("Catalog is empty; writing an empty document.")
		}

		if err := catalog.Write(cat, args[0]); err != nil {
			logger.Log.Fatalf("Failed to write catalog: %v", err)
		}
		logger.Log.Infof("✅ Wrote %d foods to %s", len(cat), args[0])
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagFrom, "from", "", "Catalog file to read instead of the configured one")
	rootCmd.AddCommand(convertCmd)
}
