package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"moodtune/internal/vocab"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "moodtune.yaml"

type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Selection SelectionConfig `yaml:"selection"`
	Playback  PlaybackConfig  `yaml:"playback"`
	Labels    LabelsConfig    `yaml:"labels"`
	Simulate  SimulateConfig  `yaml:"simulate"`
}

type CatalogConfig struct {
	Source string `yaml:"source"` // json, yaml or sqlite; inferred from Path when empty
	Path   string `yaml:"path"`
}

type SelectionConfig struct {
	Seed uint64 `yaml:"seed"` // 0 draws from the shared global generator
}

type PlaybackConfig struct {
	Player          string   `yaml:"player"`
	LocalPrefixes   []string `yaml:"local_prefixes"`
	LocalExtensions []string `yaml:"local_extensions"`
}

type LabelsConfig struct {
	Language string `yaml:"language"`
}

type SimulateConfig struct {
	Trials  int `yaml:"trials"`
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Path: "data.json"},
		Playback: PlaybackConfig{
			Player:          "stdout",
			LocalPrefixes:   []string{"audio/"},
			LocalExtensions: []string{".mp3", ".m4a", ".wav", ".ogg"},
		},
		Labels:   LabelsConfig{Language: "ja"},
		Simulate: SimulateConfig{Trials: 10000, Workers: 4},
	}
}

// Load reads path over the defaults. An empty path means DefaultPath, which
// may be missing; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills zero values back to defaults and rejects unusable settings.
func (c *Config) Validate() error {
	def := Default()

	if c.Catalog.Path == "" {
		c.Catalog.Path = def.Catalog.Path
	}
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))

	if c.Playback.Player == "" {
		c.Playback.Player = def.Playback.Player
	}

	c.Labels.Language = strings.ToLower(c.Labels.Language)
	if c.Labels.Language == "" {
		c.Labels.Language = def.Labels.Language
	}
	if !vocab.Supported(c.Labels.Language) {
		return fmt.Errorf("unsupported label language %q (want one of %v)", c.Labels.Language, vocab.Languages())
	}

	if c.Simulate.Trials <= 0 {
		c.Simulate.Trials = def.Simulate.Trials
	}
	if c.Simulate.Workers <= 0 {
		c.Simulate.Workers = def.Simulate.Workers
	}

	for _, ext := range c.Playback.LocalExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("local extension %q must start with a dot", ext)
		}
	}
	return nil
}
