// Package catalog acquires the food/mood/track catalog from storage. Every source
// yields the same in-memory model.Catalog; nothing here writes back to a source.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"moodtune/internal/logger"
	"moodtune/internal/model"
)

var ErrUnknownSource = errors.New("unknown catalog source")

type Source interface {
	Load(path string) (model.Catalog, error)
}

type Factory func() Source

var registry = make(map[string]Factory)

func Register(name string, factory Factory) {
	registry[name] = factory
}

func Get(name string) (Source, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s' (available: %s)", ErrUnknownSource, name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// Names lists the registered sources.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect infers a source name from the file extension, defaulting to json.
func Detect(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	default:
		return "json"
	}
}

// Load reads the catalog at path with the named source, or the detected one when name is empty.
func Load(name, path string) (model.Catalog, error) {
	if name == "" {
		name = Detect(path)
	}
	src, err := Get(name)
	if err != nil {
		return nil, err
	}

	logger.Log.Debugf("Loading catalog from %s (%s)", path, name)
	cat, err := src.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog %s: %w", name, path, err)
	}
	if cat == nil {
		cat = model.Catalog{}
	}
	logger.Log.Debugf("Catalog loaded: %d foods", len(cat))
	return cat, nil
}
