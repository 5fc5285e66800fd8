package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"moodtune/internal/model"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSONSource reads the catalog document the web player consumed (data.json).
type JSONSource struct{}

func (s *JSONSource) Load(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog json: %w", err)
	}
	return cat, nil
}

// YAMLSource reads the same document shape written as YAML.
type YAMLSource struct{}

func (s *YAMLSource) Load(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat model.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	return cat, nil
}

// Write encodes cat as YAML for .yaml/.yml paths and as indented JSON otherwise.
func Write(cat model.Catalog, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cat)
	default:
		data, err = json.MarshalIndent(cat, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func init() {
	Register("json", func() Source { return &JSONSource{} })
	Register("yaml", func() Source { return &YAMLSource{} })
}
