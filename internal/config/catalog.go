package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
)

type catalogFile struct {
	Achievements []entity.CatalogEntry `yaml:"achievements"`
}

// LoadCatalog reads the achievement seed file
func LoadCatalog(path string) ([]entity.CatalogEntry, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievement catalog: %w", err)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes catalog YAML
func ParseCatalog(data []byte) ([]entity.CatalogEntry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal achievement catalog: %w", err)
	}
	return file.Achievements, nil
}
