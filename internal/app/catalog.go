package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ksarapp/ksar-backend/internal/service/aidtype"
)

// AidTypeCatalog is the on-disk seed file for the aid-type catalog:
//
//	aid_types:
//	  - سكن
//	  - تغذية
type AidTypeCatalog struct {
	AidTypes []string `yaml:"aid_types"`
}

// LoadAidTypeCatalog reads seed labels from a YAML file. An empty path
// yields the built-in default labels.
func LoadAidTypeCatalog(path string) ([]string, error) {
	if path == "" {
		return aidtype.DefaultLabels, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var catalog AidTypeCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(catalog.AidTypes) == 0 {
		return nil, fmt.Errorf("catalog %s: no aid_types listed", path)
	}

	return catalog.AidTypes, nil
}
