package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentlint/agentlint/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".agentlint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .agentlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// fileConfig mirrors domain.Config with pointer fields so an absent key is
// distinguishable from an explicit zero or false.
type fileConfig struct {
	MinOutputLength        *int  `yaml:"min_output_length"`
	RequireCodeExamples    *bool `yaml:"require_code_examples"`
	RequireRecommendations *bool `yaml:"require_recommendations"`
	CheckPlaceholders      *bool `yaml:"check_placeholders"`
}

// Load reads .agentlint.yaml from projectPath. Returns DefaultConfig if the
// file does not exist; explicit keys overlay the defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if fc.MinOutputLength != nil {
		if *fc.MinOutputLength < 0 {
			return domain.Config{}, fmt.Errorf("invalid %s: min_output_length must be >= 0", fileName)
		}
		cfg.MinOutputLength = *fc.MinOutputLength
	}
	if fc.RequireCodeExamples != nil {
		cfg.RequireCodeExamples = *fc.RequireCodeExamples
	}
	if fc.RequireRecommendations != nil {
		cfg.RequireRecommendations = *fc.RequireRecommendations
	}
	if fc.CheckPlaceholders != nil {
		cfg.CheckPlaceholders = *fc.CheckPlaceholders
	}

	return cfg, nil
}
