// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobfit-engine/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Criteria string `json:"criteria,omitempty"` // Path to MatchCriteria JSON file
	Jobs     string `json:"jobs,omitempty"`     // Path to job pool JSON file
	Out      string `json:"out,omitempty"`      // Path for output JSON

	// Thresholds
	MaxRecommendations int     `json:"max_recommendations,omitempty"` // Maximum matches returned
	MinFitScore        float64 `json:"min_fit_score,omitempty"`       // Fit floor (0-100)
	MinConfidence      float64 `json:"min_confidence,omitempty"`      // Confidence floor (0-1)

	// Behavior
	Weights *types.WeightVector `json:"weights,omitempty"` // Override the default dimension weights
	Verbose bool                `json:"verbose,omitempty"` // Print detailed run information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("config error: 'max_recommendations' must be non-negative")
	}
	if c.MinFitScore < 0 || c.MinFitScore > 100 {
		return fmt.Errorf("config error: 'min_fit_score' must be between 0 and 100")
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("config error: 'min_confidence' must be between 0 and 1")
	}
	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// RecommendationConfig converts the CLI configuration into an engine
// RecommendationConfig, filling unset thresholds with defaults.
func (c *Config) RecommendationConfig() types.RecommendationConfig {
	cfg := types.DefaultRecommendationConfig()
	if c.MaxRecommendations > 0 {
		cfg.MaxRecommendations = c.MaxRecommendations
	}
	cfg.MinFitScore = c.MinFitScore
	cfg.MinConfidence = c.MinConfidence
	cfg.Weights = c.Weights
	return cfg
}
