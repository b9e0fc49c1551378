// Package types provides type definitions for structured data used throughout the jobfit-engine system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// RecommendationConfig controls filtering and truncation of a
// recommendation run. Weights is optional; nil selects DefaultWeights.
type RecommendationConfig struct {
	MaxRecommendations int           `json:"max_recommendations" validate:"gt=0"`
	MinFitScore        float64       `json:"min_fit_score" validate:"gte=0,lte=100"`
	MinConfidence      float64       `json:"min_confidence" validate:"gte=0,lte=1"`
	Weights            *WeightVector `json:"weights,omitempty"`
}

// DefaultRecommendationConfig returns a permissive configuration: top ten
// matches, no fit or confidence floor.
func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{MaxRecommendations: 10}
}

// Validate rejects out-of-range thresholds before any scoring runs.
func (c *RecommendationConfig) Validate() error {
	validate := validator.New()
	if err := wrapValidatorError(validate.Struct(c)); err != nil {
		return err
	}
	if c.Weights != nil {
		return c.Weights.Validate()
	}
	return nil
}

// Insights holds aggregate statistics derived from one ranked match list.
type Insights struct {
	JobCount         int             `json:"job_count"`
	MeanFit          float64         `json:"mean_fit"`
	MedianFit        float64         `json:"median_fit"`
	MeanConfidence   float64         `json:"mean_confidence"`
	MedianConfidence float64         `json:"median_confidence"`
	ConfidenceBands  ConfidenceBands `json:"confidence_bands"`
	TopGaps          []Gap           `json:"top_gaps"`
}

// ConfidenceBands buckets matches by confidence: low (< 0.4),
// medium (0.4-0.75), high (>= 0.75).
type ConfidenceBands struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Gap counts how many matches flagged a dimension as weak.
type Gap struct {
	Dimension string `json:"dimension"`
	Count     int    `json:"count"`
}
