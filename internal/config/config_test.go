package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfit-engine/internal/types"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"criteria": "criteria.json",
		"jobs": "jobs.json",
		"out": "out/recommendations.json",
		"max_recommendations": 5,
		"min_fit_score": 40,
		"min_confidence": 0.3,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "criteria.json", cfg.Criteria)
	assert.Equal(t, "jobs.json", cfg.Jobs)
	assert.Equal(t, "out/recommendations.json", cfg.Out)
	assert.Equal(t, 5, cfg.MaxRecommendations)
	assert.Equal(t, 40.0, cfg.MinFitScore)
	assert.Equal(t, 0.3, cfg.MinConfidence)
	assert.True(t, cfg.Verbose)
	assert.Nil(t, cfg.Weights)
}

func TestLoadConfig_WithWeights(t *testing.T) {
	path := writeTempConfig(t, `{
		"weights": {
			"skills": 0.45,
			"experience": 0.20,
			"education": 0.10,
			"location": 0.10,
			"salary": 0.10,
			"industry": 0.05
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.45, cfg.Weights.Skills)
	assert.NoError(t, cfg.Weights.Validate())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"max_recommendations": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"valid thresholds", Config{MaxRecommendations: 10, MinFitScore: 50, MinConfidence: 0.5}, false},
		{"negative max recommendations", Config{MaxRecommendations: -1}, true},
		{"fit floor above 100", Config{MinFitScore: 101}, true},
		{"negative fit floor", Config{MinFitScore: -0.5}, true},
		{"confidence floor above 1", Config{MinConfidence: 1.1}, true},
		{"bad weights", Config{Weights: &types.WeightVector{Skills: 0.9}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_RecommendationConfig_Defaults(t *testing.T) {
	cfg := Config{}

	rec := cfg.RecommendationConfig()

	assert.Equal(t, types.DefaultRecommendationConfig().MaxRecommendations, rec.MaxRecommendations)
	assert.Equal(t, 0.0, rec.MinFitScore)
	assert.Equal(t, 0.0, rec.MinConfidence)
	assert.Nil(t, rec.Weights)
	assert.NoError(t, rec.Validate())
}

func TestConfig_RecommendationConfig_Overrides(t *testing.T) {
	weights := types.DefaultWeights()
	cfg := Config{
		MaxRecommendations: 3,
		MinFitScore:        60,
		MinConfidence:      0.4,
		Weights:            &weights,
	}

	rec := cfg.RecommendationConfig()

	assert.Equal(t, 3, rec.MaxRecommendations)
	assert.Equal(t, 60.0, rec.MinFitScore)
	assert.Equal(t, 0.4, rec.MinConfidence)
	assert.Equal(t, &weights, rec.Weights)
}
