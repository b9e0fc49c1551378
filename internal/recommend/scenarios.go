package recommend

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/jobfit-engine/internal/types"
)

// Scenario preset names.
const (
	ScenarioBalanced        = "balanced"
	ScenarioSkillsFirst     = "skills-first"
	ScenarioSalaryFirst     = "salary-first"
	ScenarioExperienceFirst = "experience-first"
)

// scenarioWeights holds the predefined weight presets. Each vector sums to
// 1.0.
var scenarioWeights = map[string]types.WeightVector{
	ScenarioBalanced: DefaultScenarioWeights(),
	ScenarioSkillsFirst: {
		Skills:     0.45,
		Experience: 0.20,
		Salary:     0.10,
		Education:  0.10,
		Location:   0.10,
		Industry:   0.05,
	},
	ScenarioSalaryFirst: {
		Salary:     0.40,
		Skills:     0.20,
		Experience: 0.15,
		Education:  0.05,
		Location:   0.10,
		Industry:   0.10,
	},
	ScenarioExperienceFirst: {
		Experience: 0.45,
		Skills:     0.25,
		Salary:     0.10,
		Education:  0.10,
		Location:   0.05,
		Industry:   0.05,
	},
}

// DefaultScenarioWeights returns the balanced preset, which equals the
// engine's default weight vector.
func DefaultScenarioWeights() types.WeightVector {
	return types.DefaultWeights()
}

// ScenarioNames returns the preset names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarioWeights))
	for name := range scenarioWeights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScenarioRecommendations re-runs the ranking pipeline once per weight
// preset against the same pool and criteria. Each scenario is computed
// independently with a copy of the preset, leaving the defaults untouched.
func (e *Engine) ScenarioRecommendations(ctx context.Context, criteria types.MatchCriteria, jobs []types.Job) (map[string][]types.Match, error) {
	results := make(map[string][]types.Match, len(scenarioWeights))

	for _, name := range ScenarioNames() {
		weights := scenarioWeights[name]
		cfg := types.DefaultRecommendationConfig()
		cfg.Weights = &weights

		matches, err := e.GenerateRecommendations(ctx, criteria, jobs, cfg)
		if err != nil {
			return nil, err
		}

		e.logger.Info("scenario computed",
			zap.String("scenario", name),
			zap.Int("matches", len(matches)),
		)
		results[name] = matches
	}

	return results, nil
}
