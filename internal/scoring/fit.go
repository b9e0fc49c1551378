package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/jobfit-engine/internal/types"
)

// Thresholds for narrative generation: dimensions at or above strong emit a
// reason, at or below weak emit an improvement.
const (
	strongThreshold = 0.75
	weakThreshold   = 0.40
)

// annotatedDimension is one of the six aggregate dimensions with its value
// and supporting evidence, used for narrative ordering.
type annotatedDimension struct {
	dimension Dimension
	value     float64
	evidence  string
}

// Score computes the FitScore for one posting under the given weights.
// Calling it twice with unmodified inputs yields an identical result.
func Score(criteria types.MatchCriteria, job types.Job, weights types.WeightVector) types.FitScore {
	return buildFitScore(ScoreDimensions(criteria, job), weights)
}

// Evaluate scores one posting and annotates it with narrative reasons and
// improvements, producing a complete Match.
func Evaluate(criteria types.MatchCriteria, job types.Job, weights types.WeightVector) types.Match {
	dimensions := ScoreDimensions(criteria, job)
	reasons, improvements := explain(dimensions)
	return types.Match{
		Job:          job,
		FitScore:     buildFitScore(dimensions, weights),
		Reasons:      reasons,
		Improvements: improvements,
	}
}

// buildFitScore folds the seven dimension scores into the six weighted
// sub-scores, the overall score, and the confidence value. Industry and job
// type share the industry slot as their mean.
func buildFitScore(dimensions map[Dimension]DimensionScore, weights types.WeightVector) types.FitScore {
	industry := (dimensions[DimensionIndustry].Value + dimensions[DimensionJobType].Value) / 2

	overall := weights.Skills*dimensions[DimensionSkills].Value +
		weights.Experience*dimensions[DimensionExperience].Value +
		weights.Education*dimensions[DimensionEducation].Value +
		weights.Location*dimensions[DimensionLocation].Value +
		weights.Salary*dimensions[DimensionSalary].Value +
		weights.Industry*industry

	informed := 0
	for _, score := range dimensions {
		if !score.LowEvidence {
			informed++
		}
	}

	return types.FitScore{
		Overall:    round2(100 * clamp01(overall)),
		Skills:     round2(100 * dimensions[DimensionSkills].Value),
		Experience: round2(100 * dimensions[DimensionExperience].Value),
		Education:  round2(100 * dimensions[DimensionEducation].Value),
		Location:   round2(100 * dimensions[DimensionLocation].Value),
		Salary:     round2(100 * dimensions[DimensionSalary].Value),
		Industry:   round2(100 * industry),
		Confidence: round2(float64(informed) / dimensionCount),
	}
}

// aggregateDimensions collapses the seven scorer outputs into the six
// narrative dimensions in fixed priority order.
func aggregateDimensions(dimensions map[Dimension]DimensionScore) []annotatedDimension {
	industryValue := (dimensions[DimensionIndustry].Value + dimensions[DimensionJobType].Value) / 2
	industryEvidence := dimensions[DimensionIndustry].Evidence + "; " + dimensions[DimensionJobType].Evidence

	return []annotatedDimension{
		{DimensionSkills, dimensions[DimensionSkills].Value, dimensions[DimensionSkills].Evidence},
		{DimensionExperience, dimensions[DimensionExperience].Value, dimensions[DimensionExperience].Evidence},
		{DimensionEducation, dimensions[DimensionEducation].Value, dimensions[DimensionEducation].Evidence},
		{DimensionSalary, dimensions[DimensionSalary].Value, dimensions[DimensionSalary].Evidence},
		{DimensionLocation, dimensions[DimensionLocation].Value, dimensions[DimensionLocation].Evidence},
		{DimensionIndustry, industryValue, industryEvidence},
	}
}

// explain emits a reason for every dimension at or above the strong
// threshold and an improvement for every dimension at or below the weak
// threshold. Reasons are ordered by descending score, improvements by
// ascending score; ties follow the fixed dimension priority.
func explain(dimensions map[Dimension]DimensionScore) (reasons, improvements []string) {
	annotated := aggregateDimensions(dimensions)
	reasons = []string{}
	improvements = []string{}

	strong := make([]annotatedDimension, 0, len(annotated))
	weak := make([]annotatedDimension, 0, len(annotated))
	for _, entry := range annotated {
		switch {
		case entry.value >= strongThreshold:
			strong = append(strong, entry)
		case entry.value <= weakThreshold:
			weak = append(weak, entry)
		}
	}

	sort.SliceStable(strong, func(i, j int) bool {
		if strong[i].value != strong[j].value {
			return strong[i].value > strong[j].value
		}
		return DimensionPriority[strong[i].dimension] < DimensionPriority[strong[j].dimension]
	})
	sort.SliceStable(weak, func(i, j int) bool {
		if weak[i].value != weak[j].value {
			return weak[i].value < weak[j].value
		}
		return DimensionPriority[weak[i].dimension] < DimensionPriority[weak[j].dimension]
	})

	for _, entry := range strong {
		reasons = append(reasons, fmt.Sprintf("Strong %s match: %s", entry.dimension, entry.evidence))
	}
	for _, entry := range weak {
		improvements = append(improvements, fmt.Sprintf("Improve %s fit: %s", entry.dimension, entry.evidence))
	}
	return reasons, improvements
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
