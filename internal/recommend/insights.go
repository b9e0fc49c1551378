package recommend

import (
	"sort"

	"github.com/jonathan/jobfit-engine/internal/scoring"
	"github.com/jonathan/jobfit-engine/internal/types"
)

const (
	// weakSubScore mirrors the aggregator's weak threshold on the 0-100
	// sub-score scale; sub-scores at or below it count as gaps.
	weakSubScore = 40.0

	// maxTopGaps caps the ranked gap list.
	maxTopGaps = 3

	// Confidence band boundaries.
	lowConfidenceBand  = 0.4
	highConfidenceBand = 0.75
)

// gapDimensions is the fixed order in which dimensions are inspected for
// gaps, which also breaks count ties deterministically.
var gapDimensions = []scoring.Dimension{
	scoring.DimensionSkills,
	scoring.DimensionExperience,
	scoring.DimensionEducation,
	scoring.DimensionSalary,
	scoring.DimensionLocation,
	scoring.DimensionIndustry,
}

// GenerateInsights computes aggregate statistics over one ranked match list:
// mean and median fit and confidence, a confidence distribution, and the
// most common weak dimensions. An empty list yields zero-valued insights.
func GenerateInsights(matches []types.Match) types.Insights {
	insights := types.Insights{JobCount: len(matches), TopGaps: []types.Gap{}}
	if len(matches) == 0 {
		return insights
	}

	fits := make([]float64, 0, len(matches))
	confidences := make([]float64, 0, len(matches))
	for _, match := range matches {
		fits = append(fits, match.FitScore.Overall)
		confidences = append(confidences, match.FitScore.Confidence)

		switch {
		case match.FitScore.Confidence < lowConfidenceBand:
			insights.ConfidenceBands.Low++
		case match.FitScore.Confidence >= highConfidenceBand:
			insights.ConfidenceBands.High++
		default:
			insights.ConfidenceBands.Medium++
		}
	}

	insights.MeanFit = mean(fits)
	insights.MedianFit = median(fits)
	insights.MeanConfidence = mean(confidences)
	insights.MedianConfidence = median(confidences)
	insights.TopGaps = topGaps(matches)
	return insights
}

// topGaps counts, per dimension, how many matches scored at or below the
// weak threshold, and returns the most frequent gaps capped at maxTopGaps.
func topGaps(matches []types.Match) []types.Gap {
	counts := make(map[scoring.Dimension]int, len(gapDimensions))
	for _, match := range matches {
		for _, dimension := range gapDimensions {
			if subScore(match.FitScore, dimension) <= weakSubScore {
				counts[dimension]++
			}
		}
	}

	gaps := make([]types.Gap, 0, len(gapDimensions))
	for _, dimension := range gapDimensions {
		if counts[dimension] > 0 {
			gaps = append(gaps, types.Gap{Dimension: string(dimension), Count: counts[dimension]})
		}
	}

	// gapDimensions order already encodes the priority tie-break.
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Count > gaps[j].Count
	})

	if len(gaps) > maxTopGaps {
		gaps = gaps[:maxTopGaps]
	}
	return gaps
}

func subScore(fit types.FitScore, dimension scoring.Dimension) float64 {
	switch dimension {
	case scoring.DimensionSkills:
		return fit.Skills
	case scoring.DimensionExperience:
		return fit.Experience
	case scoring.DimensionEducation:
		return fit.Education
	case scoring.DimensionSalary:
		return fit.Salary
	case scoring.DimensionLocation:
		return fit.Location
	default:
		return fit.Industry
	}
}

func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
