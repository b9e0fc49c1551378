package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/jobfit-engine/internal/parsing"
	"github.com/jonathan/jobfit-engine/internal/types"
)

const (
	// Over-qualification decay: 2% per excess year, never below a 0.8 floor.
	overQualificationDecayPerYear = 0.02
	maxOverQualificationDecay     = 0.2

	// Neutral score when a posting does not disclose salary.
	unknownSalaryScore = 0.5
)

// scoreSkills computes the fraction of required skills the candidate covers.
// Comparison is case-insensitive and exact-token. An empty requirement list
// scores 1 but carries no evidence.
func scoreSkills(criteria types.MatchCriteria, job types.Job) DimensionScore {
	required := parsing.SkillSet(job.RequiredSkills)
	if len(required) == 0 {
		return DimensionScore{Value: 1, Evidence: "posting lists no required skills", LowEvidence: true}
	}

	candidate := parsing.SkillSet(criteria.Skills)
	matched := make([]string, 0, len(required))
	for skill := range required {
		if candidate[skill] {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)

	value := float64(len(matched)) / float64(len(required))
	evidence := fmt.Sprintf("matched %d of %d required skills", len(matched), len(required))
	if len(matched) > 0 {
		evidence += " (" + strings.Join(matched, ", ") + ")"
	}
	return DimensionScore{Value: value, Evidence: evidence}
}

// scoreExperience compares candidate years against the posting's minimum.
// Meeting the minimum scores 1 minus a small over-qualification decay;
// falling short scores proportionally.
func scoreExperience(criteria types.MatchCriteria, job types.Job) DimensionScore {
	required := job.ExperienceRequired
	candidate := criteria.ExperienceYears

	if required <= 0 {
		return DimensionScore{Value: 1, Evidence: "posting requires no minimum experience"}
	}

	if candidate >= required {
		excess := candidate - required
		decay := math.Min(maxOverQualificationDecay, overQualificationDecayPerYear*excess)
		return DimensionScore{
			Value:    1 - decay,
			Evidence: fmt.Sprintf("%.1f years of experience meets the %.1f year minimum", candidate, required),
		}
	}

	value := candidate / math.Max(1, required)
	if value < 0 {
		value = 0
	}
	return DimensionScore{
		Value:    value,
		Evidence: fmt.Sprintf("%.1f of %.1f required years of experience", candidate, required),
	}
}

// scoreEducation checks whether any candidate credential satisfies any
// required credential. There is no partial credit.
func scoreEducation(criteria types.MatchCriteria, job types.Job) DimensionScore {
	if len(job.EducationRequired) == 0 {
		return DimensionScore{Value: 1, Evidence: "posting lists no education requirement", LowEvidence: true}
	}

	for _, credential := range criteria.Education {
		candidate := parsing.NormalizeToken(credential)
		if candidate == "" {
			continue
		}
		for _, required := range job.EducationRequired {
			target := parsing.NormalizeToken(required)
			if target == "" {
				continue
			}
			if candidate == target || strings.Contains(candidate, target) {
				return DimensionScore{
					Value:    1,
					Evidence: fmt.Sprintf("%q satisfies the %q requirement", strings.TrimSpace(credential), strings.TrimSpace(required)),
				}
			}
		}
	}

	return DimensionScore{Value: 0, Evidence: "no credential satisfies the posting's education requirements"}
}

// scoreLocation scores 1 for a remote posting the candidate accepts or an
// exact (case-insensitive, trimmed) location match, else 0. A posting with
// no location data at all scores 0 with low evidence.
func scoreLocation(criteria types.MatchCriteria, job types.Job) DimensionScore {
	if job.Remote && criteria.RemoteOK {
		return DimensionScore{Value: 1, Evidence: "remote position and candidate accepts remote work"}
	}

	jobLocation := parsing.NormalizeToken(job.Location)
	if jobLocation == "" {
		return DimensionScore{Value: 0, Evidence: "posting has no location data", LowEvidence: true}
	}

	if jobLocation == parsing.NormalizeToken(criteria.Location) {
		return DimensionScore{Value: 1, Evidence: fmt.Sprintf("located in %s", strings.TrimSpace(job.Location))}
	}

	return DimensionScore{Value: 0, Evidence: fmt.Sprintf("posting is in %s, outside the candidate's location", strings.TrimSpace(job.Location))}
}

// scoreSalary computes the overlap between the candidate's expected range
// and the posting's range, as a fraction of the candidate's range length.
// A posting without salary data scores a neutral 0.5 with low evidence.
func scoreSalary(criteria types.MatchCriteria, job types.Job) DimensionScore {
	if job.SalaryMin == nil && job.SalaryMax == nil {
		return DimensionScore{Value: unknownSalaryScore, Evidence: "posting does not disclose salary", LowEvidence: true}
	}

	candidateMin, candidateMax := criteria.SalaryRange.Min, criteria.SalaryRange.Max
	if candidateMax <= 0 {
		return DimensionScore{Value: 1, Evidence: "candidate states no salary expectation", LowEvidence: true}
	}

	// A single disclosed bound is treated as a point range.
	jobMin, jobMax := 0.0, 0.0
	switch {
	case job.SalaryMin != nil && job.SalaryMax != nil:
		jobMin, jobMax = *job.SalaryMin, *job.SalaryMax
	case job.SalaryMin != nil:
		jobMin, jobMax = *job.SalaryMin, *job.SalaryMin
	default:
		jobMin, jobMax = *job.SalaryMax, *job.SalaryMax
	}

	if candidateMin == candidateMax {
		if candidateMin >= jobMin && candidateMin <= jobMax {
			return DimensionScore{Value: 1, Evidence: fmt.Sprintf("posting range covers the expected %.0f", candidateMin)}
		}
		return DimensionScore{Value: 0, Evidence: fmt.Sprintf("posting range %.0f-%.0f misses the expected %.0f", jobMin, jobMax, candidateMin)}
	}

	overlap := math.Min(candidateMax, jobMax) - math.Max(candidateMin, jobMin)
	value := clamp01(overlap / (candidateMax - candidateMin))
	evidence := fmt.Sprintf("posting range %.0f-%.0f covers %.0f%% of the expected %.0f-%.0f",
		jobMin, jobMax, value*100, candidateMin, candidateMax)
	return DimensionScore{Value: value, Evidence: evidence}
}

// scoreIndustry checks set membership of the posting's industry in the
// candidate's preferred industries. An empty preference set scores 1 with
// low evidence, as does a posting missing industry data.
func scoreIndustry(criteria types.MatchCriteria, job types.Job) DimensionScore {
	preferred := parsing.TokenSet(criteria.Industries)
	if len(preferred) == 0 {
		return DimensionScore{Value: 1, Evidence: "candidate states no industry preference", LowEvidence: true}
	}

	industry := parsing.NormalizeToken(job.Industry)
	if industry == "" {
		return DimensionScore{Value: 0, Evidence: "posting has no industry data", LowEvidence: true}
	}

	if preferred[industry] {
		return DimensionScore{Value: 1, Evidence: fmt.Sprintf("%s is a preferred industry", strings.TrimSpace(job.Industry))}
	}
	return DimensionScore{Value: 0, Evidence: fmt.Sprintf("%s is not among the candidate's preferred industries", strings.TrimSpace(job.Industry))}
}

// scoreJobType checks set membership of the posting's job type in the
// candidate's preferred job types, mirroring scoreIndustry.
func scoreJobType(criteria types.MatchCriteria, job types.Job) DimensionScore {
	preferred := parsing.TokenSet(criteria.JobTypes)
	if len(preferred) == 0 {
		return DimensionScore{Value: 1, Evidence: "candidate states no job type preference", LowEvidence: true}
	}

	jobType := parsing.NormalizeToken(job.JobType)
	if jobType == "" {
		return DimensionScore{Value: 0, Evidence: "posting has no job type data", LowEvidence: true}
	}

	if preferred[jobType] {
		return DimensionScore{Value: 1, Evidence: fmt.Sprintf("%s matches a preferred job type", strings.TrimSpace(job.JobType))}
	}
	return DimensionScore{Value: 0, Evidence: fmt.Sprintf("%s is not a preferred job type", strings.TrimSpace(job.JobType))}
}

// ScoreDimensions evaluates all seven dimensions for one posting. The result
// is a pure function of its inputs and is recomputed on every call.
func ScoreDimensions(criteria types.MatchCriteria, job types.Job) map[Dimension]DimensionScore {
	return map[Dimension]DimensionScore{
		DimensionSkills:     scoreSkills(criteria, job),
		DimensionExperience: scoreExperience(criteria, job),
		DimensionEducation:  scoreEducation(criteria, job),
		DimensionLocation:   scoreLocation(criteria, job),
		DimensionSalary:     scoreSalary(criteria, job),
		DimensionIndustry:   scoreIndustry(criteria, job),
		DimensionJobType:    scoreJobType(criteria, job),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
