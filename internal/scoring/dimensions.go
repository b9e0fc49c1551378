// Package scoring implements the dimension scorers and the fit aggregator
// that compare a candidate's match criteria against a single job posting.
package scoring

// Dimension identifies one independent axis of comparison.
type Dimension string

// The seven comparison axes. Industry and job type are scored separately but
// share the industry slot of the final fit score.
const (
	DimensionSkills     Dimension = "skills"
	DimensionExperience Dimension = "experience"
	DimensionEducation  Dimension = "education"
	DimensionLocation   Dimension = "location"
	DimensionSalary     Dimension = "salary"
	DimensionIndustry   Dimension = "industry"
	DimensionJobType    Dimension = "job_type"
)

// dimensionCount is the denominator for the confidence calculation.
const dimensionCount = 7

// DimensionPriority is the fixed tie-break order for reasons, improvements,
// and gap ranking. Lower values sort first.
var DimensionPriority = map[Dimension]int{
	DimensionSkills:     0,
	DimensionExperience: 1,
	DimensionEducation:  2,
	DimensionSalary:     3,
	DimensionLocation:   4,
	DimensionIndustry:   5,
	DimensionJobType:    6,
}

// DimensionScore is the outcome of evaluating one dimension: a bounded value,
// a human-readable evidence note, and a flag marking scores that rest on
// missing or defaulted data rather than a real comparison.
type DimensionScore struct {
	Value       float64
	Evidence    string
	LowEvidence bool
}
