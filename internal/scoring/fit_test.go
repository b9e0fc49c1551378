package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfit-engine/internal/types"
)

func TestScore_StrongCandidate(t *testing.T) {
	// Full skill coverage plus a met experience minimum must land in the
	// upper range with a skills reason leading the narrative.
	job := testJob()
	job.Remote = true

	fit := Score(testCriteria(), job, types.DefaultWeights())

	assert.Greater(t, fit.Overall, 80.0)
	assert.Equal(t, 100.0, fit.Skills)
	assert.GreaterOrEqual(t, fit.Experience, 90.0)

	match := Evaluate(testCriteria(), job, types.DefaultWeights())
	require.NotEmpty(t, match.Reasons)
	assert.Contains(t, match.Reasons[0], "skills")
}

func TestScore_Bounds(t *testing.T) {
	jobs := []types.Job{
		testJob(),
		{ID: "bare"},
		{ID: "hostile", RequiredSkills: []string{"COBOL"}, ExperienceRequired: 40, Location: "Mars"},
	}

	for _, job := range jobs {
		fit := Score(testCriteria(), job, types.DefaultWeights())
		assert.GreaterOrEqual(t, fit.Overall, 0.0, "job %s", job.ID)
		assert.LessOrEqual(t, fit.Overall, 100.0, "job %s", job.ID)
		assert.GreaterOrEqual(t, fit.Confidence, 0.0, "job %s", job.ID)
		assert.LessOrEqual(t, fit.Confidence, 1.0, "job %s", job.ID)
	}
}

func TestScore_Idempotent(t *testing.T) {
	first := Score(testCriteria(), testJob(), types.DefaultWeights())
	second := Score(testCriteria(), testJob(), types.DefaultWeights())

	assert.Equal(t, first, second)
}

func TestScore_ConfidenceDropsWithoutSalary(t *testing.T) {
	disclosed := testJob()

	undisclosed := testJob()
	undisclosed.SalaryMin = nil
	undisclosed.SalaryMax = nil

	withSalary := Score(testCriteria(), disclosed, types.DefaultWeights())
	withoutSalary := Score(testCriteria(), undisclosed, types.DefaultWeights())

	assert.Equal(t, 50.0, withoutSalary.Salary)
	assert.Less(t, withoutSalary.Confidence, withSalary.Confidence)
}

func TestScore_ConfidenceIndependentOfOverall(t *testing.T) {
	// A posting with sparse data can still score high overall while its
	// confidence stays low.
	criteria := testCriteria()
	criteria.Industries = nil
	criteria.JobTypes = nil

	job := testJob()
	job.RequiredSkills = nil
	job.EducationRequired = nil
	job.SalaryMin = nil
	job.SalaryMax = nil
	job.ExperienceRequired = 0
	job.Remote = true

	fit := Score(criteria, job, types.DefaultWeights())

	assert.Greater(t, fit.Overall, 80.0)
	assert.Less(t, fit.Confidence, 0.5)
}

func TestEvaluate_WeakDimensionBecomesImprovement(t *testing.T) {
	criteria := testCriteria()
	criteria.ExperienceYears = 1
	job := testJob()
	job.ExperienceRequired = 5

	match := Evaluate(criteria, job, types.DefaultWeights())

	require.NotEmpty(t, match.Improvements)
	found := false
	for _, improvement := range match.Improvements {
		if strings.Contains(improvement, "experience") {
			found = true
		}
	}
	assert.True(t, found, "expected an experience improvement, got %v", match.Improvements)
	assert.InDelta(t, 20.0, match.FitScore.Experience, 0.0001)
}

func TestEvaluate_ReasonOrdering(t *testing.T) {
	// All strong dimensions tie at 1.0 except experience; ties resolve by
	// the fixed priority order with skills first.
	job := testJob()
	job.Remote = true

	match := Evaluate(testCriteria(), job, types.DefaultWeights())

	require.GreaterOrEqual(t, len(match.Reasons), 2)
	assert.Contains(t, match.Reasons[0], "skills")
}

func TestEvaluate_ImprovementOrdering(t *testing.T) {
	// Skills score 0 and experience scores 0.2; the lower score leads.
	criteria := testCriteria()
	criteria.ExperienceYears = 1
	job := testJob()
	job.RequiredSkills = []string{"Rust", "C++"}
	job.ExperienceRequired = 5

	match := Evaluate(criteria, job, types.DefaultWeights())

	require.GreaterOrEqual(t, len(match.Improvements), 2)
	assert.Contains(t, match.Improvements[0], "skills")
	assert.Contains(t, match.Improvements[1], "experience")
}

func TestScore_WeightsShiftOverall(t *testing.T) {
	// A salary-heavy vector must reward a salary-perfect, skills-poor
	// posting more than the default vector does.
	job := testJob()
	job.RequiredSkills = []string{"Rust", "C++"}
	job.SalaryMin = floatPtr(70000)
	job.SalaryMax = floatPtr(150000)

	salaryHeavy := types.WeightVector{
		Salary:     0.40,
		Skills:     0.20,
		Experience: 0.15,
		Education:  0.05,
		Location:   0.10,
		Industry:   0.10,
	}

	defaultFit := Score(testCriteria(), job, types.DefaultWeights())
	shiftedFit := Score(testCriteria(), job, salaryHeavy)

	assert.Greater(t, shiftedFit.Overall, defaultFit.Overall)
}
