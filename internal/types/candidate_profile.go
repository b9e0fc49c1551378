// Package types provides type definitions for structured data used throughout the jobfit-engine system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile represents a candidate as resolved by the profile storage
// collaborator. It is read-only input to a scoring run.
type CandidateProfile struct {
	ID              string      `json:"id" validate:"required"`
	Skills          []string    `json:"skills"`
	ExperienceYears float64     `json:"experience_years" validate:"gte=0"`
	Education       []string    `json:"education"`
	Location        string      `json:"location"`
	Preferences     Preferences `json:"preferences"`
}

// Preferences holds the candidate's stated job preferences.
type Preferences struct {
	SalaryRange SalaryRange `json:"salary_range"`
	JobTypes    []string    `json:"job_types"`
	Industries  []string    `json:"industries"`
	RemoteOK    bool        `json:"remote_ok"`
}

// SalaryRange is an annual salary interval. Min must not exceed Max.
type SalaryRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

// MatchCriteria is the subset of a CandidateProfile consumed by the scorers.
// It is derived once per call and never mutated mid-run.
type MatchCriteria struct {
	Skills          []string    `json:"skills"`
	ExperienceYears float64     `json:"experience_years" validate:"gte=0"`
	Education       []string    `json:"education"`
	Location        string      `json:"location"`
	SalaryRange     SalaryRange `json:"salary_range"`
	JobTypes        []string    `json:"job_types"`
	Industries      []string    `json:"industries"`
	RemoteOK        bool        `json:"remote_ok"`
}

// Validate checks the profile for structural problems before scoring.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	if err := wrapValidatorError(validate.Struct(p)); err != nil {
		return err
	}
	if p.Preferences.SalaryRange.Min > p.Preferences.SalaryRange.Max {
		return NewValidationError("salary_range", "min must not exceed max")
	}
	return nil
}

// Criteria derives the MatchCriteria used for one scoring run.
func (p *CandidateProfile) Criteria() MatchCriteria {
	return MatchCriteria{
		Skills:          p.Skills,
		ExperienceYears: p.ExperienceYears,
		Education:       p.Education,
		Location:        p.Location,
		SalaryRange:     p.Preferences.SalaryRange,
		JobTypes:        p.Preferences.JobTypes,
		Industries:      p.Preferences.Industries,
		RemoteOK:        p.Preferences.RemoteOK,
	}
}

// Validate checks the criteria for structural problems before scoring.
func (c *MatchCriteria) Validate() error {
	validate := validator.New()
	if err := wrapValidatorError(validate.Struct(c)); err != nil {
		return err
	}
	if c.SalaryRange.Min > c.SalaryRange.Max {
		return NewValidationError("salary_range", "min must not exceed max")
	}
	return nil
}
