// Package types provides type definitions for structured data used throughout the jobfit-engine system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Job represents a normalized job posting handed over by the ingestion
// collaborator. The engine treats it as read-only and performs no
// deduplication of its own.
type Job struct {
	ID                 string    `json:"id" validate:"required"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Location           string    `json:"location"`
	Remote             bool      `json:"remote"`
	SalaryMin          *float64  `json:"salary_min,omitempty"`
	SalaryMax          *float64  `json:"salary_max,omitempty"`
	ExperienceRequired float64   `json:"experience_required" validate:"gte=0"`
	RequiredSkills     []string  `json:"required_skills"`
	EducationRequired  []string  `json:"education_required"`
	Industry           string    `json:"industry"`
	JobType            string    `json:"job_type"`
	PostedAt           time.Time `json:"posted_at"`
}

// Validate checks the posting for structural problems. Missing optional
// fields are not errors; they lower the posting's confidence during scoring.
func (j *Job) Validate() error {
	validate := validator.New()
	if err := wrapValidatorError(validate.Struct(j)); err != nil {
		return err
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return NewValidationError("salary_min", "must not exceed salary_max")
	}
	return nil
}
