// Package types provides type definitions for structured data used throughout the jobfit-engine system.
package types

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float accumulation noise when checking that a
// weight vector sums to 1.0.
const weightSumTolerance = 1e-9

// WeightVector assigns a relative weight to each scoring dimension. Weights
// must be non-negative and sum to 1.0.
type WeightVector struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
	Industry   float64 `json:"industry"`
}

// DefaultWeights returns the weight vector used when a caller does not
// supply one. Skills and experience dominate; the remainder is spread over
// salary, education, location, and industry.
func DefaultWeights() WeightVector {
	return WeightVector{
		Skills:     0.30,
		Experience: 0.25,
		Salary:     0.15,
		Education:  0.10,
		Location:   0.10,
		Industry:   0.10,
	}
}

// Sum returns the total of all dimension weights.
func (w WeightVector) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Location + w.Salary + w.Industry
}

// Validate checks that every weight is non-negative and the vector sums to 1.0.
func (w WeightVector) Validate() error {
	entries := []struct {
		name  string
		value float64
	}{
		{"skills", w.Skills},
		{"experience", w.Experience},
		{"education", w.Education},
		{"location", w.Location},
		{"salary", w.Salary},
		{"industry", w.Industry},
	}
	for _, entry := range entries {
		if entry.value < 0 {
			return NewValidationError("weights."+entry.name, "must be non-negative")
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return NewValidationError("weights", fmt.Sprintf("must sum to 1.0, got %.4f", sum))
	}
	return nil
}
