// Package types provides type definitions for structured data used throughout the jobfit-engine system.
package types

// FitScore summarizes candidate/job compatibility across six dimensions.
// Overall and the per-dimension sub-scores are on a 0-100 scale; Confidence
// is the 0-1 fraction of dimensions backed by real (non-default) data.
type FitScore struct {
	Overall    float64 `json:"overall"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
	Industry   float64 `json:"industry"`
	Confidence float64 `json:"confidence"`
}

// Match is one job annotated with its fit score and narrative explanations.
// Matches are created fresh per recommendation run and never persisted.
type Match struct {
	Job          Job      `json:"job"`
	FitScore     FitScore `json:"fit_score"`
	Reasons      []string `json:"reasons"`
	Improvements []string `json:"improvements"`
}
