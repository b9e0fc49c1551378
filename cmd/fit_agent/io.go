package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/jobfit-engine/internal/types"
)

// recommendationsOutput is the JSON envelope written by the recommend and
// scenarios commands.
type recommendationsOutput struct {
	RunID       string        `json:"run_id,omitempty"`
	GeneratedAt time.Time     `json:"generated_at,omitempty"`
	Matches     []types.Match `json:"matches"`
}

// loadCriteria reads and validates a MatchCriteria JSON file.
func loadCriteria(path string) (types.MatchCriteria, error) {
	var criteria types.MatchCriteria

	data, err := os.ReadFile(path)
	if err != nil {
		return criteria, fmt.Errorf("failed to read criteria file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &criteria); err != nil {
		return criteria, fmt.Errorf("failed to unmarshal criteria JSON: %w", err)
	}
	if err := criteria.Validate(); err != nil {
		return criteria, err
	}
	return criteria, nil
}

// loadJobs reads a job pool JSON file. Individual postings with missing
// optional fields are kept; they score with reduced confidence instead of
// being rejected here.
func loadJobs(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var jobs []types.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}

	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
	}
	return jobs, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory when needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
