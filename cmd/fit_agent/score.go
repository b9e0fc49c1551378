package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit-engine/internal/scoring"
	"github.com/jonathan/jobfit-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single job against a candidate's match criteria",
	Long:  "Computes the full fit score breakdown for one job posting, including per-dimension sub-scores, confidence, and narrative reasons and improvements.",
	RunE:  runScore,
}

var (
	scoreCriteria string
	scoreJob      string
	scoreOutput   string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCriteria, "criteria", "c", "", "Path to input MatchCriteria JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to input Job JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output Match JSON file (defaults to stdout)")

	if err := scoreCmd.MarkFlagRequired("criteria"); err != nil {
		panic(fmt.Sprintf("failed to mark criteria flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	criteria, err := loadCriteria(scoreCriteria)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(scoreJob)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", scoreJob, err)
	}
	var job types.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return err
	}

	match := scoring.Evaluate(criteria, job, types.DefaultWeights())

	if scoreOutput != "" {
		if err := writeJSON(scoreOutput, match); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully scored job %s to %s\n", job.ID, scoreOutput)
		return nil
	}

	jsonOutput, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
	return nil
}
