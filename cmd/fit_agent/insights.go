package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit-engine/internal/observability"
	"github.com/jonathan/jobfit-engine/internal/recommend"
	"github.com/jonathan/jobfit-engine/internal/schemas"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Derive aggregate insights from a recommendations file",
	Long:  "Computes mean and median fit and confidence, a confidence distribution, and the most common gap dimensions across a previously generated recommendations JSON.",
	RunE:  runInsights,
}

var (
	insightsMatches string
	insightsOutput  string
	insightsVerbose bool
)

func init() {
	insightsCmd.Flags().StringVarP(&insightsMatches, "matches", "m", "", "Path to input recommendations JSON file (required)")
	insightsCmd.Flags().StringVarP(&insightsOutput, "out", "o", "", "Path to output insights JSON file (required)")
	insightsCmd.Flags().BoolVarP(&insightsVerbose, "verbose", "v", false, "Print a summary to stdout")

	if err := insightsCmd.MarkFlagRequired("matches"); err != nil {
		panic(fmt.Sprintf("failed to mark matches flag as required: %v", err))
	}
	if err := insightsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(insightsMatches)
	if err != nil {
		return fmt.Errorf("failed to read matches file %s: %w", insightsMatches, err)
	}

	var input recommendationsOutput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to unmarshal matches JSON: %w", err)
	}

	insights := recommend.GenerateInsights(input.Matches)

	if err := writeJSON(insightsOutput, insights); err != nil {
		return err
	}

	schemaPath := schemas.ResolveSchemaPath("schemas/insights.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, insightsOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if insightsVerbose {
		observability.NewPrinter(os.Stdout).PrintInsights(&insights)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully derived insights for %d matches to %s\n", insights.JobCount, insightsOutput)

	return nil
}
