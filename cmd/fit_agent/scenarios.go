package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobfit-engine/internal/recommend"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Rank a job pool under every predefined weighting scenario",
	Long:  "Re-runs the recommendation pipeline once per weight preset (balanced, skills-first, salary-first, experience-first) and writes one ranked match list per scenario.",
	RunE:  runScenarios,
}

var (
	scenariosCriteria string
	scenariosJobs     string
	scenariosOutput   string
	scenariosVerbose  bool
)

func init() {
	scenariosCmd.Flags().StringVarP(&scenariosCriteria, "criteria", "c", "", "Path to input MatchCriteria JSON file (required)")
	scenariosCmd.Flags().StringVarP(&scenariosJobs, "jobs", "j", "", "Path to input job pool JSON file (required)")
	scenariosCmd.Flags().StringVarP(&scenariosOutput, "out", "o", "", "Path to output scenario recommendations JSON file (required)")
	scenariosCmd.Flags().BoolVarP(&scenariosVerbose, "verbose", "v", false, "Print detailed run information")

	if err := scenariosCmd.MarkFlagRequired("criteria"); err != nil {
		panic(fmt.Sprintf("failed to mark criteria flag as required: %v", err))
	}
	if err := scenariosCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := scenariosCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	criteria, err := loadCriteria(scenariosCriteria)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(scenariosJobs)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if scenariosVerbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	engine := recommend.New(logger)
	results, err := engine.ScenarioRecommendations(context.Background(), criteria, jobs)
	if err != nil {
		return fmt.Errorf("failed to generate scenario recommendations: %w", err)
	}

	if err := writeJSON(scenariosOutput, results); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d jobs under %d scenarios to %s\n", len(jobs), len(results), scenariosOutput)

	return nil
}
