package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jobfit-engine/internal/config"
	"github.com/jonathan/jobfit-engine/internal/observability"
	"github.com/jonathan/jobfit-engine/internal/recommend"
	"github.com/jonathan/jobfit-engine/internal/schemas"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate ranked job recommendations for a candidate",
	Long:  "Scores every job in a pool against a candidate's match criteria, filters by fit and confidence thresholds, and writes a deterministically ranked recommendations JSON.",
	RunE:  runRecommend,
}

var (
	recommendCriteria      string
	recommendJobs          string
	recommendOutput        string
	recommendConfigPath    string
	recommendMax           int
	recommendMinFit        float64
	recommendMinConfidence float64
	recommendVerbose       bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendCriteria, "criteria", "c", "", "Path to input MatchCriteria JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendJobs, "jobs", "j", "", "Path to input job pool JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to CLI config JSON file (optional)")
	recommendCmd.Flags().IntVar(&recommendMax, "max", 0, "Maximum recommendations to return (default 10)")
	recommendCmd.Flags().Float64Var(&recommendMinFit, "min-fit", 0, "Minimum overall fit score, 0-100")
	recommendCmd.Flags().Float64Var(&recommendMinConfidence, "min-confidence", 0, "Minimum confidence, 0-1")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed run information")

	if err := recommendCmd.MarkFlagRequired("criteria"); err != nil {
		panic(fmt.Sprintf("failed to mark criteria flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	// 1. Resolve CLI configuration: file first, flags override
	cliCfg := &config.Config{}
	if recommendConfigPath != "" {
		loaded, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cliCfg = loaded
	}
	if recommendMax > 0 {
		cliCfg.MaxRecommendations = recommendMax
	}
	if recommendMinFit > 0 {
		cliCfg.MinFitScore = recommendMinFit
	}
	if recommendMinConfidence > 0 {
		cliCfg.MinConfidence = recommendMinConfidence
	}
	if recommendVerbose {
		cliCfg.Verbose = true
	}
	if err := cliCfg.Validate(); err != nil {
		return err
	}

	// 2. Load inputs
	criteria, err := loadCriteria(recommendCriteria)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(recommendJobs)
	if err != nil {
		return err
	}

	// 3. Run the engine
	logger := zap.NewNop()
	if cliCfg.Verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	engine := recommend.New(logger)
	matches, err := engine.GenerateRecommendations(context.Background(), criteria, jobs, cliCfg.RecommendationConfig())
	if err != nil {
		return fmt.Errorf("failed to generate recommendations: %w", err)
	}

	// 4. Write output
	output := recommendationsOutput{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Matches:     matches,
	}
	if err := writeJSON(recommendOutput, output); err != nil {
		return err
	}

	// 5. Validate output against schema (non-fatal safety check)
	schemaPath := schemas.ResolveSchemaPath("schemas/recommendations.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, recommendOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if cliCfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCriteria(&criteria)
		printer.PrintMatches(matches)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d of %d jobs to %s\n", len(matches), len(jobs), recommendOutput)

	return nil
}
