// Package main implements the fit_agent CLI tool for job fit scoring and
// recommendation runs over JSON artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fit_agent",
	Short: "Job Fit Scoring & Recommendation Engine",
	Long:  "fit_agent scores candidate profiles against job pools, producing ranked recommendations, aggregate insights, and what-if scenario rankings from JSON inputs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
