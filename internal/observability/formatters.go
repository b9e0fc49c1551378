// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobfit-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCriteria outputs a human-readable summary of the match criteria.
func (p *Printer) PrintCriteria(criteria *types.MatchCriteria) {
	if criteria == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", criteria.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Location:   %s\n", criteria.Location))
	sb.WriteString(fmt.Sprintf("Remote OK:  %t\n", criteria.RemoteOK))
	if criteria.SalaryRange.Max > 0 {
		sb.WriteString(fmt.Sprintf("Salary:     %.0f-%.0f\n", criteria.SalaryRange.Min, criteria.SalaryRange.Max))
	}

	if len(criteria.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(criteria.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", criteria.Skills[i]))
		}
		if len(criteria.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(criteria.Skills)-maxItemsToShow))
		}
	}

	p.printBox("Match Criteria", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatches outputs a ranked summary of the recommendation run.
func (p *Printer) PrintMatches(matches []types.Match) {
	var sb strings.Builder

	if len(matches) == 0 {
		sb.WriteString("No jobs passed the configured thresholds.")
		p.printBox("Recommendations", sb.String())
		return
	}

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("%d. %s @ %s\n", i+1, match.Job.Title, match.Job.Company))
		sb.WriteString(fmt.Sprintf("   fit %.1f, confidence %.2f\n", match.FitScore.Overall, match.FitScore.Confidence))
		if len(match.Reasons) > 0 {
			sb.WriteString(fmt.Sprintf("   %s\n", match.Reasons[0]))
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Recommendations (%d)", len(matches)), strings.TrimRight(sb.String(), "\n"))
}

// PrintInsights outputs aggregate statistics for a match list.
func (p *Printer) PrintInsights(insights *types.Insights) {
	if insights == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Jobs:       %d\n", insights.JobCount))
	sb.WriteString(fmt.Sprintf("Fit:        mean %.1f, median %.1f\n", insights.MeanFit, insights.MedianFit))
	sb.WriteString(fmt.Sprintf("Confidence: mean %.2f, median %.2f\n", insights.MeanConfidence, insights.MedianConfidence))
	sb.WriteString(fmt.Sprintf("Bands:      low %d / medium %d / high %d\n",
		insights.ConfidenceBands.Low, insights.ConfidenceBands.Medium, insights.ConfidenceBands.High))

	if len(insights.TopGaps) > 0 {
		sb.WriteString("\nMost common gaps:\n")
		for _, gap := range insights.TopGaps {
			sb.WriteString(fmt.Sprintf("  • %s (%d jobs)\n", gap.Dimension, gap.Count))
		}
	}

	p.printBox("Insights", strings.TrimRight(sb.String(), "\n"))
}
