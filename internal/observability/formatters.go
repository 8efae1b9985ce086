// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	degree := resume.Degree
	if degree == "" {
		degree = "(none detected)"
	}
	domain := resume.Domain
	if domain == "" {
		domain = "(none detected)"
	}
	sb.WriteString(fmt.Sprintf("Degree:     %s\n", degree))
	sb.WriteString(fmt.Sprintf("Domain:     %s\n", domain))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", resume.ExperienceYears))

	if !resume.TechnicalSkills.IsEmpty() {
		sb.WriteString("\nTechnical Skills:\n")
		if resume.TechnicalSkills.Categorized != nil {
			categories := make([]string, 0, len(resume.TechnicalSkills.Categorized))
			for category := range resume.TechnicalSkills.Categorized {
				categories = append(categories, category)
			}
			sort.Strings(categories)
			for _, category := range categories {
				skills := strings.Join(resume.TechnicalSkills.Categorized[category], ", ")
				sb.WriteString(fmt.Sprintf("  %s: %s\n", category, skills))
			}
		} else {
			sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(resume.TechnicalSkills.Flat, ", ")))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top recommendations with scores and gaps.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total careers recommended: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.CareerTitle))
		sb.WriteString(fmt.Sprintf("    Final: %.2f (semantic %.2f x %.1f + market %.2f x %.1f)\n",
			rec.FinalScore, rec.SemanticScore, rec.SemanticWeight, rec.MarketScore, rec.MarketWeight))
		sb.WriteString(fmt.Sprintf("    Jobs: %d  Avg Salary: %.0f\n", rec.JobCount, rec.AverageSalary))
		if len(rec.MissingSkills) > 0 {
			gaps := strings.Join(rec.MissingSkills, ", ")
			if len(gaps) > 40 {
				gaps = gaps[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Gaps: %s\n", gaps))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(recommendations)-maxItemsToShow))
	}

	p.printBox("CAREER RECOMMENDATIONS", sb.String())
}

// PrintDashboard outputs the dashboard summary metrics.
func (p *Printer) PrintDashboard(summary *types.DashboardSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume Score:        %d\n", summary.ResumeScore))
	sb.WriteString(fmt.Sprintf("Job Matches:         %d\n", summary.JobMatches))
	sb.WriteString(fmt.Sprintf("Skills Mastered:     %d / %d\n", summary.SkillsMastered, summary.TotalTargetSkills))
	sb.WriteString(fmt.Sprintf("Resume Fit:          %d%%\n", summary.ResumeFit))
	sb.WriteString(fmt.Sprintf("Interview Readiness: %d%%\n", summary.InterviewReadiness))
	sb.WriteString(fmt.Sprintf("Job Match Strength:  %d\n", summary.JobMatchStrength))

	if len(summary.TopJobs) > 0 {
		sb.WriteString("\nTop Jobs:\n")
		for _, job := range summary.TopJobs {
			sb.WriteString(fmt.Sprintf("  • %s  %.2f%% [%s]\n", job.CareerTitle, job.MatchPercentage, job.Tag))
		}
	}

	if len(summary.SkillGaps) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkill Gaps: %s\n", strings.Join(summary.SkillGaps, ", ")))
	}

	p.printBox("DASHBOARD SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
