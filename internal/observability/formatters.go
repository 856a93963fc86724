// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/resumify/backend/internal/types"
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

// display renders an optional field for box output.
func display(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// PrintResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", display(resume.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", display(resume.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", display(resume.Phone)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", display(resume.Location)))
	sb.WriteString(fmt.Sprintf("Level:    %s", resume.RoleLevel))
	if resume.PrimaryRole != nil && *resume.PrimaryRole != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", *resume.PrimaryRole))
	}
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := resume.Experience[i]
			line := entry.JobTitle
			if entry.Company != nil && *entry.Company != "" {
				line += fmt.Sprintf(" @ %s", *entry.Company)
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
			if entry.StartDate != nil && *entry.StartDate != "" {
				period := *entry.StartDate
				if entry.EndDate != nil && *entry.EndDate != "" {
					period += " to " + *entry.EndDate
				}
				sb.WriteString(fmt.Sprintf("    %s\n", period))
			}
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	if len(resume.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, entry := range resume.Education {
			line := entry.Degree
			if entry.Institution != nil && *entry.Institution != "" {
				line += fmt.Sprintf(", %s", *entry.Institution)
			}
			if entry.Year != "" {
				line += fmt.Sprintf(" (%s)", entry.Year)
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
	}

	if resume.Skills.Total() > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills (%d across %d categories):\n",
			resume.Skills.Total(), resume.Skills.CategoriesCovered()))
		skills := strings.Join(resume.Skills.All(), ", ")
		if len(skills) > 100 {
			skills = skills[:97] + "..."
		}
		for _, line := range wrapLine(skills, boxWidth-8) {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityReport outputs the content quality score breakdown.
func (p *Printer) PrintQualityReport(report *types.QualityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %d/100  (grade %s)\n", report.Score, report.Grade))

	if len(report.Breakdown) > 0 {
		sb.WriteString("\nBreakdown:\n")
		categories := make([]string, 0, len(report.Breakdown))
		for category := range report.Breakdown {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			row := report.Breakdown[category]
			sb.WriteString(fmt.Sprintf("  %-14s %3d/%d\n", category, row.Score, row.Max))
		}
	}

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", report.Issues[i]))
		}
		if len(report.Issues) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
		}
	}

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(report.Strengths), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", report.Strengths[i]))
		}
	}

	p.printBox("QUALITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAtsReport outputs the machine-readability assessment.
func (p *Printer) PrintAtsReport(report *types.AtsReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	verdict := "⚠ needs work"
	if report.AtsFriendly {
		verdict = "✅ ATS friendly"
	}
	sb.WriteString(fmt.Sprintf("Score:  %d/100  (%s)  %s\n", report.Score, report.Grade, verdict))

	density := report.KeywordDensity
	sb.WriteString(fmt.Sprintf("Keywords: %d skills / %d words (%.1f per 100)\n",
		density.TotalSkills, density.WordCount, density.SkillsPer100Words))

	if len(report.CriticalIssues) > 0 {
		sb.WriteString("\nCritical issues:\n")
		for _, issue := range report.CriticalIssues {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", issue))
		}
	}

	if len(report.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		count := min(len(report.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", report.Warnings[i]))
		}
		if len(report.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Warnings)-maxItemsToShow))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Recommendations[i]))
		}
		if len(report.Recommendations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-3))
		}
	}

	p.printBox("ATS REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// wrapLine splits a comma-separated line into chunks that fit the box.
func wrapLine(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}

	var lines []string
	for len(s) > width {
		cut := strings.LastIndex(s[:width], ", ")
		if cut <= 0 {
			cut = width
		} else {
			cut += 1 // keep the comma on the current line
		}
		lines = append(lines, strings.TrimSpace(s[:cut]))
		s = strings.TrimSpace(s[cut:])
	}
	if s != "" {
		lines = append(lines, s)
	}
	return lines
}
