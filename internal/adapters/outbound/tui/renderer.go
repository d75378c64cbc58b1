package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	pathStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	failTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(warning)
)

// RenderDiscovery renders the verbose line announcing discovered filter files.
func RenderDiscovery(count int) string {
	return dimLine(fmt.Sprintf("Found %d .slnf files in current directory", count))
}

// RenderProcessing renders the verbose line that opens a file's narration.
func RenderProcessing(path string) string {
	return titleStyle.Render(fmt.Sprintf("Processing %s...", path)) + "\n"
}

// RenderFileReport renders the verbose narration of one result. A check that
// did not run is left out entirely.
func RenderFileReport(result *domain.ValidationResult, checks domain.CheckOptions) string {
	var b strings.Builder

	if !result.SolutionExists {
		b.WriteString(failStyle.Render("Parent solution file not found: "+result.SolutionPath) + "\n")
		return b.String()
	}

	b.WriteString("Parent solution file: " + pathStyle.Render(result.SolutionPath) + "\n")

	projects := result.Projects()
	b.WriteString(headingStyle.Render(fmt.Sprintf("Projects in .slnf file (%d):", len(projects))) + "\n")
	writeList(&b, "  ", projects, pathStyle)
	b.WriteString("\n")

	if !checks.SkipSolutionCheck {
		writeOutcome(&b, result.MissingFromSolution,
			"All projects exist in the parent solution",
			"Projects missing from parent solution:")
	}
	if !checks.SkipDiskCheck {
		writeOutcome(&b, result.MissingFromDisk,
			"All project files exist on disk",
			"Projects missing from disk:")
	}

	return b.String()
}

// RenderSuccess renders the closing line of a clean verbose run.
func RenderSuccess() string {
	return passStyle.Render("All files validated successfully") + "\n"
}

// RenderFailureSummary renders every failing result, each followed by a
// blank line. Results without issues are skipped.
func RenderFailureSummary(results []*domain.ValidationResult) string {
	var b strings.Builder

	for _, r := range results {
		if !r.HasIssues() {
			continue
		}
		b.WriteString(failTagStyle.Render(fmt.Sprintf("Validation failed for %s:", r.FilterPath)) + "\n")

		if !r.SolutionExists {
			b.WriteString("  " + failStyle.Render("Parent solution file not found: "+r.SolutionPath) + "\n")
		} else {
			if len(r.MissingFromSolution) > 0 {
				b.WriteString("  " + headingStyle.Render("Projects missing from parent solution:") + "\n")
				writeList(&b, "    ", r.MissingFromSolution, failStyle)
			}
			if len(r.MissingFromDisk) > 0 {
				b.WriteString("  " + headingStyle.Render("Projects missing from disk:") + "\n")
				writeList(&b, "    ", r.MissingFromDisk, failStyle)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderFileError renders a per-file error such as an unreadable filter.
func RenderFileError(path string, err error) string {
	return failStyle.Render(fmt.Sprintf("Error validating %s: %v", path, err)) + "\n"
}

// RenderNoFilesWarning renders the warning printed when discovery finds nothing.
func RenderNoFilesWarning() string {
	return warnStyle.Render("Warning: No .slnf files found in the current directory.") + "\n"
}

// RenderUnknownOption renders the warning for an unrecognized command-line option.
func RenderUnknownOption(token string) string {
	return warnStyle.Render("Unknown option: "+token) + "\n"
}

func writeOutcome(b *strings.Builder, missing []string, okText, missingText string) {
	if len(missing) == 0 {
		b.WriteString(passStyle.Render(okText) + "\n")
		return
	}
	b.WriteString(headingStyle.Render(missingText) + "\n")
	writeList(b, "  ", missing, failStyle)
}

func writeList(b *strings.Builder, indent string, items []string, style lipgloss.Style) {
	for _, item := range items {
		b.WriteString(indent + style.Render(item) + "\n")
	}
}

func dimLine(s string) string {
	return pathStyle.Render(s) + "\n"
}
