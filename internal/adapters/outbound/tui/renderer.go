package tui

import (
	"fmt"
	"strings"

	"github.com/agentlint/agentlint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle        = lipgloss.NewStyle().Foreground(dim)
	faintStyle      = lipgloss.NewStyle().Foreground(faint)
	passStyle       = lipgloss.NewStyle().Foreground(success)
	failStyle       = lipgloss.NewStyle().Foreground(danger)
	warnStyle       = lipgloss.NewStyle().Foreground(warning)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(fg)
	criticalTag     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warningTag      = lipgloss.NewStyle().Foreground(warning).Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine   = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderResult formats a validation result as a multi-section terminal
// report: status and score, check counts, critical issues, then warnings.
// Issues keep the order in which the checks appended them.
func RenderResult(result domain.Result) string {
	var b strings.Builder

	title := headerStyle.Render("agentlint")
	subtitle := dimStyle.Render("Quality Validation Results")

	status := failStyle.Bold(true).Render("FAILED")
	if result.IsValid {
		status = passStyle.Bold(true).Render("PASSED")
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(result.Score)).
		Render(fmt.Sprintf("%.1f / 100", result.Score))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + status + "  " + scoreStyled))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Checks") + "\n")
	fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("●"),
		dimStyle.Render(fmt.Sprintf("%d passed", len(result.Passed))))
	fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("●"),
		dimStyle.Render(fmt.Sprintf("%d critical", result.CriticalCount())))
	fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("●"),
		dimStyle.Render(fmt.Sprintf("%d warnings", len(result.Warnings))))

	if len(result.Failed) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString("  " + criticalTag.Render("Critical Issues") + "\n\n")
		for _, issue := range result.Failed {
			renderIssue(&b, issue, failStyle)
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString("  " + warningTag.Render("Warnings") + "\n\n")
		for _, issue := range result.Warnings {
			renderIssue(&b, issue, warnStyle)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.Issue, tag lipgloss.Style) {
	name := issue.CheckName
	if issue.AgentLabel != "" {
		name = issue.AgentLabel + " · " + name
	}
	fmt.Fprintf(b, "    %s %s\n", tag.Render("•"), titleStyle.Render(name))
	fmt.Fprintf(b, "      %s\n", dimStyle.Render(issue.Message))
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "      %s\n", suggestionStyle.Render("↳ "+issue.Suggestion))
	}
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

// RenderHistory formats saved report entries for terminal output.
func RenderHistory(entries []domain.ReportEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No report history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Report History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		verdict := failStyle.Render("invalid")
		if e.IsValid {
			verdict = passStyle.Render("valid")
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%5.1f/100", e.Score))

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			verdict,
		)
	}

	return b.String()
}
