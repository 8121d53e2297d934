package checks

import (
	"regexp"

	"github.com/agentlint/agentlint/internal/domain"
)

var headerRe = regexp.MustCompile(`(?m)^#{1,3}\s`)

// Structure warns when the output has no markdown section headers.
func Structure(text, label string) Outcome {
	if !headerRe.MatchString(text) {
		return warning(domain.Issue{
			CheckName:  "Output Structure",
			Severity:   domain.SeverityWarning,
			Message:    "Output lacks clear structure (headings, sections)",
			AgentLabel: label,
			Suggestion: "Use markdown headers to organize content into clear sections",
		})
	}
	return passed(label + ": Well-structured output")
}
