package checks

import (
	"fmt"
	"unicode/utf8"

	"github.com/agentlint/agentlint/internal/domain"
)

// MinLength fails critically when the output is shorter than min characters.
func MinLength(text, label string, min int) Outcome {
	n := utf8.RuneCountInString(text)
	if n < min {
		return critical(domain.Issue{
			CheckName:  "Minimum Length",
			Severity:   domain.SeverityCritical,
			Message:    fmt.Sprintf("Output too short (%d chars, minimum %d)", n, min),
			AgentLabel: label,
			Suggestion: "Agent should provide more detailed analysis and recommendations",
		})
	}
	return passed(label + ": Minimum length")
}
