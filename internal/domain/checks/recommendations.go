package checks

import (
	"strings"

	"github.com/agentlint/agentlint/internal/domain"
)

// actionableKeywords mark an output as carrying concrete guidance.
var actionableKeywords = []string{
	"recommendation", "suggest", "should", "consider", "step 1", "step 2",
}

// Recommendations fails critically when the output contains none of the
// actionable keywords.
func Recommendations(text, label string) Outcome {
	lower := strings.ToLower(text)
	for _, kw := range actionableKeywords {
		if strings.Contains(lower, kw) {
			return passed(label + ": Has recommendations")
		}
	}
	return critical(domain.Issue{
		CheckName:  "Actionable Recommendations",
		Severity:   domain.SeverityCritical,
		Message:    "Output lacks specific, actionable recommendations",
		AgentLabel: label,
		Suggestion: "Provide clear, numbered recommendations or action items",
	})
}
