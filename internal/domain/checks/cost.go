package checks

import (
	"strings"
	"unicode/utf8"

	"github.com/agentlint/agentlint/internal/domain"
)

var costKeywords = []string{"cost", "pricing", "budget", "expense", "rate limit"}

// costLengthGate keeps short outputs from being flagged: only substantial
// outputs are expected to discuss cost.
const costLengthGate = 1000

// CostAwareness warns when a long output never mentions cost, pricing, or
// rate limits. Outputs at or under the length gate always pass.
func CostAwareness(text, label string) Outcome {
	lower := strings.ToLower(text)
	for _, kw := range costKeywords {
		if strings.Contains(lower, kw) {
			return passed("Cost awareness: Present")
		}
	}
	if utf8.RuneCountInString(text) > costLengthGate {
		return warning(domain.Issue{
			CheckName:  "Cost Awareness",
			Severity:   domain.SeverityWarning,
			Message:    "No cost or budget considerations mentioned",
			AgentLabel: label,
			Suggestion: "Include estimated costs for API calls, infrastructure, etc.",
		})
	}
	return passed("Cost awareness: Present")
}
