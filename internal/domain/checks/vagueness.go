package checks

import (
	"fmt"
	"strings"

	"github.com/agentlint/agentlint/internal/domain"
)

// vaguePhrases are hedges that dilute recommendations. The check sums
// occurrence counts, not distinct phrases.
var vaguePhrases = []string{
	"may want to", "could consider", "might be good",
	"perhaps", "possibly", "maybe", "sort of", "kind of",
}

const maxVagueCount = 5

// Vagueness warns when the total count of hedging phrases exceeds five.
func Vagueness(text, label string) Outcome {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range vaguePhrases {
		count += strings.Count(lower, phrase)
	}
	if count > maxVagueCount {
		return warning(domain.Issue{
			CheckName:  "Specificity",
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("Output contains %d vague phrases - lacks decisiveness", count),
			AgentLabel: label,
			Suggestion: "Use more definitive language and specific recommendations",
		})
	}
	return passed(label + ": Specific language")
}
