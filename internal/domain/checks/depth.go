package checks

import (
	"fmt"
	"strings"

	"github.com/agentlint/agentlint/internal/domain"
)

// qualityIndicators are phrases that signal actionable, specific guidance.
// Each contributes at most one point to the depth tally.
var qualityIndicators = []string{
	"specifically",
	"for example",
	"here's how",
	"step 1",
	"recommendation",
	"implementation",
	"```", // code blocks
}

// TechnicalDepth warns when fewer than two quality indicators appear in the
// output.
func TechnicalDepth(text, label string) Outcome {
	lower := strings.ToLower(text)
	tally := 0
	for _, indicator := range qualityIndicators {
		if strings.Contains(lower, indicator) {
			tally++
		}
	}
	if tally < 2 {
		return warning(domain.Issue{
			CheckName:  "Technical Depth",
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("Output may lack technical depth (quality score: %d/10)", tally),
			AgentLabel: label,
			Suggestion: "Include more specific examples, code snippets, or detailed explanations",
		})
	}
	return passed(label + ": Sufficient technical depth")
}
