package checks

import (
	"fmt"
	"regexp"

	"github.com/agentlint/agentlint/internal/domain"
)

// redFlagPatterns are markers of hallucinated or placeholder content,
// scanned in order.
var redFlagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)I don't have enough information`),
	regexp.MustCompile(`(?i)As an AI`),
	regexp.MustCompile(`(?i)I cannot`),
	regexp.MustCompile(`(?i)I apologize.*cannot`),
	regexp.MustCompile(`(?i)\[YOUR_.*?\]`), // e.g. [YOUR_API_KEY]
	regexp.MustCompile(`(?i)\{.*?PLACEHOLDER.*?\}`),
	regexp.MustCompile(`(?i)<INSERT.*?>`),
	regexp.MustCompile(`(?i)TODO:`),
	regexp.MustCompile(`(?i)FIXME`),
	regexp.MustCompile(`(?i)XXX`),
}

const excerptLimit = 50

// Placeholders scans for hallucination and placeholder markers. The scan
// stops at the first matching pattern, so an output with several distinct
// markers reports a single issue.
func Placeholders(text, label string) Outcome {
	for _, pattern := range redFlagPatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		if len(match) > excerptLimit {
			match = match[:excerptLimit]
		}
		return critical(domain.Issue{
			CheckName:  "Placeholder Detection",
			Severity:   domain.SeverityCritical,
			Message:    fmt.Sprintf("Found placeholder or low-quality content: %s", match),
			AgentLabel: label,
			Suggestion: "Remove placeholders and provide specific, concrete recommendations",
		})
	}
	return passed(label + ": No placeholders")
}
