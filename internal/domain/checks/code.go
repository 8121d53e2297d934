package checks

import (
	"regexp"
	"strings"

	"github.com/agentlint/agentlint/internal/domain"
)

var codeBlockRe = regexp.MustCompile("(?s)```.*?```")

// technicalRoles are label fragments that mark an output as technical and
// therefore expected to carry code examples.
var technicalRoles = []string{"engineer", "developer", "architect"}

// CodeExamples warns when a technical agent's output has no fenced code
// block. Non-technical labels are skipped entirely: no passed entry and no
// warning is recorded for them.
func CodeExamples(text, label string) Outcome {
	hasCode := codeBlockRe.MatchString(text)
	if hasCode {
		return passed(label + ": Code examples present")
	}
	if !isTechnicalRole(label) {
		return Outcome{}
	}
	return warning(domain.Issue{
		CheckName:  "Code Examples",
		Severity:   domain.SeverityWarning,
		Message:    "No code examples found in technical output",
		AgentLabel: label,
		Suggestion: "Include code snippets to demonstrate recommended approaches",
	})
}

func isTechnicalRole(label string) bool {
	lower := strings.ToLower(label)
	for _, role := range technicalRoles {
		if strings.Contains(lower, role) {
			return true
		}
	}
	return false
}
