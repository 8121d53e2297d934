package checks

import (
	"fmt"
	"regexp"

	"github.com/agentlint/agentlint/internal/domain"
)

// secretKeyNames are credential-indicating identifiers searched for
// assignment patterns like `api_key = "sk-123"` or `password: hunter2`.
var secretKeyNames = []string{
	`api[_-]?key`,
	`password`,
	`secret`,
	`token`,
	`private[_-]?key`,
}

var credentialRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(secretKeyNames))
	for i, name := range secretKeyNames {
		res[i] = regexp.MustCompile(`(?i)` + name + `\s*[=:]\s*["']?[^"'\s]+`)
	}
	return res
}()

// Credentials flags potential credential exposure: one critical issue per
// matching secret pattern, regardless of how often it occurs. When no
// pattern matches, a single passed entry is recorded.
func Credentials(text, label string) Outcome {
	var out Outcome
	for i, re := range credentialRes {
		if !re.MatchString(text) {
			continue
		}
		out.Failed = append(out.Failed, domain.Issue{
			CheckName:  "Security - Exposed Credentials",
			Severity:   domain.SeverityCritical,
			Message:    fmt.Sprintf("Potential credential exposure: %s", secretKeyNames[i]),
			AgentLabel: label,
			Suggestion: "Remove hardcoded credentials and use environment variables",
		})
	}
	if len(out.Failed) == 0 {
		return passed("Security: No exposed credentials")
	}
	return out
}
