// Package checks implements the quality rule battery for agent output text.
// Every check is a pure function of its input text: it never fails, performs
// no I/O, and contributes at most one passed label or one issue per output.
package checks

import "github.com/agentlint/agentlint/internal/domain"

// Outcome is what one or more checks contribute to a Result. Lists keep
// the order in which entries were appended.
type Outcome struct {
	Passed   []string
	Warnings []domain.Issue
	Failed   []domain.Issue
}

// Merge returns a new Outcome with other's entries appended after o's.
func (o Outcome) Merge(other Outcome) Outcome {
	return Outcome{
		Passed:   append(append([]string{}, o.Passed...), other.Passed...),
		Warnings: append(append([]domain.Issue{}, o.Warnings...), other.Warnings...),
		Failed:   append(append([]domain.Issue{}, o.Failed...), other.Failed...),
	}
}

func passed(label string) Outcome {
	return Outcome{Passed: []string{label}}
}

func warning(issue domain.Issue) Outcome {
	return Outcome{Warnings: []domain.Issue{issue}}
}

func critical(issue domain.Issue) Outcome {
	return Outcome{Failed: []domain.Issue{issue}}
}

// Battery is the fixed ordered list of quality checks built from one Config.
// The zero value is unusable; construct with NewBattery.
type Battery struct {
	cfg domain.Config
}

// NewBattery builds the check battery for the given quality criteria.
func NewBattery(cfg domain.Config) Battery {
	return Battery{cfg: cfg}
}

// Evaluate runs every enabled check against a single output text.
// Checks run in a fixed order: length, placeholders, code examples,
// recommendations, technical depth, structure, vagueness.
func (b Battery) Evaluate(text, label string) Outcome {
	out := MinLength(text, label, b.cfg.MinOutputLength)
	if b.cfg.CheckPlaceholders {
		out = out.Merge(Placeholders(text, label))
	}
	if b.cfg.RequireCodeExamples {
		out = out.Merge(CodeExamples(text, label))
	}
	if b.cfg.RequireRecommendations {
		out = out.Merge(Recommendations(text, label))
	}
	out = out.Merge(TechnicalDepth(text, label))
	out = out.Merge(Structure(text, label))
	out = out.Merge(Vagueness(text, label))
	return out
}

// EvaluateProduction runs the production-readiness checks against a single
// output text: credential exposure and cost awareness.
func EvaluateProduction(text, label string) Outcome {
	return Credentials(text, label).Merge(CostAwareness(text, label))
}
