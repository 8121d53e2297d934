package domain

// Severity classifies how strongly an issue affects the verdict.
type Severity string

const (
	// SeverityCritical blocks production use; any critical issue makes the
	// result invalid.
	SeverityCritical Severity = "critical"
	// SeverityWarning lowers the score but never blocks validity.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks an improvement suggestion.
	SeverityInfo Severity = "info"
)

// Issue represents a single flagged condition produced by one check.
// Issues are value types and never mutated after creation.
type Issue struct {
	CheckName  string   `json:"check_name"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	AgentLabel string   `json:"agent_label,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Result aggregates the outcome of running the check battery over one or
// more agent outputs. Passed holds human-readable labels of checks that
// succeeded; Failed and Warnings hold issues in the order they were found.
type Result struct {
	IsValid  bool     `json:"is_valid"`
	Passed   []string `json:"passed_checks"`
	Failed   []Issue  `json:"failed_checks"`
	Warnings []Issue  `json:"warnings"`
	Score    float64  `json:"score"`
}

// NewResult derives score and validity from the three outcome lists.
// Score weighs passed checks at 100%, warnings at 50%, failures at 0%.
func NewResult(passed []string, failed, warnings []Issue) Result {
	return Result{
		IsValid:  countCritical(failed) == 0,
		Passed:   passed,
		Failed:   failed,
		Warnings: warnings,
		Score:    computeScore(len(passed), len(warnings), len(failed)),
	}
}

// Combine returns a fresh Result with other's outcomes appended after r's
// and score and validity recomputed. Neither operand is modified, so callers
// holding a reference to a pre-combine Result keep seeing its original
// contents.
func (r Result) Combine(other Result) Result {
	passed := make([]string, 0, len(r.Passed)+len(other.Passed))
	passed = append(passed, r.Passed...)
	passed = append(passed, other.Passed...)

	failed := make([]Issue, 0, len(r.Failed)+len(other.Failed))
	failed = append(failed, r.Failed...)
	failed = append(failed, other.Failed...)

	warnings := make([]Issue, 0, len(r.Warnings)+len(other.Warnings))
	warnings = append(warnings, r.Warnings...)
	warnings = append(warnings, other.Warnings...)

	return NewResult(passed, failed, warnings)
}

// CriticalCount reports how many critical issues the result carries.
func (r Result) CriticalCount() int {
	return countCritical(r.Failed)
}

func computeScore(passed, warnings, failed int) float64 {
	total := passed + warnings + failed
	if total == 0 {
		return 0
	}
	return (float64(passed)*100 + float64(warnings)*50) / float64(total)
}

func countCritical(issues []Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.Severity == SeverityCritical {
			n++
		}
	}
	return n
}

// ReportEntry is one saved validation run, kept in the project's report
// history.
type ReportEntry struct {
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash,omitempty"`
	Score      float64 `json:"score"`
	IsValid    bool    `json:"is_valid"`
}
