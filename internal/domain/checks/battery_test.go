package checks_test

import (
	"strings"
	"testing"

	"github.com/agentlint/agentlint/internal/domain"
	"github.com/agentlint/agentlint/internal/domain/checks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poorOutput = "I think you should maybe use FastAPI or perhaps Django. TODO: add more details here."

func TestBattery_PoorOutputScenario(t *testing.T) {
	battery := checks.NewBattery(domain.DefaultConfig())

	out := battery.Evaluate(poorOutput, "Agent")
	result := domain.NewResult(out.Passed, out.Failed, out.Warnings)

	require.False(t, result.IsValid)

	// Too short and contains "TODO:".
	require.Len(t, result.Failed, 2)
	assert.Equal(t, "Minimum Length", result.Failed[0].CheckName)
	assert.Equal(t, "Placeholder Detection", result.Failed[1].CheckName)

	// Low depth tally and no markdown headers.
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "Technical Depth", result.Warnings[0].CheckName)
	assert.Equal(t, "Output Structure", result.Warnings[1].CheckName)

	// "should" satisfies the recommendation check; two hedges stay under
	// the vagueness limit.
	assert.Equal(t, []string{"Agent: Has recommendations", "Agent: Specific language"}, result.Passed)
}

func TestBattery_GoodOutputPassesEverything(t *testing.T) {
	text := "# Plan\n\n## Recommendations\n\nSpecifically, step 1: do this. For example:\n\n```go\nfunc main() {}\n```\n" +
		strings.Repeat("Concrete detail about the implementation. ", 15)
	battery := checks.NewBattery(domain.DefaultConfig())

	out := battery.Evaluate(text, "Staff Engineer")
	result := domain.NewResult(out.Passed, out.Failed, out.Warnings)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Failed)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Passed, 7)
	assert.Equal(t, 100.0, result.Score)
}

func TestBattery_TogglesDisableChecks(t *testing.T) {
	cfg := domain.Config{
		MinOutputLength:        0,
		RequireCodeExamples:    false,
		RequireRecommendations: false,
		CheckPlaceholders:      false,
	}
	battery := checks.NewBattery(cfg)

	// Contains a placeholder and no recommendations, but those checks are
	// disabled; only length, depth, structure, vagueness run.
	out := battery.Evaluate("[YOUR_API_KEY] goes here", "Engineer")

	assert.Empty(t, out.Failed)
	total := len(out.Passed) + len(out.Warnings)
	assert.Equal(t, 4, total)
}

func TestBattery_EmptyTextIsDeterministic(t *testing.T) {
	battery := checks.NewBattery(domain.DefaultConfig())

	out := battery.Evaluate("", "Engineer")
	result := domain.NewResult(out.Passed, out.Failed, out.Warnings)

	// Length and recommendations fail; code, depth, structure warn;
	// placeholders and vagueness pass on the empty string.
	assert.False(t, result.IsValid)
	assert.Len(t, result.Failed, 2)
	assert.Len(t, result.Warnings, 3)
	assert.Len(t, result.Passed, 2)
}

func TestMinLength_ShortTextFailsRegardlessOfContent(t *testing.T) {
	out := checks.MinLength("# Perfect structure\n\nstep 1: recommendation", "Agent", 500)

	require.Len(t, out.Failed, 1)
	assert.Equal(t, domain.SeverityCritical, out.Failed[0].Severity)
	assert.Contains(t, out.Failed[0].Message, "minimum 500")
}

func TestMinLength_ExactThresholdPasses(t *testing.T) {
	text := strings.Repeat("a", 500)
	out := checks.MinLength(text, "Agent", 500)

	assert.Empty(t, out.Failed)
	assert.Equal(t, []string{"Agent: Minimum length"}, out.Passed)
}

func TestMinLength_CountsRunesNotBytes(t *testing.T) {
	text := strings.Repeat("é", 10)
	out := checks.MinLength(text, "Agent", 10)
	assert.Empty(t, out.Failed)
}

func TestOutcome_MergeKeepsOrder(t *testing.T) {
	a := checks.Outcome{Passed: []string{"first"}}
	b := checks.Outcome{Passed: []string{"second"}}

	merged := a.Merge(b)
	assert.Equal(t, []string{"first", "second"}, merged.Passed)

	// Merge returns fresh slices.
	merged.Passed[0] = "changed"
	assert.Equal(t, []string{"first"}, a.Passed)
}
