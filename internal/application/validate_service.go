package application

import (
	"errors"

	"github.com/agentlint/agentlint/internal/domain"
	"github.com/agentlint/agentlint/internal/domain/checks"
)

// ErrNoSource is returned by the source-driven entry points when no output
// source was supplied. It is raised before any check runs.
var ErrNoSource = errors.New(
	"no output source provided: wrap your pipeline's outputs in a domain.OutputSource " +
		"(domain.OutputList adapts a plain slice) and pass it to ValidateSource")

// ValidateService runs the base quality battery over agent outputs and
// aggregates the outcomes into a single Result.
type ValidateService struct {
	battery checks.Battery
}

// NewValidateService builds a service with the given quality criteria.
func NewValidateService(cfg domain.Config) *ValidateService {
	return &ValidateService{battery: checks.NewBattery(cfg)}
}

// ValidateSource validates every output supplied by src, in order, and
// folds all outcomes into one Result.
func (s *ValidateService) ValidateSource(src domain.OutputSource) (domain.Result, error) {
	if src == nil {
		return domain.Result{}, ErrNoSource
	}
	var out checks.Outcome
	for _, o := range src.Outputs() {
		out = out.Merge(s.battery.Evaluate(o.Text, o.AgentLabel))
	}
	return domain.NewResult(out.Passed, out.Failed, out.Warnings), nil
}

// ValidateText validates a single output text.
func (s *ValidateService) ValidateText(text, label string) domain.Result {
	out := s.battery.Evaluate(text, label)
	return domain.NewResult(out.Passed, out.Failed, out.Warnings)
}
