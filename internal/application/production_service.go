package application

import (
	"github.com/agentlint/agentlint/internal/domain"
	"github.com/agentlint/agentlint/internal/domain/checks"
)

// ProductionService runs the production-readiness checks (credential
// exposure, cost awareness) over agent outputs. It shares the Issue/Result
// model with the base battery so results can be combined.
type ProductionService struct{}

func NewProductionService() *ProductionService {
	return &ProductionService{}
}

// ValidateSource runs the production checks against every output supplied
// by src.
func (s *ProductionService) ValidateSource(src domain.OutputSource) (domain.Result, error) {
	if src == nil {
		return domain.Result{}, ErrNoSource
	}
	var out checks.Outcome
	for _, o := range src.Outputs() {
		out = out.Merge(checks.EvaluateProduction(o.Text, o.AgentLabel))
	}
	return domain.NewResult(out.Passed, out.Failed, out.Warnings), nil
}

// ValidateText runs the production checks against a single output text.
func (s *ProductionService) ValidateText(text, label string) domain.Result {
	out := checks.EvaluateProduction(text, label)
	return domain.NewResult(out.Passed, out.Failed, out.Warnings)
}
