package application

import "github.com/agentlint/agentlint/internal/domain"

// QuickValidate runs the base battery with default criteria over src. In
// production mode the production-readiness result is combined into the base
// result; the combine is pure, so neither intermediate Result is mutated.
func QuickValidate(src domain.OutputSource, productionMode bool) (domain.Result, error) {
	result, err := NewValidateService(domain.DefaultConfig()).ValidateSource(src)
	if err != nil {
		return domain.Result{}, err
	}
	if !productionMode {
		return result, nil
	}
	prod, err := NewProductionService().ValidateSource(src)
	if err != nil {
		return domain.Result{}, err
	}
	return result.Combine(prod), nil
}
