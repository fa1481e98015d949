package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// SuggestUseCase resolves the entities a suggestion needs context from and
// delegates to the provider. A missing entity is an error; a misbehaving
// provider is not, because the service layer already converts provider
// failures into sanitized fallback values.
type SuggestUseCase struct {
	repo    interfaces.Repository
	service interfaces.SuggestionService
}

func NewSuggestUseCase(repo interfaces.Repository, service interfaces.SuggestionService) *SuggestUseCase {
	return &SuggestUseCase{
		repo:    repo,
		service: service,
	}
}

// Enabled reports whether a suggestion provider is configured
func (uc *SuggestUseCase) Enabled() bool {
	return uc.service != nil
}

func (uc *SuggestUseCase) Causes(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID) ([]model.CauseSuggestion, error) {
	if uc.service == nil {
		return nil, goerr.Wrap(ErrSuggestionUnavailable, "cannot suggest causes")
	}

	risk, err := uc.repo.PotentialRisk().Get(ctx, tenant, riskID)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, riskID))
	}
	goal, err := uc.repo.Goal().Get(ctx, tenant, risk.GoalID)
	if err != nil {
		return nil, goerr.Wrap(ErrGoalNotFound, "goal not found", goerr.V(GoalIDKey, risk.GoalID))
	}

	return uc.service.SuggestCauses(ctx, goal, risk)
}

func (uc *SuggestUseCase) CauseAnalysis(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) (model.AnalysisSuggestion, error) {
	risk, cause, err := uc.causeContext(ctx, tenant, causeID)
	if err != nil {
		return model.AnalysisSuggestion{}, err
	}
	return uc.service.SuggestCauseAnalysis(ctx, risk, cause)
}

func (uc *SuggestUseCase) Controls(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) ([]model.ControlSuggestion, error) {
	risk, cause, err := uc.causeContext(ctx, tenant, causeID)
	if err != nil {
		return nil, err
	}
	return uc.service.SuggestControls(ctx, risk, cause)
}

func (uc *SuggestUseCase) KRI(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) (model.KRISuggestion, error) {
	risk, cause, err := uc.causeContext(ctx, tenant, causeID)
	if err != nil {
		return model.KRISuggestion{}, err
	}
	return uc.service.SuggestKRI(ctx, risk, cause)
}

func (uc *SuggestUseCase) causeContext(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) (*model.PotentialRisk, *model.RiskCause, error) {
	if uc.service == nil {
		return nil, nil, goerr.Wrap(ErrSuggestionUnavailable, "cannot generate suggestion")
	}

	cause, err := uc.repo.RiskCause().Get(ctx, tenant, causeID)
	if err != nil {
		return nil, nil, goerr.Wrap(ErrCauseNotFound, "risk cause not found", goerr.V(CauseIDKey, causeID))
	}
	risk, err := uc.repo.PotentialRisk().Get(ctx, tenant, cause.PotentialRiskID)
	if err != nil {
		return nil, nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, cause.PotentialRiskID))
	}
	return risk, cause, nil
}
