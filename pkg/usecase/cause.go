package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type CauseUseCase struct {
	repo interfaces.Repository
}

func NewCauseUseCase(repo interfaces.Repository) *CauseUseCase {
	return &CauseUseCase{
		repo: repo,
	}
}

// ClassifiedCause is the read model of a risk cause with its derived score
// and level attached.
type ClassifiedCause struct {
	*model.RiskCause
	Score *int
	Level types.RiskLevel
}

func (uc *CauseUseCase) Create(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID, description string, source *types.RiskSource, kri, tolerance string) (*model.RiskCause, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, goerr.New("risk cause description is required")
	}
	if source != nil && !source.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown risk source", goerr.V("source", *source))
	}

	risk, err := uc.repo.PotentialRisk().Get(ctx, tenant, riskID)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, riskID))
	}

	siblings, err := uc.repo.RiskCause().ListByRisk(ctx, tenant, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risk causes", goerr.V(RiskIDKey, riskID))
	}

	cause := &model.RiskCause{
		ID:               types.NewRiskCauseID(),
		PotentialRiskID:  riskID,
		GoalID:           risk.GoalID,
		Tenant:           tenant,
		Sequence:         model.NextCauseSequence(siblings),
		Description:      description,
		Source:           source,
		KeyRiskIndicator: kri,
		RiskTolerance:    tolerance,
	}

	created, err := uc.repo.RiskCause().Create(ctx, cause)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk cause", goerr.V(RiskIDKey, riskID))
	}
	return created, nil
}

// AcceptSuggestions turns raw provider output into persisted causes. The
// input passes through the sanitizer first, so every entry is created even
// when its source was unusable; ordering follows the suggestion array.
func (uc *CauseUseCase) AcceptSuggestions(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID, raw []model.RawCauseSuggestion) ([]*model.RiskCause, error) {
	suggestions := model.SanitizeCauseSuggestions(raw)

	created := make([]*model.RiskCause, 0, len(suggestions))
	for _, s := range suggestions {
		cause, err := uc.Create(ctx, tenant, riskID, s.Description, s.Source, "", "")
		if err != nil {
			return created, goerr.Wrap(err, "failed to accept cause suggestion",
				goerr.V(RiskIDKey, riskID),
				goerr.V("accepted", len(created)))
		}
		created = append(created, cause)
	}
	return created, nil
}

func (uc *CauseUseCase) Get(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) (*model.RiskCause, error) {
	cause, err := uc.repo.RiskCause().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCauseNotFound, "risk cause not found", goerr.V(CauseIDKey, id))
	}
	return cause, nil
}

func (uc *CauseUseCase) ListByRisk(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID) ([]*model.RiskCause, error) {
	causes, err := uc.repo.RiskCause().ListByRisk(ctx, tenant, riskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risk causes", goerr.V(RiskIDKey, riskID))
	}
	return causes, nil
}

func (uc *CauseUseCase) Update(ctx context.Context, tenant model.Tenant, id types.RiskCauseID, description string, source *types.RiskSource, kri, tolerance string) (*model.RiskCause, error) {
	if description == "" {
		return nil, goerr.New("risk cause description is required")
	}
	if source != nil && !source.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown risk source", goerr.V("source", *source))
	}

	existing, err := uc.repo.RiskCause().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCauseNotFound, "risk cause not found", goerr.V(CauseIDKey, id))
	}

	existing.Description = description
	existing.Source = source
	existing.KeyRiskIndicator = kri
	existing.RiskTolerance = tolerance

	updated, err := uc.repo.RiskCause().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk cause", goerr.V(CauseIDKey, id))
	}
	return updated, nil
}

// SetAnalysis records the likelihood/impact assessment of a cause, with the
// same nil-able contract as RiskUseCase.SetAnalysis.
func (uc *CauseUseCase) SetAnalysis(ctx context.Context, tenant model.Tenant, id types.RiskCauseID, likelihood *types.Likelihood, impact *types.Impact) (*model.RiskCause, error) {
	if likelihood != nil && !likelihood.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown likelihood level", goerr.V("likelihood", *likelihood))
	}
	if impact != nil && !impact.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown impact level", goerr.V("impact", *impact))
	}

	existing, err := uc.repo.RiskCause().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrCauseNotFound, "risk cause not found", goerr.V(CauseIDKey, id))
	}

	existing.Likelihood = likelihood
	existing.Impact = impact

	updated, err := uc.repo.RiskCause().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update risk cause analysis", goerr.V(CauseIDKey, id))
	}
	return updated, nil
}

// Delete removes the cause and its control measures.
func (uc *CauseUseCase) Delete(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) (*model.CascadeReport, error) {
	if _, err := uc.repo.RiskCause().Get(ctx, tenant, id); err != nil {
		return nil, goerr.Wrap(ErrCauseNotFound, "risk cause not found", goerr.V(CauseIDKey, id))
	}

	report := &model.CascadeReport{}
	if err := deleteCauseCascade(ctx, uc.repo, tenant, id, report); err != nil {
		return report, err
	}
	return report, nil
}

// Classified attaches the derived score and level to a cause.
func (uc *CauseUseCase) Classified(cause *model.RiskCause) (*ClassifiedCause, error) {
	c, err := model.Classify(cause.Likelihood, cause.Impact)
	if err != nil {
		return nil, goerr.Wrap(err, "corrupt cause analysis", goerr.V(CauseIDKey, cause.ID))
	}
	return &ClassifiedCause{
		RiskCause: cause,
		Score:     c.Score,
		Level:     c.Level,
	}, nil
}
