package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type RiskUseCase struct {
	repo interfaces.Repository
}

func NewRiskUseCase(repo interfaces.Repository) *RiskUseCase {
	return &RiskUseCase{
		repo: repo,
	}
}

// ClassifiedRisk is the read model of a potential risk with its derived
// score and level attached. The classification is computed on read and never
// stored.
type ClassifiedRisk struct {
	*model.PotentialRisk
	Score *int
	Level types.RiskLevel
}

func (uc *RiskUseCase) Create(ctx context.Context, tenant model.Tenant, goalID types.GoalID, description string, category *types.RiskCategory, owner string) (*model.PotentialRisk, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, goerr.New("potential risk description is required")
	}
	if category != nil && !category.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown risk category", goerr.V("category", *category))
	}

	if _, err := uc.repo.Goal().Get(ctx, tenant, goalID); err != nil {
		return nil, goerr.Wrap(ErrGoalNotFound, "goal not found", goerr.V(GoalIDKey, goalID))
	}

	siblings, err := uc.repo.PotentialRisk().ListByGoal(ctx, tenant, goalID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list potential risks", goerr.V(GoalIDKey, goalID))
	}

	risk := &model.PotentialRisk{
		ID:          types.NewPotentialRiskID(),
		GoalID:      goalID,
		Tenant:      tenant,
		Sequence:    model.NextRiskSequence(siblings),
		Description: description,
		Category:    category,
		Owner:       owner,
	}

	created, err := uc.repo.PotentialRisk().Create(ctx, risk)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create potential risk", goerr.V(GoalIDKey, goalID))
	}
	return created, nil
}

func (uc *RiskUseCase) Get(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) (*model.PotentialRisk, error) {
	risk, err := uc.repo.PotentialRisk().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, id))
	}
	return risk, nil
}

func (uc *RiskUseCase) ListByGoal(ctx context.Context, tenant model.Tenant, goalID types.GoalID) ([]*model.PotentialRisk, error) {
	risks, err := uc.repo.PotentialRisk().ListByGoal(ctx, tenant, goalID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list potential risks", goerr.V(GoalIDKey, goalID))
	}
	return risks, nil
}

func (uc *RiskUseCase) Update(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID, description string, category *types.RiskCategory, owner string) (*model.PotentialRisk, error) {
	if description == "" {
		return nil, goerr.New("potential risk description is required")
	}
	if category != nil && !category.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown risk category", goerr.V("category", *category))
	}

	existing, err := uc.repo.PotentialRisk().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, id))
	}

	existing.Description = description
	existing.Category = category
	existing.Owner = owner

	updated, err := uc.repo.PotentialRisk().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update potential risk", goerr.V(RiskIDKey, id))
	}
	return updated, nil
}

// SetAnalysis records the likelihood/impact assessment of a risk. Either
// side may be nil, meaning that half of the analysis is still pending; a
// non-nil value must be a member of its scale.
func (uc *RiskUseCase) SetAnalysis(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID, likelihood *types.Likelihood, impact *types.Impact) (*model.PotentialRisk, error) {
	if likelihood != nil && !likelihood.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown likelihood level", goerr.V("likelihood", *likelihood))
	}
	if impact != nil && !impact.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown impact level", goerr.V("impact", *impact))
	}

	existing, err := uc.repo.PotentialRisk().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, id))
	}

	existing.Likelihood = likelihood
	existing.Impact = impact

	updated, err := uc.repo.PotentialRisk().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update potential risk analysis", goerr.V(RiskIDKey, id))
	}
	return updated, nil
}

// Delete removes the risk and its causes and controls beneath it.
func (uc *RiskUseCase) Delete(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) (*model.CascadeReport, error) {
	if _, err := uc.repo.PotentialRisk().Get(ctx, tenant, id); err != nil {
		return nil, goerr.Wrap(ErrRiskNotFound, "potential risk not found", goerr.V(RiskIDKey, id))
	}

	report := &model.CascadeReport{}
	if err := deleteRiskCascade(ctx, uc.repo, tenant, id, report); err != nil {
		return report, err
	}
	return report, nil
}

// Classified attaches the derived score and level to a risk. An incomplete
// analysis yields a nil score and level N/A; an out-of-scale persisted value
// is a data-integrity error.
func (uc *RiskUseCase) Classified(risk *model.PotentialRisk) (*ClassifiedRisk, error) {
	c, err := model.Classify(risk.Likelihood, risk.Impact)
	if err != nil {
		return nil, goerr.Wrap(err, "corrupt risk analysis", goerr.V(RiskIDKey, risk.ID))
	}
	return &ClassifiedRisk{
		PotentialRisk: risk,
		Score:         c.Score,
		Level:         c.Level,
	}, nil
}

// ListClassifiedByGoal returns all risks of a goal with classifications
// attached.
func (uc *RiskUseCase) ListClassifiedByGoal(ctx context.Context, tenant model.Tenant, goalID types.GoalID) ([]*ClassifiedRisk, error) {
	risks, err := uc.ListByGoal(ctx, tenant, goalID)
	if err != nil {
		return nil, err
	}

	classified := make([]*ClassifiedRisk, 0, len(risks))
	for _, risk := range risks {
		c, err := uc.Classified(risk)
		if err != nil {
			return nil, err
		}
		classified = append(classified, c)
	}
	return classified, nil
}
