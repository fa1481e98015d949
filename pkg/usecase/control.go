package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type ControlUseCase struct {
	repo interfaces.Repository
}

func NewControlUseCase(repo interfaces.Repository) *ControlUseCase {
	return &ControlUseCase{
		repo: repo,
	}
}

// ControlInput carries the free-text fields of a control measure. They are
// all optional except the description.
type ControlInput struct {
	Description         string
	KeyControlIndicator string
	Target              string
	ResponsiblePerson   string
	Deadline            string
	Budget              string
}

// Create persists a new control measure. Sequence numbering is independent
// per control type under the same cause: the first preventive and the first
// corrective control are both number 1.
func (uc *ControlUseCase) Create(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID, controlType types.ControlMeasureType, input ControlInput) (*model.ControlMeasure, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}
	if input.Description == "" {
		return nil, goerr.New("control measure description is required")
	}
	if !controlType.IsValid() {
		return nil, goerr.Wrap(types.ErrInvalidEnum, "unknown control type", goerr.V("control_type", controlType))
	}

	cause, err := uc.repo.RiskCause().Get(ctx, tenant, causeID)
	if err != nil {
		return nil, goerr.Wrap(ErrCauseNotFound, "risk cause not found", goerr.V(CauseIDKey, causeID))
	}

	siblings, err := uc.repo.ControlMeasure().ListByCause(ctx, tenant, causeID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list control measures", goerr.V(CauseIDKey, causeID))
	}

	control := &model.ControlMeasure{
		ID:                  types.NewControlMeasureID(),
		RiskCauseID:         causeID,
		PotentialRiskID:     cause.PotentialRiskID,
		GoalID:              cause.GoalID,
		Tenant:              tenant,
		ControlType:         controlType,
		Sequence:            model.NextControlSequence(siblings, controlType),
		Description:         input.Description,
		KeyControlIndicator: input.KeyControlIndicator,
		Target:              input.Target,
		ResponsiblePerson:   input.ResponsiblePerson,
		Deadline:            input.Deadline,
		Budget:              input.Budget,
	}

	created, err := uc.repo.ControlMeasure().Create(ctx, control)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create control measure", goerr.V(CauseIDKey, causeID))
	}
	return created, nil
}

// AcceptSuggestions turns raw provider output into persisted control
// measures. Sanitizing drops entries with an unusable type or empty text, so
// fewer controls than suggestions may come back; that is not an error.
func (uc *ControlUseCase) AcceptSuggestions(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID, raw []model.RawControlSuggestion) ([]*model.ControlMeasure, error) {
	suggestions := model.SanitizeControlSuggestions(raw)

	created := make([]*model.ControlMeasure, 0, len(suggestions))
	for _, s := range suggestions {
		control, err := uc.Create(ctx, tenant, causeID, s.ControlType, ControlInput{
			Description: s.Description,
		})
		if err != nil {
			return created, goerr.Wrap(err, "failed to accept control suggestion",
				goerr.V(CauseIDKey, causeID),
				goerr.V("accepted", len(created)))
		}
		created = append(created, control)
	}
	return created, nil
}

func (uc *ControlUseCase) Get(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) (*model.ControlMeasure, error) {
	control, err := uc.repo.ControlMeasure().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrControlNotFound, "control measure not found", goerr.V(ControlIDKey, id))
	}
	return control, nil
}

func (uc *ControlUseCase) ListByCause(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) ([]*model.ControlMeasure, error) {
	controls, err := uc.repo.ControlMeasure().ListByCause(ctx, tenant, causeID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list control measures", goerr.V(CauseIDKey, causeID))
	}
	return controls, nil
}

// Update changes the free-text fields. The control type and sequence are
// fixed at creation; changing the type would invalidate the per-type
// numbering.
func (uc *ControlUseCase) Update(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID, input ControlInput) (*model.ControlMeasure, error) {
	if input.Description == "" {
		return nil, goerr.New("control measure description is required")
	}

	existing, err := uc.repo.ControlMeasure().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrControlNotFound, "control measure not found", goerr.V(ControlIDKey, id))
	}

	existing.Description = input.Description
	existing.KeyControlIndicator = input.KeyControlIndicator
	existing.Target = input.Target
	existing.ResponsiblePerson = input.ResponsiblePerson
	existing.Deadline = input.Deadline
	existing.Budget = input.Budget

	updated, err := uc.repo.ControlMeasure().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update control measure", goerr.V(ControlIDKey, id))
	}
	return updated, nil
}

// Delete removes a single control measure. Controls have no children, so
// there is no cascade.
func (uc *ControlUseCase) Delete(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) error {
	if err := uc.repo.ControlMeasure().Delete(ctx, tenant, id); err != nil {
		return goerr.Wrap(ErrControlNotFound, "control measure not found", goerr.V(ControlIDKey, id))
	}
	return nil
}
