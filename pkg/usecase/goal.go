package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// goalCodeAttempts bounds the reject-and-retry loop for code assignment.
const goalCodeAttempts = 3

type GoalUseCase struct {
	repo interfaces.Repository
}

func NewGoalUseCase(repo interfaces.Repository) *GoalUseCase {
	return &GoalUseCase{
		repo: repo,
	}
}

// Create persists a new goal with a code derived from the live sibling set.
// Codes are assigned once and survive renames; a freed code is never handed
// out again because derivation takes max suffix + 1, not a count.
//
// The list-derive-create sequence is not atomic, so a concurrent creation can
// claim the same code. Create detects that after the write, rejects its own
// copy and retries with a fresh snapshot; after goalCodeAttempts rejections
// it gives up with ErrCodeConflict.
func (uc *GoalUseCase) Create(ctx context.Context, tenant model.Tenant, name, description string) (*model.Goal, error) {
	if err := tenant.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, goerr.New("goal name is required")
	}

	for range goalCodeAttempts {
		existing, err := uc.repo.Goal().List(ctx, tenant)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list goals", goerr.V(TenantKey, tenant.Key()))
		}

		goal := &model.Goal{
			ID:          types.NewGoalID(),
			Tenant:      tenant,
			Code:        model.NextGoalCode(name, existing),
			Name:        name,
			Description: description,
		}

		created, err := uc.repo.Goal().Create(ctx, goal)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create goal", goerr.V(TenantKey, tenant.Key()))
		}

		after, err := uc.repo.Goal().List(ctx, tenant)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to verify goal code", goerr.V(GoalIDKey, created.ID))
		}
		if !goalCodeTaken(after, created) {
			return created, nil
		}

		if err := uc.repo.Goal().Delete(ctx, tenant, created.ID); err != nil {
			return nil, goerr.Wrap(err, "failed to reject goal with conflicting code",
				goerr.V(GoalIDKey, created.ID),
				goerr.V("code", created.Code))
		}
	}

	return nil, goerr.Wrap(ErrCodeConflict, "could not assign a unique goal code",
		goerr.V(TenantKey, tenant.Key()),
		goerr.V("attempts", goalCodeAttempts))
}

// goalCodeTaken reports whether another goal holds the same code as the one
// just created.
func goalCodeTaken(goals []*model.Goal, created *model.Goal) bool {
	for _, g := range goals {
		if g.ID != created.ID && g.Code == created.Code {
			return true
		}
	}
	return false
}

func (uc *GoalUseCase) Get(ctx context.Context, tenant model.Tenant, id types.GoalID) (*model.Goal, error) {
	goal, err := uc.repo.Goal().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrGoalNotFound, "goal not found", goerr.V(GoalIDKey, id))
	}
	return goal, nil
}

func (uc *GoalUseCase) List(ctx context.Context, tenant model.Tenant) ([]*model.Goal, error) {
	goals, err := uc.repo.Goal().List(ctx, tenant)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list goals", goerr.V(TenantKey, tenant.Key()))
	}
	return goals, nil
}

// Update changes name and description. The code keeps its original value even
// when the new name would derive a different prefix.
func (uc *GoalUseCase) Update(ctx context.Context, tenant model.Tenant, id types.GoalID, name, description string) (*model.Goal, error) {
	if name == "" {
		return nil, goerr.New("goal name is required")
	}

	existing, err := uc.repo.Goal().Get(ctx, tenant, id)
	if err != nil {
		return nil, goerr.Wrap(ErrGoalNotFound, "goal not found", goerr.V(GoalIDKey, id))
	}

	existing.Name = name
	existing.Description = description

	updated, err := uc.repo.Goal().Update(ctx, existing)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update goal", goerr.V(GoalIDKey, id))
	}
	return updated, nil
}

// Delete removes the goal and everything beneath it, children before parents.
// The returned report lists what was removed; on a partial failure it is
// returned alongside the error so the caller can see how far the cascade got.
func (uc *GoalUseCase) Delete(ctx context.Context, tenant model.Tenant, id types.GoalID) (*model.CascadeReport, error) {
	if _, err := uc.repo.Goal().Get(ctx, tenant, id); err != nil {
		return nil, goerr.Wrap(ErrGoalNotFound, "goal not found", goerr.V(GoalIDKey, id))
	}

	report := &model.CascadeReport{}
	if err := deleteGoalCascade(ctx, uc.repo, tenant, id, report); err != nil {
		return report, err
	}
	return report, nil
}
