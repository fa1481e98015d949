package interfaces

import (
	"context"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type PotentialRiskRepository interface {
	// Create persists a new potential risk. ID, Sequence and Tenant must
	// already be set by the caller.
	Create(ctx context.Context, risk *model.PotentialRisk) (*model.PotentialRisk, error)

	// Get retrieves a potential risk by ID within a tenant
	Get(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) (*model.PotentialRisk, error)

	// ListByGoal retrieves all potential risks under a goal
	ListByGoal(ctx context.Context, tenant model.Tenant, goalID types.GoalID) ([]*model.PotentialRisk, error)

	// List retrieves all potential risks of a tenant
	List(ctx context.Context, tenant model.Tenant) ([]*model.PotentialRisk, error)

	// Update updates an existing potential risk. Sequence, GoalID and
	// CreatedAt are immutable.
	Update(ctx context.Context, risk *model.PotentialRisk) (*model.PotentialRisk, error)

	// Delete deletes a single potential risk record
	Delete(ctx context.Context, tenant model.Tenant, id types.PotentialRiskID) error
}
