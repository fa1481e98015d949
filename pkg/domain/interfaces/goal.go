package interfaces

import (
	"context"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type GoalRepository interface {
	// Create persists a new goal. ID, Code and Tenant must already be set by
	// the caller; timestamps are assigned by the repository.
	Create(ctx context.Context, goal *model.Goal) (*model.Goal, error)

	// Get retrieves a goal by ID within a tenant
	Get(ctx context.Context, tenant model.Tenant, id types.GoalID) (*model.Goal, error)

	// List retrieves all goals of a tenant
	List(ctx context.Context, tenant model.Tenant) ([]*model.Goal, error)

	// Update updates name/description of an existing goal. Code and
	// CreatedAt are immutable.
	Update(ctx context.Context, goal *model.Goal) (*model.Goal, error)

	// Delete deletes a single goal record. Cascading removal of descendants
	// is the caller's responsibility.
	Delete(ctx context.Context, tenant model.Tenant, id types.GoalID) error
}
