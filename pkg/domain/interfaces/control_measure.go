package interfaces

import (
	"context"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type ControlMeasureRepository interface {
	// Create persists a new control measure. ID, Sequence and Tenant must
	// already be set by the caller.
	Create(ctx context.Context, control *model.ControlMeasure) (*model.ControlMeasure, error)

	// Get retrieves a control measure by ID within a tenant
	Get(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) (*model.ControlMeasure, error)

	// ListByCause retrieves all control measures under a risk cause, across
	// all control types
	ListByCause(ctx context.Context, tenant model.Tenant, causeID types.RiskCauseID) ([]*model.ControlMeasure, error)

	// List retrieves all control measures of a tenant
	List(ctx context.Context, tenant model.Tenant) ([]*model.ControlMeasure, error)

	// Update updates an existing control measure. Sequence, ControlType,
	// RiskCauseID and CreatedAt are immutable.
	Update(ctx context.Context, control *model.ControlMeasure) (*model.ControlMeasure, error)

	// Delete deletes a single control measure record
	Delete(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) error
}
