package interfaces

import (
	"context"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type RiskCauseRepository interface {
	// Create persists a new risk cause. ID, Sequence and Tenant must already
	// be set by the caller.
	Create(ctx context.Context, cause *model.RiskCause) (*model.RiskCause, error)

	// Get retrieves a risk cause by ID within a tenant
	Get(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) (*model.RiskCause, error)

	// ListByRisk retrieves all causes under a potential risk
	ListByRisk(ctx context.Context, tenant model.Tenant, riskID types.PotentialRiskID) ([]*model.RiskCause, error)

	// List retrieves all risk causes of a tenant
	List(ctx context.Context, tenant model.Tenant) ([]*model.RiskCause, error)

	// Update updates an existing risk cause. Sequence, PotentialRiskID and
	// CreatedAt are immutable.
	Update(ctx context.Context, cause *model.RiskCause) (*model.RiskCause, error)

	// Delete deletes a single risk cause record
	Delete(ctx context.Context, tenant model.Tenant, id types.RiskCauseID) error
}
