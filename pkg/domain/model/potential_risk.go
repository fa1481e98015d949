package model

import (
	"time"

	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// PotentialRisk is a risk threatening a Goal. Likelihood/Impact are nil until
// the risk has been analyzed; the categorical level is derived on read and
// never stored.
type PotentialRisk struct {
	ID          types.PotentialRiskID
	GoalID      types.GoalID
	Tenant      Tenant
	Sequence    int
	Description string
	Category    *types.RiskCategory
	Owner       string
	Likelihood  *types.Likelihood
	Impact      *types.Impact
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
