package model

import (
	"time"

	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// RiskCause is a decomposed cause of a PotentialRisk, carrying its own
// likelihood/impact analysis. GoalID is denormalized so cascade enumeration
// and integrity scans stay single queries.
type RiskCause struct {
	ID               types.RiskCauseID
	PotentialRiskID  types.PotentialRiskID
	GoalID           types.GoalID
	Tenant           Tenant
	Sequence         int
	Description      string
	Source           *types.RiskSource
	KeyRiskIndicator string
	RiskTolerance    string
	Likelihood       *types.Likelihood
	Impact           *types.Impact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
