package model

import (
	"time"

	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// ControlMeasure is an action mitigating a RiskCause. Sequence is unique per
// (RiskCauseID, ControlType): each control type has its own 1..n numbering
// under the same cause.
type ControlMeasure struct {
	ID                  types.ControlMeasureID
	RiskCauseID         types.RiskCauseID
	PotentialRiskID     types.PotentialRiskID
	GoalID              types.GoalID
	Tenant              Tenant
	ControlType         types.ControlMeasureType
	Sequence            int
	Description         string
	KeyControlIndicator string
	Target              string
	ResponsiblePerson   string
	Deadline            string
	Budget              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
