package model

import (
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// CascadeStep names the point at which a cascade stopped
type CascadeStep string

const (
	CascadeStepListRisks      CascadeStep = "list potential risks"
	CascadeStepListCauses     CascadeStep = "list risk causes"
	CascadeStepListControls   CascadeStep = "list control measures"
	CascadeStepDeleteControl  CascadeStep = "delete control measure"
	CascadeStepDeleteCause    CascadeStep = "delete risk cause"
	CascadeStepDeleteRisk     CascadeStep = "delete potential risk"
	CascadeStepDeleteGoal     CascadeStep = "delete goal"
	cascadeStepNone           CascadeStep = ""
)

// CascadeReport records what a cascading deletion removed and, when the
// cascade did not run to completion, the step at which it stopped. Deletions
// performed before a failure are not rolled back; a partial report is the
// caller's signal that manual reconciliation is required.
type CascadeReport struct {
	DeletedGoals    []types.GoalID
	DeletedRisks    []types.PotentialRiskID
	DeletedCauses   []types.RiskCauseID
	DeletedControls []types.ControlMeasureID

	FailedStep CascadeStep
}

// Total returns the number of records removed
func (r *CascadeReport) Total() int {
	return len(r.DeletedGoals) + len(r.DeletedRisks) + len(r.DeletedCauses) + len(r.DeletedControls)
}

// Complete reports whether the cascade ran to the end
func (r *CascadeReport) Complete() bool {
	return r.FailedStep == cascadeStepNone
}
