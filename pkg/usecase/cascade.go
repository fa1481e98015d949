package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// Cascading deletion removes an entity and everything beneath it, always
// children before parents so a mid-cascade failure can orphan at most the
// subtree still being walked, never leave a child pointing at a deleted
// parent. Deletions already performed are not rolled back; the accumulating
// report tells the caller exactly what is gone.

func deleteCauseCascade(ctx context.Context, repo interfaces.Repository, tenant model.Tenant, id types.RiskCauseID, report *model.CascadeReport) error {
	controls, err := repo.ControlMeasure().ListByCause(ctx, tenant, id)
	if err != nil {
		report.FailedStep = model.CascadeStepListControls
		return goerr.Wrap(err, "failed to list control measures", goerr.V(CauseIDKey, id))
	}

	for _, control := range controls {
		if err := repo.ControlMeasure().Delete(ctx, tenant, control.ID); err != nil {
			report.FailedStep = model.CascadeStepDeleteControl
			return goerr.Wrap(err, "failed to delete control measure",
				goerr.V(CauseIDKey, id),
				goerr.V(ControlIDKey, control.ID))
		}
		report.DeletedControls = append(report.DeletedControls, control.ID)
	}

	if err := repo.RiskCause().Delete(ctx, tenant, id); err != nil {
		report.FailedStep = model.CascadeStepDeleteCause
		return goerr.Wrap(err, "failed to delete risk cause", goerr.V(CauseIDKey, id))
	}
	report.DeletedCauses = append(report.DeletedCauses, id)

	return nil
}

func deleteRiskCascade(ctx context.Context, repo interfaces.Repository, tenant model.Tenant, id types.PotentialRiskID, report *model.CascadeReport) error {
	causes, err := repo.RiskCause().ListByRisk(ctx, tenant, id)
	if err != nil {
		report.FailedStep = model.CascadeStepListCauses
		return goerr.Wrap(err, "failed to list risk causes", goerr.V(RiskIDKey, id))
	}

	for _, cause := range causes {
		if err := deleteCauseCascade(ctx, repo, tenant, cause.ID, report); err != nil {
			return err
		}
	}

	if err := repo.PotentialRisk().Delete(ctx, tenant, id); err != nil {
		report.FailedStep = model.CascadeStepDeleteRisk
		return goerr.Wrap(err, "failed to delete potential risk", goerr.V(RiskIDKey, id))
	}
	report.DeletedRisks = append(report.DeletedRisks, id)

	return nil
}

func deleteGoalCascade(ctx context.Context, repo interfaces.Repository, tenant model.Tenant, id types.GoalID, report *model.CascadeReport) error {
	risks, err := repo.PotentialRisk().ListByGoal(ctx, tenant, id)
	if err != nil {
		report.FailedStep = model.CascadeStepListRisks
		return goerr.Wrap(err, "failed to list potential risks", goerr.V(GoalIDKey, id))
	}

	for _, risk := range risks {
		if err := deleteRiskCascade(ctx, repo, tenant, risk.ID, report); err != nil {
			return err
		}
	}

	if err := repo.Goal().Delete(ctx, tenant, id); err != nil {
		report.FailedStep = model.CascadeStepDeleteGoal
		return goerr.Wrap(err, "failed to delete goal", goerr.V(GoalIDKey, id))
	}
	report.DeletedGoals = append(report.DeletedGoals, id)

	return nil
}
