package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/manrisk/pkg/domain/interfaces"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/repository/memory"
	"github.com/riskops-lab/manrisk/pkg/usecase"
)

// buildTree creates a goal with 2 risks, 2 causes under the first risk and
// 1 under the second, and 4 controls spread over the causes: 9 records in
// total including the goal.
func buildTree(t *testing.T, uc *usecase.UseCases) *model.Goal {
	t.Helper()
	ctx := context.Background()

	goal, err := uc.Goal.Create(ctx, testTenant, "Pelayanan perizinan", "")
	gt.NoError(t, err).Required()

	risk1, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Keterlambatan verifikasi", nil, "")
	gt.NoError(t, err).Required()
	risk2, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Penerbitan izin tidak sesuai prosedur", nil, "")
	gt.NoError(t, err).Required()

	cause1, err := uc.Cause.Create(ctx, testTenant, risk1.ID, "Verifikator kurang", nil, "", "")
	gt.NoError(t, err).Required()
	cause2, err := uc.Cause.Create(ctx, testTenant, risk1.ID, "Dokumen tidak lengkap", nil, "", "")
	gt.NoError(t, err).Required()
	cause3, err := uc.Cause.Create(ctx, testTenant, risk2.ID, "SOP tidak dijalankan", nil, "", "")
	gt.NoError(t, err).Required()

	for _, c := range []*model.RiskCause{cause1, cause2, cause3} {
		_, err := uc.Control.Create(ctx, testTenant, c.ID, types.ControlTypePreventif, usecase.ControlInput{Description: "Pengendalian " + c.Description})
		gt.NoError(t, err).Required()
	}
	_, err = uc.Control.Create(ctx, testTenant, cause1.ID, types.ControlTypeKorektif, usecase.ControlInput{Description: "Audit berkas terlambat"})
	gt.NoError(t, err).Required()

	return goal
}

func TestCascade_GoalDeletesWholeTree(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	goal := buildTree(t, uc)

	report, err := uc.Goal.Delete(ctx, testTenant, goal.ID)
	gt.NoError(t, err).Required()

	gt.Bool(t, report.Complete()).True()
	gt.Number(t, report.Total()).Equal(9)
	gt.Array(t, report.DeletedGoals).Length(1)
	gt.Array(t, report.DeletedRisks).Length(2)
	gt.Array(t, report.DeletedCauses).Length(3)
	gt.Array(t, report.DeletedControls).Length(4)

	goals, err := uc.Goal.List(ctx, testTenant)
	gt.NoError(t, err).Required()
	gt.Array(t, goals).Length(0)

	risks, err := repo.PotentialRisk().List(ctx, testTenant)
	gt.NoError(t, err).Required()
	gt.Array(t, risks).Length(0)

	causes, err := repo.RiskCause().List(ctx, testTenant)
	gt.NoError(t, err).Required()
	gt.Array(t, causes).Length(0)

	controls, err := repo.ControlMeasure().List(ctx, testTenant)
	gt.NoError(t, err).Required()
	gt.Array(t, controls).Length(0)
}

func TestCascade_RiskDeletesOnlyItsSubtree(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	goal := buildTree(t, uc)

	risks, err := uc.Risk.ListByGoal(ctx, testTenant, goal.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, risks).Length(2)

	var target *model.PotentialRisk
	for _, r := range risks {
		if r.Sequence == 1 {
			target = r
		}
	}
	gt.Value(t, target).NotNil()

	report, err := uc.Risk.Delete(ctx, testTenant, target.ID)
	gt.NoError(t, err).Required()

	// Risk 1 carries 2 causes and 3 controls.
	gt.Bool(t, report.Complete()).True()
	gt.Number(t, report.Total()).Equal(6)
	gt.Array(t, report.DeletedRisks).Equal([]types.PotentialRiskID{target.ID})
	gt.Array(t, report.DeletedCauses).Length(2)
	gt.Array(t, report.DeletedControls).Length(3)
	gt.Array(t, report.DeletedGoals).Length(0)

	// The goal and the sibling risk survive.
	_, err = uc.Goal.Get(ctx, testTenant, goal.ID)
	gt.NoError(t, err)
	remaining, err := uc.Risk.ListByGoal(ctx, testTenant, goal.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, remaining).Length(1)
}

func TestCascade_CauseDeletesItsControls(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	cause := setupCause(t, uc)

	_, err := uc.Control.Create(ctx, testTenant, cause.ID, types.ControlTypePreventif, usecase.ControlInput{Description: "Pengendalian 1"})
	gt.NoError(t, err).Required()
	_, err = uc.Control.Create(ctx, testTenant, cause.ID, types.ControlTypeMitigasi, usecase.ControlInput{Description: "Pengendalian 2"})
	gt.NoError(t, err).Required()

	report, err := uc.Cause.Delete(ctx, testTenant, cause.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, report.Complete()).True()
	gt.Number(t, report.Total()).Equal(3)
	gt.Array(t, report.DeletedControls).Length(2)
	gt.Array(t, report.DeletedCauses).Equal([]types.RiskCauseID{cause.ID})
}

// brokenControlRepository lets the first delete through and fails afterwards,
// simulating a backend that dies partway through a cascade.
type brokenControlRepository struct {
	interfaces.ControlMeasureRepository
	deletes int
}

func (r *brokenControlRepository) Delete(ctx context.Context, tenant model.Tenant, id types.ControlMeasureID) error {
	r.deletes++
	if r.deletes > 1 {
		return errors.New("backend unavailable")
	}
	return r.ControlMeasureRepository.Delete(ctx, tenant, id)
}

type brokenRepository struct {
	interfaces.Repository
	controls *brokenControlRepository
}

func (r *brokenRepository) ControlMeasure() interfaces.ControlMeasureRepository {
	return r.controls
}

func TestCascade_PartialFailureReturnsProgress(t *testing.T) {
	mem := memory.New()
	ctx := context.Background()
	goal := buildTree(t, usecase.New(mem))

	repo := &brokenRepository{
		Repository: mem,
		controls:   &brokenControlRepository{ControlMeasureRepository: mem.ControlMeasure()},
	}
	uc := usecase.New(repo)

	report, err := uc.Goal.Delete(ctx, testTenant, goal.ID)
	gt.Error(t, err)
	gt.Value(t, report).NotNil().Required()

	// The first control of the first cause is gone, the failing second one
	// stopped the walk before anything else was removed.
	gt.Bool(t, report.Complete()).False()
	gt.Value(t, report.FailedStep).Equal(model.CascadeStepDeleteControl)
	gt.Number(t, report.Total()).Equal(1)
	gt.Array(t, report.DeletedControls).Length(1)
	gt.Array(t, report.DeletedCauses).Length(0)
	gt.Array(t, report.DeletedRisks).Length(0)
	gt.Array(t, report.DeletedGoals).Length(0)

	// Nothing above the failure point was touched.
	_, err = uc.Goal.Get(ctx, testTenant, goal.ID)
	gt.NoError(t, err)
	risks, err := mem.PotentialRisk().List(ctx, testTenant)
	gt.NoError(t, err).Required()
	gt.Array(t, risks).Length(2)
}
