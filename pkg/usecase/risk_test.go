package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/repository/memory"
	"github.com/riskops-lab/manrisk/pkg/usecase"
)

func setupGoal(t *testing.T, uc *usecase.UseCases) *model.Goal {
	t.Helper()
	goal, err := uc.Goal.Create(context.Background(), testTenant, "Pelayanan perizinan", "")
	gt.NoError(t, err).Required()
	return goal
}

func TestRiskUseCase_Create(t *testing.T) {
	t.Run("assigns sibling sequences in order", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		goal := setupGoal(t, uc)

		category := types.CategoryOperasional
		first, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Keterlambatan verifikasi dokumen", &category, "Kabid Perizinan")
		gt.NoError(t, err).Required()
		gt.Number(t, first.Sequence).Equal(1)
		gt.Value(t, first.GoalID).Equal(goal.ID)

		second, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Penerbitan izin tidak sesuai prosedur", nil, "")
		gt.NoError(t, err).Required()
		gt.Number(t, second.Sequence).Equal(2)
	})

	t.Run("requires existing goal", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		_, err := uc.Risk.Create(context.Background(), testTenant, types.NewGoalID(), "Risiko tanpa sasaran", nil, "")
		gt.Error(t, err).Is(usecase.ErrGoalNotFound)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		goal := setupGoal(t, uc)

		bogus := types.RiskCategory("Cuaca")
		_, err := uc.Risk.Create(context.Background(), testTenant, goal.ID, "Risiko", &bogus, "")
		gt.Error(t, err).Is(types.ErrInvalidEnum)
	})

	t.Run("sequence never reused after delete", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		goal := setupGoal(t, uc)

		first, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Risiko pertama", nil, "")
		gt.NoError(t, err).Required()
		_, err = uc.Risk.Create(ctx, testTenant, goal.ID, "Risiko kedua", nil, "")
		gt.NoError(t, err).Required()

		_, err = uc.Risk.Delete(ctx, testTenant, first.ID)
		gt.NoError(t, err).Required()

		third, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Risiko ketiga", nil, "")
		gt.NoError(t, err).Required()
		gt.Number(t, third.Sequence).Equal(3)
	})
}

func TestRiskUseCase_SetAnalysis(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	goal := setupGoal(t, uc)

	risk, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Keterlambatan verifikasi", nil, "")
	gt.NoError(t, err).Required()

	t.Run("records both sides", func(t *testing.T) {
		likelihood := types.LikelihoodSering
		impact := types.ImpactMayor
		updated, err := uc.Risk.SetAnalysis(ctx, testTenant, risk.ID, &likelihood, &impact)
		gt.NoError(t, err).Required()
		gt.Value(t, *updated.Likelihood).Equal(types.LikelihoodSering)
		gt.Value(t, *updated.Impact).Equal(types.ImpactMayor)
	})

	t.Run("half-done analysis is allowed", func(t *testing.T) {
		likelihood := types.LikelihoodJarang
		updated, err := uc.Risk.SetAnalysis(ctx, testTenant, risk.ID, &likelihood, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, *updated.Likelihood).Equal(types.LikelihoodJarang)
		gt.Value(t, updated.Impact).Nil()
	})

	t.Run("rejects out-of-scale level", func(t *testing.T) {
		bogus := types.Likelihood("Selalu")
		_, err := uc.Risk.SetAnalysis(ctx, testTenant, risk.ID, &bogus, nil)
		gt.Error(t, err).Is(types.ErrInvalidEnum)
	})
}

func TestRiskUseCase_Classified(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	goal := setupGoal(t, uc)

	risk, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Keterlambatan verifikasi", nil, "")
	gt.NoError(t, err).Required()

	t.Run("unanalyzed risk is N/A", func(t *testing.T) {
		classified, err := uc.Risk.Classified(risk)
		gt.NoError(t, err).Required()
		gt.Value(t, classified.Score).Nil()
		gt.Value(t, classified.Level).Equal(types.RiskLevelNA)
	})

	t.Run("Sering x Mayor scores 16 Tinggi", func(t *testing.T) {
		likelihood := types.LikelihoodSering
		impact := types.ImpactMayor
		analyzed, err := uc.Risk.SetAnalysis(ctx, testTenant, risk.ID, &likelihood, &impact)
		gt.NoError(t, err).Required()

		classified, err := uc.Risk.Classified(analyzed)
		gt.NoError(t, err).Required()
		gt.Number(t, *classified.Score).Equal(16)
		gt.Value(t, classified.Level).Equal(types.RiskLevelTinggi)
	})

	t.Run("list attaches classification to every risk", func(t *testing.T) {
		classified, err := uc.Risk.ListClassifiedByGoal(ctx, testTenant, goal.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, classified).Length(1)
		gt.Value(t, classified[0].Level).Equal(types.RiskLevelTinggi)
	})
}

func TestRiskUseCase_Update(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	goal := setupGoal(t, uc)

	risk, err := uc.Risk.Create(ctx, testTenant, goal.ID, "Deskripsi awal", nil, "")
	gt.NoError(t, err).Required()

	category := types.CategoryKeuangan
	updated, err := uc.Risk.Update(ctx, testTenant, risk.ID, "Deskripsi baru", &category, "Bendahara")
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Description).Equal("Deskripsi baru")
	gt.Value(t, *updated.Category).Equal(types.CategoryKeuangan)
	gt.Value(t, updated.Owner).Equal("Bendahara")
	gt.Number(t, updated.Sequence).Equal(risk.Sequence)
}
