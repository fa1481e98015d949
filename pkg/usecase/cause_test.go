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

func setupRisk(t *testing.T, uc *usecase.UseCases) *model.PotentialRisk {
	t.Helper()
	goal := setupGoal(t, uc)
	risk, err := uc.Risk.Create(context.Background(), testTenant, goal.ID, "Keterlambatan verifikasi dokumen", nil, "")
	gt.NoError(t, err).Required()
	return risk
}

func TestCauseUseCase_Create(t *testing.T) {
	t.Run("denormalizes goal from parent risk", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		risk := setupRisk(t, uc)

		source := types.SourceInternal
		cause, err := uc.Cause.Create(ctx, testTenant, risk.ID, "Jumlah verifikator kurang", &source, "Rasio berkas per verifikator", "Maksimal 50 berkas")
		gt.NoError(t, err).Required()
		gt.Number(t, cause.Sequence).Equal(1)
		gt.Value(t, cause.PotentialRiskID).Equal(risk.ID)
		gt.Value(t, cause.GoalID).Equal(risk.GoalID)
		gt.Value(t, *cause.Source).Equal(types.SourceInternal)
	})

	t.Run("requires existing risk", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		_, err := uc.Cause.Create(context.Background(), testTenant, types.NewPotentialRiskID(), "Penyebab", nil, "", "")
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})

	t.Run("rejects unknown source", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		risk := setupRisk(t, uc)

		bogus := types.RiskSource("Campuran")
		_, err := uc.Cause.Create(context.Background(), testTenant, risk.ID, "Penyebab", &bogus, "", "")
		gt.Error(t, err).Is(types.ErrInvalidEnum)
	})
}

func TestCauseUseCase_AcceptSuggestions(t *testing.T) {
	t.Run("creates sanitized causes in order", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		risk := setupRisk(t, uc)

		raw := []model.RawCauseSuggestion{
			{Description: "Jumlah verifikator kurang", Source: "Internal"},
			{Description: "Pemohon mengunggah dokumen tidak lengkap", Source: "Eksternal"},
			{Description: "Sistem antrian sering gangguan", Source: "campuran"},
		}

		created, err := uc.Cause.AcceptSuggestions(ctx, testTenant, risk.ID, raw)
		gt.NoError(t, err).Required()
		gt.Array(t, created).Length(3)

		gt.Number(t, created[0].Sequence).Equal(1)
		gt.Number(t, created[1].Sequence).Equal(2)
		gt.Number(t, created[2].Sequence).Equal(3)

		gt.Value(t, *created[0].Source).Equal(types.SourceInternal)
		gt.Value(t, *created[1].Source).Equal(types.SourceEksternal)
		// The invalid source is coerced to undetermined, not rejected.
		gt.Value(t, created[2].Source).Nil()
	})

	t.Run("empty description gets the fallback text", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		risk := setupRisk(t, uc)

		raw := []model.RawCauseSuggestion{{Description: "   "}}
		created, err := uc.Cause.AcceptSuggestions(context.Background(), testTenant, risk.ID, raw)
		gt.NoError(t, err).Required()
		gt.Array(t, created).Length(1)
		gt.Value(t, created[0].Description).Equal(model.FallbackDescription)
	})
}

func TestCauseUseCase_SetAnalysis(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	risk := setupRisk(t, uc)

	cause, err := uc.Cause.Create(ctx, testTenant, risk.ID, "Jumlah verifikator kurang", nil, "", "")
	gt.NoError(t, err).Required()

	likelihood := types.LikelihoodSangatSering
	impact := types.ImpactKatastropik
	analyzed, err := uc.Cause.SetAnalysis(ctx, testTenant, cause.ID, &likelihood, &impact)
	gt.NoError(t, err).Required()

	classified, err := uc.Cause.Classified(analyzed)
	gt.NoError(t, err).Required()
	gt.Number(t, *classified.Score).Equal(25)
	gt.Value(t, classified.Level).Equal(types.RiskLevelSangatTinggi)
}

func TestCauseUseCase_Update(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	risk := setupRisk(t, uc)

	cause, err := uc.Cause.Create(ctx, testTenant, risk.ID, "Deskripsi awal", nil, "", "")
	gt.NoError(t, err).Required()

	source := types.SourceEksternal
	updated, err := uc.Cause.Update(ctx, testTenant, cause.ID, "Deskripsi baru", &source, "Jumlah keluhan", "Maksimal 3 per bulan")
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Description).Equal("Deskripsi baru")
	gt.Value(t, *updated.Source).Equal(types.SourceEksternal)
	gt.Value(t, updated.KeyRiskIndicator).Equal("Jumlah keluhan")
	gt.Value(t, updated.RiskTolerance).Equal("Maksimal 3 per bulan")
	gt.Number(t, updated.Sequence).Equal(cause.Sequence)
}
