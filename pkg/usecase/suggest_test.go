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

// stubSuggestion plays the provider role with canned, already sanitized
// output, the same contract a real provider implementation upholds.
type stubSuggestion struct {
	causes   []model.CauseSuggestion
	analysis model.AnalysisSuggestion
	controls []model.ControlSuggestion
	kri      model.KRISuggestion
}

func (s *stubSuggestion) SuggestCauses(ctx context.Context, goal *model.Goal, risk *model.PotentialRisk) ([]model.CauseSuggestion, error) {
	return s.causes, nil
}

func (s *stubSuggestion) SuggestCauseAnalysis(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) (model.AnalysisSuggestion, error) {
	return s.analysis, nil
}

func (s *stubSuggestion) SuggestControls(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) ([]model.ControlSuggestion, error) {
	return s.controls, nil
}

func (s *stubSuggestion) SuggestKRI(ctx context.Context, risk *model.PotentialRisk, cause *model.RiskCause) (model.KRISuggestion, error) {
	return s.kri, nil
}

func TestSuggestUseCase_Causes(t *testing.T) {
	repo := memory.New()
	source := types.SourceInternal
	stub := &stubSuggestion{
		causes: []model.CauseSuggestion{
			{Description: "Verifikator kurang", Source: &source},
		},
	}
	uc := usecase.New(repo, usecase.WithSuggestion(stub))
	ctx := context.Background()
	risk := setupRisk(t, uc)

	t.Run("resolves context and delegates", func(t *testing.T) {
		causes, err := uc.Suggest.Causes(ctx, testTenant, risk.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, causes).Length(1)
		gt.Value(t, causes[0].Description).Equal("Verifikator kurang")
	})

	t.Run("unknown risk", func(t *testing.T) {
		_, err := uc.Suggest.Causes(ctx, testTenant, types.NewPotentialRiskID())
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})
}

func TestSuggestUseCase_CauseScoped(t *testing.T) {
	repo := memory.New()
	likelihood := types.LikelihoodSering
	impact := types.ImpactModerat
	stub := &stubSuggestion{
		analysis: model.AnalysisSuggestion{
			Likelihood:              &likelihood,
			LikelihoodJustification: "Volume berkas tinggi setiap akhir bulan",
			Impact:                  &impact,
			ImpactJustification:     "Keterlambatan berdampak pada pelaku usaha",
		},
		controls: []model.ControlSuggestion{
			{Description: "Menambah verifikator", ControlType: types.ControlTypePreventif, Justification: "Mengurangi antrian"},
		},
		kri: model.KRISuggestion{
			KRI:                    "Persentase berkas selesai tepat waktu",
			KRIJustification:       "Mengukur kinerja layanan secara langsung",
			Tolerance:              "Minimal 90%",
			ToleranceJustification: "Standar layanan minimal",
		},
	}
	uc := usecase.New(repo, usecase.WithSuggestion(stub))
	ctx := context.Background()
	cause := setupCause(t, uc)

	t.Run("analysis", func(t *testing.T) {
		analysis, err := uc.Suggest.CauseAnalysis(ctx, testTenant, cause.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, *analysis.Likelihood).Equal(types.LikelihoodSering)
		gt.Value(t, *analysis.Impact).Equal(types.ImpactModerat)
	})

	t.Run("controls", func(t *testing.T) {
		controls, err := uc.Suggest.Controls(ctx, testTenant, cause.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, controls).Length(1)
		gt.Value(t, controls[0].ControlType).Equal(types.ControlTypePreventif)
	})

	t.Run("kri", func(t *testing.T) {
		kri, err := uc.Suggest.KRI(ctx, testTenant, cause.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, kri.Tolerance).Equal("Minimal 90%")
	})

	t.Run("unknown cause", func(t *testing.T) {
		_, err := uc.Suggest.Controls(ctx, testTenant, types.NewRiskCauseID())
		gt.Error(t, err).Is(usecase.ErrCauseNotFound)
	})
}

func TestSuggestUseCase_Unconfigured(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()
	cause := setupCause(t, uc)

	gt.Bool(t, uc.Suggest.Enabled()).False()

	_, err := uc.Suggest.Causes(ctx, testTenant, cause.PotentialRiskID)
	gt.Error(t, err).Is(usecase.ErrSuggestionUnavailable)

	_, err = uc.Suggest.KRI(ctx, testTenant, cause.ID)
	gt.Error(t, err).Is(usecase.ErrSuggestionUnavailable)
}
