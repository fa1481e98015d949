package suggest_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gt"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/service/suggest"
)

func TestSuggest_WithRealGemini(t *testing.T) {
	projectID := os.Getenv("TEST_GEMINI_PROJECT")
	if projectID == "" {
		t.Skip("TEST_GEMINI_PROJECT not set")
	}

	location := os.Getenv("TEST_GEMINI_LOCATION")
	if location == "" {
		t.Skip("TEST_GEMINI_LOCATION not set")
	}

	ctx := context.Background()

	llmClient, err := gemini.New(ctx, projectID, location)
	gt.NoError(t, err).Required()

	svc, err := suggest.New(llmClient)
	gt.NoError(t, err).Required()

	goal := &model.Goal{
		ID:          types.NewGoalID(),
		Code:        "P1",
		Name:        "Peningkatan kualitas layanan perizinan",
		Description: "Mempercepat proses penerbitan izin usaha menjadi maksimal 3 hari kerja",
	}
	risk := &model.PotentialRisk{
		ID:          types.NewPotentialRiskID(),
		GoalID:      goal.ID,
		Description: "Keterlambatan verifikasi dokumen permohonan izin melebihi batas waktu layanan",
		Owner:       "Kepala Bidang Perizinan",
	}

	t.Run("SuggestCauses returns sanitized causes", func(t *testing.T) {
		causes, err := svc.SuggestCauses(ctx, goal, risk)
		gt.NoError(t, err).Required()

		// Even a degenerate response must come back sanitized, never nil.
		gt.Value(t, causes).NotNil()
		for _, c := range causes {
			gt.Bool(t, c.Description != "").True()
			if c.Source != nil {
				gt.Bool(t, c.Source.IsValid()).True()
			}
		}
	})

	cause := &model.RiskCause{
		ID:              types.NewRiskCauseID(),
		PotentialRiskID: risk.ID,
		GoalID:          goal.ID,
		Description:     "Jumlah verifikator tidak sebanding dengan volume permohonan",
	}

	t.Run("SuggestCauseAnalysis yields scale members or fallbacks", func(t *testing.T) {
		analysis, err := svc.SuggestCauseAnalysis(ctx, risk, cause)
		gt.NoError(t, err).Required()

		if analysis.Likelihood != nil {
			gt.Bool(t, analysis.Likelihood.IsValid()).True()
		}
		if analysis.Impact != nil {
			gt.Bool(t, analysis.Impact.IsValid()).True()
		}
		gt.Bool(t, analysis.LikelihoodJustification != "").True()
		gt.Bool(t, analysis.ImpactJustification != "").True()
	})

	t.Run("SuggestControls yields typed controls only", func(t *testing.T) {
		controls, err := svc.SuggestControls(ctx, risk, cause)
		gt.NoError(t, err).Required()

		gt.Value(t, controls).NotNil()
		for _, c := range controls {
			gt.Bool(t, c.ControlType.IsValid()).True()
			gt.Bool(t, c.Description != "").True()
			gt.Bool(t, c.Justification != "").True()
		}
	})

	t.Run("SuggestKRI always populates every field", func(t *testing.T) {
		kri, err := svc.SuggestKRI(ctx, risk, cause)
		gt.NoError(t, err).Required()

		gt.Bool(t, kri.KRI != "").True()
		gt.Bool(t, kri.KRIJustification != "").True()
		gt.Bool(t, kri.Tolerance != "").True()
		gt.Bool(t, kri.ToleranceJustification != "").True()
	})
}

func TestNew_RequiresClient(t *testing.T) {
	_, err := suggest.New(nil)
	gt.Error(t, err)
}
