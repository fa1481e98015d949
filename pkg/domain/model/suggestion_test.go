package model_test

import (
	"testing"

	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

func TestSanitizeCauseSuggestions(t *testing.T) {
	t.Parallel()

	t.Run("nil input yields empty result", func(t *testing.T) {
		got := model.SanitizeCauseSuggestions(nil)
		if got == nil {
			t.Fatal("result must be a non-nil slice")
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("invalid source is coerced to nil, never dropped", func(t *testing.T) {
		raw := []model.RawCauseSuggestion{
			{Description: "Kurangnya pelatihan pegawai", Source: "Internal"},
			{Description: "Perubahan regulasi pusat", Source: "External"},
			{Description: "Gangguan pasokan listrik", Source: ""},
		}
		got := model.SanitizeCauseSuggestions(raw)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].Source == nil || *got[0].Source != types.SourceInternal {
			t.Error("valid source must be kept")
		}
		if got[1].Source != nil {
			t.Errorf("invalid source must be nil, got %v", *got[1].Source)
		}
		if got[2].Source != nil {
			t.Error("absent source must be nil")
		}
	})

	t.Run("empty description gets fallback text", func(t *testing.T) {
		got := model.SanitizeCauseSuggestions([]model.RawCauseSuggestion{{Description: "  ", Source: "Eksternal"}})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Description != model.FallbackDescription {
			t.Errorf("description = %q, want fallback", got[0].Description)
		}
	})
}

func TestSanitizeAnalysisSuggestion(t *testing.T) {
	t.Parallel()

	t.Run("nil input yields fully defaulted result", func(t *testing.T) {
		got := model.SanitizeAnalysisSuggestion(nil)
		if got.Likelihood != nil || got.Impact != nil {
			t.Error("levels must be nil for absent input")
		}
		if got.LikelihoodJustification != model.FallbackJustification {
			t.Errorf("likelihood justification = %q", got.LikelihoodJustification)
		}
		if got.ImpactJustification != model.FallbackJustification {
			t.Errorf("impact justification = %q", got.ImpactJustification)
		}
	})

	t.Run("valid payload is kept verbatim", func(t *testing.T) {
		got := model.SanitizeAnalysisSuggestion(&model.RawAnalysisSuggestion{
			SuggestedLikelihood:     "Sering",
			LikelihoodJustification: "Insiden serupa terjadi empat kali tahun lalu.",
			SuggestedImpact:         "Mayor",
			ImpactJustification:     "Berdampak pada layanan publik utama.",
		})
		if got.Likelihood == nil || *got.Likelihood != types.LikelihoodSering {
			t.Error("likelihood must be kept")
		}
		if got.Impact == nil || *got.Impact != types.ImpactMayor {
			t.Error("impact must be kept")
		}
		if got.LikelihoodJustification != "Insiden serupa terjadi empat kali tahun lalu." {
			t.Errorf("likelihood justification = %q", got.LikelihoodJustification)
		}
	})

	t.Run("non-literal level is coerced to nil", func(t *testing.T) {
		got := model.SanitizeAnalysisSuggestion(&model.RawAnalysisSuggestion{
			SuggestedLikelihood: "sering", // case matters: not a literal member
			SuggestedImpact:     "Sangat Besar",
		})
		if got.Likelihood != nil {
			t.Error("lowercased level must not pass")
		}
		if got.Impact != nil {
			t.Error("out-of-scale impact must not pass")
		}
	})
}

func TestSanitizeControlSuggestions(t *testing.T) {
	t.Parallel()

	raw := []model.RawControlSuggestion{
		{Description: "Sosialisasi SOP baru", SuggestedControlType: "Prv", Justification: "Mencegah kesalahan prosedur."},
		{Description: "Audit berkala", SuggestedControlType: "Detektif", Justification: "Tipe tidak dikenal."},
		{Description: "", SuggestedControlType: "RM", Justification: "Deskripsi kosong."},
		{Description: "Perbaikan data", SuggestedControlType: "Crr", Justification: ""},
		{Description: "Backup harian", SuggestedControlType: "RM", Justification: "Mengurangi dampak kehilangan data."},
	}

	got := model.SanitizeControlSuggestions(raw)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (invalid entries dropped entirely)", len(got))
	}
	if got[0].ControlType != types.ControlTypePreventif {
		t.Errorf("first entry type = %s, want Prv", got[0].ControlType)
	}
	if got[1].ControlType != types.ControlTypeMitigasi {
		t.Errorf("second entry type = %s, want RM", got[1].ControlType)
	}

	if res := model.SanitizeControlSuggestions(nil); res == nil || len(res) != 0 {
		t.Error("nil input must yield a non-nil empty slice")
	}
}

func TestSanitizeKRISuggestion(t *testing.T) {
	t.Parallel()

	t.Run("absent provider response yields placeholders", func(t *testing.T) {
		got := model.SanitizeKRISuggestion(nil)
		for name, v := range map[string]string{
			"KRI":                    got.KRI,
			"KRIJustification":       got.KRIJustification,
			"Tolerance":              got.Tolerance,
			"ToleranceJustification": got.ToleranceJustification,
		} {
			if v != model.FallbackSuggestion {
				t.Errorf("%s = %q, want placeholder", name, v)
			}
		}
	})

	t.Run("partial payload keeps provided fields", func(t *testing.T) {
		got := model.SanitizeKRISuggestion(&model.RawKRISuggestion{
			SuggestedKRI:       "Jumlah keluhan layanan per bulan",
			SuggestedTolerance: "Maksimal 10 keluhan per bulan",
		})
		if got.KRI != "Jumlah keluhan layanan per bulan" {
			t.Errorf("KRI = %q", got.KRI)
		}
		if got.Tolerance != "Maksimal 10 keluhan per bulan" {
			t.Errorf("Tolerance = %q", got.Tolerance)
		}
		if got.KRIJustification != model.FallbackSuggestion {
			t.Errorf("missing justification must take placeholder, got %q", got.KRIJustification)
		}
	})
}
