package model

import (
	"strings"

	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// Fallback strings substituted for missing or invalid AI output. Kept in the
// domain's working language because they are persisted and shown to users
// as-is.
const (
	FallbackDescription   = "Deskripsi tidak tersedia dari AI."
	FallbackJustification = "Tidak ada justifikasi dari AI."
	FallbackSuggestion    = "AI tidak dapat memberikan saran."
)

// Raw suggestion shapes are the nominal contract a generative provider
// promises but is not guaranteed to satisfy. They must pass through the
// Sanitize functions below before any value reaches the domain model.
//
// The sanitizers share one contract: they accept nil/absent/malformed input
// and never fail; the result is always structurally complete, with every
// closed-enum field either a member of its enumeration or its documented
// fallback.

// RawCauseSuggestion is an unvalidated risk-cause suggestion
type RawCauseSuggestion struct {
	Description string `json:"description"`
	Source      string `json:"source"`
}

// CauseSuggestion is a sanitized risk-cause suggestion. Source is nil when
// the provider's value was not a member of the RiskSource enumeration,
// meaning "undetermined"; it is never guessed.
type CauseSuggestion struct {
	Description string
	Source      *types.RiskSource
}

// SanitizeCauseSuggestions cleans a raw cause-suggestion array. Entries are
// kept even when their source is invalid (the source is coerced to nil); an
// empty description takes the documented fallback text.
func SanitizeCauseSuggestions(raw []RawCauseSuggestion) []CauseSuggestion {
	out := make([]CauseSuggestion, 0, len(raw))
	for _, r := range raw {
		s := CauseSuggestion{
			Description: strings.TrimSpace(r.Description),
		}
		if s.Description == "" {
			s.Description = FallbackDescription
		}
		if src := types.RiskSource(r.Source); src.IsValid() {
			s.Source = &src
		}
		out = append(out, s)
	}
	return out
}

// RawAnalysisSuggestion is an unvalidated likelihood/impact suggestion
type RawAnalysisSuggestion struct {
	SuggestedLikelihood     string `json:"suggestedLikelihood"`
	LikelihoodJustification string `json:"likelihoodJustification"`
	SuggestedImpact         string `json:"suggestedImpact"`
	ImpactJustification     string `json:"impactJustification"`
}

// AnalysisSuggestion is a sanitized likelihood/impact suggestion. Level
// fields are nil unless the provider produced a literal scale member.
type AnalysisSuggestion struct {
	Likelihood              *types.Likelihood
	LikelihoodJustification string
	Impact                  *types.Impact
	ImpactJustification     string
}

// SanitizeAnalysisSuggestion cleans a raw analysis suggestion. A nil input
// yields a fully defaulted result, not an error.
func SanitizeAnalysisSuggestion(raw *RawAnalysisSuggestion) AnalysisSuggestion {
	s := AnalysisSuggestion{
		LikelihoodJustification: FallbackJustification,
		ImpactJustification:     FallbackJustification,
	}
	if raw == nil {
		return s
	}

	if l := types.Likelihood(raw.SuggestedLikelihood); l.IsValid() {
		s.Likelihood = &l
	}
	if i := types.Impact(raw.SuggestedImpact); i.IsValid() {
		s.Impact = &i
	}
	if j := strings.TrimSpace(raw.LikelihoodJustification); j != "" {
		s.LikelihoodJustification = j
	}
	if j := strings.TrimSpace(raw.ImpactJustification); j != "" {
		s.ImpactJustification = j
	}
	return s
}

// RawControlSuggestion is an unvalidated control-measure suggestion
type RawControlSuggestion struct {
	Description          string `json:"description"`
	SuggestedControlType string `json:"suggestedControlType"`
	Justification        string `json:"justification"`
}

// ControlSuggestion is a sanitized control-measure suggestion. Unlike cause
// suggestions, entries with an invalid control type are dropped entirely: a
// control suggestion stripped of its type is not independently useful.
type ControlSuggestion struct {
	Description   string
	ControlType   types.ControlMeasureType
	Justification string
}

// SanitizeControlSuggestions cleans a raw control-suggestion array, dropping
// entries whose control type is not a member of the enumeration or whose
// description/justification is empty.
func SanitizeControlSuggestions(raw []RawControlSuggestion) []ControlSuggestion {
	out := make([]ControlSuggestion, 0, len(raw))
	for _, r := range raw {
		ct := types.ControlMeasureType(r.SuggestedControlType)
		desc := strings.TrimSpace(r.Description)
		just := strings.TrimSpace(r.Justification)
		if !ct.IsValid() || desc == "" || just == "" {
			continue
		}
		out = append(out, ControlSuggestion{
			Description:   desc,
			ControlType:   ct,
			Justification: just,
		})
	}
	return out
}

// RawKRISuggestion is an unvalidated key-risk-indicator suggestion
type RawKRISuggestion struct {
	SuggestedKRI           string `json:"suggestedKRI"`
	KRIJustification       string `json:"kriJustification"`
	SuggestedTolerance     string `json:"suggestedTolerance"`
	ToleranceJustification string `json:"toleranceJustification"`
}

// KRISuggestion is a sanitized KRI/tolerance suggestion. All fields are free
// text and always populated.
type KRISuggestion struct {
	KRI                    string
	KRIJustification       string
	Tolerance              string
	ToleranceJustification string
}

// SanitizeKRISuggestion cleans a raw KRI suggestion. When the provider
// yields nothing at all, every field takes the placeholder text signaling
// that no suggestion is available.
func SanitizeKRISuggestion(raw *RawKRISuggestion) KRISuggestion {
	s := KRISuggestion{
		KRI:                    FallbackSuggestion,
		KRIJustification:       FallbackSuggestion,
		Tolerance:              FallbackSuggestion,
		ToleranceJustification: FallbackSuggestion,
	}
	if raw == nil {
		return s
	}

	if v := strings.TrimSpace(raw.SuggestedKRI); v != "" {
		s.KRI = v
	}
	if v := strings.TrimSpace(raw.KRIJustification); v != "" {
		s.KRIJustification = v
	}
	if v := strings.TrimSpace(raw.SuggestedTolerance); v != "" {
		s.Tolerance = v
	}
	if v := strings.TrimSpace(raw.ToleranceJustification); v != "" {
		s.ToleranceJustification = v
	}
	return s
}
