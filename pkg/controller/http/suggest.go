package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

// Suggestion endpoints only propose; nothing is persisted until the client
// posts the accepted entries back through the accept endpoints.

type causeSuggestionResponse struct {
	Description string            `json:"description"`
	Source      *types.RiskSource `json:"source"`
}

func (s *Server) suggestCauses(w http.ResponseWriter, r *http.Request) {
	riskID := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	suggestions, err := s.uc.Suggest.Causes(r.Context(), tenantFromRequest(r), riskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]causeSuggestionResponse, len(suggestions))
	for i, sg := range suggestions {
		resp[i] = causeSuggestionResponse{Description: sg.Description, Source: sg.Source}
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) suggestCauseAnalysis(w http.ResponseWriter, r *http.Request) {
	causeID := types.RiskCauseID(chi.URLParam(r, "causeID"))
	suggestion, err := s.uc.Suggest.CauseAnalysis(r.Context(), tenantFromRequest(r), causeID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, struct {
		Likelihood              *types.Likelihood `json:"likelihood"`
		LikelihoodJustification string            `json:"likelihoodJustification"`
		Impact                  *types.Impact     `json:"impact"`
		ImpactJustification     string            `json:"impactJustification"`
	}{
		Likelihood:              suggestion.Likelihood,
		LikelihoodJustification: suggestion.LikelihoodJustification,
		Impact:                  suggestion.Impact,
		ImpactJustification:     suggestion.ImpactJustification,
	})
}

func (s *Server) suggestControls(w http.ResponseWriter, r *http.Request) {
	causeID := types.RiskCauseID(chi.URLParam(r, "causeID"))
	suggestions, err := s.uc.Suggest.Controls(r.Context(), tenantFromRequest(r), causeID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	type controlSuggestionResponse struct {
		Description   string `json:"description"`
		ControlType   string `json:"controlType"`
		Justification string `json:"justification"`
	}
	resp := make([]controlSuggestionResponse, len(suggestions))
	for i, sg := range suggestions {
		resp[i] = controlSuggestionResponse{
			Description:   sg.Description,
			ControlType:   sg.ControlType.String(),
			Justification: sg.Justification,
		}
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) suggestKRI(w http.ResponseWriter, r *http.Request) {
	causeID := types.RiskCauseID(chi.URLParam(r, "causeID"))
	suggestion, err := s.uc.Suggest.KRI(r.Context(), tenantFromRequest(r), causeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		KRI                    string `json:"kri"`
		KRIJustification       string `json:"kriJustification"`
		Tolerance              string `json:"tolerance"`
		ToleranceJustification string `json:"toleranceJustification"`
	}{
		KRI:                    suggestion.KRI,
		KRIJustification:       suggestion.KRIJustification,
		Tolerance:              suggestion.Tolerance,
		ToleranceJustification: suggestion.ToleranceJustification,
	})
}
