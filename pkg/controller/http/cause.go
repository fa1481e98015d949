package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/usecase"
)

type causeRequest struct {
	Description      string `json:"description"`
	Source           string `json:"source"`
	KeyRiskIndicator string `json:"keyRiskIndicator"`
	RiskTolerance    string `json:"riskTolerance"`
}

func (req causeRequest) sourcePtr() *types.RiskSource {
	if req.Source == "" {
		return nil
	}
	s := types.RiskSource(req.Source)
	return &s
}

type causeResponse struct {
	ID               string            `json:"id"`
	PotentialRiskID  string            `json:"potentialRiskId"`
	GoalID           string            `json:"goalId"`
	Sequence         int               `json:"sequence"`
	Description      string            `json:"description"`
	Source           *types.RiskSource `json:"source"`
	KeyRiskIndicator string            `json:"keyRiskIndicator"`
	RiskTolerance    string            `json:"riskTolerance"`
	Likelihood       *types.Likelihood `json:"likelihood"`
	Impact           *types.Impact     `json:"impact"`
	Score            *int              `json:"score"`
	Level            types.RiskLevel   `json:"level"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func toCauseResponse(c *usecase.ClassifiedCause) causeResponse {
	return causeResponse{
		ID:               c.ID.String(),
		PotentialRiskID:  c.PotentialRiskID.String(),
		GoalID:           c.GoalID.String(),
		Sequence:         c.Sequence,
		Description:      c.Description,
		Source:           c.Source,
		KeyRiskIndicator: c.KeyRiskIndicator,
		RiskTolerance:    c.RiskTolerance,
		Likelihood:       c.Likelihood,
		Impact:           c.Impact,
		Score:            c.Score,
		Level:            c.Level,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (s *Server) respondCause(w http.ResponseWriter, r *http.Request, cause *model.RiskCause, status int) {
	classified, err := s.uc.Cause.Classified(cause)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, status, toCauseResponse(classified))
}

func (s *Server) createCause(w http.ResponseWriter, r *http.Request) {
	var req causeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	riskID := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	cause, err := s.uc.Cause.Create(r.Context(), tenantFromRequest(r), riskID, req.Description, req.sourcePtr(), req.KeyRiskIndicator, req.RiskTolerance)
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.respondCause(w, r, cause, http.StatusCreated)
}

func (s *Server) acceptCauseSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Suggestions []model.RawCauseSuggestion `json:"suggestions"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	riskID := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	created, err := s.uc.Cause.AcceptSuggestions(r.Context(), tenantFromRequest(r), riskID, req.Suggestions)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]causeResponse, 0, len(created))
	for _, cause := range created {
		classified, err := s.uc.Cause.Classified(cause)
		if err != nil {
			respondError(w, r, err)
			return
		}
		resp = append(resp, toCauseResponse(classified))
	}
	respondJSON(w, r, http.StatusCreated, resp)
}

func (s *Server) listCauses(w http.ResponseWriter, r *http.Request) {
	riskID := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	causes, err := s.uc.Cause.ListByRisk(r.Context(), tenantFromRequest(r), riskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]causeResponse, 0, len(causes))
	for _, cause := range causes {
		classified, err := s.uc.Cause.Classified(cause)
		if err != nil {
			respondError(w, r, err)
			return
		}
		resp = append(resp, toCauseResponse(classified))
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getCause(w http.ResponseWriter, r *http.Request) {
	id := types.RiskCauseID(chi.URLParam(r, "causeID"))
	cause, err := s.uc.Cause.Get(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.respondCause(w, r, cause, http.StatusOK)
}

func (s *Server) updateCause(w http.ResponseWriter, r *http.Request) {
	var req causeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := types.RiskCauseID(chi.URLParam(r, "causeID"))
	cause, err := s.uc.Cause.Update(r.Context(), tenantFromRequest(r), id, req.Description, req.sourcePtr(), req.KeyRiskIndicator, req.RiskTolerance)
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.respondCause(w, r, cause, http.StatusOK)
}

func (s *Server) setCauseAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	likelihood, impact := req.levels()
	id := types.RiskCauseID(chi.URLParam(r, "causeID"))
	cause, err := s.uc.Cause.SetAnalysis(r.Context(), tenantFromRequest(r), id, likelihood, impact)
	if err != nil {
		respondError(w, r, err)
		return
	}
	s.respondCause(w, r, cause, http.StatusOK)
}

func (s *Server) deleteCause(w http.ResponseWriter, r *http.Request) {
	id := types.RiskCauseID(chi.URLParam(r, "causeID"))
	report, err := s.uc.Cause.Delete(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondCascadeError(w, r, report, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toCascadeResponse(report))
}
