package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/usecase"
)

type riskRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Owner       string `json:"owner"`
}

type analysisRequest struct {
	Likelihood string `json:"likelihood"`
	Impact     string `json:"impact"`
}

func (req analysisRequest) levels() (*types.Likelihood, *types.Impact) {
	var likelihood *types.Likelihood
	if req.Likelihood != "" {
		l := types.Likelihood(req.Likelihood)
		likelihood = &l
	}
	var impact *types.Impact
	if req.Impact != "" {
		i := types.Impact(req.Impact)
		impact = &i
	}
	return likelihood, impact
}

type riskResponse struct {
	ID          string            `json:"id"`
	GoalID      string            `json:"goalId"`
	Sequence    int               `json:"sequence"`
	Description string            `json:"description"`
	Category    *types.RiskCategory `json:"category"`
	Owner       string            `json:"owner"`
	Likelihood  *types.Likelihood `json:"likelihood"`
	Impact      *types.Impact     `json:"impact"`
	Score       *int              `json:"score"`
	Level       types.RiskLevel   `json:"level"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func toRiskResponse(c *usecase.ClassifiedRisk) riskResponse {
	return riskResponse{
		ID:          c.ID.String(),
		GoalID:      c.GoalID.String(),
		Sequence:    c.Sequence,
		Description: c.Description,
		Category:    c.Category,
		Owner:       c.Owner,
		Likelihood:  c.Likelihood,
		Impact:      c.Impact,
		Score:       c.Score,
		Level:       c.Level,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *Server) respondRisk(w http.ResponseWriter, r *http.Request, risk *usecase.ClassifiedRisk, status int, err error) {
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, status, toRiskResponse(risk))
}

func (s *Server) createRisk(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var category *types.RiskCategory
	if req.Category != "" {
		c := types.RiskCategory(req.Category)
		category = &c
	}

	goalID := types.GoalID(chi.URLParam(r, "goalID"))
	risk, err := s.uc.Risk.Create(r.Context(), tenantFromRequest(r), goalID, req.Description, category, req.Owner)
	if err != nil {
		respondError(w, r, err)
		return
	}
	classified, err := s.uc.Risk.Classified(risk)
	s.respondRisk(w, r, classified, http.StatusCreated, err)
}

func (s *Server) listRisks(w http.ResponseWriter, r *http.Request) {
	goalID := types.GoalID(chi.URLParam(r, "goalID"))
	risks, err := s.uc.Risk.ListClassifiedByGoal(r.Context(), tenantFromRequest(r), goalID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]riskResponse, len(risks))
	for i, risk := range risks {
		resp[i] = toRiskResponse(risk)
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getRisk(w http.ResponseWriter, r *http.Request) {
	id := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	risk, err := s.uc.Risk.Get(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	classified, err := s.uc.Risk.Classified(risk)
	s.respondRisk(w, r, classified, http.StatusOK, err)
}

func (s *Server) updateRisk(w http.ResponseWriter, r *http.Request) {
	var req riskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var category *types.RiskCategory
	if req.Category != "" {
		c := types.RiskCategory(req.Category)
		category = &c
	}

	id := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	risk, err := s.uc.Risk.Update(r.Context(), tenantFromRequest(r), id, req.Description, category, req.Owner)
	if err != nil {
		respondError(w, r, err)
		return
	}
	classified, err := s.uc.Risk.Classified(risk)
	s.respondRisk(w, r, classified, http.StatusOK, err)
}

func (s *Server) setRiskAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	likelihood, impact := req.levels()
	id := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	risk, err := s.uc.Risk.SetAnalysis(r.Context(), tenantFromRequest(r), id, likelihood, impact)
	if err != nil {
		respondError(w, r, err)
		return
	}
	classified, err := s.uc.Risk.Classified(risk)
	s.respondRisk(w, r, classified, http.StatusOK, err)
}

func (s *Server) deleteRisk(w http.ResponseWriter, r *http.Request) {
	id := types.PotentialRiskID(chi.URLParam(r, "riskID"))
	report, err := s.uc.Risk.Delete(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondCascadeError(w, r, report, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toCascadeResponse(report))
}
