package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
)

type goalRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type goalResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toGoalResponse(g *model.Goal) goalResponse {
	return goalResponse{
		ID:          g.ID.String(),
		Code:        g.Code,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type cascadeResponse struct {
	DeletedGoals    []types.GoalID           `json:"deletedGoals"`
	DeletedRisks    []types.PotentialRiskID  `json:"deletedRisks"`
	DeletedCauses   []types.RiskCauseID      `json:"deletedCauses"`
	DeletedControls []types.ControlMeasureID `json:"deletedControls"`
	Total           int                      `json:"total"`
	Complete        bool                     `json:"complete"`
	FailedStep      string                   `json:"failedStep,omitempty"`
}

func toCascadeResponse(report *model.CascadeReport) cascadeResponse {
	return cascadeResponse{
		DeletedGoals:    report.DeletedGoals,
		DeletedRisks:    report.DeletedRisks,
		DeletedCauses:   report.DeletedCauses,
		DeletedControls: report.DeletedControls,
		Total:           report.Total(),
		Complete:        report.Complete(),
		FailedStep:      string(report.FailedStep),
	}
}

func (s *Server) createGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := s.uc.Goal.Create(r.Context(), tenantFromRequest(r), req.Name, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toGoalResponse(goal))
}

func (s *Server) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.uc.Goal.List(r.Context(), tenantFromRequest(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toGoalResponse(g)
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getGoal(w http.ResponseWriter, r *http.Request) {
	id := types.GoalID(chi.URLParam(r, "goalID"))
	goal, err := s.uc.Goal.Get(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toGoalResponse(goal))
}

func (s *Server) updateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := types.GoalID(chi.URLParam(r, "goalID"))
	goal, err := s.uc.Goal.Update(r.Context(), tenantFromRequest(r), id, req.Name, req.Description)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toGoalResponse(goal))
}

func (s *Server) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id := types.GoalID(chi.URLParam(r, "goalID"))
	report, err := s.uc.Goal.Delete(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondCascadeError(w, r, report, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toCascadeResponse(report))
}
