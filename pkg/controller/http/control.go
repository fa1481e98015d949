package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/usecase"
)

type controlRequest struct {
	ControlType         string `json:"controlType"`
	Description         string `json:"description"`
	KeyControlIndicator string `json:"keyControlIndicator"`
	Target              string `json:"target"`
	ResponsiblePerson   string `json:"responsiblePerson"`
	Deadline            string `json:"deadline"`
	Budget              string `json:"budget"`
}

func (req controlRequest) input() usecase.ControlInput {
	return usecase.ControlInput{
		Description:         req.Description,
		KeyControlIndicator: req.KeyControlIndicator,
		Target:              req.Target,
		ResponsiblePerson:   req.ResponsiblePerson,
		Deadline:            req.Deadline,
		Budget:              req.Budget,
	}
}

type controlResponse struct {
	ID                  string    `json:"id"`
	RiskCauseID         string    `json:"riskCauseId"`
	PotentialRiskID     string    `json:"potentialRiskId"`
	GoalID              string    `json:"goalId"`
	ControlType         string    `json:"controlType"`
	ControlTypeName     string    `json:"controlTypeName"`
	Sequence            int       `json:"sequence"`
	Description         string    `json:"description"`
	KeyControlIndicator string    `json:"keyControlIndicator"`
	Target              string    `json:"target"`
	ResponsiblePerson   string    `json:"responsiblePerson"`
	Deadline            string    `json:"deadline"`
	Budget              string    `json:"budget"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toControlResponse(c *model.ControlMeasure) controlResponse {
	return controlResponse{
		ID:                  c.ID.String(),
		RiskCauseID:         c.RiskCauseID.String(),
		PotentialRiskID:     c.PotentialRiskID.String(),
		GoalID:              c.GoalID.String(),
		ControlType:         c.ControlType.String(),
		ControlTypeName:     c.ControlType.Name(),
		Sequence:            c.Sequence,
		Description:         c.Description,
		KeyControlIndicator: c.KeyControlIndicator,
		Target:              c.Target,
		ResponsiblePerson:   c.ResponsiblePerson,
		Deadline:            c.Deadline,
		Budget:              c.Budget,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (s *Server) createControl(w http.ResponseWriter, r *http.Request) {
	var req controlRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	causeID := types.RiskCauseID(chi.URLParam(r, "causeID"))
	control, err := s.uc.Control.Create(r.Context(), tenantFromRequest(r), causeID, types.ControlMeasureType(req.ControlType), req.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, toControlResponse(control))
}

func (s *Server) acceptControlSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Suggestions []model.RawControlSuggestion `json:"suggestions"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	causeID := types.RiskCauseID(chi.URLParam(r, "causeID"))
	created, err := s.uc.Control.AcceptSuggestions(r.Context(), tenantFromRequest(r), causeID, req.Suggestions)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]controlResponse, len(created))
	for i, control := range created {
		resp[i] = toControlResponse(control)
	}
	respondJSON(w, r, http.StatusCreated, resp)
}

func (s *Server) listControls(w http.ResponseWriter, r *http.Request) {
	causeID := types.RiskCauseID(chi.URLParam(r, "causeID"))
	controls, err := s.uc.Control.ListByCause(r.Context(), tenantFromRequest(r), causeID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]controlResponse, len(controls))
	for i, control := range controls {
		resp[i] = toControlResponse(control)
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getControl(w http.ResponseWriter, r *http.Request) {
	id := types.ControlMeasureID(chi.URLParam(r, "controlID"))
	control, err := s.uc.Control.Get(r.Context(), tenantFromRequest(r), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toControlResponse(control))
}

func (s *Server) updateControl(w http.ResponseWriter, r *http.Request) {
	var req controlRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := types.ControlMeasureID(chi.URLParam(r, "controlID"))
	control, err := s.uc.Control.Update(r.Context(), tenantFromRequest(r), id, req.input())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toControlResponse(control))
}

func (s *Server) deleteControl(w http.ResponseWriter, r *http.Request) {
	id := types.ControlMeasureID(chi.URLParam(r, "controlID"))
	if err := s.uc.Control.Delete(r.Context(), tenantFromRequest(r), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
