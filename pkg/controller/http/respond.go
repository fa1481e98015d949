package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/manrisk/pkg/domain/model"
	"github.com/riskops-lab/manrisk/pkg/domain/types"
	"github.com/riskops-lab/manrisk/pkg/usecase"
	"github.com/riskops-lab/manrisk/pkg/utils/errutil"
	"github.com/riskops-lab/manrisk/pkg/utils/safe"
)

func tenantFromRequest(r *http.Request) model.Tenant {
	return model.Tenant{
		UPRID:  chi.URLParam(r, "uprID"),
		Period: chi.URLParam(r, "period"),
	}
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return false
	}
	return true
}

// respondCascadeError reports a cascade that stopped partway. Removals are
// not rolled back, so the partial report must still reach the client for
// manual reconciliation; only the error itself goes when the cascade never
// started.
func respondCascadeError(w http.ResponseWriter, r *http.Request, report *model.CascadeReport, err error) {
	if report == nil {
		respondError(w, r, err)
		return
	}
	_ = errutil.Handle(r.Context(), err, "cascade delete failed")
	respondJSON(w, r, http.StatusInternalServerError, struct {
		Error  string          `json:"error"`
		Report cascadeResponse `json:"report"`
	}{
		Error:  err.Error(),
		Report: toCascadeResponse(report),
	})
}

// respondError maps domain errors onto HTTP status codes and logs them
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, usecase.ErrGoalNotFound),
		errors.Is(err, usecase.ErrRiskNotFound),
		errors.Is(err, usecase.ErrCauseNotFound),
		errors.Is(err, usecase.ErrControlNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrCodeConflict):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrSuggestionUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, types.ErrInvalidEnum), errors.Is(err, types.ErrUnknownLevel):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}
