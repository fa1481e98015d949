package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskops-lab/manrisk/pkg/domain/model/config"
	"github.com/riskops-lab/manrisk/pkg/usecase"
	"github.com/riskops-lab/manrisk/pkg/utils/logging"
)

type Server struct {
	router    *chi.Mux
	uc        *usecase.UseCases
	appConfig *config.AppConfig
}

type Options func(*Server)

// WithAppConfig exposes the UPR registry on the API
func WithAppConfig(cfg *config.AppConfig) Options {
	return func(s *Server) {
		s.appConfig = cfg
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	if s.appConfig != nil {
		r.Get("/api/uprs", uprsHandler(s.appConfig))
	}

	r.Route("/api/tenants/{uprID}/{period}", func(r chi.Router) {
		r.Route("/goals", func(r chi.Router) {
			r.Post("/", s.createGoal)
			r.Get("/", s.listGoals)
			r.Route("/{goalID}", func(r chi.Router) {
				r.Get("/", s.getGoal)
				r.Put("/", s.updateGoal)
				r.Delete("/", s.deleteGoal)
				r.Post("/risks", s.createRisk)
				r.Get("/risks", s.listRisks)
			})
		})

		r.Route("/risks/{riskID}", func(r chi.Router) {
			r.Get("/", s.getRisk)
			r.Put("/", s.updateRisk)
			r.Put("/analysis", s.setRiskAnalysis)
			r.Delete("/", s.deleteRisk)
			r.Post("/causes", s.createCause)
			r.Post("/causes/accept", s.acceptCauseSuggestions)
			r.Get("/causes", s.listCauses)
			r.Post("/suggest/causes", s.suggestCauses)
		})

		r.Route("/causes/{causeID}", func(r chi.Router) {
			r.Get("/", s.getCause)
			r.Put("/", s.updateCause)
			r.Put("/analysis", s.setCauseAnalysis)
			r.Delete("/", s.deleteCause)
			r.Post("/controls", s.createControl)
			r.Post("/controls/accept", s.acceptControlSuggestions)
			r.Get("/controls", s.listControls)
			r.Post("/suggest/analysis", s.suggestCauseAnalysis)
			r.Post("/suggest/controls", s.suggestControls)
			r.Post("/suggest/kri", s.suggestKRI)
		})

		r.Route("/controls/{controlID}", func(r chi.Router) {
			r.Get("/", s.getControl)
			r.Put("/", s.updateControl)
			r.Delete("/", s.deleteControl)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// uprsHandler serves the configured UPR registry as JSON
func uprsHandler(cfg *config.AppConfig) http.HandlerFunc {
	type uprResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type response struct {
		UPRs          []uprResponse `json:"uprs"`
		DefaultPeriod string        `json:"defaultPeriod"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := response{
			UPRs:          make([]uprResponse, len(cfg.UPRs)),
			DefaultPeriod: cfg.DefaultPeriod,
		}
		for i, u := range cfg.UPRs {
			resp.UPRs[i] = uprResponse{ID: u.ID, Name: u.Name}
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}
