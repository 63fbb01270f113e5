package in

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"neurowell/internal/modules/coach/dto"
	coachin "neurowell/internal/modules/coach/port/in"
	apperrors "neurowell/internal/platform/errors"
)

const maxRequestBytes = 64 << 10

type envelope struct {
	Success  bool                `json:"success"`
	Error    string              `json:"error,omitempty"`
	Message  string              `json:"message,omitempty"`
	Plan     *dto.PlanOutput     `json:"plan,omitempty"`
	Analysis *dto.AnalysisOutput `json:"analysis,omitempty"`
}

type HTTPHandler struct {
	usecase coachin.Usecase
	log     *zap.Logger
}

func NewHTTPHandler(usecase coachin.Usecase, log *zap.Logger) HTTPHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return HTTPHandler{usecase: usecase, log: log}
}

// Routes mounts the wellness API.
func (h HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Post("/api/generate-ai-wellness-plan", h.generatePlan)
	r.Post("/api/analyze-feelings", h.analyzeFeelings)
	r.Post("/api/log-mood", h.logMood)
	return r
}

func (h HTTPHandler) generatePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanInput
	if !decode(w, r, &req) {
		return
	}
	plan, err := h.usecase.GeneratePlan(r.Context(), req)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.log.Debug("plan served", zap.String("request_id", middleware.GetReqID(r.Context())), zap.Bool("generated", plan.Generated))
	respondJSON(w, envelope{Success: true, Plan: &plan}, http.StatusOK)
}

func (h HTTPHandler) analyzeFeelings(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeInput
	if !decode(w, r, &req) {
		return
	}
	analysis, err := h.usecase.AnalyzeFeelings(r.Context(), req)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, envelope{Success: true, Analysis: &analysis}, http.StatusOK)
}

func (h HTTPHandler) logMood(w http.ResponseWriter, r *http.Request) {
	var req dto.MoodInput
	if !decode(w, r, &req) {
		return
	}
	out, err := h.usecase.LogMood(r.Context(), req)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	respondJSON(w, envelope{Success: true, Message: out.Message}, http.StatusOK)
}

func (h HTTPHandler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, apperrors.ErrInvalidInput) {
		status = http.StatusBadRequest
	} else {
		h.log.Error("request failed", zap.String("request_id", middleware.GetReqID(r.Context())), zap.Error(err))
	}
	respondError(w, err.Error(), status)
}

func (h HTTPHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		defer func() {
			h.log.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(started)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(into); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, envelope{Success: false, Error: message}, status)
}
