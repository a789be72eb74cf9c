package relay

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"analyse-relay/internal/metrics"
	"analyse-relay/internal/reqctx"
)

// Handler is the http api layer for the relay.
type Handler struct {
	service Service
	logger  zerolog.Logger
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

// RegisterRoutes attaches the relay endpoint to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/analyse", func(r chi.Router) {
		r.Use(corsHeaders)
		r.MethodNotAllowed(h.handleMethodNotAllowed)

		r.Options("/", h.handlePreflight)
		r.Post("/", h.handleAnalyse)
	})
}

// --- DTOs ---

// analyseRequest is what the frontend sends.
type analyseRequest struct {
	Prompt string `json:"prompt"`
}

// analyseResponse is what we send back on success.
type analyseResponse struct {
	Text string `json:"text"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Debug string `json:"debug,omitempty"`
}

// --- Handlers ---

// corsHeaders lets browsers on any origin call the relay. It runs on every response path.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handlePreflight(w http.ResponseWriter, r *http.Request) {
	metrics.RelayRequests.WithLabelValues(metrics.OutcomePreflight).Inc()
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	metrics.RelayRequests.WithLabelValues(metrics.OutcomeMethodNotAllowed).Inc()
	writeError(w, http.StatusMethodNotAllowed, "Only POST requests allowed")
}

// handleAnalyse relays the prompt to Cohere and returns the generated text.
func (h *Handler) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	var req analyseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		metrics.RelayRequests.WithLabelValues(metrics.OutcomeBadRequest).Inc()
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// No default prompt is ever substituted.
	if req.Prompt == "" {
		metrics.RelayRequests.WithLabelValues(metrics.OutcomeBadRequest).Inc()
		writeError(w, http.StatusBadRequest, "No prompt provided")
		return
	}

	text, err := h.service.Analyse(r.Context(), req.Prompt)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	metrics.RelayRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	writeJSON(w, http.StatusOK, analyseResponse{Text: text})
}

// writeServiceError maps a service failure to a status code and error body.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := h.logger.With().Str("rid", reqctx.GetRequestID(r.Context())).Logger()

	var (
		credErr     *MissingCredentialError
		upstreamErr *UpstreamError
		noTextErr   *NoTextError
	)
	switch {
	case errors.As(err, &credErr):
		log.Error().Str("env", credErr.Name).Msg("upstream credential not configured")
		metrics.RelayRequests.WithLabelValues(metrics.OutcomeConfigError).Inc()
		writeError(w, http.StatusInternalServerError, credErr.Error())

	case errors.As(err, &upstreamErr):
		log.Warn().Int("upstream_status", upstreamErr.StatusCode).Str("message", upstreamErr.Message).Msg("cohere rejected request")
		metrics.RelayRequests.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		writeError(w, upstreamErr.Status(), upstreamErr.Message)

	case errors.As(err, &noTextErr):
		log.Warn().Str("payload", noTextErr.Debug).Msg("no text in cohere response")
		metrics.RelayRequests.WithLabelValues(metrics.OutcomeNoText).Inc()
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: noTextErr.Error(),
			Debug: noTextErr.Debug,
		})

	default:
		log.Error().Err(err).Msg("relay failed")
		metrics.RelayRequests.WithLabelValues(metrics.OutcomeError).Inc()
		writeError(w, http.StatusInternalServerError, "Server error: "+err.Error())
	}
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
