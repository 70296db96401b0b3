// Package server exposes the calculation engine over a JSON HTTP API. The UI
// layer consumes only the Result and ScheduleEntry shapes; no intermediate
// component state crosses this boundary.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/calcsuite/loan-engine/internal/cache"
	"github.com/calcsuite/loan-engine/pkg/loan"
	"github.com/calcsuite/loan-engine/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	engine      *loan.Engine
	cache       cache.Cache
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the calculation API.
// A nil cache disables result caching.
func NewHandler(logger *zap.Logger, results cache.Cache, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		engine:      loan.NewEngine(logger),
		cache:       results,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Calculation endpoint
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Validation-only endpoint for live form feedback
	mux.HandleFunc("/api/validate", h.handleValidate)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calculateResponse struct {
	Result   *loan.Result `json:"result"`
	Cached   bool         `json:"cached,omitempty"`
	Duration string       `json:"duration"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	terms, ok := h.decodeTerms(w, r, "server.handleCalculate")
	if !ok {
		return
	}

	outcome := validation.Validate(*terms)
	if !outcome.Valid {
		h.writeJSON(w, http.StatusUnprocessableEntity, outcome)
		return
	}

	if h.cache != nil {
		if key, err := cache.Key(*terms); err == nil {
			if cached, hit := h.cache.Get(r.Context(), key); hit {
				var result loan.Result
				if err := json.Unmarshal([]byte(cached), &result); err == nil {
					h.writeJSON(w, http.StatusOK, calculateResponse{
						Result:   &result,
						Cached:   true,
						Duration: time.Since(start).String(),
					})
					return
				}
				h.logger.Warn("discarding undecodable cached result",
					zap.String("op", "server.handleCalculate"),
					zap.Error(err),
				)
			}
		}
	}

	result, err := h.engine.Calculate(*terms)
	if err != nil {
		// Reconciliation errors duplicate what validation reports; reaching
		// this path means the caller skipped validation.
		h.respondError(w, http.StatusUnprocessableEntity, err.Error(), "server.handleCalculate")
		return
	}

	if h.cache != nil {
		if key, keyErr := cache.Key(*terms); keyErr == nil {
			if data, marshalErr := json.Marshal(result); marshalErr == nil {
				if setErr := h.cache.Set(r.Context(), key, string(data)); setErr != nil {
					h.logger.Warn("failed to cache result",
						zap.String("op", "server.handleCalculate"),
						zap.Error(setErr),
					)
				}
			}
		}
	}

	elapsed := time.Since(start)
	h.logger.Info("calculation served",
		zap.String("op", "server.handleCalculate"),
		zap.Float64("loanAmount", result.LoanAmount),
		zap.Int("periods", result.TotalPeriods),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Result:   result,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	terms, ok := h.decodeTerms(w, r, "server.handleValidate")
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, validation.Validate(*terms))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeTerms(w http.ResponseWriter, r *http.Request, op string) (*loan.Terms, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var terms loan.Terms
	if err := json.NewDecoder(r.Body).Decode(&terms); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode terms: %v", err), op)
		return nil, false
	}
	return &terms, true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
