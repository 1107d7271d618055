// Package server exposes the estimation engine over a JSON HTTP API,
// mirroring the surface the web front end consumes: a calculation endpoint
// plus read-only catalog lookups.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buildcost/estimator/pkg/catalog"
	"github.com/buildcost/estimator/pkg/constants"
	"github.com/buildcost/estimator/pkg/estimate"
	"github.com/buildcost/estimator/pkg/validation"
)

type handler struct {
	logger      *zap.Logger
	catalog     *catalog.RateCatalog
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the estimate API. The
// catalog is read-only for the handler's lifetime and shared across
// concurrent requests.
func NewHandler(logger *zap.Logger, cat *catalog.RateCatalog, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, catalog: cat, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Calculation endpoint
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Catalog lookups for form population
	mux.HandleFunc("/api/cities", h.handleCities)
	mux.HandleFunc("/api/materials", h.handleMaterials)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type estimateResponse struct {
	Estimate *estimate.EstimateResult `json:"estimate"`
	Warnings []string                 `json:"warnings,omitempty"`
	Duration string                   `json:"duration"`
}

type citiesResponse struct {
	Cities []catalog.CityRate `json:"cities"`
}

type materialsResponse struct {
	City      string                 `json:"city"`
	Materials []catalog.MaterialRate `json:"materials"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var spec estimate.ProjectSpecification
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), "server.handleEstimate")
			return
		}
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode specification: %v", err), "server.handleEstimate")
		return
	}

	result, err := estimate.Calculate(h.logger, spec, h.catalog)
	if err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			h.respondValidationError(w, vErr)
			return
		}
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to compute estimate: %v", err), "server.handleEstimate")
		return
	}
	result.EstimateID = uuid.NewString()

	var warnings []string
	if _, note := estimate.Utilization(spec); note != "" {
		warnings = append(warnings, note)
	}

	elapsed := time.Since(start)
	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.String("project", spec.ProjectName),
		zap.String("estimateId", result.EstimateID),
		zap.Float64("totalCost", result.TotalCost),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		Estimate: result,
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, citiesResponse{Cities: h.catalog.Cities})
}

func (h *handler) handleMaterials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		city = h.catalog.DefaultCity
	}
	if !h.catalog.HasCity(city) {
		h.respondError(w, http.StatusNotFound,
			fmt.Sprintf("unknown city %q", city), "server.handleMaterials")
		return
	}

	h.writeJSON(w, http.StatusOK, materialsResponse{
		City:      city,
		Materials: h.catalog.MaterialRatesFor(city),
	})
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

func (h *handler) respondValidationError(w http.ResponseWriter, vErr *validation.Error) {
	h.logger.Warn("specification rejected",
		zap.String("op", "server.handleEstimate"),
		zap.String("kind", string(vErr.Kind)),
		zap.String("field", vErr.Field),
		zap.String("error", vErr.Message),
	)

	// The Error struct already carries kind/field/error JSON fields.
	h.writeJSON(w, http.StatusUnprocessableEntity, vErr)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
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
