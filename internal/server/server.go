// Package server exposes the design pipeline over HTTP: a client POSTs a
// YAML configuration and receives the computed design as JSON.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"math/cmplx"
	"net/http"

	"github.com/coilworks/coil-designer/internal/config"
	"github.com/coilworks/coil-designer/internal/design"
	"github.com/coilworks/coil-designer/internal/drift"
	"github.com/coilworks/coil-designer/internal/network"
	"github.com/coilworks/coil-designer/internal/toroid"
	"github.com/coilworks/coil-designer/pkg/constants"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
}

// NewHandler constructs the HTTP handler serving the design API.
func NewHandler(logger *zap.Logger, maxUploadSize int64) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/api/design", h.handleDesign)
	return mux
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// designResponse is the JSON shape returned by the design endpoint.
type designResponse struct {
	Network  *network.Network       `json:"network"`
	Toroid   *toroid.CombinedResult `json:"toroid"`
	Drift    *drift.Result          `json:"drift,omitempty"`
	Peak     peakSummary            `json:"peak"`
	Warnings []string               `json:"warnings,omitempty"`
}

type peakSummary struct {
	Frequency float64 `json:"frequency"`
	Magnitude float64 `json:"magnitude"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleDesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, errors.New("only POST is supported"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	conf, err := config.ParseConfiguration(body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := conf.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := design.Run(h.logger, conf)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, toroid.ErrInvalidArgument) || errors.Is(err, network.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		if errors.Is(err, toroid.ErrGeometryInfeasible) {
			status = http.StatusUnprocessableEntity
		}
		h.writeError(w, status, err)
		return
	}

	peak := result.Sweep.Peak()
	resp := designResponse{
		Network: result.Network,
		Toroid:  result.Toroid,
		Drift:   result.Drift,
		Peak: peakSummary{
			Frequency: peak.Frequency,
			Magnitude: cmplx.Abs(peak.Transfer),
		},
		Warnings: conf.ValidateConfiguration(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode design response",
			zap.String("op", "server.handleDesign"),
			zap.Error(err),
		)
	}

	h.logger.Info("design request served",
		zap.String("op", "server.handleDesign"),
		zap.Float64("frequency", conf.Coil.Frequency),
		zap.Float64("matchInductor", result.Network.MatchInductor),
	)
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Warn("design request rejected",
		zap.String("op", "server.handleDesign"),
		zap.Int("status", status),
		zap.Error(err),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
