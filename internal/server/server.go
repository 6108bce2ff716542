package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ucb-pesa/pesa-dashboard/internal/config"
	"github.com/ucb-pesa/pesa-dashboard/internal/dashboard"
	"github.com/ucb-pesa/pesa-dashboard/internal/dataset"
	"github.com/ucb-pesa/pesa-dashboard/internal/impact"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"github.com/ucb-pesa/pesa-dashboard/pkg/export"
	"github.com/ucb-pesa/pesa-dashboard/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger  *zap.Logger
	cfg     *config.Configuration
	version string
}

// NewHandler constructs the HTTP handler that serves the dashboard page and
// its JSON API. A nil configuration falls back to the built-in defaults.
func NewHandler(logger *zap.Logger, cfg *config.Configuration, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, cfg: cfg, version: trimmedVersion}

	mux := http.NewServeMux()

	// Full page state for one selection
	mux.HandleFunc("/api/dashboard", h.handleDashboard)

	// Ad-hoc calculator
	mux.HandleFunc("/api/impact", h.handleImpact)

	mux.HandleFunc("/api/scenarios", h.handleScenarios)
	mux.HandleFunc("/api/maturity/", h.handleMaturity)

	// Downloadable report
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return withRequestID(logger, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with a correlation id, echoes it in the
// response and logs the outcome.
func withRequestID(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := strings.TrimSpace(r.Header.Get(constants.RequestIDHeader))
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		w.Header().Set(constants.RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Debug("request served",
			zap.String("op", "server.withRequestID"),
			zap.String("requestId", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type linksResponse struct {
	ExternalDashboard string `json:"externalDashboard,omitempty"`
}

type dashboardResponse struct {
	dashboard.Snapshot
	Links linksResponse `json:"links"`
}

type impactResponse struct {
	Assumptions impact.Assumptions       `json:"assumptions"`
	Impact      impact.Impact            `json:"impact"`
	Composition []impact.CompositionItem `json:"composition"`
}

type scenariosResponse struct {
	Assumptions impact.Assumptions      `json:"assumptions"`
	Scenarios   []impact.ScenarioImpact `json:"scenarios"`
}

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDashboard"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	view, err := h.viewFromQuery(r.URL.Query())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	snap, err := view.Snapshot()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, dashboardResponse{
		Snapshot: snap,
		Links:    linksResponse{ExternalDashboard: strings.TrimSpace(h.cfg.Links.ExternalDashboard)},
	})
}

func (h *handler) handleImpact(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleImpact"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	raw := strings.TrimSpace(query.Get("reduction"))
	if raw == "" {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing reduction parameter", op)
		return
	}
	reduction, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid reduction %q", raw), op)
		return
	}

	assumptions, err := h.assumptionsFromQuery(query)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	result, err := impact.Calculate(assumptions, reduction)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, impact.ErrInvalidReduction) || errors.Is(err, impact.ErrInvalidAssumptions) {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, impactResponse{
		Assumptions: assumptions,
		Impact:      result,
		Composition: impact.Composition(result),
	})
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleScenarios"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	assumptions, err := h.assumptionsFromQuery(r.URL.Query())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	comparison, err := impact.CompareScenarios(assumptions, dataset.Scenarios())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, scenariosResponse{Assumptions: assumptions, Scenarios: comparison})
}

func (h *handler) handleMaturity(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleMaturity"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	year := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/maturity/"), "/")
	if year == "" {
		h.writeJSON(w, http.StatusOK, dataset.Maturity())
		return
	}

	phase, ok := dataset.PhaseByYear(year)
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("no maturity phase for year %s", year), op)
		return
	}
	h.writeJSON(w, http.StatusOK, phase)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	format := strings.TrimSpace(query.Get("format"))
	if format == "" {
		format = constants.ExportFormatXLSX
	}
	if err := validation.ValidateExportFormat(format); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	view, err := h.viewFromQuery(query)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	snap, err := view.Snapshot()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, snap); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.logger.Info("report exported",
		zap.String("op", op),
		zap.String("format", format),
		zap.Int("bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment",
		map[string]string{"filename": export.FileName(format, snap.State)}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write export response", zap.String("op", op), zap.Error(err))
	}
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

// viewFromQuery builds a view from the configured defaults and the query
// overrides. A parameter that is present but empty clears that selection.
func (h *handler) viewFromQuery(query url.Values) (*dashboard.View, error) {
	state := dashboard.State{
		Year:     h.cfg.Defaults.Year,
		Scenario: h.cfg.Defaults.Scenario,
		Section:  h.cfg.Defaults.Section,
	}
	if values, ok := query["year"]; ok && len(values) > 0 {
		state.Year = strings.TrimSpace(values[0])
	}
	if values, ok := query["scenario"]; ok && len(values) > 0 {
		state.Scenario = strings.TrimSpace(values[0])
	}
	if values, ok := query["section"]; ok && len(values) > 0 {
		state.Section = strings.TrimSpace(values[0])
	}
	if raw := strings.TrimSpace(query.Get("menu")); raw != "" {
		open, err := parseMenu(raw)
		if err != nil {
			return nil, err
		}
		state.MobileMenuOpen = open
	}

	tuition, students, err := parseOverrides(query)
	if err != nil {
		return nil, err
	}
	state.MonthlyTuition = tuition
	state.TotalStudents = students

	return dashboard.NewView(h.logger, h.cfg.Assumptions, state), nil
}

func (h *handler) assumptionsFromQuery(query url.Values) (impact.Assumptions, error) {
	assumptions := h.cfg.Assumptions
	tuition, students, err := parseOverrides(query)
	if err != nil {
		return impact.Assumptions{}, err
	}
	if tuition != nil {
		assumptions.MonthlyTuition = *tuition
	}
	if students != nil {
		assumptions.TotalStudents = *students
	}
	return assumptions, nil
}

func parseOverrides(query url.Values) (*float64, *int, error) {
	var tuition *float64
	if raw := strings.TrimSpace(query.Get("tuition")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid tuition %q", raw)
		}
		tuition = &v
	}

	var students *int
	if raw := strings.TrimSpace(query.Get("students")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid students %q", raw)
		}
		students = &v
	}
	return tuition, students, nil
}

func parseMenu(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "open":
		return true, nil
	case "closed":
		return false, nil
	}
	open, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid menu state %q", raw)
	}
	return open, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("dashboard request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON answers 500 with an error body when payload cannot be encoded.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Int("status", status), zap.Error(err))
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write JSON response", zap.Error(err))
	}
}
