package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Amanile/epf-calculator/internal/projection"
	"github.com/Amanile/epf-calculator/pkg/constants"
	"github.com/Amanile/epf-calculator/pkg/epf"
	"github.com/Amanile/epf-calculator/pkg/mathutil"
	"github.com/Amanile/epf-calculator/pkg/output"
	"github.com/Amanile/epf-calculator/pkg/validation"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	defaults       epf.Input
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// projection API. The defaults input backs /api/defaults and pre-fills the
// calculator form.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string, defaults epf.Input) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if defaults == (epf.Input{}) {
		defaults = epf.DefaultInput()
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion, defaults: defaults}

	mux := http.NewServeMux()

	// Single projection endpoint
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Scenario comparison endpoint
	mux.HandleFunc("/api/scenarios", h.handleScenarios)

	// Contribution-rate goal solver endpoint
	mux.HandleFunc("/api/goal", h.handleGoal)

	// CSV export endpoint for download links
	mux.HandleFunc("/api/export", h.handleExport)

	// Default inputs for form pre-fill
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type calculateResponse struct {
	Success           bool             `json:"success"`
	FinalAmount       float64          `json:"final_amount"`
	TotalContribution float64          `json:"total_contribution"`
	TotalInterest     float64          `json:"total_interest"`
	ROIPercent        float64          `json:"roi_percent"`
	YearlyData        []epf.YearRecord `json:"yearly_data"`
	CalculationID     string           `json:"calculation_id"`
	Duration          string           `json:"duration"`
}

type scenarioRequest struct {
	Name string `json:"name"`
	epf.Input
}

type scenariosRequest struct {
	Scenarios []scenarioRequest `json:"scenarios"`
}

type scenarioSummary struct {
	Name              string           `json:"name"`
	FinalAmount       float64          `json:"final_amount"`
	TotalContribution float64          `json:"total_contribution"`
	TotalInterest     float64          `json:"total_interest"`
	ROIPercent        float64          `json:"roi_percent"`
	YearlyData        []epf.YearRecord `json:"yearly_data"`
}

type scenariosResponse struct {
	Success   bool              `json:"success"`
	Scenarios []scenarioSummary `json:"scenarios"`
	Duration  string            `json:"duration"`
}

type goalRequest struct {
	epf.Input
	TargetAmount float64 `json:"target_amount"`
}

type goalResponse struct {
	Success bool `json:"success"`
	epf.GoalResult
	Duration string `json:"duration"`
}

type exportRequest struct {
	Name string `json:"name"`
	epf.Input
}

type exportResponse struct {
	Success bool   `json:"success"`
	CSV     string `json:"csv"`
}

type defaultsResponse struct {
	Success  bool      `json:"success"`
	Defaults epf.Input `json:"defaults"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var input epf.Input
	if !h.decodeJSON(w, r, &input, "server.handleCalculate") {
		return
	}

	if err := validation.ValidateInput(input); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleCalculate")
		return
	}

	result := epf.Project(input)
	elapsed := time.Since(start)

	response := buildCalculateResponse(result)
	response.CalculationID = uuid.NewString()
	response.Duration = elapsed.String()

	if h.logger != nil {
		h.logger.Info("projection computed",
			zap.String("op", "server.handleCalculate"),
			zap.Int("years", len(result.Years)),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req scenariosRequest
	if !h.decodeJSON(w, r, &req, "server.handleScenarios") {
		return
	}

	if len(req.Scenarios) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "at least one scenario is required", "server.handleScenarios")
		return
	}
	if len(req.Scenarios) > constants.MaxScenariosPerRequest {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d scenarios are allowed", constants.MaxScenariosPerRequest), "server.handleScenarios")
		return
	}

	summaries := make([]scenarioSummary, 0, len(req.Scenarios))
	for i, scenario := range req.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			name = fmt.Sprintf("scenario %d", i+1)
		}

		if err := validation.ValidateInput(scenario.Input); err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest,
				fmt.Sprintf("scenario %s: %v", name, err), "server.handleScenarios")
			return
		}

		result := epf.Project(scenario.Input)
		summaries = append(summaries, scenarioSummary{
			Name:              name,
			FinalAmount:       mathutil.Round(result.Maturity),
			TotalContribution: mathutil.Round(result.TotalContribution),
			TotalInterest:     mathutil.Round(result.TotalInterest),
			ROIPercent:        mathutil.Round(result.ReturnOnInvestment()),
			YearlyData:        roundedYears(result.Years),
		})
	}

	elapsed := time.Since(start)
	if h.logger != nil {
		h.logger.Info("scenario comparison computed",
			zap.String("op", "server.handleScenarios"),
			zap.Int("scenarios", len(summaries)),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, scenariosResponse{
		Success:   true,
		Scenarios: summaries,
		Duration:  elapsed.String(),
	})
}

func (h *handler) handleGoal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	var req goalRequest
	if !h.decodeJSON(w, r, &req, "server.handleGoal") {
		return
	}

	if err := validation.ValidateInput(req.Input); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleGoal")
		return
	}

	result, err := epf.SolveContributionRate(req.Input, req.TargetAmount)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleGoal")
		return
	}

	result.RequiredRate = mathutil.Round(result.RequiredRate)
	result.Maturity = mathutil.Round(result.Maturity)

	elapsed := time.Since(start)
	if h.logger != nil {
		h.logger.Info("goal rate solved",
			zap.String("op", "server.handleGoal"),
			zap.Int("iterations", result.Iterations),
			zap.Bool("converged", result.Converged),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, goalResponse{
		Success:    true,
		GoalResult: result,
		Duration:   elapsed.String(),
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req exportRequest
	if !h.decodeJSON(w, r, &req, "server.handleExport") {
		return
	}

	if err := validation.ValidateInput(req.Input); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleExport")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "projection"
	}

	result := epf.Project(req.Input)
	csv := output.CsvString([]projection.ScenarioProjection{
		{Name: name, Input: req.Input, Result: result},
	})

	h.writeJSON(w, http.StatusOK, exportResponse{Success: true, CSV: csv})
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, defaultsResponse{Success: true, Defaults: h.defaults})
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

func buildCalculateResponse(result epf.Result) calculateResponse {
	return calculateResponse{
		Success:           true,
		FinalAmount:       mathutil.Round(result.Maturity),
		TotalContribution: mathutil.Round(result.TotalContribution),
		TotalInterest:     mathutil.Round(result.TotalInterest),
		ROIPercent:        mathutil.Round(result.ReturnOnInvestment()),
		YearlyData:        roundedYears(result.Years),
	}
}

func roundedYears(years []epf.YearRecord) []epf.YearRecord {
	rounded := make([]epf.YearRecord, 0, len(years))
	for _, year := range years {
		year.MonthlySalary = mathutil.Round(year.MonthlySalary)
		year.Contribution = mathutil.Round(year.Contribution)
		year.Interest = mathutil.Round(year.Interest)
		year.Balance = mathutil.Round(year.Balance)
		rounded = append(rounded, year)
	}
	return rounded
}

// decodeJSON reads the request body into dst, enforcing the configured size
// limit. On failure it writes the error response and returns false.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("projection request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
