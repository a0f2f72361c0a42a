// Package server serves the landing page and the income comparison API.
package server

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/iwvelando/salarymoon/internal/chart"
	"github.com/iwvelando/salarymoon/internal/comparison"
	"github.com/iwvelando/salarymoon/internal/config"
	"github.com/iwvelando/salarymoon/internal/report"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const shutdownTimeout = 10 * time.Second

type handler struct {
	logger      *zap.Logger
	rates       *config.RateTable
	charts      *chart.Renderer
	reports     *report.Generator
	maxFormSize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and comparison API.
func NewHandler(logger *zap.Logger, rates *config.RateTable, maxFormSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxFormSize <= 0 {
		maxFormSize = constants.DefaultMaxFormSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	charts := chart.NewRenderer(logger)
	h := &handler{
		logger:      logger,
		rates:       rates,
		charts:      charts,
		reports:     report.NewGenerator(logger, charts),
		maxFormSize: maxFormSize,
		version:     trimmedVersion,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Post("/evaluate", h.handleEvaluate)
	router.Post("/evaluate/report", h.handleReport)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/jurisdictions", h.handleJurisdictions)
	})

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	router.Get("/*", http.FileServer(http.FS(sub)).ServeHTTP)

	return router
}

// Serve runs an HTTP server on address until ctx is cancelled, then shuts it down.
func Serve(ctx context.Context, logger *zap.Logger, address string, h http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              address,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "server.Serve"),
			zap.String("address", address),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "server.Serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

type evaluateResponse struct {
	ResultsTable string `json:"resultsTable"`
	Summary      string `json:"summary"`
	Chart        string `json:"chart"`
}

type jurisdictionEntry struct {
	Name          string  `json:"name"`
	Rate          float64 `json:"rate"`
	FreelanceRate float64 `json:"freelanceRate"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"
	start := time.Now()

	result, ok := h.compareForm(w, r, op)
	if !ok {
		return
	}

	table, err := result.TableHTML()
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	chartData, err := h.charts.RenderBase64(result)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err), op)
		return
	}

	h.logger.Info("comparison evaluated",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.String("jurisdiction", result.Jurisdiction),
		zap.Float64("requiredHours", result.RequiredFreelanceHours),
		zap.Bool("warning", result.Warning()),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, evaluateResponse{
		ResultsTable: table,
		Summary:      result.Summary(),
		Chart:        chartData,
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"

	result, ok := h.compareForm(w, r, op)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.reports.Write(&buf, result); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}

	h.logger.Info("report generated",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.String("jurisdiction", result.Jurisdiction),
		zap.Int("bytes", buf.Len()),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="income-comparison.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write report", zap.String("op", op), zap.Error(err))
	}
}

// compareForm parses the request form and runs the comparison. It writes the
// error response itself and reports false when the request cannot proceed.
func (h *handler) compareForm(w http.ResponseWriter, r *http.Request, op string) (comparison.Result, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormSize)
	if err := r.ParseForm(); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("form exceeds limit of %d bytes", h.maxFormSize), op)
			return comparison.Result{}, false
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err), op)
		return comparison.Result{}, false
	}

	in, err := parseInput(r.PostForm)
	if err == nil {
		var result comparison.Result
		result, err = comparison.Compare(h.rates, in)
		if err == nil {
			return result, true
		}
	}

	if comparison.IsValidationError(err) {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
	} else {
		h.respondError(w, r, http.StatusInternalServerError, err.Error(), op)
	}
	return comparison.Result{}, false
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleJurisdictions(w http.ResponseWriter, r *http.Request) {
	names := h.rates.Names()
	entries := make([]jurisdictionEntry, 0, len(names))
	for _, name := range names {
		rates, _ := h.rates.Lookup(name)
		entries = append(entries, jurisdictionEntry{
			Name:          name,
			Rate:          rates.Employee,
			FreelanceRate: rates.Freelance,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string][]jurisdictionEntry{
		"jurisdictions": entries,
	})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("comparison request failed", fields...)
	} else {
		h.logger.Warn("comparison request rejected", fields...)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
