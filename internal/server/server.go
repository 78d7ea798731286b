// Package server exposes the calculators as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TwistedSD/Financial-Calculators/internal/calculation"
	"github.com/TwistedSD/Financial-Calculators/internal/config"
	"github.com/TwistedSD/Financial-Calculators/internal/domain"
	"github.com/TwistedSD/Financial-Calculators/internal/output"
	"github.com/TwistedSD/Financial-Calculators/internal/store"
)

const maxBodyBytes = 1 << 20

// Server routes API requests to the calculation engine.
type Server struct {
	engine   *calculation.Engine
	store    store.Store
	parser   *config.InputParser
	logger   calculation.Logger
	currency string
	locale   string
}

// Option configures a Server
type Option func(*Server)

// WithStore enables saving and restoring inputs.
func WithStore(s store.Store) Option {
	return func(srv *Server) { srv.store = s }
}

// WithLogger sets the logger used for request failures.
func WithLogger(l calculation.Logger) Option {
	return func(srv *Server) {
		if l != nil {
			srv.logger = l
		}
	}
}

// WithDisplay sets the default currency and locale for batches that name none.
func WithDisplay(currency, locale string) Option {
	return func(srv *Server) {
		srv.currency = currency
		srv.locale = locale
	}
}

// New creates a server around engine.
func New(engine *calculation.Engine, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		parser:   config.NewInputParser(),
		logger:   calculation.NopLogger{},
		currency: config.DefaultCurrency,
		locale:   config.DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/calculators", s.handleCalculators)
		r.Post("/batch", s.handleBatch)
		r.Post("/{kind}", s.handleCalculate)
		r.Get("/{kind}/saved", s.handleLoadSaved)
		r.Delete("/{kind}/saved", s.handleDeleteSaved)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCalculators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"calculators": domain.Kinds(),
		"formats":     output.AvailableFormatterNames(),
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	req := domain.NewRequest(kind)
	req.Name = r.URL.Query().Get("name")
	if err := decodeJSON(w, r, req.Params(kind)); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	config.ApplyRequestDefaults(&req, s.currency)
	if err := config.ValidateRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	outcome, err := s.engine.Run(r.Context(), req)
	if err != nil {
		s.logger.Warnf("%s request failed: %v", kind, err)
		writeError(w, statusFor(err), err)
		return
	}

	if s.store != nil && r.URL.Query().Get("save") == "true" {
		if err := s.store.Save(r.Context(), kind, req.Params(kind)); err != nil {
			s.logger.Errorf("save %s inputs: %v", kind, err)
		}
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var batch domain.Batch
	if err := decodeJSON(w, r, &batch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if batch.Currency == "" {
		batch.Currency = s.currency
	}
	if batch.Locale == "" {
		batch.Locale = s.locale
	}
	s.parser.ApplyDefaults(&batch)
	if err := s.parser.ValidateBatch(&batch); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := s.engine.RunBatch(r.Context(), &batch)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		writeJSON(w, http.StatusOK, results)
		return
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format))
		return
	}
	body, err := f.Format(results)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", contentType(f))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleLoadSaved(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.savedKind(w, r)
	if !ok {
		return
	}
	req := domain.NewRequest(kind)
	if err := s.store.Load(r.Context(), kind, req.Params(kind)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, req.Params(kind))
}

func (s *Server) handleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	kind, ok := s.savedKind(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), kind); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) savedKind(w http.ResponseWriter, r *http.Request) (domain.Kind, bool) {
	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return "", false
	}
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, errors.New("saved inputs are disabled"))
		return "", false
	}
	return kind, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, into any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	if errors.Is(err, calculation.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func contentType(f output.Formatter) string {
	switch f.Name() {
	case "html":
		return "text/html; charset=utf-8"
	case "csv", "schedule-csv":
		return "text/csv; charset=utf-8"
	case "yaml":
		return "application/yaml"
	case "json":
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
