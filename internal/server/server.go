package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/server/ratelimit"
	"github.com/jonathan/cv-builder/internal/session"
)

// maxBodyBytes bounds request bodies; imports may carry a base64 photo.
const maxBodyBytes = 10 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *session.Store
	renderer    *rendering.Renderer
	rateLimiter *ratelimit.Limiter
	logger      *slog.Logger
	cfg         Config
}

// Config holds server configuration
type Config struct {
	Port            int
	DefaultTemplate string
	DefaultFormat   string
	IdleTimeout     time.Duration
	CleanupInterval time.Duration
	// RateLimit nil disables rate limiting.
	RateLimit *ratelimit.Config
}

// New creates a new server instance. A nil renderer uses the native engine.
func New(cfg Config, renderer *rendering.Renderer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if renderer == nil {
		renderer = rendering.NewRenderer(rendering.NewNativeEngine(), logger)
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = rendering.DefaultTemplate
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = rendering.FormatLetter
	}

	rl := cfg.RateLimit
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}

	s := &Server{
		store:       session.NewStore(cfg.IdleTimeout, logger),
		renderer:    renderer,
		rateLimiter: ratelimit.NewLimiter(rl),
		logger:      logger,
		cfg:         cfg,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // browser engine renders can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Store returns the session store.
func (s *Server) Store() *session.Store {
	return s.store
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.withLogging)
	r.Use(middleware.Recoverer)
	r.Use(s.withCORS)
	r.Use(s.withRateLimit)

	r.Get("/health", s.handleHealth)
	r.Get("/templates", s.handleTemplates)

	r.Post("/sessions", s.handleCreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleDeleteSession)

		r.Put("/personal-info", s.handleSetPersonalInfo)
		r.Put("/photo", s.handleSetPhoto)
		r.Delete("/photo", s.handleClearPhoto)
		r.Put("/skills", s.handleSetSkills)
		r.Put("/skills/{category}", s.handleSetSkillCategory)

		r.Get("/preview", s.handlePreview)
		r.Get("/export.pdf", s.handleExportPDF)
		r.Get("/export.json", s.handleExportJSON)
		r.Post("/import", s.handleImport)

		r.Get("/{section}", s.handleListSection)
		r.Post("/{section}", s.handleAddEntry)
		r.Delete("/{section}/{key}", s.handleRemoveEntry)
	})

	return r
}

// Start serves until ctx is cancelled, expiring idle sessions in the
// background, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.store.Run(gCtx, s.cfg.CleanupInterval)
		return nil
	})

	g.Go(func() error {
		s.logger.Info("Starting HTTP server", slog.String("address", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.rateLimiter.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info("Server stopped", slog.Int("sessions_dropped", s.store.Len()))
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.store.Len()})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("json encode failed", slog.String("error", err.Error()))
	}
}

// errorResponse writes err as JSON with the status HTTPStatus maps it to.
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	s.jsonResponse(w, status, newErrorBody(err))
}

// decodeJSON reads a bounded JSON body into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ErrBadRequest{Message: "invalid request body: " + err.Error()}
	}
	return nil
}
