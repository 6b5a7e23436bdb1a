// Package server exposes the validator over HTTP. Every request runs its
// own scan; nothing is shared between requests except configuration.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"fastacheck-core/fasta"
	"fastacheck-core/scan"
	"fastacheck/internal/config"
	"fastacheck/internal/jsonutil"
	"fastacheck/internal/output"
	"fastacheck/internal/summary"
	"fastacheck/internal/version"
)

type Server struct {
	cfg    config.Server
	opt    scan.Options
	log    hclog.Logger
	router chi.Router
}

// New wires the routes. opt is copied into every scan.
func New(cfg config.Server, opt scan.Options, log hclog.Logger) *Server {
	s := &Server{cfg: cfg, opt: opt, log: log}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate", s.validate)
	})
	s.router = r
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is canceled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.log.Info("server is shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		srv.SetKeepAlivesEnabled(false)
		done <- srv.Shutdown(sctx)
	}()

	s.log.Info("server starting", "addr", ln.Addr().String(), "version", version.Version)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
	RunID string `json:"run_id,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: version.Version})
}

// validate scans the request body. "Content-Encoding: gzip" bodies are
// decompressed and MaxBodyBytes caps both the wire and the decoded size;
// ?summary=true embeds length statistics.
func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	log := s.log.With("run_id", runID, "request_id", chimiddleware.GetReqID(r.Context()))

	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	defer body.Close()

	gzipped := strings.EqualFold(r.Header.Get("Content-Encoding"), "gzip")
	src, err := fasta.NewSource(body, gzipped)
	if err != nil {
		log.Warn("bad request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RunID: runID})
		return
	}
	if gzipped {
		src = fasta.Limit(src, s.cfg.MaxBodyBytes)
	}

	rep, err := scan.Scan(r.Context(), src, s.opt)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge), errors.Is(err, fasta.ErrTooLarge):
			status = http.StatusRequestEntityTooLarge
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			status = http.StatusServiceUnavailable
		}
		log.Warn("scan failed", "error", err, "status", status)
		writeJSON(w, status, errorResponse{Error: err.Error(), RunID: runID})
		return
	}

	v := output.ToAPIReport(rep, r.URL.Query().Get("source"))
	v.RunID = runID
	if r.URL.Query().Get("summary") == "true" {
		v.Summary = output.ToAPISummary(summary.Compute(rep.Records))
	}
	log.Info("validated", "records", len(rep.Records), "diagnostics", len(rep.Diagnostics))
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	_ = jsonutil.Respond(w, status, v)
}
