package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prince50856457/readable"
)

// Server exposes the extraction service over HTTP.
type Server struct {
	addr     string
	articles readable.ArticleService
	logger   *slog.Logger
	server   *http.Server
}

// NewServer creates a Server around an ArticleService.
func NewServer(addr string, articles readable.ArticleService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		addr:     addr,
		articles: articles,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/extract", s.handleExtract)
	r.Get("/healthz", s.handleHealth)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the router, for testing and embedding.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe blocks serving requests until the listener fails or
// Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", "addr", s.addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// extractRequest is the POST /extract payload.
type extractRequest struct {
	URL string `json:"url"`
}

// errorResponse is the JSON error envelope. Detail carries the
// machine-readable code; internal failure detail is logged, never
// returned.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, readable.Errorf(readable.EINVALID, "invalid request body: expected JSON with a url field"))
		return
	}

	begin := time.Now()
	article, err := s.articles.ExtractArticle(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("extract",
		"requestId", middleware.GetReqID(r.Context()),
		"url", article.URL,
		"bytes", len(article.Content),
		"links", len(article.Links),
		"blocks", len(article.Blocks),
		"duration", time.Since(begin),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(article); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := readable.ErrorCode(err)
	if code == readable.EINTERNAL {
		s.logger.Error("extract failed",
			"requestId", middleware.GetReqID(r.Context()),
			"err", err,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFromCode(code))
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: readable.ErrorMessage(err),
		Code:  code,
	})
}

// statusFromCode maps application error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case readable.EINVALID:
		return http.StatusBadRequest
	case readable.ENOTFOUND:
		return http.StatusNotFound
	case readable.ENOCONTENT:
		return http.StatusUnprocessableEntity
	case readable.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
