package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/notebook"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxRequestSize caps the size of a chat request body.
const DefaultMaxRequestSize = 30 << 20

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 5 * time.Second

// RequestIDHeader carries the request ID on responses.
const RequestIDHeader = "X-Request-Id"

// Server exposes notebook.ChatService over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, for example "0.0.0.0:3001".
	Addr string

	// MaxRequestSize limits the chat request body in bytes.
	MaxRequestSize int64

	// Gatherer backs GET /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	Logger      *slog.Logger
	ChatService notebook.ChatService
}

// NewServer returns a new Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server:         &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router:         chi.NewRouter(),
		MaxRequestSize: DefaultMaxRequestSize,
		Gatherer:       prometheus.DefaultGatherer,
		Logger:         slog.New(slog.DiscardHandler),
	}
	s.server.Handler = s

	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestID)
	s.router.Use(s.logRequest)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/metrics", s.handleMetrics)
	s.router.Post("/api/chat", s.handleChat)

	return s
}

// Open starts listening on Addr and serves requests in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() { _ = s.server.Serve(s.ln) }()

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP dispatches to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)

	var req notebook.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.Error(w, r, notebook.Errorf(notebook.EINVALID, "request body exceeds %d bytes", maxErr.Limit))
			return
		}
		s.Error(w, r, notebook.Errorf(notebook.EINVALID, "malformed request: %v", err))
		return
	}

	resp, err := s.ChatService.Chat(r.Context(), &req)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// errorResponse is the JSON body written for failed requests.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Error writes err as a JSON envelope with a status derived from its code.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := notebook.ErrorCode(err), notebook.ErrorMessage(err)
	status := ErrorStatusCode(code)

	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", notebook.RequestIDFromContext(r.Context()),
			"err", err,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&errorResponse{
		Error:   http.StatusText(status),
		Details: message,
	})
}

var codes = map[string]int{
	notebook.EINVALID:  http.StatusBadRequest,
	notebook.EUPSTREAM: http.StatusBadGateway,
	notebook.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode maps a notebook error code to an HTTP status code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// requestID assigns each request an ID, stored in the context and echoed
// in the response headers.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		ctx := notebook.NewContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.Logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", notebook.RequestIDFromContext(r.Context()),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}
