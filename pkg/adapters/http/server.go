// Package http exposes the step generators over HTTP, Server-Sent Events and WebSocket.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/internal/logging"
	"github.com/aretw0/algoviz/internal/sanitizer"
	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Engine defines the subset of algoviz.Engine served over the network.
type Engine interface {
	Algorithms() []domain.AlgorithmID
	Generate(ctx context.Context, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error)
	GenerateSession(ctx context.Context, sessionID string, id domain.AlgorithmID, data map[string]any) ([]domain.Step, error)
	LinkedListAction(ctx context.Context, sessionID, action string, data map[string]any) (algoviz.ListResult, error)
	NewSession(ctx context.Context) (*domain.ListState, error)
	Session(ctx context.Context, sessionID string) (*domain.ListState, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Sessions(ctx context.Context) ([]string, error)
}

var _ Engine = (*algoviz.Engine)(nil)

// Server holds the handler dependencies.
type Server struct {
	Engine  Engine
	Streams *StreamManager

	logger      *slog.Logger
	metrics     http.Handler
	corsOrigins []string
	rateLimit   float64
	rateBurst   int
	wsLimit     float64
	wsBurst     int
	validate    *validator.Validate
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithCORSOrigins restricts the allowed origins. Empty means "*".
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithRateLimit limits each client address to rps requests per second with
// the given burst. Zero disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rateLimit = rps
		s.rateBurst = burst
	}
}

// WithWebSocketRateLimit limits visualize messages per WebSocket connection.
func WithWebSocketRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.wsLimit = rps
		s.wsBurst = burst
	}
}

// NewServer creates a Server with defaults applied.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		Engine:   engine,
		wsLimit:  10,
		wsBurst:  20,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.Streams = NewStreamManager(s.logger)
	return s
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	return NewServer(engine, opts...).Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.cors)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Get("/ws", s.HandleWebSocket)

	r.Group(func(r chi.Router) {
		if s.rateLimit > 0 {
			r.Use(newClientLimiter(s.rateLimit, s.rateBurst).middleware)
		}
		r.Get("/algorithms", s.ListAlgorithms)
		r.Post("/visualize", s.Visualize)

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", s.ListSessions)
			r.Post("/", s.CreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetSession)
				r.Delete("/", s.DeleteSession)
				r.Post("/linked-list", s.LinkedListAction)
				r.Get("/events", s.SubscribeEvents)
			})
		})
	})
	return r
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if len(s.corsOrigins) > 0 {
			origin = ""
			reqOrigin := r.Header.Get("Origin")
			for _, o := range s.corsOrigins {
				if o == reqOrigin || o == "*" {
					origin = o
					break
				}
			}
		}
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>algoviz API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// VisualizeRequest is the body of POST /visualize.
type VisualizeRequest struct {
	Algorithm string         `json:"algorithm" validate:"required,max=64"`
	Data      map[string]any `json:"data"`
	SessionID string         `json:"sessionId,omitempty" validate:"omitempty,max=128"`
}

// VisualizeResponse is the body returned by POST /visualize.
type VisualizeResponse struct {
	Algorithm  string        `json:"algorithm"`
	Steps      []domain.Step `json:"steps"`
	TotalSteps int           `json:"totalSteps"`
}

// ListActionRequest is the body of POST /sessions/{id}/linked-list.
type ListActionRequest struct {
	Action   string `json:"action" validate:"required,max=32"`
	Value    *int   `json:"value,omitempty"`
	Position *int   `json:"position,omitempty"`
	Values   []int  `json:"values,omitempty"`
}

func (req ListActionRequest) data() map[string]any {
	data := map[string]any{}
	if req.Value != nil {
		data["value"] = *req.Value
	}
	if req.Position != nil {
		data["position"] = *req.Position
	}
	if req.Values != nil {
		data["values"] = req.Values
	}
	return data
}

// Visualize handles the POST /visualize request.
func (s *Server) Visualize(w http.ResponseWriter, r *http.Request) {
	var body VisualizeRequest
	if !s.decode(w, r, &body) {
		return
	}

	id := domain.AlgorithmID(strings.TrimSpace(body.Algorithm))
	var (
		steps []domain.Step
		err   error
	)
	if body.SessionID != "" {
		sessionID, idErr := sanitizer.Identifier(body.SessionID)
		if idErr != nil {
			s.writeError(w, r, idErr)
			return
		}
		steps, err = s.Engine.GenerateSession(r.Context(), sessionID, id, body.Data)
		if err == nil && id == domain.AlgorithmLinkedList {
			s.publish(r.Context(), sessionID, steps)
		}
	} else {
		steps, err = s.Engine.Generate(r.Context(), id, body.Data)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, VisualizeResponse{
		Algorithm:  string(id),
		Steps:      steps,
		TotalSteps: len(steps),
	})
}

// ListAlgorithms handles the GET /algorithms request.
func (s *Server) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"algorithms": s.Engine.Algorithms()})
}

// ListSessions handles the GET /sessions request.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.Sessions(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": ids})
}

// CreateSession handles the POST /sessions request.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.Engine.NewSession(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// GetSession handles the GET /sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	state, err := s.Engine.Session(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// DeleteSession handles the DELETE /sessions/{id} request.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if err := s.Engine.DeleteSession(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LinkedListAction handles the POST /sessions/{id}/linked-list request.
func (s *Server) LinkedListAction(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	var body ListActionRequest
	if !s.decode(w, r, &body) {
		return
	}
	action, err := sanitizer.Text(body.Action)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.Engine.LinkedListAction(r.Context(), id, action, body.data())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if payload, err := json.Marshal(res); err == nil {
		s.Streams.Broadcast(id, string(payload))
	}
	writeJSON(w, http.StatusOK, res)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "algoviz-http",
		"version":     strings.TrimSpace(algoviz.Version),
		"api_version": apiVersion,
	})
}

// publish forwards linked list steps produced outside LinkedListAction to
// the session's subscribers.
func (s *Server) publish(ctx context.Context, sessionID string, steps []domain.Step) {
	state, err := s.Engine.Session(ctx, sessionID)
	if err != nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"steps":   steps,
		"version": state.Version,
		"values":  state.Values(),
	})
	if err == nil {
		s.Streams.Broadcast(sessionID, string(payload))
	}
}

// -- Helpers --

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := sanitizer.Identifier(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return "", false
	}
	return id, true
}

// decode reads a JSON body bounded by the sanitizer's input size and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, int64(sanitizer.MaxInputSize()))
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, sanitizer.ErrInputTooLarge)
			return false
		}
		if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body: " + err.Error()})
		s.logger.Warn("invalid request body", "path", r.URL.Path, "err", err)
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

type errorBody struct {
	Error string `json:"error"`
}

// StatusFor maps engine and sanitizer errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, sanitizer.ErrInvalidIdentifier),
		errors.Is(err, sanitizer.ErrInvalidUTF8):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedAlgorithm),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInputTooLarge),
		errors.Is(err, sanitizer.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
