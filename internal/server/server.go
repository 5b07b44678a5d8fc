package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nestjam/pariffiliator/internal/generator"
	"github.com/nestjam/pariffiliator/internal/middleware"
	"github.com/nestjam/pariffiliator/internal/ui"
)

const (
	contentTypeHeader              = "Content-Type"
	contentLengthHeader            = "Content-Length"
	textPlain                      = "text/plain"
	applicationJSON                = "application/json"
	applicationGZIP                = "application/x-gzip"
	failedToParseRequestMessage    = "failed to parse request"
	failedToReadRequestMessage     = "failed to read request"
	failedToPrepareResponseMessage = "failed to prepare response"
)

// Generator создает партнерскую ссылку по пользовательскому вводу.
type Generator interface {
	Generate(ctx context.Context, raw string) (generator.Link, error)
}

// Server предоставляет HTTP API генерации партнерских ссылок.
type Server struct {
	generator Generator
	router    chi.Router
	logger    *zap.Logger
	metrics   http.Handler
}

// LinkRequest содержит ссылку, которую ввел пользователь.
type LinkRequest struct {
	URL string `json:"url"` // ссылка на товар
}

// LinkResponse содержит готовую ссылку.
type LinkResponse struct {
	Result    string `json:"result"`    // ссылка для пользователя
	Canonical string `json:"canonical"` // ссылка с партнерским тегом до сокращения
	Shortened bool   `json:"shortened"` // true, если ссылку удалось сократить
}

// ErrorResponse содержит сообщение об ошибке для пользователя.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Option определяет опцию настройки сервера.
type Option func(*Server)

// WithLogger задает логгер запросов.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics задает обработчик, который отдает метрики по пути /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// New создает сервер.
func New(gen Generator, options ...Option) *Server {
	r := chi.NewRouter()
	s := &Server{
		generator: gen,
		router:    r,
		logger:    zap.NewNop(),
	}

	for _, opt := range options {
		opt(s)
	}

	r.Use(middleware.ResponseLogger(s.logger))

	r.Group(func(r chi.Router) {
		r.Get("/ping", s.ping)

		if s.metrics != nil {
			r.Method(http.MethodGet, "/metrics", s.metrics)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.AllowContentType(applicationJSON))
		r.Use(middleware.RequestDecoder, middleware.ResponseEncoder)

		r.Post("/api/links", s.generateAPI)
	})

	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.AllowContentType(textPlain, applicationGZIP))
		r.Use(middleware.RequestDecoder, middleware.ResponseEncoder)

		r.Post("/", s.generate)
	})

	return s
}

// ServeHTTP обрабатывает запрос.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		badRequest(w, failedToReadRequestMessage)
		return
	}

	link, err := s.generator.Generate(r.Context(), string(body))
	if err != nil {
		badRequest(w, ui.Message(err))
		return
	}

	w.Header().Set(contentTypeHeader, textPlain)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write([]byte(link.Short)); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (s *Server) generateAPI(w http.ResponseWriter, r *http.Request) {
	var req LinkRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: failedToParseRequestMessage})
		return
	}

	link, err := s.generator.Generate(r.Context(), req.URL)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ui.Message(err)})
		return
	}

	s.writeJSON(w, http.StatusCreated, LinkResponse{
		Result:    link.Short,
		Canonical: link.Canonical,
		Shortened: link.Shortened,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	content, err := json.Marshal(v)
	if err != nil {
		internalError(w, failedToPrepareResponseMessage)
		return
	}

	w.Header().Set(contentTypeHeader, applicationJSON)
	w.Header().Set(contentLengthHeader, strconv.Itoa(len(content)))
	w.WriteHeader(status)

	if _, err = w.Write(content); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}

func internalError(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusInternalServerError)
}
