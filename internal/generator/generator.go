package generator

import (
	"context"

	"go.uber.org/zap"

	"github.com/nestjam/pariffiliator/internal/affiliate"
	"github.com/nestjam/pariffiliator/internal/tinyurl"
)

// AttemptKey - имя поля лога с идентификатором попытки генерации.
const AttemptKey = "attempt"

// Shortener сокращает ссылку и никогда не завершается ошибкой.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) tinyurl.Result
}

// Recorder учитывает результаты этапов генерации.
type Recorder interface {
	Canonicalized(err error)
	Shortened(ok bool)
}

// Link - результат генерации партнерской ссылки.
type Link struct {
	Canonical string // ссылка с партнерским тегом
	Short     string // ссылка для пользователя
	Shortened bool   // true, если Short получена от сервиса сокращения
}

// Generator проверяет ссылку, добавляет тег и сокращает ее.
type Generator struct {
	canonicalizer *affiliate.Canonicalizer
	shortener     Shortener
	recorder      Recorder
	logger        *zap.Logger
}

// Option определяет опцию настройки генератора.
type Option func(*Generator)

// WithLogger задает логгер.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithRecorder задает получателя метрик.
func WithRecorder(recorder Recorder) Option {
	return func(g *Generator) {
		g.recorder = recorder
	}
}

// New создает генератор.
func New(canonicalizer *affiliate.Canonicalizer, shortener Shortener, options ...Option) *Generator {
	g := &Generator{
		canonicalizer: canonicalizer,
		shortener:     shortener,
		recorder:      nopRecorder{},
		logger:        zap.NewNop(),
	}

	for _, opt := range options {
		opt(g)
	}

	return g
}

// Generate превращает пользовательский ввод в партнерскую ссылку.
// Ошибка возвращается только при некорректном вводе, в этом случае сервис сокращения не вызывается.
func (g *Generator) Generate(ctx context.Context, raw string) (Link, error) {
	logger := g.logger.With(zap.String(AttemptKey, attemptID(ctx)))

	canonical, err := g.canonicalizer.Canonicalize(raw)
	g.recorder.Canonicalized(err)
	if err != nil {
		logger.Debug("Input rejected", zap.String("input", raw), zap.Error(err))
		return Link{}, err
	}

	result := g.shortener.Shorten(ctx, canonical)
	g.recorder.Shortened(result.Shortened)
	logger.Debug("Link generated",
		zap.String("canonical", canonical),
		zap.String("link", result.Link),
		zap.Bool("shortened", result.Shortened))

	return Link{
		Canonical: canonical,
		Short:     result.Link,
		Shortened: result.Shortened,
	}, nil
}

type nopRecorder struct{}

func (nopRecorder) Canonicalized(error) {}

func (nopRecorder) Shortened(bool) {}
