package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nestjam/pariffiliator/internal/affiliate"
)

const (
	namespace   = "pariffiliator"
	resultLabel = "result"

	resultOK                = "ok"
	resultEmptyInput        = "empty_input"
	resultMalformedURL      = "malformed_url"
	resultUnsupportedDomain = "unsupported_domain"
	resultShortened         = "shortened"
	resultUnshortened       = "unshortened"
)

// Metrics собирает счетчики генерации ссылок.
type Metrics struct {
	registry     *prometheus.Registry
	canonicalize *prometheus.CounterVec
	shorten      *prometheus.CounterVec
}

// New создает и регистрирует счетчики в собственном реестре.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		canonicalize: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "canonicalize_total",
				Help:      "Number of canonicalization attempts by outcome.",
			},
			[]string{resultLabel},
		),
		shorten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shorten_total",
				Help:      "Number of shortening attempts by outcome.",
			},
			[]string{resultLabel},
		),
	}

	m.registry.MustRegister(m.canonicalize, m.shorten)
	return m
}

// Canonicalized учитывает результат проверки ссылки.
func (m *Metrics) Canonicalized(err error) {
	m.canonicalize.WithLabelValues(canonicalizeResult(err)).Inc()
}

// Shortened учитывает результат обращения к сервису сокращения.
func (m *Metrics) Shortened(ok bool) {
	result := resultUnshortened
	if ok {
		result = resultShortened
	}
	m.shorten.WithLabelValues(result).Inc()
}

// Handler возвращает обработчик, который отдает метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func canonicalizeResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, affiliate.ErrEmptyInput):
		return resultEmptyInput
	case errors.Is(err, affiliate.ErrUnsupportedDomain):
		return resultUnsupportedDomain
	default:
		return resultMalformedURL
	}
}
