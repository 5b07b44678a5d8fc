package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nestjam/pariffiliator/internal/generator"
)

type responseData struct {
	status int
	size   int
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

// Write выполняет запись данных в HTTP ответ и сохраняет информацию о размере данных.
func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	const op = "logging response"

	if w.responseData.status == 0 {
		w.responseData.status = http.StatusOK
	}

	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size

	if err != nil {
		return size, fmt.Errorf("%s: %w", op, err)
	}

	return size, nil
}

// WriteHeader отправляет заголовок HTTP ответа с указанным кодом и сохраняет отправленный статус.
func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.status = statusCode
}

// ResponseLogger возвращает посредника, который логирует сведения из HTTP ответа.
// Каждому запросу назначается идентификатор попытки генерации, тот же, что в записях генератора.
// Ответы с кодом 5xx логируются с уровнем error.
func ResponseLogger(logger *zap.Logger) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		log := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			attempt := generator.NewAttempt()
			r = r.WithContext(generator.WithAttempt(r.Context(), attempt))
			resp := &responseData{}
			lw := loggingResponseWriter{
				ResponseWriter: w,
				responseData:   resp,
			}

			h.ServeHTTP(&lw, r)

			level := zapcore.InfoLevel
			if resp.status >= http.StatusInternalServerError {
				level = zapcore.ErrorLevel
			}

			logger.Check(level, "HTTP request").Write(
				zap.String("uri", r.RequestURI),
				zap.String("method", r.Method),
				zap.Int("status", resp.status),
				zap.Duration("duration", time.Since(start)),
				zap.Int("size", resp.size),
				zap.String(generator.AttemptKey, attempt),
			)
		}
		return http.HandlerFunc(log)
	}
}
