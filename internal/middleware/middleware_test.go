package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nestjam/pariffiliator/internal/generator"
)

func TestResponseLogger(t *testing.T) {
	t.Run("log response", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		handler := ResponseLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("abc"))
		}))
		request := httptest.NewRequest(http.MethodPost, "/api/links", nil)
		response := httptest.NewRecorder()

		handler.ServeHTTP(response, request)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "/api/links", fields["uri"])
		assert.Equal(t, http.MethodPost, fields["method"])
		assert.Equal(t, int64(http.StatusCreated), fields["status"])
		assert.Equal(t, int64(3), fields["size"])
	})

	t.Run("implicit ok status", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		handler := ResponseLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, int64(http.StatusOK), logs.All()[0].ContextMap()["status"])
	})

	t.Run("attempt id is shared with handler", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		var handlerAttempt string
		handler := ResponseLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerAttempt, _ = generator.Attempt(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/links", nil))

		require.Equal(t, 1, logs.Len())
		require.NotEmpty(t, handlerAttempt)
		assert.Equal(t, handlerAttempt, logs.All()[0].ContextMap()[generator.AttemptKey])
	})

	t.Run("server error is logged as error", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		handler := ResponseLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})
}

func TestResponseEncoder(t *testing.T) {
	const body = "https://tinyurl.com/abc"
	handler := ResponseEncoder(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))

	t.Run("compress response", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(acceptEncodingHeader, gzipEncoding)
		response := httptest.NewRecorder()

		handler.ServeHTTP(response, request)

		assert.Equal(t, gzipEncoding, response.Header().Get(contentEncodingHeader))
		gz, err := gzip.NewReader(response.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(gz)
		require.NoError(t, err)
		assert.Equal(t, body, string(got))
	})

	t.Run("client does not accept gzip", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		response := httptest.NewRecorder()

		handler.ServeHTTP(response, request)

		assert.Empty(t, response.Header().Get(contentEncodingHeader))
		assert.Equal(t, body, response.Body.String())
	})
}

func TestRequestDecoder(t *testing.T) {
	const body = "amazon.com/dp/B08N5WRWNW"
	handler := RequestDecoder(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		_, _ = w.Write(got)
	}))

	t.Run("decompress request", func(t *testing.T) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		_, err := gz.Write([]byte(body))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		request := httptest.NewRequest(http.MethodPost, "/", &buf)
		request.Header.Set(contentEncodingHeader, gzipEncoding)
		response := httptest.NewRecorder()

		handler.ServeHTTP(response, request)

		assert.Equal(t, body, response.Body.String())
	})

	t.Run("plain request", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		response := httptest.NewRecorder()

		handler.ServeHTTP(response, request)

		assert.Equal(t, body, response.Body.String())
	})

	t.Run("broken gzip", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		request.Header.Set(contentEncodingHeader, gzipEncoding)
		response := httptest.NewRecorder()

		handler.ServeHTTP(response, request)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}
