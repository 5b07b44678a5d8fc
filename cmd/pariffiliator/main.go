package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nestjam/pariffiliator/internal/cert"
	conf "github.com/nestjam/pariffiliator/internal/config"
	env "github.com/nestjam/pariffiliator/internal/config/environment"
	"github.com/nestjam/pariffiliator/internal/factory"
	"github.com/nestjam/pariffiliator/internal/generator"
	"github.com/nestjam/pariffiliator/internal/metrics"
	"github.com/nestjam/pariffiliator/internal/server"
)

const (
	eventKey        = "event"
	dotEnvPath      = ".env"
	shutdownTimeout = 10 * time.Second
)

func main() {
	config := conf.New().
		FromDotEnv(dotEnvPath).
		FromArgs(os.Args).
		FromEnv(env.New())

	logger, tearDownLogger, err := factory.NewLogger(config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer tearDownLogger()

	m := metrics.New()
	gen, err := factory.NewGenerator(config, logger, generator.WithRecorder(m))
	if err != nil {
		logger.Fatal(err.Error(), zap.String(eventKey, "create generator"))
	}

	s := server.New(gen, server.WithLogger(logger), server.WithMetrics(m.Handler()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = listenAndServe(ctx, config, s, logger); err != nil {
		logger.Error(err.Error(), zap.String(eventKey, "serve"))
	}
}

func listenAndServe(ctx context.Context, config conf.Config, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if config.EnableHTTPS {
		certificate, err := cert.Generate()
		if err != nil {
			return err
		}
		srv.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{certificate},
			MinVersion:   tls.VersionTLS12,
		}
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Running server",
			zap.String("address", config.ServerAddress),
			zap.Bool("https", config.EnableHTTPS),
			zap.Bool("strict_domain", config.StrictDomain))

		var err error
		if config.EnableHTTPS {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
