package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nestjam/pariffiliator/internal/affiliate"
	conf "github.com/nestjam/pariffiliator/internal/config"
	"github.com/nestjam/pariffiliator/internal/generator"
	"github.com/nestjam/pariffiliator/internal/tinyurl"
)

// NewLogger создает production логгер с указанным уровнем и функцию его завершения.
// Если outputPaths не заданы, логгер пишет в stderr.
func NewLogger(level string, outputPaths ...string) (*zap.Logger, func(), error) {
	logger, err := newProductionLogger(level, outputPaths)
	if err != nil {
		return nil, nil, err
	}

	return logger, func() { _ = logger.Sync() }, nil
}

func newProductionLogger(level string, outputPaths []string) (*zap.Logger, error) {
	const op = "new production logger"

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	if len(outputPaths) > 0 {
		config.OutputPaths = outputPaths
	}
	logger, err := config.Build()

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return logger, nil
}

// NewGenerator собирает генератор ссылок по конфигурации.
func NewGenerator(conf conf.Config, logger *zap.Logger, options ...generator.Option) (*generator.Generator, error) {
	const op = "new generator"

	tag, err := conf.Tag()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	canonicalizer := affiliate.New(tag, affiliate.WithPolicy(conf.HostPolicy()))
	shortener := tinyurl.New(
		tinyurl.WithEndpoint(conf.ShortenerEndpoint),
		tinyurl.WithLogger(logger),
	)

	options = append([]generator.Option{generator.WithLogger(logger)}, options...)
	return generator.New(canonicalizer, shortener, options...), nil
}
