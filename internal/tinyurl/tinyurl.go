package tinyurl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// DefaultEndpoint - адрес API создания коротких ссылок TinyURL.
const DefaultEndpoint = "https://tinyurl.com/api-create.php"

const urlParam = "url"

// ErrShorteningUnavailable означает, что сервис не вернул короткую ссылку.
var ErrShorteningUnavailable = errors.New("shortening unavailable")

// Result содержит ссылку, которую получит пользователь.
type Result struct {
	Link      string // короткая ссылка или исходная, если сокращение не удалось
	Shortened bool   // true, если Link получена от сервиса сокращения
}

// Shortened создает результат успешного сокращения.
func Shortened(link string) Result {
	return Result{Link: link, Shortened: true}
}

// Unshortened создает результат, в котором остается исходная ссылка.
func Unshortened(link string) Result {
	return Result{Link: link}
}

// Client сокращает ссылки через TinyURL.
type Client struct {
	inner    *resty.Client
	logger   *zap.Logger
	endpoint string
}

// Option определяет опцию настройки клиента.
type Option func(*Client)

// New создает клиент с переданными опциями.
func New(options ...Option) *Client {
	c := &Client{
		inner:    resty.New(),
		logger:   zap.NewNop(),
		endpoint: DefaultEndpoint,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithEndpoint задает адрес API сокращения.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithLogger задает логгер, в который пишутся ошибки сокращения.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Shorten выполняет одну попытку сокращения longURL.
// Ошибки не возвращаются: при любом сбое результатом будет сама longURL.
func (c *Client) Shorten(ctx context.Context, longURL string) Result {
	link, err := c.shorten(ctx, longURL)
	if err != nil {
		c.logger.Warn("Shortening failed",
			zap.String("url", longURL),
			zap.Error(err))
		return Unshortened(longURL)
	}

	return Shortened(link)
}

func (c *Client) shorten(ctx context.Context, longURL string) (string, error) {
	const op = "shorten"

	response, err := c.inner.R().
		SetContext(ctx).
		SetQueryParam(urlParam, longURL).
		Get(c.endpoint)

	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrShorteningUnavailable, err)
	}

	if !response.IsSuccess() {
		return "", fmt.Errorf("%s: %w: status %d", op, ErrShorteningUnavailable, response.StatusCode())
	}

	link := strings.TrimSpace(response.String())
	if link == "" {
		return "", fmt.Errorf("%s: %w: empty body", op, ErrShorteningUnavailable)
	}

	return link, nil
}
