package client

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const apiLinksPath = "/api/links"

// ErrRejected означает, что сервер отклонил ссылку. Текст ошибки содержит сообщение сервера.
var ErrRejected = errors.New("link rejected")

// Client представляет клиент сервиса генерации партнерских ссылок.
type Client struct {
	inner         *resty.Client
	serverAddress string
}

// Option определяет опцию настройки клиента.
type Option func(*Client)

type linkRequest struct {
	URL string `json:"url"`
}

type linkResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New создает экземпляр клиента с переданными опциями.
func New(options ...Option) *Client {
	client := &Client{
		inner: resty.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// WithServerAddress возвращает опцию клиента с указанным адресом сервера.
func WithServerAddress(addr string) Option {
	return func(client *Client) {
		client.serverAddress = strings.TrimSuffix(addr, "/")
	}
}

// Generate запрашивает у сервера партнерскую ссылку для url.
func (c *Client) Generate(url string) (string, error) {
	const op = "generate link"

	var (
		result  linkResponse
		failure errorResponse
	)
	response, err := c.inner.R().
		SetBody(linkRequest{URL: url}).
		SetResult(&result).
		SetError(&failure).
		Post(c.serverAddress + apiLinksPath)

	if err != nil {
		return "", errors.Wrap(err, op)
	}

	if response.StatusCode() == http.StatusBadRequest && failure.Error != "" {
		return "", errors.Wrap(errors.WithMessage(ErrRejected, failure.Error), op)
	}

	if response.StatusCode() != http.StatusCreated {
		return "", errors.Errorf("%s: unexpected status %d", op, response.StatusCode())
	}

	return result.Result, nil
}
