package affiliate

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	httpPrefix  = "http://"
	httpsPrefix = "https://"
)

// Canonicalizer проверяет пользовательский ввод и превращает его в партнерскую ссылку.
// Экземпляр неизменяем и безопасен для одновременного использования.
type Canonicalizer struct {
	policy HostPolicy
	tag    Tag
}

// Option определяет опцию настройки Canonicalizer.
type Option func(*Canonicalizer)

// WithPolicy задает политику проверки хоста. По умолчанию используется LenientPolicy.
func WithPolicy(policy HostPolicy) Option {
	return func(c *Canonicalizer) {
		c.policy = policy
	}
}

// New создает Canonicalizer с партнерским тегом tag.
func New(tag Tag, options ...Option) *Canonicalizer {
	c := &Canonicalizer{
		policy: LenientPolicy{},
		tag:    tag,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// Tag возвращает партнерский тег.
func (c *Canonicalizer) Tag() Tag {
	return c.tag
}

// Canonicalize возвращает ссылку на товар с партнерским тегом.
// Если в пути найден ASIN, ссылка сокращается до https://{host}/dp/{ASIN}?tag={tag}.
// Иначе в исходной ссылке заменяется параметр tag и удаляются ref и ref_.
func (c *Canonicalizer) Canonicalize(raw string) (string, error) {
	const op = "canonicalize"

	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyInput
	}

	if !hasHTTPScheme(s) {
		s = httpsPrefix + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, ErrMalformedURL, err)
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return "", fmt.Errorf("%s: %w: no host", op, ErrMalformedURL)
	}

	if !c.policy.Allows(hostname) {
		return "", fmt.Errorf("%s: %w: %s", op, ErrUnsupportedDomain, hostname)
	}

	if asin, ok := ExtractASIN(u.Path); ok {
		return httpsPrefix + hostname + "/dp/" + asin + "?" + tagParam + "=" + url.QueryEscape(c.tag.String()), nil
	}

	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawQuery = retag(u.RawQuery, c.tag)
	u.ForceQuery = false
	return u.String(), nil
}

// Canonicalize - сокращение для New(tag).Canonicalize(raw).
func Canonicalize(raw string, tag Tag) (string, error) {
	return New(tag).Canonicalize(raw)
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, httpPrefix) || strings.HasPrefix(lower, httpsPrefix)
}
