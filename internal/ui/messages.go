package ui

import (
	"errors"

	"github.com/nestjam/pariffiliator/internal/affiliate"
)

// Сообщения об ошибках ввода.
const (
	EnterURLMessage     = "Enter URL"
	NotAmazonURLMessage = "Not an Amazon URL"
	InvalidURLMessage   = "Invalid URL"
)

// Message возвращает сообщение для пользователя по ошибке генерации.
func Message(err error) string {
	switch {
	case errors.Is(err, affiliate.ErrEmptyInput):
		return EnterURLMessage
	case errors.Is(err, affiliate.ErrUnsupportedDomain):
		return NotAmazonURLMessage
	default:
		return InvalidURLMessage
	}
}
