package generator

import (
	"context"

	"github.com/google/uuid"
)

type attemptKey struct{}

// WithAttempt возвращает контекст с идентификатором попытки генерации.
// Под этим идентификатором генератор пишет свои записи в лог.
func WithAttempt(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, attemptKey{}, id)
}

// Attempt возвращает идентификатор попытки из контекста.
func Attempt(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(attemptKey{}).(string)
	return id, ok && id != ""
}

// NewAttempt создает новый идентификатор попытки.
func NewAttempt() string {
	return uuid.NewString()
}

func attemptID(ctx context.Context) string {
	if id, ok := Attempt(ctx); ok {
		return id
	}
	return NewAttempt()
}
