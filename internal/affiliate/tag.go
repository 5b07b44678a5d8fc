package affiliate

import (
	"strings"
)

// DefaultTag - партнерский тег, который используется, если другой не задан в конфигурации.
const DefaultTag Tag = "pariasabet09-20"

// Tag определяет партнерский тег Amazon Associates.
type Tag string

// ParseTag проверяет и возвращает партнерский тег.
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTag
	}
	return Tag(s), nil
}

// String возвращает значение тега.
func (t Tag) String() string {
	return string(t)
}
