package affiliate

import (
	"net/url"
	"strings"
)

const upperHex = "0123456789ABCDEF"

const tagParam = "tag"

// Параметры, которыми Amazon отслеживает переходы.
var trackingParams = map[string]struct{}{
	"ref":  {},
	"ref_": {},
}

// retag заменяет значение tag (или дописывает его в конец) и удаляет ref и ref_.
// Остальные параметры сохраняют порядок и исходное кодирование.
func retag(rawQuery string, tag Tag) string {
	tagPair := tagParam + "=" + url.QueryEscape(tag.String())
	pairs := make([]string, 0, strings.Count(rawQuery, "&")+2)
	tagged := false

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key := queryKey(pair)
		if _, ok := trackingParams[key]; ok {
			continue
		}

		if key == tagParam {
			if !tagged {
				pairs = append(pairs, tagPair)
				tagged = true
			}
			continue
		}

		pairs = append(pairs, escapeQuery(pair))
	}

	if !tagged {
		pairs = append(pairs, tagPair)
	}

	return strings.Join(pairs, "&")
}

func queryKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(key); err == nil {
		return unescaped
	}
	return key
}

// escapeQuery кодирует байты, недопустимые в строке запроса: пробел, управляющие символы,
// '"', '#', '<', '>' и все байты не из ASCII. Последовательности %XX не меняются.
func escapeQuery(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !mustEscapeInQuery(c) {
			if b.Len() > 0 {
				b.WriteByte(c)
			}
			continue
		}

		if b.Len() == 0 {
			b.Grow(len(s) + 2*(len(s)-i))
			b.WriteString(s[:i])
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}

	if b.Len() == 0 {
		return s
	}
	return b.String()
}

func mustEscapeInQuery(c byte) bool {
	switch {
	case c <= ' ', c >= 0x7f:
		return true
	case c == '"', c == '#', c == '<', c == '>':
		return true
	}
	return false
}
