package affiliate

import "regexp"

// ASIN состоит из 10 латинских букв и цифр и должен заканчиваться на "/" или концом пути.
var asinPattern = regexp.MustCompile(`(?i)/(?:dp|gp/product)/([a-z0-9]{10})(?:/|$)`)

// ExtractASIN ищет ASIN в пути вида /dp/{ASIN} или /gp/product/{ASIN}.
func ExtractASIN(path string) (string, bool) {
	m := asinPattern.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1], true
}
