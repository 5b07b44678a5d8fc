package affiliate

import "errors"

// Ошибки проверки пользовательского ввода.
var (
	ErrEmptyInput        = errors.New("url is empty")          // пустой ввод
	ErrMalformedURL      = errors.New("url is malformed")      // ввод не разбирается как URL
	ErrUnsupportedDomain = errors.New("domain is unsupported") // хост не принадлежит Amazon
	ErrEmptyTag          = errors.New("affiliate tag is empty")
)
