package environment

import (
	"os"
	"strings"
)

// Environment предоставляет доступ к переменным среды процесса.
type Environment struct{}

// New создает экземпляр Environment.
func New() Environment {
	return Environment{}
}

// LookupEnv возвращает значение переменной среды по ключу.
// Переменные, состоящие только из пробелов, считаются незаданными.
func (Environment) LookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}
