// Staticlint запускает набор анализаторов проекта:
//
//   - стандартные анализаторы golang.org/x/tools (printf, shadow, structtag и др.);
//   - анализаторы staticcheck класса SA и упрощения класса S;
//   - go-critic;
//   - bodyclose, проверяющий закрытие тела HTTP ответа;
//   - exitmain, запрещающий прямой вызов os.Exit в функции main.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	gocritic "github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"

	"github.com/nestjam/pariffiliator/internal/staticlint"
)

func main() {
	analyzers := []*analysis.Analyzer{
		errorsas.Analyzer,
		httpresponse.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
		gocritic.Analyzer,
		bodyclose.Analyzer,
		staticlint.ExitMainAnalyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			analyzers = append(analyzers, a.Analyzer)
		}
	}

	for _, a := range simple.Analyzers {
		analyzers = append(analyzers, a.Analyzer)
	}

	multichecker.Main(analyzers...)
}
