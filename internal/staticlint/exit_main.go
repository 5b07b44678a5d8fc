package staticlint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"
)

const usingExitInMainWarn = "using exit in main"

// ExitMainAnalyzer сообщает о прямом вызове os.Exit в функции main пакета main.
// Завершение через os.Exit пропускает отложенные вызовы, например Sync логгера.
var ExitMainAnalyzer = &analysis.Analyzer{
	Name: "exitmain",
	Doc:  "check using os.Exit in main function of main package",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	const mainName = "main"

	if pass.Pkg.Name() != mainName {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != mainName || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(node ast.Node) bool {
				switch x := node.(type) {
				case *ast.FuncLit:
					return false
				case *ast.CallExpr:
					if isOSExit(pass.TypesInfo, x) {
						pass.Reportf(x.Pos(), usingExitInMainWarn)
					}
				}
				return true
			})
		}
	}

	return nil, nil
}

func isOSExit(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
