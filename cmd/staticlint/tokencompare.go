package main

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// TokenCompareAnalyzer находит сравнение секретов через == и !=.
// Секретом считается строковый операнд, в имени которого есть token или secret.
// Сравнение с константой не проверяется.
var TokenCompareAnalyzer = &analysis.Analyzer{
	Name:     "tokencompare",
	Doc:      "reports ==/!= comparisons of token or secret strings; use crypto/subtle.ConstantTimeCompare",
	Run:      runTokenCompare,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var secretMarkers = []string{"token", "secret"}

func runTokenCompare(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.BinaryExpr)(nil)}, func(node ast.Node) {
		expr := node.(*ast.BinaryExpr)
		if expr.Op != token.EQL && expr.Op != token.NEQ {
			return
		}
		if !isString(pass, expr.X) || !isString(pass, expr.Y) {
			return
		}
		if isConst(pass, expr.X) || isConst(pass, expr.Y) {
			return
		}
		if looksSecret(expr.X) || looksSecret(expr.Y) {
			pass.Reportf(expr.OpPos, "secret compared with %s; use crypto/subtle.ConstantTimeCompare", expr.Op)
		}
	})

	return nil, nil
}

func isString(pass *analysis.Pass, expr ast.Expr) bool {
	t := pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return false
	}
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsString != 0
}

func isConst(pass *analysis.Pass, expr ast.Expr) bool {
	tv, ok := pass.TypesInfo.Types[expr]
	return ok && tv.Value != nil
}

func looksSecret(expr ast.Expr) bool {
	var name string
	switch e := expr.(type) {
	case *ast.Ident:
		name = e.Name
	case *ast.SelectorExpr:
		name = e.Sel.Name
	case *ast.CallExpr:
		return looksSecret(e.Fun)
	default:
		return false
	}

	name = strings.ToLower(name)
	for _, marker := range secretMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
