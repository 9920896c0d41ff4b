package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/packages"
)

const (
	guardImportPath = "github.com/saylorsolutions/guard"
	markerName      = "EndChecks"
)

type finding struct {
	pos token.Position
	fn  string
	msg string
}

func (f finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.pos, f.fn, f.msg)
}

func lintPackages(patterns []string, includeTests bool) ([]finding, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Tests: includeTests,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("packages loaded with errors")
	}
	var findings []finding
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			findings = append(findings, lintFile(pkg.Fset, file)...)
		}
	}
	return findings, nil
}

// guardAlias resolves the local name the file imports the guard package
// under. Dot and blank imports can't be matched by selector and are skipped.
func guardAlias(file *ast.File) (string, bool) {
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != guardImportPath {
			continue
		}
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				return "", false
			}
			return imp.Name.Name, true
		}
		return "guard", true
	}
	return "", false
}

func lintFile(fset *token.FileSet, file *ast.File) []finding {
	alias, ok := guardAlias(file)
	if !ok {
		return nil
	}
	var findings []finding
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}
		findings = append(findings, lintFunc(fset, alias, fn)...)
	}
	return findings
}

func lintFunc(fset *token.FileSet, alias string, fn *ast.FuncDecl) []finding {
	type guardCall struct {
		name string
		pos  token.Pos
	}
	var (
		calls   []guardCall
		markers []token.Pos
	)
	ast.Inspect(fn.Body, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok || ident.Name != alias {
			return true
		}
		if sel.Sel.Name == markerName {
			markers = append(markers, call.Pos())
		} else {
			calls = append(calls, guardCall{name: sel.Sel.Name, pos: call.Pos()})
		}
		return true
	})
	if len(markers) == 0 {
		return nil
	}
	name := funcName(fn)
	var findings []finding
	for _, pos := range markers[1:] {
		findings = append(findings, finding{
			pos: fset.Position(pos),
			fn:  name,
			msg: fmt.Sprintf("duplicate %s.%s marker", alias, markerName),
		})
	}
	end := markers[0]
	for _, call := range calls {
		if call.pos > end {
			findings = append(findings, finding{
				pos: fset.Position(call.pos),
				fn:  name,
				msg: fmt.Sprintf("%s.%s called after the %s marker", alias, call.name, markerName),
			})
		}
	}
	return findings
}

func funcName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}
	if recv := receiverTypeName(fn.Recv.List[0].Type); recv != "" {
		return recv + "." + fn.Name.Name
	}
	return fn.Name.Name
}

func receiverTypeName(expr ast.Expr) string {
	switch typed := expr.(type) {
	case *ast.Ident:
		return typed.Name
	case *ast.StarExpr:
		return receiverTypeName(typed.X)
	case *ast.IndexExpr:
		return receiverTypeName(typed.X)
	case *ast.IndexListExpr:
		return receiverTypeName(typed.X)
	default:
		return ""
	}
}
