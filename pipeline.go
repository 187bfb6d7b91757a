package main

import (
	"fmt"
	"os"
	"strings"

	"miniclj/callables"
	"miniclj/code"
	"miniclj/compiler"
	"miniclj/internal/config"
	"miniclj/lexer"
	"miniclj/parser"
	"miniclj/sexpr"
	"miniclj/value"
)

// readSource loads a source file, failing with the same message shape every
// subcommand uses for a bad path.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// parseSource runs the lexer and parser over src, returning every
// accumulated syntax error rather than stopping at the first.
func parseSource(src string) ([]sexpr.SExpr, []string) {
	l := lexer.New(src)
	p := parser.New(l)
	forms := p.ParseProgram()
	return forms, p.Errors()
}

// compileSource parses and compiles src against a fresh registry, returning
// the finished constant pool and instruction stream.
func compileSource(src string, cfg config.Config) ([]value.Constant, code.Instructions, error) {
	forms, errs := parseSource(src)
	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("syntax errors:\n%s", strings.Join(errs, "\n"))
	}
	registry := callables.NewRegistry()
	comp := compiler.New(registry, cfg.Logger())
	if err := comp.Compile(forms); err != nil {
		return nil, nil, fmt.Errorf("compile error: %w", err)
	}
	return comp.Constants(), comp.Instructions(), nil
}

// outputPathFor derives a default build output path by replacing src's
// extension (if any) with .mclj.
func outputPathFor(src string) string {
	if dot := strings.LastIndexByte(src, '.'); dot > strings.LastIndexByte(src, '/') {
		src = src[:dot]
	}
	return src + ".mclj"
}
