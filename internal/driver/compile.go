package driver

import (
	"io"
	"strings"

	"codeberg.org/rileyq/pico/internal/compile/ast"
	"codeberg.org/rileyq/pico/internal/compile/codegen"
	"codeberg.org/rileyq/pico/internal/compile/parser"
	"codeberg.org/rileyq/pico/internal/compile/scanner"
)

// ParseReader scans rd and parses every non-empty line as one statement.
// The first error stops parsing.
func ParseReader(rd io.Reader) ([]ast.Stmt, error) {
	lines, err := scanner.Lines(rd)
	if err != nil {
		return nil, err
	}

	stmts := make([]ast.Stmt, 0, len(lines))
	for _, line := range lines {
		stmt, err := parser.Parse(line)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Compile turns pico source into NASM source for target.
func Compile(src string, target codegen.Target) (string, error) {
	stmts, err := ParseReader(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	module, err := codegen.Generate(stmts, target)
	if err != nil {
		return "", err
	}
	return module.String(), nil
}
