package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/rileyq/pico/internal/compile/ast"
	"codeberg.org/rileyq/pico/internal/compile/scanner"
	"codeberg.org/rileyq/pico/internal/compile/token"
)

// tokens scans a single line of source.
func tokens(t *testing.T, src string) []token.Token {
	t.Helper()
	lines, err := scanner.Lines(strings.NewReader(src))
	require.NoError(t, err)
	if len(lines) == 0 {
		return nil
	}
	require.Len(t, lines, 1)
	return lines[0]
}

func TestVarDecl(t *testing.T) {
	stmt, err := Parse(tokens(t, `VAR x = "hi"`))
	require.NoError(t, err)

	decl, ok := stmt.(*ast.VarDecl)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, "x", decl.Name.Name)
	assert.Equal(t, "1:5-1:6", decl.Name.Locate().String())

	lit, ok := decl.Value.(*ast.StringLiteral)
	require.True(t, ok, "got %T", decl.Value)
	assert.Equal(t, "hi", lit.Value)
	assert.Equal(t, "1:1-1:13", decl.Locate().String())
}

func TestVarDeclIdentifier(t *testing.T) {
	stmt, err := Parse(tokens(t, `VAR y = x`))
	require.NoError(t, err)

	decl := stmt.(*ast.VarDecl)
	assert.Equal(t, "y", decl.Name.Name)
	ref, ok := decl.Value.(*ast.Identifier)
	require.True(t, ok, "got %T", decl.Value)
	assert.Equal(t, "x", ref.Name)
}

func TestProcCall(t *testing.T) {
	stmt, err := Parse(tokens(t, `PRINT a, "b", c`))
	require.NoError(t, err)

	call, ok := stmt.(*ast.ProcCall)
	require.True(t, ok, "got %T", stmt)
	assert.Equal(t, "PRINT", call.Proc.Name)
	require.Len(t, call.Args, 3)
	assert.Equal(t, "a", call.Args[0].(*ast.Identifier).Name)
	assert.Equal(t, "b", call.Args[1].(*ast.StringLiteral).Value)
	assert.Equal(t, "c", call.Args[2].(*ast.Identifier).Name)
}

func TestProcCallSingleArgument(t *testing.T) {
	stmt, err := Parse(tokens(t, `PRINT "x"`))
	require.NoError(t, err)
	assert.Len(t, stmt.(*ast.ProcCall).Args, 1)
}

// A comma with nothing usable after it ends the argument list instead of
// failing: the comma is dropped and the tokens after it are left over.
func TestDanglingComma(t *testing.T) {
	stmt, err := Parse(tokens(t, `PRINT a,`))
	require.NoError(t, err)
	call := stmt.(*ast.ProcCall)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "a", call.Args[0].(*ast.Identifier).Name)

	_, err = Parse(tokens(t, `PRINT a, = b`))
	require.ErrorIs(t, err, ErrUnexpectedToken)
	assert.Equal(t, "Syntax error: (1:10-1:11) Unexpected token", err.Error())

	_, err = Parse(tokens(t, `PRINT a, , b`))
	require.ErrorIs(t, err, ErrUnexpectedToken)
	assert.Equal(t, "Syntax error: (1:10-1:11) Unexpected token", err.Error())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
		msg  string
	}{
		{"empty", ``, ErrNoTokensFound, "Syntax error: No tokens found"},
		{"var alone", `VAR`, ErrUnexpectedEndOfLine, "Syntax error: (1:4) Unexpected end of line"},
		{"var string", `VAR "x" = y`, ErrUnexpectedToken, "Syntax error: (1:5-1:8) Unexpected token"},
		{"var name only", `VAR x`, ErrUnexpectedEndOfLine, "Syntax error: (1:6) Unexpected end of line"},
		{"var missing equals", `VAR x y`, ErrExpectedEquals, "Syntax error: (1:7-1:8) Expected `=`"},
		{"var missing value", `VAR x =`, ErrUnexpectedEndOfLine, "Syntax error: (1:8) Unexpected end of line"},
		{"var bad value", `VAR x = ,`, ErrExpectedExpression, "Syntax error: (1:9-1:10) Expected expression"},
		{"var trailing", `VAR x = y z`, ErrUnexpectedToken, "Syntax error: (1:11-1:12) Unexpected token"},
		{"call without args", `PRINT`, ErrUnexpectedEndOfLine, "Syntax error: (1:6) Unexpected end of line"},
		{"call bad arg", `PRINT =`, ErrExpectedExpression, "Syntax error: (1:7-1:8) Expected expression"},
		{"call trailing", `PRINT a b`, ErrUnexpectedToken, "Syntax error: (1:9-1:10) Unexpected token"},
		{"leading string", `"x"`, ErrExpectedIdentifier, "Syntax error: (1:1-1:4) Expected identifier"},
		{"leading comma", `, x`, ErrExpectedIdentifier, "Syntax error: (1:1-1:2) Expected identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Parse(tokens(t, tt.src))
			assert.Nil(t, stmt)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.msg, err.Error())

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestParseIsRepeatable(t *testing.T) {
	toks := tokens(t, `PRINTLN greeting, "!"`)
	snapshot := append([]token.Token(nil), toks...)

	p := New(toks)
	first, err := p.Parse()
	require.NoError(t, err)
	second, err := p.Parse()
	require.NoError(t, err)
	third, err := Parse(toks)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, snapshot, toks)
}

func TestHandBuiltTokens(t *testing.T) {
	at := func(col int) token.Position { return token.Position{Line: 7, Column: col} }
	toks := []token.Token{
		{Type: token.Identifier, Pos: at(1), End: at(2), Text: "f"},
		{Type: token.String, Pos: at(3), End: at(6), Text: "a"},
		{Type: token.Comma, Pos: at(6), End: at(7), Text: ","},
		{Type: token.Identifier, Pos: at(8), End: at(9), Text: "g"},
	}

	stmt, err := Parse(toks)
	require.NoError(t, err)
	assert.Equal(t, &ast.ProcCall{
		Proc: &ast.Identifier{NamePos: at(1), NameEnd: at(2), Name: "f"},
		Args: []ast.Expr{
			&ast.StringLiteral{ValuePos: at(3), ValueEnd: at(6), Value: "a"},
			&ast.Identifier{NamePos: at(8), NameEnd: at(9), Name: "g"},
		},
	}, stmt)

	// "VAR" spelled as a plain identifier is a procedure name, not the keyword.
	toks[0] = token.Token{Type: token.Identifier, Pos: at(1), End: at(4), Text: "VAR"}
	stmt, err = Parse(toks)
	require.NoError(t, err)
	assert.IsType(t, &ast.ProcCall{}, stmt)
}
