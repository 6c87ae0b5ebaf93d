package parser

import (
	"errors"
	"fmt"

	"codeberg.org/rileyq/pico/internal/compile/ast"
	"codeberg.org/rileyq/pico/internal/compile/token"
)

var (
	ErrNoTokensFound       = errors.New("No tokens found")
	ErrUnexpectedToken     = errors.New("Unexpected token")
	ErrUnexpectedEndOfLine = errors.New("Unexpected end of line")
	ErrExpectedIdentifier  = errors.New("Expected identifier")
	ErrExpectedExpression  = errors.New("Expected expression")
	ErrExpectedEquals      = errors.New("Expected `=`")
)

// Parser reads exactly one statement from the tokens of one line.
type Parser struct {
	toks []token.Token
	off  int
}

func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses toks as a single statement. Every token must be consumed.
func Parse(toks []token.Token) (ast.Stmt, error) {
	return New(toks).Parse()
}

func (p *Parser) Parse() (ast.Stmt, error) {
	p.off = 0

	head := p.peek()
	if head == nil {
		return nil, NewParseError(token.Range{}, ErrNoTokensFound)
	}

	var stmt ast.Stmt
	var err error
	switch head.Type {
	case token.Var:
		stmt, err = p.varDecl()
	case token.Identifier:
		stmt, err = p.procCall()
	default:
		return nil, p.errorAt(head.Locate(), ErrExpectedIdentifier)
	}
	if err != nil {
		return nil, err
	}

	if rest := p.peek(); rest != nil {
		return nil, p.errorAt(rest.Locate(), ErrUnexpectedToken)
	}

	return stmt, nil
}

func (p *Parser) varDecl() (*ast.VarDecl, error) {
	kw := p.next()

	name, err := p.expect(token.Identifier, kw, ErrUnexpectedToken)
	if err != nil {
		return nil, err
	}

	eq, err := p.expect(token.Equal, name, ErrExpectedEquals)
	if err != nil {
		return nil, err
	}

	value, err := p.expr(eq)
	if err != nil {
		return nil, err
	}

	return &ast.VarDecl{
		VarPos: kw.Pos,
		Name:   ast.NewIdentifier(*name),
		Value:  value,
	}, nil
}

func (p *Parser) procCall() (*ast.ProcCall, error) {
	proc := p.next()

	args, err := p.argumentList(proc)
	if err != nil {
		return nil, err
	}

	return &ast.ProcCall{
		Proc: ast.NewIdentifier(*proc),
		Args: args,
	}, nil
}

// argumentList parses one or more comma separated expressions. A comma that
// is not followed by an expression ends the list; the comma is consumed and
// whatever follows it is left for the caller.
func (p *Parser) argumentList(prev *token.Token) ([]ast.Expr, error) {
	first, err := p.expr(prev)
	if err != nil {
		return nil, err
	}

	args := []ast.Expr{first}
	for {
		comma := p.accept(token.Comma)
		if comma == nil {
			break
		}
		arg, err := p.expr(comma)
		if err != nil {
			break
		}
		args = append(args, arg)
	}

	return args, nil
}

func (p *Parser) expr(prev *token.Token) (ast.Expr, error) {
	t := p.peek()
	if t == nil {
		return nil, p.endOfLine(prev)
	}

	switch t.Type {
	case token.String:
		p.next()
		return ast.NewStringLiteral(*t), nil
	case token.Identifier:
		p.next()
		return ast.NewIdentifier(*t), nil
	default:
		return nil, p.errorAt(t.Locate(), ErrExpectedExpression)
	}
}

// expect consumes a token of type typ. prev is the last consumed token and
// locates the error when the line ends early; mismatch is reported when a
// token of another type is found.
func (p *Parser) expect(typ token.Type, prev *token.Token, mismatch error) (*token.Token, error) {
	t := p.peek()
	if t == nil {
		return nil, p.endOfLine(prev)
	}
	if t.Type != typ {
		return nil, p.errorAt(t.Locate(), mismatch)
	}
	return p.next(), nil
}

func (p *Parser) accept(typ token.Type) *token.Token {
	if t := p.peek(); t != nil && t.Type == typ {
		return p.next()
	}
	return nil
}

func (p *Parser) peek() *token.Token {
	if p.off >= len(p.toks) {
		return nil
	}
	return &p.toks[p.off]
}

func (p *Parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.off++
	}
	return t
}

func (p *Parser) endOfLine(prev *token.Token) error {
	var at token.Range
	if prev != nil {
		at = token.Range{Start: prev.End, End: prev.End}
	}
	return p.errorAt(at, ErrUnexpectedEndOfLine)
}

func (p *Parser) errorAt(at token.Range, err error) error {
	return NewParseError(at, err)
}

type ParseError struct {
	Range token.Range
	Err   error
}

func NewParseError(at token.Range, err error) *ParseError {
	return &ParseError{Range: at, Err: err}
}

func (err *ParseError) Error() string {
	switch {
	case !err.Range.Start.IsValid():
		return fmt.Sprintf("Syntax error: %v", err.Err)
	case err.Range.Start == err.Range.End:
		return fmt.Sprintf("Syntax error: (%s) %v", err.Range.Start, err.Err)
	default:
		return fmt.Sprintf("Syntax error: (%s) %v", err.Range, err.Err)
	}
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
