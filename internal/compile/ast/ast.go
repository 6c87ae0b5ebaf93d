package ast

import "codeberg.org/rileyq/pico/internal/compile/token"

type Node interface {
	token.Locatable

	Pos() token.Position
	End() token.Position

	astNode()
}

type Expr interface {
	Node

	astExpr()
}

type Stmt interface {
	Node

	astStmt()
}

type Identifier struct {
	NamePos token.Position
	NameEnd token.Position
	Name    string
}

func NewIdentifier(tok token.Token) *Identifier {
	return &Identifier{NamePos: tok.Pos, NameEnd: tok.End, Name: tok.Text}
}

func (id *Identifier) Pos() token.Position { return id.NamePos }
func (id *Identifier) End() token.Position { return id.NameEnd }
func (id *Identifier) Locate() token.Range { return token.Range{Start: id.NamePos, End: id.NameEnd} }

func (id *Identifier) astNode() {}
func (id *Identifier) astExpr() {}

// StringLiteral holds the decoded contents of a string token.
type StringLiteral struct {
	ValuePos token.Position
	ValueEnd token.Position
	Value    string
}

func NewStringLiteral(tok token.Token) *StringLiteral {
	return &StringLiteral{ValuePos: tok.Pos, ValueEnd: tok.End, Value: tok.Text}
}

func (lit *StringLiteral) Pos() token.Position { return lit.ValuePos }
func (lit *StringLiteral) End() token.Position { return lit.ValueEnd }
func (lit *StringLiteral) Locate() token.Range {
	return token.Range{Start: lit.ValuePos, End: lit.ValueEnd}
}

func (*StringLiteral) astNode() {}
func (*StringLiteral) astExpr() {}

// VarDecl declares Name and binds it to Value.
type VarDecl struct {
	VarPos token.Position
	Name   *Identifier
	Value  Expr
}

func (stmt *VarDecl) Pos() token.Position { return stmt.VarPos }
func (stmt *VarDecl) End() token.Position { return stmt.Value.End() }
func (stmt *VarDecl) Locate() token.Range {
	return token.Range{Start: stmt.Pos(), End: stmt.End()}
}

func (*VarDecl) astNode() {}
func (*VarDecl) astStmt() {}

// ProcCall invokes Proc with Args, evaluated left to right.
type ProcCall struct {
	Proc *Identifier
	Args []Expr
}

func (stmt *ProcCall) Pos() token.Position { return stmt.Proc.Pos() }

func (stmt *ProcCall) End() token.Position {
	if len(stmt.Args) == 0 {
		return stmt.Proc.End()
	}
	return stmt.Args[len(stmt.Args)-1].End()
}

func (stmt *ProcCall) Locate() token.Range {
	return token.Range{Start: stmt.Pos(), End: stmt.End()}
}

func (*ProcCall) astNode() {}
func (*ProcCall) astStmt() {}
