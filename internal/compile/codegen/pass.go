package codegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/rileyq/pico/internal/compile/asm"
	"codeberg.org/rileyq/pico/internal/compile/ast"
	"codeberg.org/rileyq/pico/internal/compile/token"
)

var (
	ErrUnknownProcedure = errors.New("unknown procedure")
	ErrUnsupported      = errors.New("unsupported node")
)

const (
	stdout = "1"
	stderr = "2"
)

// Generate translates stmts, in order, into a program for target. The
// program starts at _start and exits with status 0 after the last statement.
func Generate(stmts []ast.Stmt, target Target) (*asm.Asm, error) {
	p := pass{target: target, out: asm.New()}

	p.out.Text.Label("_start")
	for _, stmt := range stmts {
		text, err := p.stmt(stmt)
		if err != nil {
			return nil, err
		}
		p.out.Text.Extend(text)
	}
	p.out.Text.Extend(p.exit())

	return p.out, nil
}

type pass struct {
	target  Target
	out     *asm.Asm
	strings int
	newline bool
}

func (p *pass) stmt(stmt ast.Stmt) (*asm.TextSection, error) {
	switch stmt := stmt.(type) {
	case *ast.VarDecl:
		return &asm.TextSection{}, p.varDecl(stmt)
	case *ast.ProcCall:
		return p.procCall(stmt)
	default:
		return nil, NewError(stmt.Locate(), fmt.Errorf("%w %T", ErrUnsupported, stmt))
	}
}

func (p *pass) varDecl(decl *ast.VarDecl) error {
	name := variable(decl.Name)
	switch value := decl.Value.(type) {
	case *ast.StringLiteral:
		p.stringData(name, value.Value)
	case *ast.Identifier:
		p.out.Data.Append(name, "equ", variable(value))
		p.out.Data.Append(length(name), "equ", length(variable(value)))
	default:
		return NewError(decl.Value.Locate(), fmt.Errorf("%w %T", ErrUnsupported, value))
	}
	return nil
}

func (p *pass) procCall(call *ast.ProcCall) (*asm.TextSection, error) {
	var fd string
	var newline bool
	switch call.Proc.Name {
	case "PRINT":
		fd = stdout
	case "PRINTLN":
		fd, newline = stdout, true
	case "EPRINT":
		fd = stderr
	default:
		return nil, NewError(call.Proc.Locate(), fmt.Errorf("%w `%s`", ErrUnknownProcedure, call.Proc.Name))
	}

	text := &asm.TextSection{}
	for _, arg := range call.Args {
		label, err := p.operand(arg)
		if err != nil {
			return nil, err
		}
		text.Extend(p.write(fd, label))
	}
	if newline {
		text.Extend(p.write(fd, p.newlineData()))
	}
	return text, nil
}

// operand returns the data label holding the bytes of expr.
func (p *pass) operand(expr ast.Expr) (string, error) {
	switch expr := expr.(type) {
	case *ast.StringLiteral:
		name := "s" + strconv.Itoa(p.strings)
		p.strings++
		p.stringData(name, expr.Value)
		return name, nil
	case *ast.Identifier:
		return variable(expr), nil
	default:
		return "", NewError(expr.Locate(), fmt.Errorf("%w %T", ErrUnsupported, expr))
	}
}

func (p *pass) newlineData() string {
	const name = "nl"
	if !p.newline {
		p.newline = true
		p.out.Data.Append(name, "db", "10")
		p.out.Data.Append(length(name), "equ", "1")
	}
	return name
}

// stringData stores value NUL terminated under name, with its length,
// excluding the NUL, under len_name.
func (p *pass) stringData(name, value string) {
	p.out.Data.Append(name, "db", StringBytes(value))
	p.out.Data.Append(length(name), "equ", "$ - "+name+" - 1")
}

func (p *pass) write(fd, label string) *asm.TextSection {
	text := &asm.TextSection{}
	text.Inst("mov rax, " + p.target.sysWrite())
	text.Inst("mov rdi, " + fd)
	text.Inst("lea rsi, [rel " + label + "]")
	text.Inst("mov rdx, " + length(label))
	text.Inst("syscall")
	return text
}

func (p *pass) exit() *asm.TextSection {
	text := &asm.TextSection{}
	text.Inst("mov rax, " + p.target.sysExit())
	text.Inst("xor rdi, rdi")
	text.Inst("syscall")
	return text
}

// Labels live in disjoint namespaces: v_<name> for variables, s<N> and nl
// for generated strings and len_<label> for lengths. Identifiers never
// change the prefix, so two different names never share a label.
func variable(id *ast.Identifier) string { return "v_" + id.Name }

func length(label string) string { return "len_" + label }

// StringBytes renders s as the operand of a db directive, NUL terminated.
func StringBytes(s string) string {
	if s == "" {
		return "0"
	}
	var b strings.Builder
	b.WriteByte('`')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		case '\\', '`':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteString("`, 0")
	return b.String()
}

type Error struct {
	Range token.Range
	Err   error
}

func NewError(at token.Range, err error) *Error {
	return &Error{Range: at, Err: err}
}

func (err *Error) Error() string {
	return fmt.Sprintf("Compile error: (%s) %v", err.Range, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}
