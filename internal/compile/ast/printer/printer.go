package printer

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/rileyq/pico/internal/compile/ast"
	"codeberg.org/rileyq/pico/internal/compile/token"
)

// Fprint writes node to w in source form. Printing a statement and scanning
// the result again yields the same statement.
func Fprint(w io.Writer, node ast.Node) error {
	return fprint(w, node)
}

func Sprint(node ast.Node) string {
	var b strings.Builder
	_ = fprint(&b, node)
	return b.String()
}

func fprint(w io.Writer, node ast.Node) error {
	var err error
	switch node := node.(type) {
	case *ast.VarDecl:
		_, err = io.WriteString(w, token.Var.String()+" ")
		if err != nil {
			return err
		}
		err = fprint(w, node.Name)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " "+token.Equal.String()+" ")
		if err != nil {
			return err
		}
		return fprint(w, node.Value)
	case *ast.ProcCall:
		err = fprint(w, node.Proc)
		if err != nil {
			return err
		}
		return listWithDelim(w, node.Args, " ", "", token.Comma.String()+" ")
	case *ast.Identifier:
		_, err = io.WriteString(w, node.Name)
		return err
	case *ast.StringLiteral:
		_, err = io.WriteString(w, Quote(node.Value))
		return err
	default:
		return fmt.Errorf("printer: unexpected node %T", node)
	}
}

func listWithDelim[T ast.Node](w io.Writer, exprs []T, open, close, sep string) error {
	_, err := io.WriteString(w, open)
	if err != nil {
		return err
	}
	for i, expr := range exprs {
		err = fprint(w, expr)
		if err != nil {
			return err
		}
		if i < len(exprs)-1 {
			_, err = io.WriteString(w, sep)
			if err != nil {
				return err
			}
		}
	}
	_, err = io.WriteString(w, close)
	if err != nil {
		return err
	}
	return nil
}

// Quote returns s as a double-quoted string literal using the escapes the
// scanner understands.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
