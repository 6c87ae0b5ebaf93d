// Package diag prints compiler diagnostics for a person at a terminal.
package diag

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func RedBold(s string) string {
	return "\x1b[1;31m" + s + "\x1b[0m"
}

type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter colors output only when f is a terminal.
func NewPrinter(f *os.File) *Printer {
	return &Printer{w: f, color: term.IsTerminal(int(f.Fd()))}
}

func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Error(err error) {
	msg := err.Error()
	if p.color {
		msg = RedBold(msg)
	}
	fmt.Fprintln(p.w, msg)
}
