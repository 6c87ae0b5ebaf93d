package asm

import (
	"io"
	"strings"
)

const (
	header      = "bits 64\nglobal _start\n\n"
	dataHeader  = "section .data\n"
	textHeader  = "\nsection .text\n"
	indentation = "    "
)

// WriteTo renders the module as NASM source. The only possible errors are
// those returned by w.
func (a *Asm) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := io.WriteString(w, header+dataHeader)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, item := range a.Data.items {
		n64, err := item.WriteTo(w)
		total += n64
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, textHeader)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, item := range a.Text.items {
		n64, err := item.WriteTo(w)
		total += n64
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the module. It is the same text WriteTo produces.
func (a *Asm) String() string {
	var b strings.Builder
	_, _ = a.WriteTo(&b)
	return b.String()
}

func (item DataSectionItem) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, indentation+item.Name+" "+item.Size+" "+item.Values+"\n")
	return int64(n), err
}

func (l Label) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(l)+":\n")
	return int64(n), err
}

func (inst Instruction) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, indentation+string(inst)+"\n")
	return int64(n), err
}
