// Package asm accumulates the data and text sections of a NASM module and
// renders them as assembler source.
package asm

import "io"

// DataSectionItem is one line of the data section. All fields are copied to
// the output unchanged.
type DataSectionItem struct {
	Name   string
	Size   string
	Values string
}

type DataSection struct {
	items []DataSectionItem
}

func (s *DataSection) Append(name, size, values string) {
	s.items = append(s.items, DataSectionItem{Name: name, Size: size, Values: values})
}

func (s *DataSection) Len() int { return len(s.items) }

// Items returns a copy of the items in insertion order.
func (s *DataSection) Items() []DataSectionItem {
	return append([]DataSectionItem(nil), s.items...)
}

// TextSectionItem is either a Label or an Instruction.
type TextSectionItem interface {
	io.WriterTo

	textItem()
}

type Label string

type Instruction string

func (Label) textItem()       {}
func (Instruction) textItem() {}

type TextSection struct {
	items []TextSectionItem
}

func (s *TextSection) Label(name string) { s.items = append(s.items, Label(name)) }

func (s *TextSection) Inst(inst string) { s.items = append(s.items, Instruction(inst)) }

// Extend moves all items of other to the end of s, leaving other empty.
func (s *TextSection) Extend(other *TextSection) {
	if other == nil || other == s {
		return
	}
	s.items = append(s.items, other.items...)
	other.items = nil
}

func (s *TextSection) Len() int { return len(s.items) }

// Items returns a copy of the items in insertion order.
func (s *TextSection) Items() []TextSectionItem {
	return append([]TextSectionItem(nil), s.items...)
}

type Asm struct {
	Data DataSection
	Text TextSection
}

func New() *Asm {
	return &Asm{}
}
