package token

import "fmt"

// Position is a 1-based line and column in source text. The zero Position
// means no position is known.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range spans Start up to, but not including, End.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Locatable is implemented by anything that can report where it came from.
type Locatable interface {
	Locate() Range
}

// Token is one lexical unit. For String tokens Text holds the decoded
// contents without the quotes; Pos and End still cover the quotes.
type Token struct {
	Type Type
	Pos  Position
	End  Position
	Text string
}

func (t Token) Locate() Range { return Range{Start: t.Pos, End: t.End} }

func (t Token) String() string {
	switch t.Type {
	case Identifier:
		return fmt.Sprintf("%s %s", t.Locate(), t.Text)
	case String:
		return fmt.Sprintf("%s %q", t.Locate(), t.Text)
	default:
		return fmt.Sprintf("%s %s", t.Locate(), t.Type)
	}
}

// Lookup classifies an identifier spelling, returning Var for the reserved
// word and Identifier for everything else.
func Lookup(text string) Type {
	node := Fixed
outer:
	for _, r := range text {
		for _, c := range node.Children {
			if c.Rune == r {
				node = c
				continue outer
			}
		}
		return Identifier
	}
	if node.Type == Var {
		return node.Type
	}
	return Identifier
}
