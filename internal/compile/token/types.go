package token

type Type int

const (
	Invalid Type = iota
	Comment
	Identifier
	Newline
	String

	// keywords
	Var

	// punctuation
	Comma
	Equal
)

var names = []string{
	Invalid:    "<invalid>",
	Comment:    "<comment>",
	Identifier: "<identifier>",
	Newline:    "<newline>",
	String:     "<string>",
	Var:        "VAR",
	Comma:      ",",
	Equal:      "=",
}

func (t Type) String() string {
	if t < 0 || t > Equal {
		t = Invalid
	}
	return names[t]
}

// TrieNode is one rune of a fixed spelling. Type is Invalid on nodes that
// only prefix a longer spelling.
type TrieNode struct {
	Rune     rune
	Type     Type
	Children []*TrieNode
}

// Fixed holds every keyword and punctuation spelling.
var Fixed = &TrieNode{0, Invalid, []*TrieNode{
	{',', Comma, nil},
	{'=', Equal, nil},
	{'V', Invalid, []*TrieNode{
		{'A', Invalid, []*TrieNode{
			{'R', Var, nil},
		}},
	}},
}}
