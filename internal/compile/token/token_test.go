package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, Var, Lookup("VAR"))
	assert.Equal(t, Identifier, Lookup("var"))
	assert.Equal(t, Identifier, Lookup("VA"))
	assert.Equal(t, Identifier, Lookup("VARS"))
	assert.Equal(t, Identifier, Lookup("PRINT"))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "VAR", Var.String())
	assert.Equal(t, ",", Comma.String())
	assert.Equal(t, "=", Equal.String())
	assert.Equal(t, "<identifier>", Identifier.String())
	assert.Equal(t, "<invalid>", Type(-1).String())
	assert.Equal(t, "<invalid>", Type(100).String())
}

func TestLocate(t *testing.T) {
	tok := Token{
		Type: Identifier,
		Pos:  Position{Line: 3, Column: 5},
		End:  Position{Line: 3, Column: 8},
		Text: "abc",
	}
	assert.Equal(t, "3:5-3:8", tok.Locate().String())
	assert.Equal(t, "3:5-3:8 abc", tok.String())
	assert.Equal(t, "-", Position{}.String())
}
