/*
File    : loxi/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		Input    string
		Expected Kind
	}{
		{"and", And},
		{"class", Class},
		{"fun", Fun},
		{"nil", Nil},
		{"return", Return},
		{"while", While},
		{"myVar", Identifier},
		{"printer", Identifier}, // not a keyword, just starts with "print"
	}

	for _, tt := range tests {
		assert.Equal(t, tt.Expected, Lookup(tt.Input), "Lookup(%q)", tt.Input)
	}
}

func TestTokenString_Punctuation(t *testing.T) {
	tok := New(LeftParen, "(", 1)
	assert.Equal(t, "LEFT_PAREN ( null", tok.String())
}

func TestTokenString_NumberLiteral(t *testing.T) {
	tests := []struct {
		Value    float64
		Lexeme   string
		Expected string
	}{
		{42, "42", "NUMBER 42 42.0"},
		{1.5, "1.5", "NUMBER 1.5 1.5"},
		{0, "0", "NUMBER 0 0.0"},
	}
	for _, tt := range tests {
		tok := NewLiteral(Number, tt.Lexeme, 1, tt.Value)
		assert.Equal(t, tt.Expected, tok.String())
	}
}

func TestTokenString_StringLiteral(t *testing.T) {
	tok := NewLiteral(String, `"hi"`, 1, "hi")
	assert.Equal(t, `STRING "hi" hi`, tok.String())
}

func TestTokenString_EOF(t *testing.T) {
	tok := New(Eof, "", 3)
	assert.Equal(t, "EOF  null", tok.String())
}
