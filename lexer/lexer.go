/*
File    : loxi/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns Lox source text into a token stream. It walks the
// source with a byte cursor, emitting at most one token per call to Next, and
// accumulates diagnostics instead of stopping at the first bad character
// or unterminated string.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/loxi/token"
)

// Error is a single lexical diagnostic: an unexpected character or an
// unterminated string, tied to the source line it was found on.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Lexer scans a source string into tokens. Fields mirror the cursor
// state a hand-written scanner needs: the start of the current lexeme,
// the cursor position, and the running line counter for diagnostics.
type Lexer struct {
	src     string
	start   int
	current int
	line    int

	errors []*Error
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Errors returns the lexical errors accumulated so far. A non-empty
// result means the sticky error flag described in spec.md §4.1 is set.
func (l *Lexer) Errors() []*Error {
	return l.errors
}

// HasErrors reports whether any lexical error has been recorded.
func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

// Tokenize scans the entire source and returns every token, always
// ending with a single Eof token. Lexing continues past errors; check
// Errors()/HasErrors() afterward to see whether any were recorded.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok, ok := l.Next()
		if ok {
			tokens = append(tokens, tok)
		}
		if tok.Kind == token.Eof {
			return tokens
		}
	}
}

// Next skips whitespace and comments, then scans and returns the next
// token. The boolean is false when the scan produced no token because
// of a lexical error, meaning the caller should loop around and call
// Next again.
func (l *Lexer) Next() (token.Token, bool) {
	l.skipWhitespaceAndComments()
	l.start = l.current

	if l.atEnd() {
		return token.New(token.Eof, "", l.line), true
	}

	c := l.advance()

	switch c {
	case '(':
		return l.emit(token.LeftParen), true
	case ')':
		return l.emit(token.RightParen), true
	case '{':
		return l.emit(token.LeftBrace), true
	case '}':
		return l.emit(token.RightBrace), true
	case ',':
		return l.emit(token.Comma), true
	case '.':
		return l.emit(token.Dot), true
	case '-':
		return l.emit(token.Minus), true
	case '+':
		return l.emit(token.Plus), true
	case ';':
		return l.emit(token.Semicolon), true
	case '*':
		return l.emit(token.Star), true
	case '/':
		return l.emit(token.Slash), true
	case '!':
		if l.match('=') {
			return l.emit(token.BangEqual), true
		}
		return l.emit(token.Bang), true
	case '=':
		if l.match('=') {
			return l.emit(token.EqualEqual), true
		}
		return l.emit(token.Equal), true
	case '<':
		if l.match('=') {
			return l.emit(token.LessEqual), true
		}
		return l.emit(token.Less), true
	case '>':
		if l.match('=') {
			return l.emit(token.GreaterEqual), true
		}
		return l.emit(token.Greater), true
	case '"':
		return l.readString()
	default:
		if isDigit(c) {
			return l.readNumber(), true
		}
		if isAlpha(c) {
			return l.readIdentifier(), true
		}
		l.reportf("Unexpected character: %c", c)
		return token.Token{}, false
	}
}

// skipWhitespaceAndComments advances past spaces, tabs, carriage
// returns, newlines (tracking the line counter), and `//` comments.
// `/` that is not followed by a second `/` is left for Next to emit as
// Slash.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		if l.atEnd() {
			return
		}
		switch l.peek() {
		case ' ', '\r', '\t':
			l.current++
		case '\n':
			l.line++
			l.current++
		case '/':
			if l.peekNext() == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.current++
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// readString scans a string literal from the opening quote (already
// consumed) to the matching closing quote. An embedded newline bumps
// the line counter; running off the end of the source without a
// closing quote is an Unterminated string error and emits no token.
func (l *Lexer) readString() (token.Token, bool) {
	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.current++
	}
	if l.atEnd() {
		l.report("Unterminated string.")
		return token.Token{}, false
	}
	l.current++ // consume closing quote
	value := l.src[l.start+1 : l.current-1]
	return token.NewLiteral(token.String, l.lexeme(), l.line, value), true
}

// readNumber scans `[0-9]+(\.[0-9]+)?`. A trailing `.` not followed by
// a digit is not part of the number (so "1." lexes as NUMBER "1" then
// DOT ".").
func (l *Lexer) readNumber() token.Token {
	for isDigit(l.peek()) {
		l.current++
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.current++ // consume '.'
		for isDigit(l.peek()) {
			l.current++
		}
	}
	lexeme := l.lexeme()
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewLiteral(token.Number, lexeme, l.line, value)
}

// readIdentifier scans `[A-Za-z_][A-Za-z_0-9]*` and classifies it as a
// keyword or a plain Identifier.
func (l *Lexer) readIdentifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.current++
	}
	lexeme := l.lexeme()
	return token.New(token.Lookup(lexeme), lexeme, l.line)
}

func (l *Lexer) emit(kind token.Kind) token.Token {
	return token.New(kind, l.lexeme(), l.line)
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.current]
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(offset int) byte {
	idx := l.current + offset
	if idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

func (l *Lexer) match(expected byte) bool {
	if l.peek() != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) report(message string) {
	l.errors = append(l.errors, &Error{Line: l.line, Message: message})
}

func (l *Lexer) reportf(format string, args ...interface{}) {
	l.report(fmt.Sprintf(format, args...))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
