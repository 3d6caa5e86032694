package lexer

import (
	"github.com/pulseboard/gqlview/token"
)

// Lexer tokenizes captured GraphQL operation text. It never fails: any byte
// sequence produces some token sequence.
type Lexer struct {
	input        string // The input string
	position     int    // Current position in input (points to current char)
	readPosition int    // Next reading position (after current char)
	ch           byte   // Current char under examination
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the entire input and returns its tokens in order. The same
// input always yields the same token sequence.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		toks = append(toks, tok)
	}
	return toks
}

// readChar advances the lexer to the next character.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII 0 signifies end-of-input
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() token.Token {
	l.skipSeparators()
	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Literal: ""}
	case l.ch == '"' || l.ch == '\'':
		return l.readString()
	default:
		if typ, ok := token.Punct[l.ch]; ok {
			tok := token.Token{Type: typ, Literal: string(l.ch)}
			l.readChar()
			return tok
		}
		return l.readWord()
	}
}

// skipSeparators advances past whitespace and commas. Both separate tokens
// and are never tokens themselves.
func (l *Lexer) skipSeparators() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' || l.ch == ',' {
		l.readChar()
	}
}

// readWord reads a bare word: everything up to the next separator,
// punctuation character, quote, or end of input.
func (l *Lexer) readWord() token.Token {
	start := l.position
	for l.ch != 0 && !isSeparator(l.ch) && !isPunct(l.ch) && l.ch != '"' && l.ch != '\'' {
		l.readChar()
	}
	return token.Token{Type: token.WORD, Literal: l.input[start:l.position]}
}

// readString reads a quoted literal, keeping both quotes and any escapes
// verbatim. A delimiter preceded by a backslash does not terminate the
// literal; an unterminated literal runs to the end of the input.
func (l *Lexer) readString() token.Token {
	quote := l.ch
	start := l.position
	l.readChar()
	for l.ch != 0 {
		if l.ch == quote && l.input[l.position-1] != '\\' {
			break
		}
		l.readChar()
	}
	end := l.position
	if l.ch == quote {
		end++
		l.readChar()
	}
	return token.Token{Type: token.STRING, Literal: l.input[start:end]}
}

// isSeparator checks if a byte separates tokens without being one.
func isSeparator(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ','
}

// isPunct checks if a byte is one of the single-character tokens.
func isPunct(ch byte) bool {
	_, ok := token.Punct[ch]
	return ok
}
