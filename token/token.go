package token

// Type classifies a token produced by the lexer.
type Type string

const (
	// EOF marks the end of the input in the streaming interface.
	EOF Type = "EOF"

	// WORD is a bare word: a name, keyword, number, or the spread "...".
	WORD Type = "WORD"
	// STRING is a quoted literal, quotes and escapes preserved verbatim.
	STRING Type = "STRING"

	// Punctuation, one token per character.
	LBRACE   Type = "{"
	RBRACE   Type = "}"
	LPAREN   Type = "("
	RPAREN   Type = ")"
	LBRACKET Type = "["
	RBRACKET Type = "]"
	COLON    Type = ":"
	BANG     Type = "!"
	DOLLAR   Type = "$"
	AT       Type = "@"
)

// Token is a single lexical unit of an operation document. Tokens carry no
// position information; their order is the only relationship that matters
// downstream.
type Token struct {
	Type    Type   // The type of the token
	Literal string // The literal value of the token
}

// Punct maps each punctuation character to its token type. Characters
// outside this set (and outside quotes and separators) accumulate into
// WORD tokens.
var Punct = map[byte]Type{
	'{': LBRACE,
	'}': RBRACE,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	':': COLON,
	'!': BANG,
	'$': DOLLAR,
	'@': AT,
}
