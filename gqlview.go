// Package gqlview renders captured GraphQL operation text as a collapsible,
// searchable outline. It includes a tolerant lexer and structural parser
// that never fail on malformed input, a tree renderer driven by toolbar
// state, and HTTP/WebSocket handlers for dashboard integration.
package gqlview

import (
	"github.com/pulseboard/gqlview/ast"
	"github.com/pulseboard/gqlview/handler"
	"github.com/pulseboard/gqlview/lexer"
	"github.com/pulseboard/gqlview/parser"
	"github.com/pulseboard/gqlview/token"
	"github.com/pulseboard/gqlview/toolbar"
	"github.com/pulseboard/gqlview/tree"
)

// ===========================
// Re-exported Types
// ===========================

// Token types
type (
	TokenType = token.Type
	Token     = token.Token
)

// Token constants
const (
	EOF      = token.EOF
	WORD     = token.WORD
	STRING   = token.STRING
	LBRACE   = token.LBRACE
	RBRACE   = token.RBRACE
	LPAREN   = token.LPAREN
	RPAREN   = token.RPAREN
	LBRACKET = token.LBRACKET
	RBRACKET = token.RBRACKET
	COLON    = token.COLON
	BANG     = token.BANG
	DOLLAR   = token.DOLLAR
	AT       = token.AT
)

// AST types
type (
	Node               = ast.Node
	Document           = ast.Document
	Operation          = ast.Operation
	VariableDefinition = ast.VariableDefinition
	Field              = ast.Field
	Argument           = ast.Argument
	Directive          = ast.Directive
	Fragment           = ast.Fragment
	InlineFragment     = ast.InlineFragment
)

// Renderer types
type (
	Renderer = tree.Renderer
	Row      = tree.Row
	Span     = tree.Span
	Path     = tree.Path
)

// ToolbarState is the view state shared between the toolbar controls and
// the renderer.
type ToolbarState = toolbar.State

// Lexer type
type Lexer = lexer.Lexer

// Parser type
type Parser = parser.Parser

// ===========================
// Convenience Functions
// ===========================

// Tokenize scans operation text into tokens. It never fails.
func Tokenize(input string) []Token {
	return lexer.Tokenize(input)
}

// Parse builds a best-effort document from operation text. Garbage input
// yields an empty document, never an error.
func Parse(text string) *Document {
	return parser.Parse(text)
}

// NewRenderer creates a tree renderer for a parsed document.
func NewRenderer(doc *Document) *Renderer {
	return tree.New(doc)
}

// Outline parses text and derives its outline rows in one call, with an
// optional search term. An empty row list means the text did not parse;
// callers should fall back to displaying the raw text.
func Outline(text, term string) []Row {
	st := ToolbarState{SearchVisible: term != "", SearchTerm: term}
	return tree.New(parser.Parse(text)).Rows(st, st.Term())
}

// ===========================
// HTTP Handlers
// ===========================

// NewServer creates the HTTP/WebSocket server for the outline endpoints.
var NewServer = handler.NewServer

// DefaultConfig returns the server configuration used when no file is
// given.
var DefaultConfig = handler.DefaultConfig

// LoadConfig reads a YAML server configuration file.
var LoadConfig = handler.LoadConfig
