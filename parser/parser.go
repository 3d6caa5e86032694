package parser

import (
	"strings"

	"github.com/pulseboard/gqlview/ast"
	"github.com/pulseboard/gqlview/lexer"
	"github.com/pulseboard/gqlview/token"
)

// Parser builds a best-effort document from a token sequence. It never
// fails: malformed or truncated input yields partially built nodes, and
// garbage input yields an empty document. Every sub-parser takes a cursor
// position and returns the node together with the advanced position; the
// cursor only moves forward.
type Parser struct {
	toks []token.Token
}

// New creates a new Parser over the given token sequence.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse tokenizes and parses source text in one call.
func Parse(src string) *ast.Document {
	return New(lexer.Tokenize(src)).ParseDocument()
}

// ParseDocument parses every top-level definition in the token sequence.
func (p *Parser) ParseDocument() *ast.Document {
	doc := &ast.Document{}
	pos := 0
	for pos < len(p.toks) {
		def, next := p.parseDefinition(pos)
		if next == pos {
			// Nothing recognized here; skip one token so the loop
			// always makes progress.
			pos++
			continue
		}
		pos = next
		if def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	return doc
}

// peek returns the token at pos, or a zero token past the end.
func (p *Parser) peek(pos int) token.Token {
	if pos < 0 || pos >= len(p.toks) {
		return token.Token{}
	}
	return p.toks[pos]
}

// span returns the literals of the tokens in [start, end).
func (p *Parser) span(start, end int) []string {
	if start < 0 {
		start = 0
	}
	if end > len(p.toks) {
		end = len(p.toks)
	}
	parts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		parts = append(parts, p.toks[i].Literal)
	}
	return parts
}

// parseDefinition parses one operation or fragment definition. It returns
// the cursor unchanged when no definition starts at pos.
func (p *Parser) parseDefinition(pos int) (ast.Node, int) {
	tok := p.peek(pos)
	switch {
	case tok.Type == token.WORD && tok.Literal == "fragment":
		return p.parseFragmentDefinition(pos + 1)
	case tok.Type == token.WORD && isOperationKeyword(tok.Literal):
		return p.parseOperation(pos)
	case tok.Type == token.LBRACE:
		// Anonymous query: a bare selection set at top level.
		sels, next := p.parseSelectionSet(pos)
		return &ast.Operation{Keyword: "query", Selections: sels}, next
	default:
		return nil, pos
	}
}

func isOperationKeyword(lit string) bool {
	return lit == "query" || lit == "mutation" || lit == "subscription"
}

// parseOperation parses a keyword-led operation definition.
func (p *Parser) parseOperation(pos int) (ast.Node, int) {
	op := &ast.Operation{Keyword: p.peek(pos).Literal}
	pos++
	// Optional name: any token that is not '(' and not '{'.
	if tok := p.peek(pos); tok.Type != "" && tok.Type != token.LPAREN && tok.Type != token.LBRACE {
		op.Name = tok.Literal
		pos++
	}
	if p.peek(pos).Type == token.LPAREN {
		op.Variables, pos = p.parseVariableDefinitions(pos + 1)
	}
	if p.peek(pos).Type == token.LBRACE {
		op.Selections, pos = p.parseSelectionSet(pos)
	}
	return op, pos
}

// parseFragmentDefinition parses "fragment Name on Type { ... }" with pos
// just past the fragment keyword. Missing pieces are left zero-valued.
func (p *Parser) parseFragmentDefinition(pos int) (ast.Node, int) {
	frag := &ast.Fragment{}
	if tok := p.peek(pos); tok.Type != "" && tok.Type != token.LBRACE {
		frag.Name = tok.Literal
		pos++
	}
	if p.peek(pos).Literal == "on" {
		pos++
		if tok := p.peek(pos); tok.Type != "" && tok.Type != token.LBRACE {
			frag.TypeCondition = tok.Literal
			pos++
		}
	}
	if p.peek(pos).Type == token.LBRACE {
		frag.Selections, pos = p.parseSelectionSet(pos)
	}
	return frag, pos
}

// parseVariableDefinitions parses the "($name: Type = default, ...)" list
// with pos just past the opening paren. The type expression is captured as
// an opaque token span ending before ')', '=', or the next '$'.
func (p *Parser) parseVariableDefinitions(pos int) ([]ast.VariableDefinition, int) {
	var defs []ast.VariableDefinition
	for pos < len(p.toks) && p.peek(pos).Type != token.RPAREN {
		if p.peek(pos).Type != token.DOLLAR {
			pos++
			continue
		}
		pos++ // '$'
		def := ast.VariableDefinition{}
		if tok := p.peek(pos); tok.Type != "" && tok.Type != token.COLON && tok.Type != token.RPAREN {
			def.Name = tok.Literal
			pos++
		}
		if p.peek(pos).Type == token.COLON {
			pos++
		}
		start := pos
		for pos < len(p.toks) {
			tok := p.peek(pos)
			if tok.Type == token.RPAREN || tok.Type == token.DOLLAR || tok.Literal == "=" {
				break
			}
			pos++
		}
		def.Type = joinTokens(p.span(start, pos))
		if p.peek(pos).Literal == "=" {
			pos++
			if tok := p.peek(pos); tok.Type != "" && tok.Type != token.RPAREN && tok.Type != token.DOLLAR {
				def.Default = tok.Literal
				pos++
			}
		}
		defs = append(defs, def)
	}
	if p.peek(pos).Type == token.RPAREN {
		pos++
	}
	return defs, pos
}

// parseSelectionSet parses "{ ... }" with pos at the opening brace. A
// missing closing brace ends the set at the end of the input.
func (p *Parser) parseSelectionSet(pos int) ([]ast.Node, int) {
	pos++ // '{'
	var sels []ast.Node
	for pos < len(p.toks) && p.peek(pos).Type != token.RBRACE {
		sel, next := p.parseSelection(pos)
		if next == pos {
			pos++
			continue
		}
		pos = next
		if sel != nil {
			sels = append(sels, sel)
		}
	}
	if p.peek(pos).Type == token.RBRACE {
		pos++
	}
	return sels, pos
}

// parseSelection parses one spread, inline fragment, or field. Spreads come
// in two lexical shapes: the separated form ("... on T", "... Name") and the
// fused form the bare-word lexer produces ("...Name", "...on T").
func (p *Parser) parseSelection(pos int) (ast.Node, int) {
	tok := p.peek(pos)
	if tok.Type == token.WORD && strings.HasPrefix(tok.Literal, "...") {
		pos++
		rest := tok.Literal[len("..."):]
		switch {
		case rest == "" && p.peek(pos).Literal == "on":
			return p.parseInlineFragment(pos + 1)
		case rest == "on":
			return p.parseInlineFragment(pos)
		case rest == "":
			frag := &ast.Fragment{}
			if t := p.peek(pos); t.Type != "" {
				frag.Name = t.Literal
				pos++
			}
			return frag, pos
		default:
			return &ast.Fragment{Name: rest}, pos
		}
	}
	return p.parseField(pos)
}

// parseInlineFragment parses the remainder of "... on Type { ... }" with
// pos just past the "on" keyword.
func (p *Parser) parseInlineFragment(pos int) (ast.Node, int) {
	inf := &ast.InlineFragment{}
	if tok := p.peek(pos); tok.Type != "" && tok.Type != token.LBRACE {
		inf.TypeCondition = tok.Literal
		pos++
	}
	if p.peek(pos).Type == token.LBRACE {
		inf.Selections, pos = p.parseSelectionSet(pos)
	}
	return inf, pos
}

// parseField parses "alias: name(args) @dirs { ... }", all parts after the
// name optional. A name followed by ':' turns out to have been an alias.
func (p *Parser) parseField(pos int) (ast.Node, int) {
	tok := p.peek(pos)
	if tok.Type == "" {
		return nil, pos
	}
	field := &ast.Field{Name: tok.Literal}
	pos++
	if p.peek(pos).Type == token.COLON {
		pos++
		field.Alias = field.Name
		field.Name = ""
		if t := p.peek(pos); t.Type != "" {
			field.Name = t.Literal
			pos++
		}
	}
	if p.peek(pos).Type == token.LPAREN {
		field.Arguments, pos = p.parseArguments(pos + 1)
	}
	for p.peek(pos).Type == token.AT {
		var dir ast.Directive
		dir, pos = p.parseDirective(pos + 1)
		field.Directives = append(field.Directives, dir)
	}
	if p.peek(pos).Type == token.LBRACE {
		field.Selections, pos = p.parseSelectionSet(pos)
	}
	return field, pos
}

// parseDirective parses "name(args)" with pos just past the '@'.
func (p *Parser) parseDirective(pos int) (ast.Directive, int) {
	dir := ast.Directive{}
	if tok := p.peek(pos); tok.Type != "" && tok.Type != token.LBRACE && tok.Type != token.RBRACE {
		dir.Name = tok.Literal
		pos++
	}
	if p.peek(pos).Type == token.LPAREN {
		dir.Arguments, pos = p.parseArguments(pos + 1)
	}
	return dir, pos
}

// parseArguments parses the shared "(name: value, ...)" list shape with pos
// just past the opening paren. Values are captured as opaque token spans:
// braces and brackets are depth-counted so object- and array-shaped values
// pass through as display text, and a span ends at ')' or at the token that
// begins the next "name:" pair.
func (p *Parser) parseArguments(pos int) ([]ast.Argument, int) {
	var args []ast.Argument
	for pos < len(p.toks) && p.peek(pos).Type != token.RPAREN {
		arg := ast.Argument{Name: p.peek(pos).Literal}
		pos++
		if p.peek(pos).Type == token.COLON {
			pos++
		}
		start := pos
		depth := 0
		for pos < len(p.toks) {
			tok := p.peek(pos)
			if depth == 0 {
				if tok.Type == token.RPAREN {
					break
				}
				if p.peek(pos+1).Type == token.COLON {
					break
				}
			}
			switch tok.Type {
			case token.LBRACE, token.LBRACKET:
				depth++
			case token.RBRACE, token.RBRACKET:
				if depth > 0 {
					depth--
				}
			}
			pos++
		}
		arg.Value = joinTokens(p.span(start, pos))
		args = append(args, arg)
	}
	if p.peek(pos).Type == token.RPAREN {
		pos++
	}
	return args, pos
}

// joinTokens renders a captured token span as display text. Tokens are
// separated by single spaces, except that closing punctuation, colons and
// the non-null marker bind to the left, and opening punctuation and the
// variable and directive sigils bind to the right, so "$id" and "[ID!]!"
// read as written.
func joinTokens(parts []string) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 && !bindsLeft(part) && !bindsRight(parts[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return strings.TrimSpace(b.String())
}

func bindsLeft(s string) bool {
	return s == "!" || s == "]" || s == "}" || s == ")" || s == ":"
}

func bindsRight(s string) bool {
	return s == "$" || s == "@" || s == "[" || s == "{" || s == "("
}
