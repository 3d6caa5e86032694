package tree

import (
	"strings"

	"github.com/pulseboard/gqlview/ast"
)

// Span is one fragment of a rendered row header. Highlighted spans carry
// the matched search substring.
type Span struct {
	Text      string `json:"text"`
	Highlight bool   `json:"highlight,omitempty"`
}

// SpanText joins the spans back into plain text.
func SpanText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// renderHeader produces the display spans for one node, left to right. The
// depth tells fragment nodes apart: at depth zero a Fragment is a
// definition, below that it is a spread. Nameless nodes render blank; no
// placeholder is substituted.
func renderHeader(n ast.Node, depth int, term string) []Span {
	switch node := n.(type) {
	case *ast.Operation:
		spans := matchSpans(node.Keyword, term)
		if node.Name != "" {
			spans = appendLit(spans, " ")
			spans = append(spans, matchSpans(node.Name, term)...)
		}
		if node.Variables != nil {
			spans = appendLit(spans, "(")
			for i, v := range node.Variables {
				if i > 0 {
					spans = appendLit(spans, ", ")
				}
				spans = appendLit(spans, "$")
				spans = append(spans, matchSpans(v.Name, term)...)
				if v.Type != "" {
					spans = appendLit(spans, ": ")
					spans = append(spans, matchSpans(v.Type, term)...)
				}
				if v.Default != "" {
					spans = appendLit(spans, " = "+v.Default)
				}
			}
			spans = appendLit(spans, ")")
		}
		return spans
	case *ast.Field:
		var spans []Span
		if node.Alias != "" {
			spans = append(spans, matchSpans(node.Alias, term)...)
			spans = appendLit(spans, ": ")
		}
		spans = append(spans, matchSpans(node.Name, term)...)
		spans = appendArguments(spans, node.Arguments, term)
		for _, dir := range node.Directives {
			spans = appendLit(spans, " @"+dir.Name)
			spans = appendArguments(spans, dir.Arguments, term)
		}
		return spans
	case *ast.Fragment:
		if depth > 0 {
			return append([]Span{{Text: "..."}}, matchSpans(node.Name, term)...)
		}
		spans := appendLit(nil, "fragment ")
		spans = append(spans, matchSpans(node.Name, term)...)
		if node.TypeCondition != "" {
			spans = appendLit(spans, " on ")
			spans = append(spans, matchSpans(node.TypeCondition, term)...)
		}
		return spans
	case *ast.InlineFragment:
		spans := appendLit(nil, "... on ")
		return append(spans, matchSpans(node.TypeCondition, term)...)
	default:
		return nil
	}
}

// appendArguments renders a "(name: value, ...)" list. A nil list renders
// nothing, preserving the no-arguments / no-list distinction.
func appendArguments(spans []Span, args []ast.Argument, term string) []Span {
	if args == nil {
		return spans
	}
	spans = appendLit(spans, "(")
	for i, arg := range args {
		if i > 0 {
			spans = appendLit(spans, ", ")
		}
		spans = append(spans, matchSpans(arg.Name, term)...)
		spans = appendLit(spans, ": ")
		spans = append(spans, matchSpans(arg.Value, term)...)
	}
	return appendLit(spans, ")")
}

// appendLit appends fixed, non-matching header text.
func appendLit(spans []Span, text string) []Span {
	return append(spans, Span{Text: text})
}

// matchSpans renders one searchable field, wrapping the first occurrence of
// the term in a highlight span. Only the first occurrence is marked, and
// matching is case-sensitive.
func matchSpans(text, term string) []Span {
	if term == "" {
		return []Span{{Text: text}}
	}
	idx := strings.Index(text, term)
	if idx < 0 {
		return []Span{{Text: text}}
	}
	spans := make([]Span, 0, 3)
	if idx > 0 {
		spans = append(spans, Span{Text: text[:idx]})
	}
	spans = append(spans, Span{Text: term, Highlight: true})
	if rest := text[idx+len(term):]; rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
