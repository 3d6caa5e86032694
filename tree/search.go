package tree

import (
	"strings"

	"github.com/pulseboard/gqlview/ast"
)

// searchFields returns the textual fields of a node that participate in
// search matching: name, alias, operation keyword, type condition, argument
// names and values, and variable names and types. Directive names and
// variable defaults render but do not match.
func searchFields(n ast.Node) []string {
	switch node := n.(type) {
	case *ast.Operation:
		fields := []string{node.Keyword, node.Name}
		for _, v := range node.Variables {
			fields = append(fields, v.Name, v.Type)
		}
		return fields
	case *ast.Field:
		fields := []string{node.Alias, node.Name}
		for _, a := range node.Arguments {
			fields = append(fields, a.Name, a.Value)
		}
		for _, d := range node.Directives {
			for _, a := range d.Arguments {
				fields = append(fields, a.Name, a.Value)
			}
		}
		return fields
	case *ast.Fragment:
		return []string{node.Name, node.TypeCondition}
	case *ast.InlineFragment:
		return []string{node.TypeCondition}
	default:
		return nil
	}
}

// nodeMatches reports whether one of the node's own fields contains the
// term as a case-sensitive substring.
func nodeMatches(n ast.Node, term string) bool {
	if term == "" {
		return false
	}
	for _, field := range searchFields(n) {
		if strings.Contains(field, term) {
			return true
		}
	}
	return false
}

// subtreeMatches records, keyed by path, every node whose own fields or
// whose descendants match the term. Empty terms yield an empty map.
func subtreeMatches(defs []ast.Node, term string) map[string]bool {
	out := make(map[string]bool)
	if term == "" {
		return out
	}
	for i, def := range defs {
		fillMatches(def, Path{i}, term, out)
	}
	return out
}

// fillMatches evaluates the subtree rooted at n bottom-up and returns
// whether it matched.
func fillMatches(n ast.Node, path Path, term string, out map[string]bool) bool {
	matched := nodeMatches(n, term)
	for i, child := range n.Children() {
		if fillMatches(child, path.Child(i), term, out) {
			matched = true
		}
	}
	if matched {
		out[path.String()] = true
	}
	return matched
}
