// Package tree derives the collapsible outline rows shown for a captured
// GraphQL operation document. It owns the per-node open/closed overrides;
// the toolbar state that seeds the defaults is owned by the caller and read
// on every derivation pass. Rows are re-derived from the parsed document on
// every state change; the document itself is never mutated.
package tree

import (
	"github.com/pulseboard/gqlview/ast"
	"github.com/pulseboard/gqlview/toolbar"
)

// Row describes one visible node in depth-first pre-order, ready for
// direct projection into a list UI.
type Row struct {
	Path        Path   `json:"path"`
	Depth       int    `json:"depth"`
	Header      []Span `json:"header"`
	HasChildren bool   `json:"hasChildren"`
	Open        bool   `json:"open"`
}

// toggle is a manual open/closed override. It applies only while the
// toolbar generation it was recorded under is still current, so expand-all
// and collapse-all gestures win over prior individual toggles.
type toggle struct {
	open bool
	gen  uint64
}

// Renderer derives display rows from one parsed document.
type Renderer struct {
	doc     *ast.Document
	toggles map[string]toggle
}

// New creates a Renderer for the given document.
func New(doc *ast.Document) *Renderer {
	return &Renderer{doc: doc, toggles: make(map[string]toggle)}
}

// IsOpen reports the node's current open state under the given toolbar
// state, ignoring any active search.
func (r *Renderer) IsOpen(path Path, st toolbar.State) bool {
	if tg, ok := r.toggles[path.String()]; ok && tg.gen == st.Generation() {
		return tg.open
	}
	return st.DefaultOpen()
}

// Toggle flips one node's open state. The override lasts until the next
// expand-all or collapse-all gesture.
func (r *Renderer) Toggle(path Path, st toolbar.State) {
	r.toggles[path.String()] = toggle{open: !r.IsOpen(path, st), gen: st.Generation()}
}

// Rows derives the visible rows for the current toolbar state and search
// term. It never fails: an empty or nil document yields no rows. While the
// term is non-empty, every node whose subtree matches is forced open;
// clearing the term reverts to the toggle-derived state.
func (r *Renderer) Rows(st toolbar.State, term string) []Row {
	if r.doc == nil {
		return nil
	}
	matches := subtreeMatches(r.doc.Definitions, term)
	var rows []Row
	for i, def := range r.doc.Definitions {
		rows = r.walk(def, Path{i}, 0, st, term, matches, rows)
	}
	return rows
}

// walk emits the row for n and, when it is open, the rows of its children.
func (r *Renderer) walk(n ast.Node, path Path, depth int, st toolbar.State, term string, matches map[string]bool, rows []Row) []Row {
	children := n.Children()
	open := r.IsOpen(path, st)
	if matches[path.String()] {
		open = true
	}
	rows = append(rows, Row{
		Path:        path,
		Depth:       depth,
		Header:      renderHeader(n, depth, term),
		HasChildren: len(children) > 0,
		Open:        open,
	})
	if open {
		for i, child := range children {
			rows = r.walk(child, path.Child(i), depth+1, st, term, matches, rows)
		}
	}
	return rows
}
