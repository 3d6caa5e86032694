// Package toolbar holds the view state shared between the dashboard's
// toolbar controls and the tree renderer. A State value is owned by exactly
// one writer (the interaction layer) and read by the renderer on every
// derivation pass.
package toolbar

// State carries the expand/collapse generation counters and the search box
// state. Only the relative ordering of the two counters matters: whichever
// is larger decides the default open/closed state for nodes without a
// manual toggle. The zero value, with both counters equal, defaults to
// fully expanded.
type State struct {
	ExpandGeneration   uint64
	CollapseGeneration uint64
	SearchVisible      bool
	SearchTerm         string
}

// ExpandAll records an expand-all gesture.
func (s *State) ExpandAll() {
	s.ExpandGeneration = s.Generation() + 1
}

// CollapseAll records a collapse-all gesture.
func (s *State) CollapseAll() {
	s.CollapseGeneration = s.Generation() + 1
}

// Generation returns the larger of the two counters. Manual toggles are
// stamped with this value and stop applying once it moves on.
func (s *State) Generation() uint64 {
	if s.ExpandGeneration >= s.CollapseGeneration {
		return s.ExpandGeneration
	}
	return s.CollapseGeneration
}

// DefaultOpen reports whether nodes without a manual toggle render open.
func (s *State) DefaultOpen() bool {
	return s.ExpandGeneration >= s.CollapseGeneration
}

// ShowSearch makes the search box visible.
func (s *State) ShowSearch() {
	s.SearchVisible = true
}

// HideSearch hides the search box. The stored term survives so reopening
// the box restores the previous search.
func (s *State) HideSearch() {
	s.SearchVisible = false
}

// SetSearchTerm records the current contents of the search box.
func (s *State) SetSearchTerm(term string) {
	s.SearchTerm = term
}

// Term returns the active search term. A hidden search box matches nothing.
func (s *State) Term() string {
	if !s.SearchVisible {
		return ""
	}
	return s.SearchTerm
}
