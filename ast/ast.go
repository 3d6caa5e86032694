package ast

// Node is implemented by every element of the parsed forest.
type Node interface {
	// Children returns the node's selection set, nil for leaves.
	Children() []Node
}

// Document represents one parse of a captured operation document. It holds
// the ordered top-level definitions (operations and fragments) and is
// rebuilt from scratch on every new input text.
type Document struct {
	Definitions []Node
}

// Operation represents a query, mutation, or subscription. An anonymous
// top-level brace block parses to an Operation with Keyword "query" and no
// name.
type Operation struct {
	Keyword    string               // "query", "mutation", or "subscription"
	Name       string               // Optional operation name
	Variables  []VariableDefinition // nil when the operation declares none
	Selections []Node
}

// Children returns the operation's selection set.
func (o *Operation) Children() []Node { return o.Selections }

// VariableDefinition declares one operation variable.
type VariableDefinition struct {
	Name    string // Variable name (without $)
	Type    string // Raw type expression, e.g. "[ID!]!"
	Default string // Optional default-value literal
}

// Field represents a single field selection. Absent argument and directive
// lists are nil, so consumers can distinguish "no arguments" from arguments.
type Field struct {
	Alias      string // Optional alias (the "alias:" prefix)
	Name       string
	Arguments  []Argument
	Directives []Directive
	Selections []Node
}

// Children returns the field's nested selections.
func (f *Field) Children() []Node { return f.Selections }

// Argument is one name/value pair. The value is an opaque span of source
// tokens rejoined into display text, never a structured value.
type Argument struct {
	Name  string
	Value string
}

// Directive represents an @directive attached to a field.
type Directive struct {
	Name      string
	Arguments []Argument
}

// Fragment is either a named fragment definition (TypeCondition set,
// selections parsed) or a spread inside a selection set (name only).
type Fragment struct {
	Name          string
	TypeCondition string // Type named after "on"; empty for spreads
	Selections    []Node
}

// Children returns the fragment body, nil for spreads.
func (f *Fragment) Children() []Node { return f.Selections }

// InlineFragment represents "... on Type { ... }" inside a selection set.
type InlineFragment struct {
	TypeCondition string
	Selections    []Node
}

// Children returns the inline fragment's selections.
func (f *InlineFragment) Children() []Node { return f.Selections }
