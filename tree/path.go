package tree

import (
	"strconv"
	"strings"
)

// Path identifies a node by its child indices from the forest root. It is
// stable across re-derivations of the same parse, which makes it usable as
// a key for per-node view state independent of node identity.
type Path []int

// Child returns the path of the i-th child. The result shares no storage
// with the receiver.
func (p Path) Child(i int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = i
	return child
}

// String renders the path as dot-separated indices, e.g. "0.2.1".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}
