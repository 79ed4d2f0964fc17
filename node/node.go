package node

import (
	"github.com/montaguethomas/reportree/log"
)

// Node is an element of the tree. Children are ordered and owned by their
// parent; Content is the payload and may be mutated in place.
type Node[T any] struct {
	// label of the node, not necessarily unique
	Identifier string `json:"identifier" yaml:"identifier"`
	// ordered child nodes
	Children []*Node[T] `json:"children,omitempty" yaml:"children,omitempty"`
	// payload of the node
	Content T `json:"content" yaml:"content"`
}

// New returns a node without children whose content is the zero value of T.
func New[T any](id string) *Node[T] {
	return &Node[T]{Identifier: id}
}

// NewWithValue returns a node without children holding value.
func NewWithValue[T any](id string, value T) *Node[T] {
	return &Node[T]{
		Identifier: id,
		Content:    value,
	}
}

// Convert returns a node holding conv(value). It lets callers build nodes
// from values of a different type than the tree's payload.
func Convert[T, V any](id string, value V, conv func(V) T) *Node[T] {
	return NewWithValue(id, conv(value))
}

// Value returns a pointer to the node's content.
func (n *Node[T]) Value() *T {
	return &n.Content
}

// Len returns the number of direct children.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the direct child at position i.
func (n *Node[T]) Child(i int) (*Node[T], bool) {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil, false
	}
	return n.Children[i], true
}

// Identifiers returns the identifiers of the direct children, in order.
func (n *Node[T]) Identifiers() []string {
	ids := make([]string, 0, n.Len())
	for _, child := range n.Children {
		ids = append(ids, child.Identifier)
	}
	return ids
}

// Count returns the number of nodes in the subtree, n included.
func (n *Node[T]) Count() int {
	count := 0
	n.Walk(func(int, *Node[T]) bool {
		count++
		return true
	})
	return count
}

// Walk visits the subtree in pre-order: a node, then each child's subtree
// before the next sibling. depth is 0 for n. When visit returns false the
// children of the visited node are skipped.
func (n *Node[T]) Walk(visit func(depth int, n *Node[T]) bool) {
	if n == nil {
		return
	}

	type frame struct {
		node  *Node[T]
		depth int
	}

	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(top.depth, top.node) {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Children[i], top.depth + 1})
		}
	}
}

// Append adds a new child at the end of n's children and returns it.
func (n *Node[T]) Append(id string, value T) *Node[T] {
	return n.insertChild(len(n.Children), NewWithValue(id, value))
}

// Prepend adds a new child in front of n's children and returns it.
func (n *Node[T]) Prepend(id string, value T) *Node[T] {
	return n.insertChild(0, NewWithValue(id, value))
}

// insertChild places child at position i, shifting the node at i and its
// following siblings to the right.
func (n *Node[T]) insertChild(i int, child *Node[T]) *Node[T] {
	log.Debugf("adding %q under %q at %d", child.Identifier, n.Identifier, i)
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
	return child
}

// setChild overwrites the child at position i, dropping the previous subtree.
func (n *Node[T]) setChild(i int, child *Node[T]) *Node[T] {
	log.Debugf("replacing %q under %q with %q", n.Children[i].Identifier, n.Identifier, child.Identifier)
	n.Children[i] = child
	return child
}
