package node

// locationKind tells how a located node relates to the node the search
// started from.
type locationKind int

const (
	// notFound means no node in the subtree carries the identifier.
	notFound locationKind = iota
	// selfMatch means the identifier is the one of the search subject itself.
	// Such a match has no sibling position.
	selfMatch
	// childMatch means the identifier belongs to parent.Children[index].
	childMatch
)

func (k locationKind) String() string {
	switch k {
	case selfMatch:
		return "self"
	case childMatch:
		return "child"
	default:
		return "not found"
	}
}

// location is the result of locating an identifier for a splice.
type location[T any] struct {
	kind locationKind
	// For selfMatch this is the subject; for childMatch the matched node's
	// parent.
	parent *Node[T]
	// Position within parent.Children. Only meaningful for childMatch.
	index int
}

// node returns the located node, or nil when nothing was found.
func (l location[T]) node() *Node[T] {
	switch l.kind {
	case selfMatch:
		return l.parent
	case childMatch:
		return l.parent.Children[l.index]
	default:
		return nil
	}
}

// Local returns the first direct child of n whose identifier is id. It never
// descends below the direct children.
func (n *Node[T]) Local(id string) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	for _, child := range n.Children {
		if child.Identifier == id {
			return child, true
		}
	}
	return nil, false
}

// Get returns the first node with identifier id in a pre-order walk of the
// subtree rooted at n, n included.
func (n *Node[T]) Get(id string) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}

	stack := []*Node[T]{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.Identifier == id {
			return current, true
		}
		for i := len(current.Children) - 1; i >= 0; i-- {
			stack = append(stack, current.Children[i])
		}
	}
	return nil, false
}

// locate finds id for a splice. The subject n matches itself first. Then every
// node, in pre-order, checks its direct children before any deeper node is
// examined, so a match below the subject is always reported together with its
// real parent and index. Among duplicates, a direct child of the node being
// scanned wins over a deeper one.
func (n *Node[T]) locate(id string) location[T] {
	if n == nil {
		return location[T]{}
	}
	if n.Identifier == id {
		return location[T]{kind: selfMatch, parent: n}
	}

	stack := []*Node[T]{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i, child := range current.Children {
			if child.Identifier == id {
				return location[T]{kind: childMatch, parent: current, index: i}
			}
		}
		for i := len(current.Children) - 1; i >= 0; i-- {
			stack = append(stack, current.Children[i])
		}
	}
	return location[T]{}
}
