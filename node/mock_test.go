package node

// mockTree returns a fresh tree for every call so tests may mutate it. The
// identifiers spell out the position of each node, except for the duplicated
// "dup" nodes:
//
//	doc
//	|-- intro
//	|-- body
//	|   |-- body/a
//	|   |   |-- dup        (content "deep")
//	|   |-- body/b
//	|-- dup                (content "shallow")
//	|-- outro
func mockTree() *Node[string] {
	root := NewWithValue("doc", "Document")
	root.Append("intro", "Intro")
	body := root.Append("body", "Body")
	body.Append("body/a", "A").Append("dup", "deep")
	body.Append("body/b", "B")
	root.Append("dup", "shallow")
	root.Append("outro", "Outro")
	return root
}

// chain returns a degenerate tree of the given depth where every node has a
// single child. The deepest node is called "leaf".
func chain(depth int) *Node[int] {
	root := New[int]("root")
	current := root
	for i := 1; i < depth; i++ {
		current = current.Append("link", i)
	}
	current.Append("leaf", depth)
	return root
}
