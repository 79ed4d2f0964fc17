package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montaguethomas/reportree/constants"
)

func TestSpliceScenario(t *testing.T) {
	root := New[string]("doc")

	a := root.Append("a", "A")
	assert.Equal(t, []string{"a"}, root.Identifiers())

	b, err := root.Before("a", "b", "B")
	require.NoError(t, err)
	assert.Equal(t, "B", b.Content)
	assert.Equal(t, []string{"b", "a"}, root.Identifiers())

	_, err = root.After("a", "c", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, root.Identifiers())

	cc, err := root.Replace("c", "cc", "CC")
	require.NoError(t, err)
	assert.Equal(t, "CC", cc.Content)
	assert.Equal(t, []string{"b", "a", "cc"}, root.Identifiers())

	a.Append("d", "D")
	_, ok := root.Local("d")
	assert.False(t, ok)
	d, ok := root.Get("d")
	require.True(t, ok)
	assert.Equal(t, "D", d.Content)
}

func TestBeforeAfterSiblings(t *testing.T) {
	tests := []struct {
		op    string
		place string
		want  []string
	}{
		{"before", "intro", []string{"new", "intro", "body", "dup", "outro"}},
		{"after", "intro", []string{"intro", "new", "body", "dup", "outro"}},
		{"before", "dup", []string{"intro", "body", "new", "dup", "outro"}},
		{"after", "dup", []string{"intro", "body", "dup", "new", "outro"}},
		{"before", "outro", []string{"intro", "body", "dup", "new", "outro"}},
		{"after", "outro", []string{"intro", "body", "dup", "outro", "new"}},
	}

	for _, test := range tests {
		root := mockTree()
		var (
			n   *Node[string]
			err error
		)
		switch test.op {
		case "before":
			n, err = root.Before(test.place, "new", "New")
		case "after":
			n, err = root.After(test.place, "new", "New")
		}
		require.NoError(t, err, "%s(%q)", test.op, test.place)
		assert.Equal(t, "New", n.Content)
		assert.Equal(t, test.want, root.Identifiers(), "%s(%q)", test.op, test.place)
	}
}

func TestBeforeAfterNested(t *testing.T) {
	root := mockTree()

	_, err := root.Before("body/b", "x", "X")
	require.NoError(t, err)
	_, err = root.After("body/a", "y", "Y")
	require.NoError(t, err)

	body, _ := root.Local("body")
	assert.Equal(t, []string{"body/a", "y", "x", "body/b"}, body.Identifiers())
	assert.Equal(t, []string{"intro", "body", "dup", "outro"}, root.Identifiers())
}

func TestBeforeAfterSelf(t *testing.T) {
	root := mockTree()

	first, err := root.Before("doc", "first", "First")
	require.NoError(t, err)
	last, err := root.After("doc", "last", "Last")
	require.NoError(t, err)

	assert.Same(t, first, root.Children[0])
	assert.Same(t, last, root.Children[root.Len()-1])
	assert.Equal(t, []string{"first", "intro", "body", "dup", "outro", "last"}, root.Identifiers())

	// the subject is whatever node the call is made on
	body, _ := root.Local("body")
	_, err = body.After("body", "body/z", "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"body/a", "body/b", "body/z"}, body.Identifiers())
}

func TestSpliceDuplicateUsesDirectChild(t *testing.T) {
	root := mockTree()

	_, err := root.After("dup", "new", "New")
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "body", "dup", "new", "outro"}, root.Identifiers())

	bodyA, _ := root.Get("body/a")
	assert.Equal(t, []string{"dup"}, bodyA.Identifiers())
}

func TestReplace(t *testing.T) {
	root := mockTree()

	n, err := root.Replace("body", "chapter", "Chapter")
	require.NoError(t, err)
	assert.Equal(t, "Chapter", n.Content)
	assert.Empty(t, n.Children)
	assert.Equal(t, []string{"intro", "chapter", "dup", "outro"}, root.Identifiers())

	// the old subtree is gone
	for _, id := range []string{"body", "body/a", "body/b"} {
		_, ok := root.Get(id)
		assert.False(t, ok, "Get(%q)", id)
	}
	got, _ := root.Get("dup")
	assert.Equal(t, "shallow", got.Content)
}

func TestReplaceSelf(t *testing.T) {
	root := mockTree()
	before := mockTree()

	n, err := root.Replace("doc", "other", "Other")
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, constants.ErrReplaceSelf))
	assert.Empty(t, cmp.Diff(before, root))

	// a nested node can be replaced from above, but not from itself
	body, _ := root.Local("body")
	_, err = body.Replace("body", "other", "Other")
	assert.ErrorIs(t, err, constants.ErrReplaceSelf)
	_, err = root.Replace("body", "other", "Other")
	assert.NoError(t, err)
}

func TestSpliceNotFound(t *testing.T) {
	ops := map[string]func(*Node[string]) (*Node[string], error){
		"after": func(n *Node[string]) (*Node[string], error) {
			return n.After("missing", "new", "New")
		},
		"before": func(n *Node[string]) (*Node[string], error) {
			return n.Before("missing", "new", "New")
		},
		"replace": func(n *Node[string]) (*Node[string], error) {
			return n.Replace("missing", "new", "New")
		},
	}

	for name, op := range ops {
		root := mockTree()
		n, err := op(root)
		assert.Nil(t, n, name)
		assert.ErrorIs(t, err, constants.ErrNodeNotFound, name)
		if diff := cmp.Diff(mockTree(), root); diff != "" {
			t.Errorf("%s mutated the tree (-want +got):\n%s", name, diff)
		}
	}
}

func TestSpliceDeepTree(t *testing.T) {
	const depth = 100000
	root := chain(depth)

	n, err := root.Before("leaf", "sibling", -1)
	require.NoError(t, err)
	assert.Equal(t, -1, n.Content)

	parent := root
	for parent.Len() == 1 {
		parent = parent.Children[0]
	}
	assert.Equal(t, []string{"sibling", "leaf"}, parent.Identifiers())
}
