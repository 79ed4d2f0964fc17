package node

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n := New[string]("hello")
	assert.Equal(t, "hello", n.Identifier)
	assert.Equal(t, "", n.Content)
	assert.Empty(t, n.Children)

	type payload struct {
		Count int
		Tags  []string
	}
	p := New[payload]("p")
	assert.Equal(t, payload{}, p.Content)
}

func TestNewWithValue(t *testing.T) {
	n := NewWithValue("hello", "Hello!")
	assert.Equal(t, "hello", n.Identifier)
	assert.Equal(t, "Hello!", n.Content)
	assert.Zero(t, n.Len())
}

func TestConvert(t *testing.T) {
	n := Convert("answer", 42, strconv.Itoa)
	assert.Equal(t, "42", n.Content)

	upper := Convert("shout", "hey", func(s string) []byte { return []byte(strings.ToUpper(s)) })
	assert.Equal(t, []byte("HEY"), upper.Content)
}

func TestAppendPrepend(t *testing.T) {
	root := New[string]("root")

	root.Append("hello1", "Hello").Content += " world!"
	root.Prepend("aaa", "aaa").Content += " AAA"
	root.Append("zzz", "zzz")

	assert.Equal(t, []string{"aaa", "hello1", "zzz"}, root.Identifiers())
	assert.Equal(t, "aaa AAA", root.Children[0].Content)
	assert.Equal(t, "Hello world!", root.Children[1].Content)
}

func TestAppendChaining(t *testing.T) {
	root := New[string]("root")
	root.Append("a", "").Append("b", "").Append("c", "leaf")

	c, ok := root.Get("c")
	require.True(t, ok)
	assert.Equal(t, "leaf", c.Content)
	assert.Equal(t, 4, root.Count())
}

func TestContentMutation(t *testing.T) {
	root := mockTree()

	intro, ok := root.Local("intro")
	require.True(t, ok)
	intro.Content += " ***"
	*intro.Value() += "!"

	again, _ := root.Local("intro")
	assert.Equal(t, "Intro ***!", again.Content)
}

func TestChild(t *testing.T) {
	root := mockTree()

	c, ok := root.Child(1)
	require.True(t, ok)
	assert.Equal(t, "body", c.Identifier)

	for _, i := range []int{-1, 4, 100} {
		_, ok := root.Child(i)
		assert.False(t, ok, "Child(%d)", i)
	}

	var nilNode *Node[string]
	_, ok = nilNode.Child(0)
	assert.False(t, ok)
	assert.Zero(t, nilNode.Len())
}

func TestWalk(t *testing.T) {
	root := mockTree()

	var visited []string
	root.Walk(func(depth int, n *Node[string]) bool {
		visited = append(visited, strings.Repeat(".", depth)+n.Identifier)
		return true
	})
	assert.Equal(t, []string{
		"doc",
		".intro",
		".body",
		"..body/a",
		"...dup",
		"..body/b",
		".dup",
		".outro",
	}, visited)
}

func TestWalkSkipChildren(t *testing.T) {
	root := mockTree()

	var visited []string
	root.Walk(func(_ int, n *Node[string]) bool {
		visited = append(visited, n.Identifier)
		return n.Identifier != "body"
	})
	assert.Equal(t, []string{"doc", "intro", "body", "dup", "outro"}, visited)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 8, mockTree().Count())
	assert.Equal(t, 1, New[int]("alone").Count())
	assert.Equal(t, 1001, chain(1000).Count())
}
