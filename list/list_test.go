package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendOrder(t *testing.T) {
	assert := assert.New(t)
	var l List

	a := l.Append("a")
	b := l.Append("b")
	c := l.Append("c")

	assert.Equal(3, l.Len())
	assert.Equal(a, l.Head())
	assert.Equal(c, l.Tail())

	var seen []any
	l.Each(func(n *Node) { seen = append(seen, n.Value) })
	assert.Equal([]any{"a", "b", "c"}, seen)
}

func TestRemoveIsO1AndDetaches(t *testing.T) {
	assert := assert.New(t)
	var l List

	a := l.Append("a")
	b := l.Append("b")
	c := l.Append("c")

	l.Remove(b)
	assert.Equal(2, l.Len())

	var seen []any
	l.Each(func(n *Node) { seen = append(seen, n.Value) })
	assert.Equal([]any{"a", "c"}, seen)

	// Removing again is a no-op, not a crash.
	l.Remove(b)
	assert.Equal(2, l.Len())
	assert.Equal(a, l.Head())
	assert.Equal(c, l.Tail())
}

func TestRemoveHeadAndTail(t *testing.T) {
	assert := assert.New(t)
	var l List
	a := l.Append("a")
	l.Remove(a)
	assert.Equal(0, l.Len())
	assert.Nil(l.Head())
	assert.Nil(l.Tail())
}

func TestMoveToHead(t *testing.T) {
	assert := assert.New(t)
	var l List
	a := l.Append("a")
	b := l.Append("b")
	c := l.Append("c")

	l.MoveToHead(c)
	assert.Equal(c, l.Head())

	var seen []any
	l.Each(func(n *Node) { seen = append(seen, n.Value) })
	assert.Equal([]any{"c", "a", "b"}, seen)

	// Moving the head to head is a no-op.
	l.MoveToHead(c)
	assert.Equal(c, l.Head())
	assert.Equal(3, l.Len())
}

func TestFind(t *testing.T) {
	assert := assert.New(t)
	var l List
	l.Append(1)
	l.Append(2)
	n := l.Append(3)

	found := l.Find(func(v any) bool { return v.(int) == 3 })
	assert.Equal(n, found)

	notFound := l.Find(func(v any) bool { return v.(int) == 99 })
	assert.Nil(notFound)
}
