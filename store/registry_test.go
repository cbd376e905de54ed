package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// adopted builds a Client wired into a Registry and a set of
// workspaces the way Adopt/Add would, without touching the X
// connection either call needs.
func adopted(r *Registry, ws *Workspaces, workspaces ...int) *Client {
	c := &Client{Hints: SizeHints{WidthInc: 1, HeightInc: 1}}
	c.GlobalNode = r.Global.Append(c)
	for _, w := range workspaces {
		c.WorkspaceNodes[w] = ws.lists[w].Append(c)
	}
	return c
}

func TestForgetRemovesFromGlobalAndEveryWorkspace(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	ws := NewWorkspaces()

	c := adopted(r, ws, 0, 3, 7)
	other := adopted(r, ws, 0)

	r.Forget(ws, c)

	assert.Equal(1, r.Global.Len())
	assert.Nil(c.GlobalNode)
	for _, w := range []int{0, 3, 7} {
		assert.Nil(c.WorkspaceNodes[w])
	}
	// workspaces 3 and 7 held only c, so they are now empty.
	assert.Equal(0, ws.List(3).Len())
	assert.Equal(0, ws.List(7).Len())
	// the other client, still on workspace 0, must survive untouched.
	assert.Equal(1, ws.List(0).Len())
	assert.Same(other, ws.List(0).Head().Value.(*Client))
}

func TestForgetIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	ws := NewWorkspaces()

	c := adopted(r, ws, 0)

	assert.NotPanics(func() {
		r.Forget(ws, c)
		r.Forget(ws, c)
	})
	assert.Equal(0, r.Global.Len())
	assert.Equal(0, ws.List(0).Len())
}

func TestFindLocatesByWindow(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	ws := NewWorkspaces()

	c := adopted(r, ws, 0)
	c.Window = 42

	assert.Same(c, r.Find(42))
	assert.Nil(r.Find(99))
}
