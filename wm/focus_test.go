package wm

import (
	"testing"

	"github.com/kebigon/mcwm/list"
	"github.com/stretchr/testify/assert"
)

func TestTabCycleNextStartsAtHeadWithNoCurrent(t *testing.T) {
	assert := assert.New(t)
	var ws list.List
	a := ws.Append("a")
	ws.Append("b")

	assert.Same(a, tabCycleNext(&ws, nil))
}

func TestTabCycleNextAdvancesToNextNode(t *testing.T) {
	assert := assert.New(t)
	var ws list.List
	ws.Append("a")
	b := ws.Append("b")
	ws.Append("c")

	first := ws.Head()
	assert.Same(b, tabCycleNext(&ws, first))
}

func TestTabCycleNextWrapsAtTail(t *testing.T) {
	assert := assert.New(t)
	var ws list.List
	a := ws.Append("a")
	ws.Append("b")
	tail := ws.Append("c")

	assert.Same(a, tabCycleNext(&ws, tail))
}

func TestTabCycleNextOnSingleElementListStaysPut(t *testing.T) {
	assert := assert.New(t)
	var ws list.List
	only := ws.Append("solo")

	assert.Same(only, tabCycleNext(&ws, only))
}
