package wm

import (
	"testing"

	"github.com/kebigon/mcwm/input"
	"github.com/stretchr/testify/assert"
)

func TestWorkspaceForMapsNumericActions(t *testing.T) {
	assert := assert.New(t)

	ws, ok := workspaceFor(input.ActionWorkspace0)
	assert.True(ok)
	assert.Equal(0, ws)

	ws, ok = workspaceFor(input.ActionWorkspace9)
	assert.True(ok)
	assert.Equal(9, ws)

	_, ok = workspaceFor(input.ActionFix)
	assert.False(ok)
}

func TestModeReset(t *testing.T) {
	assert := assert.New(t)
	m := Mode{Kind: Tabbing, LastFocus: nil}
	m.Reset()

	assert.Equal(Idle, m.Kind)
	assert.Nil(m.Client)
	assert.Nil(m.LastFocus)
}

func TestModeStringer(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("idle", Idle.String())
	assert.Equal("move", Move.String())
	assert.Equal("resize", Resize.String())
	assert.Equal("tabbing", Tabbing.String())
}
