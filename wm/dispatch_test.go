package wm

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestEnterNotifyOwnerSwitchAcceptsNormalAndUngrab(t *testing.T) {
	assert := assert.New(t)
	assert.True(enterNotifyOwnerSwitch(xproto.NotifyModeNormal))
	assert.True(enterNotifyOwnerSwitch(xproto.NotifyModeUngrab))
}

func TestEnterNotifyOwnerSwitchRejectsGrabModes(t *testing.T) {
	assert := assert.New(t)
	assert.False(enterNotifyOwnerSwitch(xproto.NotifyModeGrab))
	assert.False(enterNotifyOwnerSwitch(xproto.NotifyModeWhileGrabbed))
}
