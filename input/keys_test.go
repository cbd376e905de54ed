package input

import (
	"testing"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func newTestBindings() *Bindings {
	b := NewBindings(1<<6, 1<<6)
	// Fake a tiny keyboard mapping: keycode 38 -> 'h', keycode 36 ->
	// Return, one keysym per keycode.
	b.minKeycode = 8
	b.maxKeycode = 40
	b.keysymsPerKeycode = 1
	b.keysyms = make([]xproto.Keysym, int(b.maxKeycode-b.minKeycode+1))
	b.keysyms[38-8] = keysymH
	b.keysyms[36-8] = keysymReturn
	for _, bnd := range b.table {
		bnd.keycode = b.keycodeForKeysym(bnd.keysym)
	}
	return b
}

func TestKeycodeForKeysymResolvesBindings(t *testing.T) {
	assert := assert.New(t)
	b := newTestBindings()

	assert.Equal(xproto.Keycode(38), b.keycodeForKeysym(keysymH))
	assert.Equal(xproto.Keycode(36), b.keycodeForKeysym(keysymReturn))
	assert.Equal(xproto.Keycode(0), b.keycodeForKeysym(0x1234))
}

func TestLookupDistinguishesShift(t *testing.T) {
	assert := assert.New(t)
	b := newTestBindings()

	assert.Equal(ActionMoveLeft, b.Lookup(38, false))
	assert.Equal(ActionResizeLeft, b.Lookup(38, true))
	assert.Equal(ActionSpawnTerminal, b.Lookup(36, false))
	assert.Equal(ActionNone, b.Lookup(99, false))
}

func TestModifierBitIndex(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, modifierBitIndex(1<<0))
	assert.Equal(6, modifierBitIndex(1<<6))
	assert.Equal(-1, modifierBitIndex(3))
}

func TestUniqueActionKeycodesDedupesSharedKeycode(t *testing.T) {
	assert := assert.New(t)
	b := newTestBindings()

	kcs := b.uniqueActionKeycodes()

	count := 0
	for _, kc := range kcs {
		if kc == 38 {
			count++
		}
	}
	assert.Equal(1, count, "keycode 38 backs both ActionMoveLeft and ActionResizeLeft and must appear once")
	assert.Contains(kcs, xproto.Keycode(36))
	assert.NotContains(kcs, xproto.Keycode(0))
}

func TestIsModifierKeycode(t *testing.T) {
	assert := assert.New(t)
	b := newTestBindings()
	b.ModifierKeycodes[133] = true

	assert.True(b.IsModifierKeycode(133))
	assert.False(b.IsModifierKeycode(38))
}
