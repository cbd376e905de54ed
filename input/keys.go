// Package input computes the keycodes that generate the configured
// modifier mask, installs the keyboard and pointer grabs on the root,
// and interprets keypresses into symbolic actions. Grab mechanics are
// built directly on xproto's raw requests rather than a convenience
// keybinding package.
package input

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"
)

// Action is a symbolic command a keypress can drive.
type Action int

const (
	ActionNone Action = iota
	ActionSpawnTerminal
	ActionFix
	ActionMoveLeft
	ActionMoveDown
	ActionMoveUp
	ActionMoveRight
	ActionResizeLeft
	ActionResizeDown
	ActionResizeUp
	ActionResizeRight
	ActionTabNext
	ActionMaxVert
	ActionRaiseOrLower
	ActionMaximize
	ActionWorkspace0
	ActionWorkspace1
	ActionWorkspace2
	ActionWorkspace3
	ActionWorkspace4
	ActionWorkspace5
	ActionWorkspace6
	ActionWorkspace7
	ActionWorkspace8
	ActionWorkspace9
	ActionTopLeft
	ActionTopRight
	ActionBotLeft
	ActionBotRight
	ActionDeleteWindow
)

// binding is one entry of the key binding table: a symbolic action,
// the keysym that triggers it, whether it requires Shift in addition
// to the modifier mask, and the keycode currently resolved for that
// keysym (recomputed on every mapping-notify).
type binding struct {
	action  Action
	keysym  xproto.Keysym
	shifted bool
	keycode xproto.Keycode
}

// Common X keysym values used by the binding table (from
// <X11/keysymdef.h>). Only the keys mcwm binds are listed.
const (
	keysymReturn = 0xff0d
	keysymTab    = 0xff09
	keysymEnd    = 0xff57
	keysymH      = 0x068
	keysymJ      = 0x06a
	keysymK      = 0x06b
	keysymL      = 0x06c
	keysymM      = 0x06d
	keysymR      = 0x072
	keysymX      = 0x078
	keysymF      = 0x066
	keysymY      = 0x079
	keysymU      = 0x075
	keysymB      = 0x062
	keysymN      = 0x06e
	keysym0      = 0x030
	keysym1      = 0x031
	keysym2      = 0x032
	keysym3      = 0x033
	keysym4      = 0x034
	keysym5      = 0x035
	keysym6      = 0x036
	keysym7      = 0x037
	keysym8      = 0x038
	keysym9      = 0x039
)

// Bindings holds the resolved modifier-keycode set and the key binding
// table, and the raw keyboard mapping reply needed to resolve keysyms
// to keycodes.
type Bindings struct {
	ModifierMask      uint16
	MouseModifierMask uint16

	// ModifierKeycodes is the set of physical keycodes that
	// generate ModifierMask.
	ModifierKeycodes map[xproto.Keycode]bool

	table []*binding

	minKeycode, maxKeycode xproto.Keycode
	keysymsPerKeycode      byte
	keysyms                []xproto.Keysym
}

// NewBindings returns a Bindings with the default table of symbolic
// actions, unresolved until LoadMapping is called.
func NewBindings(modMask, mouseModMask uint16) *Bindings {
	return &Bindings{
		ModifierMask:      modMask,
		MouseModifierMask: mouseModMask,
		ModifierKeycodes:  map[xproto.Keycode]bool{},
		table: []*binding{
			{action: ActionSpawnTerminal, keysym: keysymReturn},
			{action: ActionFix, keysym: keysymF},
			{action: ActionMoveLeft, keysym: keysymH},
			{action: ActionMoveDown, keysym: keysymJ},
			{action: ActionMoveUp, keysym: keysymK},
			{action: ActionMoveRight, keysym: keysymL},
			{action: ActionResizeLeft, keysym: keysymH, shifted: true},
			{action: ActionResizeDown, keysym: keysymJ, shifted: true},
			{action: ActionResizeUp, keysym: keysymK, shifted: true},
			{action: ActionResizeRight, keysym: keysymL, shifted: true},
			{action: ActionTabNext, keysym: keysymTab},
			{action: ActionMaxVert, keysym: keysymM},
			{action: ActionRaiseOrLower, keysym: keysymR},
			{action: ActionMaximize, keysym: keysymX},
			{action: ActionWorkspace0, keysym: keysym0},
			{action: ActionWorkspace1, keysym: keysym1},
			{action: ActionWorkspace2, keysym: keysym2},
			{action: ActionWorkspace3, keysym: keysym3},
			{action: ActionWorkspace4, keysym: keysym4},
			{action: ActionWorkspace5, keysym: keysym5},
			{action: ActionWorkspace6, keysym: keysym6},
			{action: ActionWorkspace7, keysym: keysym7},
			{action: ActionWorkspace8, keysym: keysym8},
			{action: ActionWorkspace9, keysym: keysym9},
			{action: ActionTopLeft, keysym: keysymY},
			{action: ActionTopRight, keysym: keysymU},
			{action: ActionBotLeft, keysym: keysymB},
			{action: ActionBotRight, keysym: keysymN},
			{action: ActionDeleteWindow, keysym: keysymEnd},
		},
	}
}

// LoadMapping fetches the modifier mapping and the full keyboard
// mapping, then resolves ModifierKeycodes and every binding's keycode.
// This must be called once at startup and again on every
// mapping-notify naming the keyboard or modifier mapping.
func (b *Bindings) LoadMapping(conn *xgb.Conn) error {
	modReply, err := xproto.GetModifierMapping(conn).Reply()
	if err != nil {
		return fmt.Errorf("get modifier mapping: %w", err)
	}

	setup := xproto.Setup(conn)
	b.minKeycode = setup.MinKeycode
	b.maxKeycode = setup.MaxKeycode
	count := byte(b.maxKeycode - b.minKeycode + 1)

	kbReply, err := xproto.GetKeyboardMapping(conn, b.minKeycode, count).Reply()
	if err != nil {
		return fmt.Errorf("get keyboard mapping: %w", err)
	}
	b.keysymsPerKeycode = kbReply.KeysymsPerKeycode
	b.keysyms = kbReply.Keysyms

	b.ModifierKeycodes = map[xproto.Keycode]bool{}
	perMod := int(modReply.KeycodesPerModifier)
	modBit := modifierBitIndex(b.ModifierMask)
	if modBit >= 0 {
		for i := 0; i < perMod; i++ {
			kc := modReply.Keycodes[modBit*perMod+i]
			if kc != 0 {
				b.ModifierKeycodes[kc] = true
			}
		}
	}
	if len(b.ModifierKeycodes) == 0 {
		return fmt.Errorf("no keycodes found for configured modifier mask")
	}

	for _, bnd := range b.table {
		bnd.keycode = b.keycodeForKeysym(bnd.keysym)
	}

	log.WithFields(log.Fields{
		"modifier_keycodes": len(b.ModifierKeycodes),
		"bindings":          len(b.table),
	}).Debug("resolved key mapping")
	return nil
}

// modifierBitIndex returns the GetModifierMapping row index (0..7,
// Shift/Lock/Control/Mod1../Mod5) for a single-bit modifier mask, or
// -1 if mask isn't a single recognized modifier bit.
func modifierBitIndex(mask uint16) int {
	for i := 0; i < 8; i++ {
		if mask == 1<<uint(i) {
			return i
		}
	}
	return -1
}

func (b *Bindings) keycodeForKeysym(sym xproto.Keysym) xproto.Keycode {
	if b.keysymsPerKeycode == 0 {
		return 0
	}
	for kc := b.minKeycode; kc <= b.maxKeycode; kc++ {
		idx := int(kc-b.minKeycode) * int(b.keysymsPerKeycode)
		if idx >= len(b.keysyms) {
			continue
		}
		if b.keysyms[idx] == sym {
			return kc
		}
	}
	return 0
}

// uniqueActionKeycodes returns every distinct non-zero keycode bound
// to some action, in table order. h/j/k/l each appear twice in the
// table (once for the move action, once for the shifted resize
// action) but resolve to the same physical keycode, so callers that
// grab or ungrab by keycode must dedupe first.
func (b *Bindings) uniqueActionKeycodes() []xproto.Keycode {
	seen := make(map[xproto.Keycode]bool, len(b.table))
	var out []xproto.Keycode
	for _, bnd := range b.table {
		if bnd.keycode == 0 || seen[bnd.keycode] {
			continue
		}
		seen[bnd.keycode] = true
		out = append(out, bnd.keycode)
	}
	return out
}

// Lookup scans the binding table for a keycode/shifted match.
func (b *Bindings) Lookup(keycode xproto.Keycode, shifted bool) Action {
	for _, bnd := range b.table {
		if bnd.keycode == keycode && bnd.shifted == shifted {
			return bnd.action
		}
	}
	return ActionNone
}

// IsModifierKeycode reports whether keycode is one of the physical
// keys that generates ModifierMask.
func (b *Bindings) IsModifierKeycode(keycode xproto.Keycode) bool {
	return b.ModifierKeycodes[keycode]
}
