package input

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	log "github.com/sirupsen/logrus"
)

// GrabAll installs every grab the window manager needs on root:
//   - every modifier keycode with mod=ANY, so its release is reported
//     regardless of what else is held;
//   - every bound action keycode with ModifierMask, and again with
//     ModifierMask|ShiftMask;
//   - mouse buttons 1, 2, 3 with MouseModifierMask.
func (b *Bindings) GrabAll(conn *xgb.Conn, root xproto.Window) error {
	for kc := range b.ModifierKeycodes {
		if err := grabKey(conn, root, kc, xproto.ModMaskAny); err != nil {
			return err
		}
	}

	// Several table rows (the h/j/k/l move and resize actions) resolve
	// to the same physical keycode with different shift state; grab
	// each distinct keycode once or the second GrabKeyChecked for it
	// fails with BadAccess ("already grabbed").
	for _, keycode := range b.uniqueActionKeycodes() {
		if err := grabKey(conn, root, keycode, b.ModifierMask); err != nil {
			return err
		}
		if err := grabKey(conn, root, keycode, b.ModifierMask|xproto.ModMaskShift); err != nil {
			return err
		}
	}

	for _, button := range []xproto.Button{1, 2, 3} {
		cookie := xproto.GrabButtonChecked(conn, false, root,
			xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			0, 0, button, b.MouseModifierMask)
		if err := cookie.Check(); err != nil {
			return err
		}
	}

	log.Debug("installed keyboard and pointer grabs")
	return nil
}

// UngrabAll releases every keyboard grab on root, used before
// reinstalling them on a mapping-notify.
func (b *Bindings) UngrabAll(conn *xgb.Conn, root xproto.Window) {
	xproto.UngrabKey(conn, xproto.GrabAny, root, xproto.ModMaskAny)
}

func grabKey(conn *xgb.Conn, root xproto.Window, keycode xproto.Keycode, modifiers uint16) error {
	cookie := xproto.GrabKeyChecked(conn, false, root, modifiers, keycode,
		xproto.GrabModeAsync, xproto.GrabModeAsync)
	return cookie.Check()
}
