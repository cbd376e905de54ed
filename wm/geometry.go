package wm

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/xwindow"

	"github.com/kebigon/mcwm/config"
	"github.com/kebigon/mcwm/list"
	"github.com/kebigon/mcwm/store"

	log "github.com/sirupsen/logrus"
)

// liveGeometry queries the server for a client's current rectangle.
// A nil return means the window vanished mid-request; callers abort
// the step silently.
func liveGeometry(ctx *Context, c *store.Client) *xwindow.Geometry {
	g, err := xwindow.New(ctx.Root.X, c.Window).Geometry()
	if err != nil {
		log.WithFields(log.Fields{"window": c.Window, "err": err}).Debug("stale window during geometry read")
		return nil
	}
	return g
}

func configure(ctx *Context, win xproto.Window, x, y int16, w, h uint16) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(x), uint32(y), uint32(w), uint32(h)}
	xproto.ConfigureWindow(ctx.Root.X.Conn(), win, mask, values)
}

func setBorderWidth(ctx *Context, win xproto.Window, width uint32) {
	xproto.ConfigureWindow(ctx.Root.X.Conn(), win, xproto.ConfigWindowBorderWidth, []uint32{width})
}

func warpPointer(ctx *Context, win xproto.Window, x, y int16) {
	xproto.WarpPointer(ctx.Root.X.Conn(), xproto.WindowNone, win, 0, 0, 0, 0, x, y)
}

func getPointer(ctx *Context) (int16, int16, bool) {
	reply, err := xproto.QueryPointer(ctx.Root.X.Conn(), ctx.Root.Root).Reply()
	if err != nil {
		return 0, 0, false
	}
	return reply.RootX, reply.RootY, true
}

// Maximize toggles full-screen maximization. On the toggle-off path
// the cached rectangle and the default border width are restored. On
// the toggle-on path the live geometry is cached, the window is
// raised, borders are removed, and it is configured to cover the whole
// root; the pointer is warped to (1,1) inside it so the next
// enter-notify keeps focus there.
func Maximize(ctx *Context, c *store.Client) {
	if c.Maxed {
		unmaximize(ctx, c)
		return
	}

	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	c.Geometry = store.Geometry{X: int16(g.X()), Y: int16(g.Y()), Width: uint16(g.Width()), Height: uint16(g.Height())}

	raiseWindow(ctx, c.Window)
	setBorderWidth(ctx, c.Window, 0)
	configure(ctx, c.Window, 0, 0, ctx.Root.Geom.Width, ctx.Root.Geom.Height)
	c.Maxed = true
	c.VertMaxed = false

	warpPointer(ctx, c.Window, 1, 1)
}

// unmaximize restores a maxed client's cached rectangle and the
// configured default border width. This is the symmetric
// (maxed-was-true) restore path; MaxVert's toggle-off path is
// deliberately asymmetric instead — see its comment.
func unmaximize(ctx *Context, c *store.Client) {
	setBorderWidth(ctx, c.Window, config.BorderWidth)
	configure(ctx, c.Window, c.Geometry.X, c.Geometry.Y, c.Geometry.Width, c.Geometry.Height)
	c.Maxed = false
}

// MaxVert toggles vertical maximization: height becomes
// root_height - 2*border, snapped down to the height increment; x and
// width are left untouched. The toggle-off path restores only y and
// height from the cache, mirroring the window's asymmetric behavior
// on the way in rather than forcing a symmetric four-field restore.
func MaxVert(ctx *Context, c *store.Client) {
	if c.VertMaxed {
		mask := uint16(xproto.ConfigWindowY | xproto.ConfigWindowHeight)
		xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{uint32(c.Geometry.Y), uint32(c.Geometry.Height)})
		c.VertMaxed = false
		return
	}

	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	c.Geometry = store.Geometry{X: int16(g.X()), Y: int16(g.Y()), Width: uint16(g.Width()), Height: uint16(g.Height())}

	raiseWindow(ctx, c.Window)

	height := snapDown(ctx.Root.Geom.Height-2*uint16(config.BorderWidth), c.Hints.BaseHeight, c.Hints.HeightInc)

	mask := uint16(xproto.ConfigWindowY | xproto.ConfigWindowHeight)
	xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{0, uint32(height)})
	c.VertMaxed = true
}

// ScreenFitReflow re-clamps every managed client's live geometry to
// the new root size on a root configure-notify. It clears Maxed and
// VertMaxed on every client: their dimensions were tied to the old
// root size, and the cached pre-max rectangle is left untouched (only
// the live rectangle is fixed up here).
func ScreenFitReflow(ctx *Context) {
	ctx.Registry.Global.Each(func(n *list.Node) {
		c := n.Value.(*store.Client)
		g := liveGeometry(ctx, c)
		if g == nil {
			return
		}
		x, y, w, h := int16(g.X()), int16(g.Y()), uint16(g.Width()), uint16(g.Height())
		border := uint16(config.BorderWidth)

		nx, ny, nw, nh, changed := clampToRoot(x, y, w, h, ctx.Root.Geom.Width, ctx.Root.Geom.Height, border)
		if changed {
			configure(ctx, c.Window, nx, ny, nw, nh)
		}
		if c.Maxed || c.VertMaxed {
			setBorderWidth(ctx, c.Window, config.BorderWidth)
		}
		c.Maxed = false
		c.VertMaxed = false
	})
}

// clampToRoot shrinks and repositions a client rectangle so it fits
// within a rootWidth x rootHeight root window, leaving room for a
// border pixels wide on every side. It reports whether the rectangle
// actually changed.
func clampToRoot(x, y int16, w, h, rootWidth, rootHeight, border uint16) (nx, ny int16, nw, nh uint16, changed bool) {
	nx, ny, nw, nh = x, y, w, h

	maxW := rootWidth - 2*border
	maxH := rootHeight - 2*border
	if nw > maxW {
		nw = maxW
	}
	if nh > maxH {
		nh = maxH
	}
	if nx+int16(nw)+int16(2*border) > int16(rootWidth) {
		nx = int16(rootWidth) - int16(nw) - int16(2*border)
	}
	if ny+int16(nh)+int16(2*border) > int16(rootHeight) {
		ny = int16(rootHeight) - int16(nh) - int16(2*border)
	}
	if nx < 0 {
		nx = 0
	}
	if ny < 0 {
		ny = 0
	}

	changed = nx != x || ny != y || nw != w || nh != h
	return
}

func stackWindow(ctx *Context, win xproto.Window, mode uint32) {
	xproto.ConfigureWindow(ctx.Root.X.Conn(), win, xproto.ConfigWindowStackMode, []uint32{mode})
}

// snapDown rounds value down to the nearest base+k*inc grid line, the
// same grid WM_NORMAL_HINTS' base/resize-increment pair defines. A
// zero inc leaves value unchanged.
func snapDown(value, base, inc uint16) uint16 {
	if inc == 0 {
		return value
	}
	return value - (value-base)%inc
}

func raiseWindow(ctx *Context, win xproto.Window) {
	stackWindow(ctx, win, xproto.StackModeAbove)
}

// RaiseOrLower toggles a client between the top and bottom of the
// stack via StackModeOpposite, which the server resolves against the
// window's current stacking position with no client-side query.
func RaiseOrLower(ctx *Context, c *store.Client) {
	stackWindow(ctx, c.Window, xproto.StackModeOpposite)
}
