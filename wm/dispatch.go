package wm

import (
	"github.com/jezek/xgb/xproto"

	"github.com/kebigon/mcwm/config"
	"github.com/kebigon/mcwm/input"
	"github.com/kebigon/mcwm/store"

	log "github.com/sirupsen/logrus"
)

// Dispatch routes one X event to its handler. Handlers are plain
// functions over Context and a decoded event rather than methods on
// the blocking wait loop, which at least lets their control-flow and
// the policy functions they call be tested independent of the loop
// itself; most still end by issuing a real request over the
// connection, so a full round trip still needs a live display.
func Dispatch(ctx *Context, ev any) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		handleMapRequest(ctx, e)
	case xproto.DestroyNotifyEvent:
		handleDestroyNotify(ctx, e)
	case xproto.UnmapNotifyEvent:
		handleUnmapNotify(ctx, e)
	case xproto.ConfigureRequestEvent:
		handleConfigureRequest(ctx, e)
	case xproto.ConfigureNotifyEvent:
		handleConfigureNotify(ctx, e)
	case xproto.CirculateRequestEvent:
		handleCirculateRequest(ctx, e)
	case xproto.ButtonPressEvent:
		handleButtonPress(ctx, e)
	case xproto.MotionNotifyEvent:
		handleMotionNotify(ctx, e)
	case xproto.ButtonReleaseEvent:
		handleButtonRelease(ctx, e)
	case xproto.KeyPressEvent:
		handleKeyPress(ctx, e)
	case xproto.KeyReleaseEvent:
		handleKeyRelease(ctx, e)
	case xproto.EnterNotifyEvent:
		handleEnterNotify(ctx, e)
	case xproto.MappingNotifyEvent:
		handleMappingNotify(ctx, e)
	default:
		log.WithFields(log.Fields{"type": ev}).Debug("unhandled event kind")
	}
}

func handleMapRequest(ctx *Context, e xproto.MapRequestEvent) {
	c := ctx.Registry.Find(e.Window)
	if c == nil {
		c = ctx.Registry.Adopt(ctx.Root.X, e.Window, ctx.Config.Borders, config.BorderWidth, ctx.Root.Colors.Unfocus)
		if c == nil {
			return
		}

		px, py, havePointer := getPointer(ctx)
		w, h := uint16(100), uint16(100)
		if g := liveGeometry(ctx, c); g != nil {
			w, h = uint16(g.Width()), uint16(g.Height())
		}

		var x, y int16
		if c.UserCoord {
			if g := liveGeometry(ctx, c); g != nil {
				x, y = int16(g.X()), int16(g.Y())
			}
		} else if havePointer {
			x, y = px-int16(w)/2, py-int16(h)/2
		}
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		border := int16(config.BorderWidth)
		if x+int16(w)+2*border > int16(ctx.Root.Geom.Width) {
			x = int16(ctx.Root.Geom.Width) - int16(w) - 2*border
		}
		if y+int16(h)+2*border > int16(ctx.Root.Geom.Height) {
			y = int16(ctx.Root.Geom.Height) - int16(h) - 2*border
		}
		configure(ctx, c.Window, x, y, w, h)

		desktop := store.GetWmDesktop(ctx.Root.X, c.Window)
		switch {
		case desktop == store.FixedDesktop:
			c.Fixed = true
			ctx.Workspaces.Add(ctx.Root.X, c, ctx.Workspaces.Current)
		case desktop < store.WorkspaceCount:
			ctx.Workspaces.Add(ctx.Root.X, c, int(desktop))
			if int(desktop) != ctx.Workspaces.Current {
				xproto.UnmapWindow(ctx.Root.X.Conn(), c.Window)
			}
		default:
			ctx.Workspaces.Add(ctx.Root.X, c, ctx.Workspaces.Current)
		}

		if desktop == store.FixedDesktop || desktop == store.NoDesktopHint || int(desktop) == ctx.Workspaces.Current {
			xproto.MapWindow(ctx.Root.X.Conn(), c.Window)
			warpPointer(ctx, c.Window, int16(w)/2, int16(h)/2)
		}
	}
}

func handleDestroyNotify(ctx *Context, e xproto.DestroyNotifyEvent) {
	c := ctx.Registry.Find(e.Window)
	if c == nil {
		return
	}
	if ctx.Focus == c {
		ctx.Focus = nil
	}
	if ctx.Mode.LastFocus == c {
		ctx.Mode.LastFocus = nil
	}
	ctx.Registry.Forget(ctx.Workspaces, c)
}

func handleUnmapNotify(ctx *Context, e xproto.UnmapNotifyEvent) {
	ws := ctx.Workspaces.List(ctx.Workspaces.Current)
	n := ws.Find(func(v any) bool { return v.(*store.Client).Window == e.Window })
	if n == nil {
		return
	}
	c := n.Value.(*store.Client)
	if ctx.Focus == c {
		ctx.Focus = nil
	}
	if ctx.Mode.LastFocus == c {
		ctx.Mode.LastFocus = nil
	}
	ctx.Registry.Forget(ctx.Workspaces, c)
}

func handleConfigureRequest(ctx *Context, e xproto.ConfigureRequestEvent) {
	var mask uint16
	var values []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		mask |= xproto.ConfigWindowSibling
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, uint32(e.StackMode))
	}
	// Border-width requests are dropped
	if mask != 0 {
		xproto.ConfigureWindow(ctx.Root.X.Conn(), e.Window, mask, values)
	}
}

func handleConfigureNotify(ctx *Context, e xproto.ConfigureNotifyEvent) {
	if e.Window != ctx.Root.Root {
		return
	}
	if ctx.Root.UpdateGeometry(e.Width, e.Height) {
		ScreenFitReflow(ctx)
	}
}

func handleCirculateRequest(ctx *Context, e xproto.CirculateRequestEvent) {
	xproto.CirculateWindow(ctx.Root.X.Conn(), e.Place, e.Window)
}

func handleButtonPress(ctx *Context, e xproto.ButtonPressEvent) {
	if e.Child == 0 {
		return
	}
	c := ctx.Registry.Find(e.Child)
	if c == nil {
		return
	}

	switch e.Detail {
	case 2:
		RaiseOrLower(ctx, c)
		return
	case 1:
		g := liveGeometry(ctx, c)
		if g == nil {
			return
		}
		ctx.Mode = Mode{Kind: Move, Client: c, GrabX: e.RootX, GrabY: e.RootY}
		warpPointer(ctx, c.Window, 1, 1)
	case 3:
		g := liveGeometry(ctx, c)
		if g == nil {
			return
		}
		ctx.Mode = Mode{Kind: Resize, Client: c, GrabX: e.RootX, GrabY: e.RootY}
		warpPointer(ctx, c.Window, int16(g.Width()), int16(g.Height()))
	default:
		return
	}

	xproto.GrabPointer(ctx.Root.X.Conn(), false, ctx.Root.Root,
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0, xproto.TimeCurrentTime)
}

func handleMotionNotify(ctx *Context, e xproto.MotionNotifyEvent) {
	if ctx.Focus == nil || ctx.Focus.Maxed {
		return
	}
	switch ctx.Mode.Kind {
	case Move:
		MouseMove(ctx, ctx.Mode.Client, e.RootX, e.RootY)
	case Resize:
		MouseResize(ctx, ctx.Mode.Client, e.RootX, e.RootY)
	}
}

func handleButtonRelease(ctx *Context, e xproto.ButtonReleaseEvent) {
	if ctx.Mode.Kind != Move && ctx.Mode.Kind != Resize {
		return
	}
	c := ctx.Mode.Client
	if c != nil {
		g := liveGeometry(ctx, c)
		if g != nil {
			x, y := ctx.Mode.GrabX-int16(g.X()), ctx.Mode.GrabY-int16(g.Y())
			if x < 0 || x >= int16(g.Width()) {
				x = int16(g.Width()) / 2
			}
			if y < 0 || y >= int16(g.Height()) {
				y = int16(g.Height()) / 2
			}
			warpPointer(ctx, c.Window, x, y)
		}
	}
	xproto.UngrabPointer(ctx.Root.X.Conn(), xproto.TimeCurrentTime)
	ctx.Mode.Reset()
}

func handleKeyPress(ctx *Context, e xproto.KeyPressEvent) {
	shifted := e.State&xproto.ModMaskShift != 0
	action := ctx.Bindings.Lookup(e.Detail, shifted)

	if action == input.ActionNone {
		if ctx.Focus != nil {
			forwardKeyPress(ctx, e)
		}
		return
	}

	if ctx.Mode.Kind == Tabbing && action != input.ActionTabNext {
		FinishTabbing(ctx)
	}

	dispatchAction(ctx, action)
}

func forwardKeyPress(ctx *Context, e xproto.KeyPressEvent) {
	xproto.SendEvent(ctx.Root.X.Conn(), false, ctx.Focus.Window, xproto.EventMaskKeyPress, string(e.Bytes()))
}

func handleKeyRelease(ctx *Context, e xproto.KeyReleaseEvent) {
	if ctx.Mode.Kind != Tabbing {
		return
	}
	if ctx.Bindings.IsModifierKeycode(e.Detail) {
		FinishTabbing(ctx)
	}
}

// enterNotifyOwnerSwitch reports whether an EnterNotify's mode field
// marks a genuine pointer move between windows (Normal) or a grab
// release landing the pointer on a new window (Ungrab) — as opposed
// to the Grab/WhileGrabbed modes generated by this WM's own button
// and key grabs, which must not drive focus-follows-mouse.
func enterNotifyOwnerSwitch(mode byte) bool {
	return mode == xproto.NotifyModeNormal || mode == xproto.NotifyModeUngrab
}

func handleEnterNotify(ctx *Context, e xproto.EnterNotifyEvent) {
	if !enterNotifyOwnerSwitch(e.Mode) {
		return
	}
	c := ctx.Registry.Find(e.Event)
	if c == nil || c == ctx.Focus {
		return
	}
	if ctx.Mode.Kind != Tabbing {
		ws := ctx.Workspaces.List(ctx.Workspaces.Current)
		if ctx.Focus != nil {
			if n := ctx.Focus.WorkspaceNodes[ctx.Workspaces.Current]; n != nil {
				ws.MoveToHead(n)
			}
		}
		if n := c.WorkspaceNodes[ctx.Workspaces.Current]; n != nil {
			ws.MoveToHead(n)
		}
	}
	SetFocus(ctx, c)
}

func handleMappingNotify(ctx *Context, e xproto.MappingNotifyEvent) {
	if e.Request != xproto.MappingKeyboard && e.Request != xproto.MappingModifier {
		return
	}
	ctx.Bindings.UngrabAll(ctx.Root.X.Conn(), ctx.Root.Root)
	if err := ctx.Bindings.LoadMapping(ctx.Root.X.Conn()); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("failed to reload key mapping")
		return
	}
	if err := ctx.Bindings.GrabAll(ctx.Root.X.Conn(), ctx.Root.Root); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("failed to regrab keys after mapping change")
	}
}
