package store

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"

	"github.com/kebigon/mcwm/list"

	log "github.com/sirupsen/logrus"
)

// Registry is the set of all managed top-level windows. Lookup is a
// linear scan of the global list rather than a map, since node
// identity in that list matters on its own (focus cycling, raise
// order) and a separate index would just duplicate it.
type Registry struct {
	Global list.List
}

// NewRegistry returns an empty client registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Find returns the client for window, or nil if it is not managed.
func (r *Registry) Find(window xproto.Window) *Client {
	n := r.Global.Find(func(v any) bool { return v.(*Client).Window == window })
	if n == nil {
		return nil
	}
	return n.Value.(*Client)
}

// Adopt creates a Client for window, gives it a one-pixel border in
// the unfocused color (unless borders are disabled), subscribes to
// enter-window events, reads its size hints, and appends it to the
// global list. It returns nil if the window was destroyed between the
// map/adopt request and here, logged at Debug rather than treated as
// an error.
func (r *Registry) Adopt(xu *xgbutil.XUtil, window xproto.Window, borders bool, borderWidth uint32, unfocusPixel uint32) *Client {
	attrCookie := xproto.GetWindowAttributes(xu.Conn(), window)
	if _, err := attrCookie.Reply(); err != nil {
		log.WithFields(log.Fields{"window": window, "err": err}).Debug("window vanished before adopt")
		return nil
	}

	c := NewClient(xu, window)

	var mask uint16 = xproto.EventMaskEnterWindow
	xproto.ChangeWindowAttributes(xu.Conn(), window, xproto.CwEventMask, []uint32{uint32(mask)})

	if borders {
		xproto.ConfigureWindow(xu.Conn(), window, xproto.ConfigWindowBorderWidth, []uint32{borderWidth})
		xproto.ChangeWindowAttributes(xu.Conn(), window, xproto.CwBorderPixel, []uint32{unfocusPixel})
	}

	c.GlobalNode = r.Global.Append(c)
	log.WithFields(log.Fields{"window": window}).Debug("adopted client")
	return c
}

// Forget removes client from the global list and from every workspace
// list it currently belongs to. Callers must clear any stashed focus
// reference (focus, last_focus) before calling Forget.
func (r *Registry) Forget(ws *Workspaces, c *Client) {
	r.Global.Remove(c.GlobalNode)
	c.GlobalNode = nil
	for w := 0; w < WorkspaceCount; w++ {
		if c.WorkspaceNodes[w] != nil {
			ws.Remove(c, w)
		}
	}
	log.WithFields(log.Fields{"window": c.Window}).Debug("forgot client")
}
