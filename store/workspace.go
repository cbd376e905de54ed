package store

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xprop"

	"github.com/kebigon/mcwm/list"

	log "github.com/sirupsen/logrus"
)

// Workspaces is the fixed array of ten per-workspace ordered client
// lists plus the index of the one currently visible.
type Workspaces struct {
	lists   [WorkspaceCount]list.List
	Current int
}

// NewWorkspaces returns a Workspaces with workspace 0 current.
func NewWorkspaces() *Workspaces {
	return &Workspaces{Current: 0}
}

// List returns the ordered client list for workspace ws. The head is
// the most recently focused client on that workspace.
func (w *Workspaces) List(ws int) *list.List {
	return &w.lists[ws]
}

// Add appends client to workspaces[ws], stashes the node handle on the
// client, and — unless the client is fixed — writes the
// _NET_WM_DESKTOP property to ws.
func (w *Workspaces) Add(xu *xgbutil.XUtil, c *Client, ws int) {
	n := w.lists[ws].Append(c)
	c.WorkspaceNodes[ws] = n
	if !c.Fixed {
		setWmDesktop(xu, c.Window, uint32(ws))
	}
}

// Remove detaches client from workspaces[ws] in O(1) via its stashed
// node handle and clears the handle.
func (w *Workspaces) Remove(c *Client, ws int) {
	w.lists[ws].Remove(c.WorkspaceNodes[ws])
	c.WorkspaceNodes[ws] = nil
}

// ChangeTo switches the current workspace to ws. It
// is a no-op if ws already equals Current. clearFocus is invoked if
// the currently focused client is non-fixed, so the caller can drop
// its own focus reference before this function unmaps that client.
func (w *Workspaces) ChangeTo(xu *xgbutil.XUtil, ws int, focus *Client, clearFocus func()) {
	if ws == w.Current {
		return
	}

	if focus != nil && !focus.Fixed {
		clearFocus()
	}

	old := &w.lists[w.Current]
	// Walk a snapshot of the old list: fixed clients are migrated
	// (added to the new list, then removed from the old one) while
	// we are iterating, so collect nodes first to avoid mutating the
	// list out from under the walk.
	var toMigrate, toUnmap []*Client
	old.Each(func(n *list.Node) {
		c := n.Value.(*Client)
		if c.Fixed {
			toMigrate = append(toMigrate, c)
		} else {
			toUnmap = append(toUnmap, c)
		}
	})

	for _, c := range toMigrate {
		w.Add(xu, c, ws)
		w.Remove(c, w.Current)
	}
	for _, c := range toUnmap {
		if err := xproto.UnmapWindowChecked(xu.Conn(), c.Window).Check(); err != nil {
			log.WithFields(log.Fields{"window": c.Window, "err": err}).Debug("unmap on workspace switch failed")
		}
	}

	w.lists[ws].Each(func(n *list.Node) {
		c := n.Value.(*Client)
		if !c.Fixed {
			if err := xproto.MapWindowChecked(xu.Conn(), c.Window).Check(); err != nil {
				log.WithFields(log.Fields{"window": c.Window, "err": err}).Debug("map on workspace switch failed")
			}
		}
	})

	log.WithFields(log.Fields{"from": w.Current, "to": ws}).Info("workspace switch")
	w.Current = ws
}

// Fix toggles a client's fixed (sticky) attribute, flipping the
// _NET_WM_DESKTOP hint between Current and FixedDesktop. When becoming
// fixed, the window is raised first so it is not occluded on a later
// workspace switch.
func Fix(xu *xgbutil.XUtil, ws *Workspaces, c *Client) {
	if !c.Fixed {
		raise(xu, c.Window)
		c.Fixed = true
		setWmDesktop(xu, c.Window, FixedDesktop)
	} else {
		c.Fixed = false
		setWmDesktop(xu, c.Window, uint32(ws.Current))
	}
}

func raise(xu *xgbutil.XUtil, win xproto.Window) {
	values := []uint32{xproto.StackModeAbove}
	xproto.ConfigureWindow(xu.Conn(), win, xproto.ConfigWindowStackMode, values)
}

func setWmDesktop(xu *xgbutil.XUtil, win xproto.Window, desktop uint32) {
	if err := xprop.ChangeProp32(xu, win, "_NET_WM_DESKTOP", "CARDINAL", uint(desktop)); err != nil {
		log.WithFields(log.Fields{"window": win, "err": err}).Warn("failed to set _NET_WM_DESKTOP")
	}
}

// GetWmDesktop reads the _NET_WM_DESKTOP hint for win. It returns
// NoDesktopHint if the property is absent or the reply is too short
// to hold a CARDINAL.
func GetWmDesktop(xu *xgbutil.XUtil, win xproto.Window) uint32 {
	reply, err := xprop.GetProperty(xu, win, "_NET_WM_DESKTOP")
	if err != nil || reply == nil || len(reply.Value) < 4 {
		return NoDesktopHint
	}
	v := reply.Value
	return uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24
}
