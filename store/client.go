package store

import (
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/icccm"

	"github.com/kebigon/mcwm/list"

	log "github.com/sirupsen/logrus"
)

// WorkspaceCount is the fixed number of virtual workspaces, indexed
// 0..9.
const WorkspaceCount = 10

// FixedDesktop is the _NET_WM_DESKTOP sentinel meaning "visible on
// every workspace" (a fixed/sticky client).
const FixedDesktop = 0xFFFFFFFF

// NoDesktopHint is an internal sentinel (not written to the wire)
// meaning "the window had no _NET_WM_DESKTOP hint at adoption time".
const NoDesktopHint = 0xFFFFFFFE

// Geometry is a cached rectangle, used only to restore a client after
// un-maximizing; live geometry is always queried from the server.
type Geometry struct {
	X, Y          int16
	Width, Height uint16
}

// SizeHints mirrors the subset of WM_NORMAL_HINTS the policies need.
// WidthInc and HeightInc default to 1 so resize-step arithmetic is
// always defined.
type SizeHints struct {
	MinWidth, MinHeight   uint16
	MaxWidth, MaxHeight   uint16
	BaseWidth, BaseHeight uint16
	WidthInc, HeightInc   uint16
}

// Client is one managed top-level window.
type Client struct {
	Window xproto.Window

	// Geometry is the cached pre-maximize rectangle. It is only
	// meaningful while Maxed or VertMaxed is true.
	Geometry Geometry
	Hints    SizeHints

	UserCoord bool
	VertMaxed bool
	Maxed     bool
	Fixed     bool

	// GlobalNode is this client's handle into the Registry's global
	// list. WorkspaceNodes[w] is this client's handle into
	// workspace w's list, or nil if the client does not currently
	// belong to that workspace.
	GlobalNode     *list.Node
	WorkspaceNodes [WorkspaceCount]*list.Node
}

// NewClient builds a Client for window, reading its WM_NORMAL_HINTS
// reply to populate size hints and the user-coordinate flag. If the
// hints reply fails (the window may have been destroyed between the
// map-request and this read), default hints are used and the error is
// logged at Debug rather than treated as fatal; the caller aborts
// adoption separately if the window is already gone.
func NewClient(xu *xgbutil.XUtil, win xproto.Window) *Client {
	c := &Client{
		Window: win,
		Hints: SizeHints{
			WidthInc:  1,
			HeightInc: 1,
		},
	}

	hints, err := icccm.WmNormalHintsGet(xu, win)
	if err != nil {
		log.WithFields(log.Fields{"window": win, "err": err}).Debug("no WM_NORMAL_HINTS reply, using defaults")
		return c
	}

	if hints.Flags&icccm.SizeHintUSPosition != 0 || hints.Flags&icccm.SizeHintPPosition != 0 {
		c.UserCoord = true
	}
	if hints.Flags&icccm.SizeHintPMinSize != 0 {
		c.Hints.MinWidth = uint16(hints.MinWidth)
		c.Hints.MinHeight = uint16(hints.MinHeight)
	}
	if hints.Flags&icccm.SizeHintPMaxSize != 0 {
		c.Hints.MaxWidth = uint16(hints.MaxWidth)
		c.Hints.MaxHeight = uint16(hints.MaxHeight)
	}
	if hints.Flags&icccm.SizeHintPBaseSize != 0 {
		c.Hints.BaseWidth = uint16(hints.BaseWidth)
		c.Hints.BaseHeight = uint16(hints.BaseHeight)
	}
	if hints.Flags&icccm.SizeHintPResizeInc != 0 {
		if hints.WidthInc > 0 {
			c.Hints.WidthInc = uint16(hints.WidthInc)
		}
		if hints.HeightInc > 0 {
			c.Hints.HeightInc = uint16(hints.HeightInc)
		}
	}

	return c
}

// ResizeStepX returns the step-resize increment in the X axis:
// max(1, width_inc).
func (c *Client) ResizeStepX() uint16 {
	if c.Hints.WidthInc > 1 {
		return c.Hints.WidthInc
	}
	return 1
}

// ResizeStepY returns the step-resize increment in the Y axis.
func (c *Client) ResizeStepY() uint16 {
	if c.Hints.HeightInc > 1 {
		return c.Hints.HeightInc
	}
	return 1
}
