package wm

import (
	"github.com/jezek/xgb/xproto"

	"github.com/kebigon/mcwm/config"
	"github.com/kebigon/mcwm/store"
)

// Direction is a step-move/step-resize direction, bound to vi-style
// h/j/k/l keys.
type Direction int

const (
	DirLeft Direction = iota
	DirDown
	DirUp
	DirRight
)

// StepMove translates a client by config.MoveStep pixels in
// direction, clamped to the root rectangle including borders. If the
// pointer was inside the window before the move, it is warped to the
// same relative position afterwards. A no-op on a fully maximized
// client: its geometry is pinned to the root rectangle.
func StepMove(ctx *Context, c *store.Client, dir Direction) {
	if c.Maxed {
		return
	}
	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	x, y := int16(g.X()), int16(g.Y())
	w, h := uint16(g.Width()), uint16(g.Height())
	border := int16(config.BorderWidth)

	px, py, haveP := getPointer(ctx)
	insideBefore := haveP && px >= x && px < x+int16(w)+2*border && py >= y && py < y+int16(h)+2*border
	relX, relY := px-x, py-y

	step := int16(config.MoveStep)
	switch dir {
	case DirLeft:
		x -= step
		if x < 0 {
			x = 0
		}
	case DirRight:
		x += step
		if x+int16(w)+2*border > int16(ctx.Root.Geom.Width) {
			x = int16(ctx.Root.Geom.Width) - int16(w) - 2*border
		}
	case DirUp:
		y -= step
		if y < 0 {
			y = 0
		}
	case DirDown:
		y += step
		if y+int16(h)+2*border > int16(ctx.Root.Geom.Height) {
			y = int16(ctx.Root.Geom.Height) - int16(h) - 2*border
		}
	}

	raiseWindow(ctx, c.Window)
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{uint32(x), uint32(y)})

	if insideBefore {
		warpPointer(ctx, c.Window, relX, relY)
	}
}

// StepResize grows or shrinks a client by max(1, width_inc) or
// max(1, height_inc) pixels in direction. Width
// only shrinks if the step is less than the current width (ditto for
// height); the result is then clamped below by min_width/min_height.
// If the pointer was inside the original window and would now fall
// outside, it is warped to the window center, coerced to (1,1) rather
// than (0,0) to keep the warp idempotent. A no-op on a fully maximized
// client.
func StepResize(ctx *Context, c *store.Client, dir Direction) {
	if c.Maxed {
		return
	}
	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	x, y := int16(g.X()), int16(g.Y())
	w, h := uint16(g.Width()), uint16(g.Height())

	px, py, haveP := getPointer(ctx)
	insideBefore := haveP && px >= x && px < x+int16(w) && py >= y && py < y+int16(h)
	relX, relY := px-x, py-y

	stepX, stepY := c.ResizeStepX(), c.ResizeStepY()

	switch dir {
	case DirLeft:
		if stepX < w {
			w -= stepX
		}
	case DirRight:
		w += stepX
	case DirUp:
		if stepY < h {
			h -= stepY
		}
	case DirDown:
		h += stepY
	}

	if w < c.Hints.MinWidth {
		w = c.Hints.MinWidth
	}
	if h < c.Hints.MinHeight {
		h = c.Hints.MinHeight
	}

	mask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{uint32(w), uint32(h)})
	c.VertMaxed = false

	if insideBefore {
		wouldFallOutside := relX > int16(w)-int16(stepX) || relY > int16(h)-int16(stepY)
		if wouldFallOutside {
			cx, cy := int16(w)/2, int16(h)/2
			if cx < 1 {
				cx = 1
			}
			if cy < 1 {
				cy = 1
			}
			warpPointer(ctx, c.Window, cx, cy)
		}
	}
}

// MouseMove drives Move mode on each motion-notify: the root-relative
// pointer position is clamped to [0, root-window-2*border] in both
// axes and the window is configured to that origin.
func MouseMove(ctx *Context, c *store.Client, rootX, rootY int16) {
	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	w, h := uint16(g.Width()), uint16(g.Height())
	border := int16(config.BorderWidth)

	maxX := int16(ctx.Root.Geom.Width) - int16(w) - 2*border
	maxY := int16(ctx.Root.Geom.Height) - int16(h) - 2*border

	x, y := rootX, rootY
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}
	if y < 0 {
		y = 0
	}
	if y > maxY {
		y = maxY
	}

	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{uint32(x), uint32(y)})
}

// MouseResize drives Resize mode on each motion-notify: the new
// dimensions are the absolute pointer-to-window-origin distance,
// snapped down to the size-hint grid, clamped below by
// min_width/min_height and above so the window still fits on screen.
func MouseResize(ctx *Context, c *store.Client, rootX, rootY int16) {
	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	x, y := int16(g.X()), int16(g.Y())

	w := absDiff(rootX, x)
	h := absDiff(rootY, y)

	w = snapDown(w, c.Hints.BaseWidth, c.Hints.WidthInc)
	h = snapDown(h, c.Hints.BaseHeight, c.Hints.HeightInc)

	if w < c.Hints.MinWidth {
		w = c.Hints.MinWidth
	}
	if h < c.Hints.MinHeight {
		h = c.Hints.MinHeight
	}

	border := uint16(config.BorderWidth)
	if x >= 0 && uint16(x)+w+2*border > ctx.Root.Geom.Width {
		w = ctx.Root.Geom.Width - uint16(x) - 2*border
	}
	if y >= 0 && uint16(y)+h+2*border > ctx.Root.Geom.Height {
		h = ctx.Root.Geom.Height - uint16(y) - 2*border
	}

	mask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{uint32(w), uint32(h)})
	c.VertMaxed = false
}

func absDiff(a, b int16) uint16 {
	if a > b {
		return uint16(a - b)
	}
	return uint16(b - a)
}

// Corner is one of the four screen corners bound to Y/U/B/N.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBotLeft
	CornerBotRight
)

// PlaceCorner raises the client, queries its live size, and moves its
// origin to the requested corner (accounting for the border), then
// re-applies the pointer's position relative to the window at its new
// location.
func PlaceCorner(ctx *Context, c *store.Client, corner Corner) {
	g := liveGeometry(ctx, c)
	if g == nil {
		return
	}
	w, h := uint16(g.Width()), uint16(g.Height())
	border := uint16(config.BorderWidth)

	px, py, haveP := getPointer(ctx)
	relX, relY := px-int16(g.X()), py-int16(g.Y())

	raiseWindow(ctx, c.Window)

	var x, y int16
	switch corner {
	case CornerTopLeft:
		x, y = 0, 0
	case CornerTopRight:
		x, y = int16(ctx.Root.Geom.Width-(w+2*border)), 0
	case CornerBotLeft:
		x, y = 0, int16(ctx.Root.Geom.Height-(h+2*border))
	case CornerBotRight:
		x, y = int16(ctx.Root.Geom.Width-(w+2*border)), int16(ctx.Root.Geom.Height-(h+2*border))
	}

	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	xproto.ConfigureWindow(ctx.Root.X.Conn(), c.Window, mask, []uint32{uint32(x), uint32(y)})

	if haveP {
		warpPointer(ctx, c.Window, relX, relY)
	}
}
