package wm

import (
	"github.com/jezek/xgb/xproto"

	"github.com/kebigon/mcwm/list"
	"github.com/kebigon/mcwm/store"

	log "github.com/sirupsen/logrus"
)

// SetFocus moves input focus to target:
//   - a nil target clears focus and reverts server input focus to
//     pointer-root;
//   - a target equal to the current focus, or the root window, is a
//     no-op;
//   - otherwise the target's border is repainted focus/fixed-colored,
//     the previous focus's border is repainted unfocused, and server
//     input focus moves to the target.
func SetFocus(ctx *Context, target *store.Client) {
	if target == nil {
		ctx.Focus = nil
		xproto.SetInputFocus(ctx.Root.X.Conn(), xproto.InputFocusPointerRoot, xproto.InputFocusPointerRoot, xproto.TimeCurrentTime)
		return
	}
	if target == ctx.Focus || target.Window == ctx.Root.Root {
		return
	}

	paintBorder(ctx, target.Window, ctx.borderPixelFor(target))
	if ctx.Focus != nil {
		paintBorder(ctx, ctx.Focus.Window, ctx.Root.Colors.Unfocus)
	}

	xproto.SetInputFocus(ctx.Root.X.Conn(), xproto.InputFocusPointerRoot, target.Window, xproto.TimeCurrentTime)
	ctx.Focus = target
	log.WithFields(log.Fields{"window": target.Window}).Debug("focus set")
}

// Unfocus repaints win with the unfocused color. A no-op when borders
// are disabled or win is the root.
func Unfocus(ctx *Context, win xproto.Window) {
	if !ctx.Config.Borders || win == ctx.Root.Root {
		return
	}
	paintBorder(ctx, win, ctx.Root.Colors.Unfocus)
}

// FocusNext cycles focus to the next client on the current workspace.
// On the first call it saves the prior focus and enters Tabbing. Each
// call advances to the next node on the workspace list, wrapping at
// the tail; the target is conditionally raised with StackModeTopIf,
// which the server resolves without the client needing its own
// occlusion/stacking-order query, then the pointer is warped to its
// top-left corner and focus is set.
func FocusNext(ctx *Context) {
	ws := ctx.Workspaces.List(ctx.Workspaces.Current)
	if ws.Len() == 0 {
		return
	}

	if ctx.Mode.Kind != Tabbing {
		ctx.Mode.Kind = Tabbing
		ctx.Mode.LastFocus = ctx.Focus
	}

	var cur *list.Node
	if ctx.Focus != nil {
		cur = ctx.Focus.WorkspaceNodes[ctx.Workspaces.Current]
	}
	nextNode := tabCycleNext(ws, cur)
	if nextNode == nil {
		return
	}

	next := nextNode.Value.(*store.Client)
	stackWindow(ctx, next.Window, xproto.StackModeTopIf)
	warpPointer(ctx, next.Window, 0, 0)
	SetFocus(ctx, next)
}

// tabCycleNext picks the node Tab should move focus to: the node
// after cur, wrapping to the workspace's head past the tail, or the
// head itself when there is no current node (cur is nil, or the
// current focus does not belong to ws).
func tabCycleNext(ws *list.List, cur *list.Node) *list.Node {
	if cur == nil {
		return ws.Head()
	}
	if n := cur.Next(); n != nil {
		return n
	}
	return ws.Head()
}

// FinishTabbing ends the Tab cycle on modifier-release: the prior
// focus's node, then the current focus's node, are moved to the head
// of the current workspace list.
func FinishTabbing(ctx *Context) {
	if ctx.Mode.Kind != Tabbing {
		return
	}
	ws := ctx.Workspaces.List(ctx.Workspaces.Current)

	if ctx.Mode.LastFocus != nil {
		if n := ctx.Mode.LastFocus.WorkspaceNodes[ctx.Workspaces.Current]; n != nil {
			ws.MoveToHead(n)
		}
	}
	if ctx.Focus != nil {
		if n := ctx.Focus.WorkspaceNodes[ctx.Workspaces.Current]; n != nil {
			ws.MoveToHead(n)
		}
	}

	ctx.Mode.Reset()
}
