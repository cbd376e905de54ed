package wm

import (
	"os/exec"
	"syscall"

	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil/icccm"

	"github.com/kebigon/mcwm/input"
	"github.com/kebigon/mcwm/store"

	log "github.com/sirupsen/logrus"
)

// dispatchAction runs the symbolic action resolved by the key binding
// table against the current keypress.
func dispatchAction(ctx *Context, action input.Action) {
	if ws, ok := workspaceFor(action); ok {
		ChangeWorkspace(ctx, ws)
		return
	}

	switch action {
	case input.ActionSpawnTerminal:
		SpawnTerminal(ctx.Config.Terminal)
	case input.ActionTabNext:
		FocusNext(ctx)
	case input.ActionDeleteWindow:
		if ctx.Focus != nil {
			DeleteWindow(ctx, ctx.Focus)
		}
	}

	if ctx.Focus == nil {
		return
	}
	switch action {
	case input.ActionFix:
		store.Fix(ctx.Root.X, ctx.Workspaces, ctx.Focus)
	case input.ActionMoveLeft:
		StepMove(ctx, ctx.Focus, DirLeft)
	case input.ActionMoveDown:
		StepMove(ctx, ctx.Focus, DirDown)
	case input.ActionMoveUp:
		StepMove(ctx, ctx.Focus, DirUp)
	case input.ActionMoveRight:
		StepMove(ctx, ctx.Focus, DirRight)
	case input.ActionResizeLeft:
		StepResize(ctx, ctx.Focus, DirLeft)
	case input.ActionResizeDown:
		StepResize(ctx, ctx.Focus, DirDown)
	case input.ActionResizeUp:
		StepResize(ctx, ctx.Focus, DirUp)
	case input.ActionResizeRight:
		StepResize(ctx, ctx.Focus, DirRight)
	case input.ActionMaxVert:
		MaxVert(ctx, ctx.Focus)
	case input.ActionRaiseOrLower:
		RaiseOrLower(ctx, ctx.Focus)
	case input.ActionMaximize:
		Maximize(ctx, ctx.Focus)
	case input.ActionTopLeft:
		PlaceCorner(ctx, ctx.Focus, CornerTopLeft)
	case input.ActionTopRight:
		PlaceCorner(ctx, ctx.Focus, CornerTopRight)
	case input.ActionBotLeft:
		PlaceCorner(ctx, ctx.Focus, CornerBotLeft)
	case input.ActionBotRight:
		PlaceCorner(ctx, ctx.Focus, CornerBotRight)
	}
}

func workspaceFor(action input.Action) (int, bool) {
	switch action {
	case input.ActionWorkspace0:
		return 0, true
	case input.ActionWorkspace1:
		return 1, true
	case input.ActionWorkspace2:
		return 2, true
	case input.ActionWorkspace3:
		return 3, true
	case input.ActionWorkspace4:
		return 4, true
	case input.ActionWorkspace5:
		return 5, true
	case input.ActionWorkspace6:
		return 6, true
	case input.ActionWorkspace7:
		return 7, true
	case input.ActionWorkspace8:
		return 8, true
	case input.ActionWorkspace9:
		return 9, true
	}
	return 0, false
}

// ChangeWorkspace switches to ws, clearing focus first if it's
// non-fixed.
func ChangeWorkspace(ctx *Context, ws int) {
	ctx.Workspaces.ChangeTo(ctx.Root.X, ws, ctx.Focus, func() { ctx.Focus = nil })
}

// DeleteWindow closes c: if it advertises WM_DELETE_WINDOW in
// WM_PROTOCOLS, a client message is sent; otherwise the connection is
// forcibly killed.
func DeleteWindow(ctx *Context, c *store.Client) {
	protocols, err := icccm.WmProtocolsGet(ctx.Root.X, c.Window)
	useDelete := false
	if err == nil {
		for _, p := range protocols {
			if p == "WM_DELETE_WINDOW" {
				useDelete = true
			}
		}
	}

	if useDelete {
		ev := xproto.ClientMessageEvent{
			Format: 32,
			Window: c.Window,
			Type:   ctx.Root.Atoms.WmProtocols,
			Data: xproto.ClientMessageDataUnion{
				Data32: [5]uint32{uint32(ctx.Root.Atoms.WmDeleteWindow), uint32(xproto.TimeCurrentTime)},
			},
		}
		xproto.SendEvent(ctx.Root.X.Conn(), false, c.Window, 0, string(ev.Bytes()))
	} else {
		xproto.KillClient(ctx.Root.X.Conn(), uint32(c.Window))
	}
}

// SpawnTerminal starts the configured terminal command detached from
// the window manager: the child becomes its own session leader
// (Setsid) so it outlives the WM cleanly, and is released immediately
// so the WM never waits on or reaps it.
func SpawnTerminal(terminal string) {
	cmd := exec.Command(terminal)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		log.WithFields(log.Fields{"terminal": terminal, "err": err}).Warn("failed to spawn terminal")
		return
	}
	if err := cmd.Process.Release(); err != nil {
		log.WithFields(log.Fields{"err": err}).Debug("failed to release terminal process")
	}
}
