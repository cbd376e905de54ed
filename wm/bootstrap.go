package wm

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/jezek/xgb/xproto"

	"github.com/kebigon/mcwm/config"
	"github.com/kebigon/mcwm/input"
	"github.com/kebigon/mcwm/list"
	"github.com/kebigon/mcwm/store"

	log "github.com/sirupsen/logrus"
)

// Bootstrap runs startup: resolve colors, intern atoms, load the
// keyboard mapping, adopt pre-existing top-level windows (reading
// their _NET_WM_DESKTOP hints), grab keyboard/pointer bindings, take
// substructure-redirect on the root, and set the initial focus. Any
// failure here is fatal; the caller logs and exits 1.
func Bootstrap(root *store.Root, cfg *config.Config) (*Context, error) {
	if err := root.ResolveColors(cfg.FocusColor, cfg.UnfocusColor, cfg.FixedColor); err != nil {
		return nil, err
	}
	if err := root.InternAtoms(); err != nil {
		return nil, err
	}

	bindings := input.NewBindings(config.ModifierMask, config.MouseModifierMask)
	if err := bindings.LoadMapping(root.X.Conn()); err != nil {
		return nil, fmt.Errorf("load keyboard mapping: %w", err)
	}

	ctx := NewContext(root, cfg, bindings)

	adoptExistingWindows(ctx)

	if err := bindings.GrabAll(root.X.Conn(), root.Root); err != nil {
		return nil, fmt.Errorf("grab keys and buttons: %w", err)
	}

	if err := root.TakeSubstructureRedirect(); err != nil {
		return nil, err
	}

	ChangeWorkspace(ctx, 0)
	initialFocus(ctx)

	return ctx, nil
}

// adoptExistingWindows walks the root's existing children at startup
// and adopts each visible, non-override-redirect one.
func adoptExistingWindows(ctx *Context) {
	tree, err := xproto.QueryTree(ctx.Root.X.Conn(), ctx.Root.Root).Reply()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("query_tree failed during startup adopt")
		return
	}

	for _, win := range tree.Children {
		attr, err := xproto.GetWindowAttributes(ctx.Root.X.Conn(), win).Reply()
		if err != nil {
			continue
		}
		if attr.OverrideRedirect || attr.MapState != xproto.MapStateViewable {
			continue
		}

		c := ctx.Registry.Adopt(ctx.Root.X, win, ctx.Config.Borders, config.BorderWidth, ctx.Root.Colors.Unfocus)
		if c == nil {
			continue
		}

		desktop := store.GetWmDesktop(ctx.Root.X, win)
		switch {
		case desktop == store.FixedDesktop:
			c.Fixed = true
			ctx.Workspaces.Add(ctx.Root.X, c, ctx.Workspaces.Current)
		case desktop < store.WorkspaceCount:
			ctx.Workspaces.Add(ctx.Root.X, c, int(desktop))
			if int(desktop) != ctx.Workspaces.Current {
				xproto.UnmapWindow(ctx.Root.X.Conn(), win)
			}
		default:
			ctx.Workspaces.Add(ctx.Root.X, c, ctx.Workspaces.Current)
		}
	}
}

// initialFocus sets focus to whatever window the pointer started on.
// QueryPointer's child may be the root itself, in which case Find
// returns nil and SetFocus(nil) is a safe no-op.
func initialFocus(ctx *Context) {
	reply, err := xproto.QueryPointer(ctx.Root.X.Conn(), ctx.Root.Root).Reply()
	if err != nil {
		SetFocus(ctx, nil)
		return
	}
	SetFocus(ctx, ctx.Registry.Find(reply.Child))
}

// Run drives the event loop until a signal is caught. It forwards
// XUtil.WaitForEvent results over a channel, selected alongside an
// os/signal channel, so a signal arriving mid-wait breaks the loop for
// teardown without needing to interrupt the blocking read itself.
func Run(ctx *Context) int {
	type eventOrErr struct {
		ev  xgbEvent
		err error
	}
	events := make(chan eventOrErr, 16)
	go func() {
		for {
			ev, err := ctx.Root.X.Conn().WaitForEvent()
			events <- eventOrErr{ev: ev, err: err}
			if err != nil {
				return
			}
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGSEGV)

	for {
		select {
		case e := <-events:
			if e.err != nil {
				log.WithFields(log.Fields{"err": e.err}).Debug("protocol error on async path")
				continue
			}
			if e.ev == nil {
				continue
			}
			Dispatch(ctx, e.ev)

		case sig := <-sigs:
			switch sig {
			case syscall.SIGSEGV:
				ctx.Sigcode = int(syscall.SIGSEGV)
				Teardown(ctx)
				debug.SetTraceback("all")
				panic("mcwm: SIGSEGV received, aborting to preserve traceback")
			default:
				ctx.Sigcode = 0
				return 0
			}
		}
	}
}

// xgbEvent is a narrow alias documenting the event type carried over
// the dispatch channel without importing xgb's unexported event
// machinery details into this file's signature.
type xgbEvent = interface{}

// Teardown maps every managed window so it survives the WM's death and
// reverts input focus to pointer-root before returning.
func Teardown(ctx *Context) {
	ctx.Registry.Global.Each(func(n *list.Node) {
		c := n.Value.(*store.Client)
		xproto.MapWindow(ctx.Root.X.Conn(), c.Window)
	})
	xproto.SetInputFocus(ctx.Root.X.Conn(), xproto.InputFocusPointerRoot, xproto.InputFocusPointerRoot, xproto.TimeCurrentTime)
	log.Info("teardown complete")
}
