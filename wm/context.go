package wm

import (
	"github.com/jezek/xgb/xproto"

	"github.com/kebigon/mcwm/config"
	"github.com/kebigon/mcwm/input"
	"github.com/kebigon/mcwm/store"
)

// Context bundles the connection, configuration, client registry,
// workspace table, focus, and mode into one value passed explicitly
// to every handler instead of living behind package-level globals.
type Context struct {
	Root   *store.Root
	Config *config.Config

	Registry   *store.Registry
	Workspaces *store.Workspaces
	Bindings   *input.Bindings

	Focus *store.Client
	Mode  Mode

	// Sigcode records the signal that ended Run: it is set by Run's
	// select loop when a signal arrives (0 for SIGINT/SIGTERM, the
	// signal number for SIGSEGV).
	Sigcode int
}

// NewContext wires together a freshly connected Root with empty
// registry/workspace/mode state.
func NewContext(root *store.Root, cfg *config.Config, bindings *input.Bindings) *Context {
	return &Context{
		Root:       root,
		Config:     cfg,
		Registry:   store.NewRegistry(),
		Workspaces: store.NewWorkspaces(),
		Bindings:   bindings,
	}
}

// borderPixelFor returns the pixel value a client's border should be
// painted, honoring fixed status first.
func (ctx *Context) borderPixelFor(c *store.Client) uint32 {
	if c.Fixed {
		return ctx.Root.Colors.Fixed
	}
	return ctx.Root.Colors.Focus
}

func paintBorder(ctx *Context, win xproto.Window, pixel uint32) {
	if !ctx.Config.Borders {
		return
	}
	xproto.ChangeWindowAttributes(ctx.Root.X.Conn(), win, xproto.CwBorderPixel, []uint32{pixel})
}
