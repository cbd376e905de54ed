package store

import (
	"fmt"

	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"

	log "github.com/sirupsen/logrus"
)

// Atoms caches the interned atoms the window manager needs.
type Atoms struct {
	NetWmDesktop   xproto.Atom
	WmDeleteWindow xproto.Atom
	WmProtocols    xproto.Atom
}

// Colors caches the allocated pixel values for the three border
// colors, resolved once at startup.
type Colors struct {
	Focus, Unfocus, Fixed uint32
}

// RootGeometry is the last-known size of the root window, refreshed
// on every root configure-notify.
type RootGeometry struct {
	Width, Height uint16
}

// Root bundles the X connection and the process-wide state that isn't
// per-client: screen info, interned atoms, resolved colors, and the
// cached root geometry.
type Root struct {
	X      *xgbutil.XUtil
	Screen *xproto.ScreenInfo
	Root   xproto.Window

	Atoms  Atoms
	Colors Colors
	Geom   RootGeometry

	BorderWidth uint32
}

// Connect opens the X display connection and reads the first screen.
// Failure here is fatal init: the caller is expected to log and exit 1.
func Connect() (*Root, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}

	screen := xu.Screen()
	r := &Root{
		X:      xu,
		Screen: screen,
		Root:   screen.Root,
		Geom: RootGeometry{
			Width:  screen.WidthInPixels,
			Height: screen.HeightInPixels,
		},
	}

	// RandR is only consulted to sanity-check the reported root size
	// against the primary CRTC at startup; multi-monitor layout is
	// out of scope, so nothing beyond this lookup is wired.
	if err := randr.Init(xu.Conn()); err == nil {
		if primary, err := randr.GetOutputPrimary(xu.Conn(), screen.Root).Reply(); err == nil && primary != nil && primary.Output != 0 {
			if oinfo, err := randr.GetOutputInfo(xu.Conn(), primary.Output, 0).Reply(); err == nil && oinfo != nil && oinfo.Crtc != 0 {
				if cinfo, err := randr.GetCrtcInfo(xu.Conn(), oinfo.Crtc, 0).Reply(); err == nil && cinfo != nil {
					log.WithFields(log.Fields{
						"crtc_width":  cinfo.Width,
						"crtc_height": cinfo.Height,
						"root_width":  screen.WidthInPixels,
						"root_height": screen.HeightInPixels,
					}).Debug("root screen info")
				}
			}
		}
	}

	return r, nil
}

// InternAtoms resolves _NET_WM_DESKTOP, WM_DELETE_WINDOW, and
// WM_PROTOCOLS.
func (r *Root) InternAtoms() error {
	names := []string{"_NET_WM_DESKTOP", "WM_DELETE_WINDOW", "WM_PROTOCOLS"}
	atoms := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(r.X.Conn(), false, uint16(len(name)), name).Reply()
		if err != nil {
			return fmt.Errorf("intern atom %s: %w", name, err)
		}
		atoms[i] = reply.Atom
	}
	r.Atoms.NetWmDesktop = atoms[0]
	r.Atoms.WmDeleteWindow = atoms[1]
	r.Atoms.WmProtocols = atoms[2]
	return nil
}

// ResolveColors allocates the three named border colors on the
// default colormap. Failure to resolve a color name is fatal init.
func (r *Root) ResolveColors(focus, unfocus, fixed string) error {
	var err error
	if r.Colors.Focus, err = r.allocNamedColor(focus); err != nil {
		return fmt.Errorf("resolve focus color %q: %w", focus, err)
	}
	if r.Colors.Unfocus, err = r.allocNamedColor(unfocus); err != nil {
		return fmt.Errorf("resolve unfocus color %q: %w", unfocus, err)
	}
	if r.Colors.Fixed, err = r.allocNamedColor(fixed); err != nil {
		return fmt.Errorf("resolve fixed color %q: %w", fixed, err)
	}
	return nil
}

func (r *Root) allocNamedColor(name string) (uint32, error) {
	cmap := r.Screen.DefaultColormap
	reply, err := xproto.AllocNamedColor(r.X.Conn(), cmap, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Pixel, nil
}

// TakeSubstructureRedirect registers the root for substructure
// redirect and structure notify, the selection that makes this
// process the window manager. If another window manager already owns
// it, the request fails with an X access error and the caller should
// treat it as fatal init.
func (r *Root) TakeSubstructureRedirect() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskPropertyChange)
	cookie := xproto.ChangeWindowAttributesChecked(r.X.Conn(), r.Root, xproto.CwEventMask, []uint32{mask})
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("another window manager is running: %w", err)
	}
	return nil
}

// UpdateGeometry refreshes the cached root geometry and reports
// whether it actually changed, for configure-notify-on-root handling.
func (r *Root) UpdateGeometry(width, height uint16) bool {
	if width == r.Geom.Width && height == r.Geom.Height {
		return false
	}
	r.Geom.Width, r.Geom.Height = width, height
	return true
}
