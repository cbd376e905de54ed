// Package config holds the command-line configuration surface and the
// fixed engineering constants of the window manager.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Fixed engineering constants. These are not exposed as flags: the
// command-line surface only covers borders, terminal, and the three
// border colors.
const (
	// BorderWidth is the pixel width of the focus border drawn
	// around every managed client when borders are enabled.
	BorderWidth = 1

	// MoveStep is the pixel distance a step-move translates a
	// window. Step-resize does not use it: its step comes from the
	// client's size-hint increments, with a minimum of one pixel.
	MoveStep = 10

	// ModifierMask is the X modifier bit the WM reserves as its
	// command prefix for keyboard bindings.
	ModifierMask = 1 << 6 // Mod4 (the "super"/"windows" key)

	// MouseModifierMask is the modifier required, together with a
	// mouse button, to enter Move or Resize mode.
	MouseModifierMask = ModifierMask

	defaultTerminal     = "xterm"
	defaultFocusColor   = "royalblue"
	defaultUnfocusColor = "black"
	defaultFixedColor   = "tomato"
)

// Config is the parsed command-line configuration.
type Config struct {
	Borders      bool
	Terminal     string
	FocusColor   string
	UnfocusColor string
	FixedColor   string
}

// Parse builds a Config from argv:
//
//	mcwm [-b] [-t term] [-f color] [-u color] [-x color]
//
// Unknown flags print usage and exit 0 (not pflag's default exit 2):
// a bad flag is treated as a help request, not a fatal-init error.
func Parse(args []string) *Config {
	fs := pflag.NewFlagSet("mcwm", pflag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		fmt.Fprintln(os.Stdout, "mcwm: Usage: mcwm [-b] [-t terminal-program] [-f colour] [-u colour] [-x colour]")
		fs.PrintDefaults()
	}

	noBorders := fs.BoolP("no-borders", "b", false, "disable window borders")
	terminal := fs.StringP("terminal", "t", defaultTerminal, "terminal program to spawn")
	focus := fs.StringP("focus-color", "f", defaultFocusColor, "focused border colour")
	unfocus := fs.StringP("unfocus-color", "u", defaultUnfocusColor, "unfocused border colour")
	fixed := fs.StringP("fixed-color", "x", defaultFixedColor, "fixed border colour")

	if err := fs.Parse(args); err != nil {
		fs.Usage()
		os.Exit(0)
	}

	return &Config{
		Borders:      !*noBorders,
		Terminal:     *terminal,
		FocusColor:   *focus,
		UnfocusColor: *unfocus,
		FixedColor:   *fixed,
	}
}
