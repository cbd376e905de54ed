// Package wm is the orchestration layer: the modal event loop, the
// geometry policies, and the focus engine that together drive window
// management.
package wm

import "github.com/kebigon/mcwm/store"

// Kind identifies which of the four modes the window manager is in.
type Kind int

const (
	Idle Kind = iota
	Move
	Resize
	Tabbing
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Resize:
		return "resize"
	case Tabbing:
		return "tabbing"
	default:
		return "idle"
	}
}

// Mode is the current modal state. Move and Resize carry the pointer
// position captured at grab time; Tabbing carries the client that was
// focused before the cycle began.
type Mode struct {
	Kind Kind

	// Client is the window the Move/Resize grab applies to.
	Client *store.Client
	// GrabX, GrabY is the pointer position at grab time, used to
	// restore a relative position on button-release.
	GrabX, GrabY int16

	// LastFocus is the client that was focused when Tabbing began.
	LastFocus *store.Client
}

// Reset returns the mode to Idle, clearing all payload fields so a
// stale reference can't leak across mode transitions.
func (m *Mode) Reset() {
	*m = Mode{Kind: Idle}
}
