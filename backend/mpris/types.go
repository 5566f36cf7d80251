package mpris

import (
	"sync"

	"github.com/godbus/dbus/v5"

	idbus "github.com/dockapps/go-media-dock/backend/internal/dbus"
	"github.com/dockapps/go-media-dock/cache"
	"github.com/dockapps/go-media-dock/config"
	"github.com/dockapps/go-media-dock/events"
	"github.com/dockapps/go-media-dock/ui"
)

// Candidate is one discovered MPRIS service. Candidates are transient:
// rebuilt from scratch on every discovery pass, never persisted.
type Candidate struct {
	Service     string
	DisplayName string
}

// State is the cached state of the single bound player. A zero Service
// means nothing is bound and every other field is at its empty default.
type State struct {
	Service     string
	Title       string
	Artist      string
	Album       string
	Status      PlaybackStatus
	PositionMs  int64
	DurationMs  int64
	HasPosition bool
}

// Reset clears all fields to the unbound defaults.
func (s *State) Reset() {
	*s = State{Status: StatusStopped}
}

// Controller is the applet core: it discovers players, owns the single
// binding and keeps State synchronized with the remote player.
//
// All mutable fields are owned by the Run loop goroutine. External callers
// interact through the command methods (PlayPause, HandleClick, ...) which
// post onto the loop, and through the Menu/Label/Events read surfaces.
type Controller struct {
	conn    idbus.Conn
	ownConn *dbus.Conn // set when New opened the connection itself
	cfg     *config.MPRISConfig
	host    ui.Host
	menu    *ui.Menu

	state      State
	player     *Proxy // bound proxy for transport commands
	props      *Proxy // bound proxy for property reads
	candidates []Candidate

	// Resolved display names, invalidated when a service unregisters.
	names *cache.Cache[string]

	labelMu sync.Mutex
	label   string

	cmds   chan func()
	events chan events.Event
}
