package mpris

import (
	"context"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	idbus "github.com/dockapps/go-media-dock/backend/internal/dbus"
	"github.com/dockapps/go-media-dock/cache"
	"github.com/dockapps/go-media-dock/config"
	"github.com/dockapps/go-media-dock/events"
	"github.com/dockapps/go-media-dock/logger"
	"github.com/dockapps/go-media-dock/ui"
)

// nameOwnerMatchRule subscribes to registration/unregistration of MPRIS
// services only.
const nameOwnerMatchRule = "type='signal',interface='" + idbus.DBUS_INTERFACE +
	"',member='NameOwnerChanged',arg0namespace='" + MPRIS_PREFIX + "'"

// New connects to the session bus and creates the applet controller.
// Call Run to start processing.
func New(cfg *config.MPRISConfig, host ui.Host) (*Controller, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	idbus.DefaultTimeout = cfg.Timeout

	c := newController(conn, cfg, host)
	c.ownConn = conn
	return c, nil
}

// newController wires a controller onto an existing bus connection.
func newController(conn idbus.Conn, cfg *config.MPRISConfig, host ui.Host) *Controller {
	menu := ui.NewMenu()
	host.AddSettingsEntries(menu)

	c := &Controller{
		conn:   conn,
		cfg:    cfg,
		host:   host,
		menu:   menu,
		state:  State{Status: StatusStopped},
		names:  cache.New[string](0),
		cmds:   make(chan func(), 16),
		events: make(chan events.Event, 64),
	}
	c.setLabel(buildLabel("", "", "", ""))
	return c
}

// Close releases the bus connection if the controller owns one.
func (c *Controller) Close() {
	if c.ownConn != nil {
		c.ownConn.Close()
		c.ownConn = nil
	}
}

// Menu returns the popup model the host renders.
func (c *Controller) Menu() *ui.Menu {
	return c.menu
}

// Label returns the applet label. Safe from any goroutine.
func (c *Controller) Label() string {
	c.labelMu.Lock()
	defer c.labelMu.Unlock()
	return c.label
}

func (c *Controller) setLabel(label string) {
	c.labelMu.Lock()
	c.label = label
	c.labelMu.Unlock()
}

// Events returns the applet event stream.
func (c *Controller) Events() <-chan events.Event {
	return c.events
}

func (c *Controller) publish(typ string, data any) {
	select {
	case c.events <- events.Event{Type: typ, Data: data}:
	default:
		// No subscriber draining fast enough, drop the event
	}
}

// Run processes bus signals, poll ticks and host commands on a single
// goroutine until ctx is cancelled. Every handler runs to completion
// before the next event is taken, so no locking is needed around the
// binding or the cached state.
func (c *Controller) Run(ctx context.Context) error {
	if err := idbus.AddMatchRule(c.conn, nameOwnerMatchRule); err != nil {
		return err
	}

	signals := make(chan *dbus.Signal, 16)
	c.conn.Signal(signals)
	defer c.conn.RemoveSignal(signals)

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	// Initial pass: discover and bind the best available player.
	c.refreshCandidates()
	if len(c.candidates) > 0 {
		if service, ok := c.selectBest(c.candidates); ok {
			c.bind(service)
		}
	}

	logger.Info("[mpris] controller started (%d players)", len(c.candidates))

	for {
		select {
		case <-ctx.Done():
			c.unbind()
			return nil
		case sig, ok := <-signals:
			if !ok {
				return nil
			}
			c.handleSignal(sig)
		case <-ticker.C:
			c.onTick()
		case fn := <-c.cmds:
			fn()
		}
	}
}

// onTick drives the status poller and, when the bound player is idle,
// scans for one that started playing.
func (c *Controller) onTick() {
	if c.player == nil {
		return
	}

	c.refresh()

	if len(c.candidates) > 1 && c.state.Status != StatusPlaying {
		c.checkForBetterPlayer()
	}
}

func (c *Controller) handleSignal(sig *dbus.Signal) {
	if sig.Name != idbus.NAME_OWNER_CHANGED {
		return
	}
	// Body: bus name, old owner, new owner
	if len(sig.Body) < 3 {
		return
	}
	service, ok := sig.Body[0].(string)
	if !ok || !strings.HasPrefix(service, MPRIS_PREFIX+".") {
		return
	}
	oldOwner, _ := sig.Body[1].(string)
	newOwner, _ := sig.Body[2].(string)

	if oldOwner == "" && newOwner != "" {
		c.handleServiceRegistered(service)
	} else if oldOwner != "" && newOwner == "" {
		c.handleServiceUnregistered(service)
	}
}

func (c *Controller) handleServiceRegistered(service string) {
	logger.Info("[mpris] new player detected: %s", service)
	c.refreshCandidates()

	if c.state.Service == "" {
		if best, ok := c.selectBest(c.candidates); ok {
			c.bind(best)
		}
	}
}

func (c *Controller) handleServiceUnregistered(service string) {
	logger.Info("[mpris] player removed: %s", service)
	c.names.Delete(service)

	if service == c.state.Service {
		c.unbind()
		c.refreshCandidates()
		if best, ok := c.selectBest(c.candidates); ok {
			c.bind(best)
		}
	}

	// Refresh the submenu even when the removed player was not bound.
	c.refreshCandidates()
}

// refreshCandidates rebuilds the candidate set from the bus and the player
// submenu from it. Discovering that the bound service vanished from the
// registry unbinds immediately.
func (c *Controller) refreshCandidates() {
	c.candidates = c.discover()

	if c.state.Service != "" && !containsService(c.candidates, c.state.Service) {
		c.unbind()
	}

	rows := make([]ui.PlayerEntry, 0, len(c.candidates))
	for i := range c.candidates {
		cand := &c.candidates[i]
		cand.DisplayName = c.displayName(cand.Service)
		rows = append(rows, ui.PlayerEntry{
			Service:     cand.Service,
			DisplayName: cand.DisplayName,
			Checked:     cand.Service == c.state.Service,
		})
	}
	c.menu.SetPlayers(rows)

	c.publish(events.TypePlayersUpdated, len(c.candidates))
}

// --- Host command surface ---
//
// These are safe to call from the host thread: they post onto the Run
// loop and return immediately.

func (c *Controller) do(fn func()) {
	select {
	case c.cmds <- fn:
	default:
		logger.Warn("[mpris] command queue full, dropping input")
	}
}

// HandleClick routes a pointer click on the applet surface.
func (c *Controller) HandleClick(button ui.Button) {
	c.do(func() {
		switch button {
		case ui.ButtonPrimary:
			if c.state.Service == "" {
				c.host.SetPopupVisible(true)
			} else {
				c.playPause()
			}
		case ui.ButtonSecondary:
			c.host.SetPopupVisible(true)
		case ui.ButtonTertiary:
			c.next()
		}
	})
}

// PlayPause toggles playback on the bound player.
func (c *Controller) PlayPause() { c.do(c.playPause) }

// Previous skips to the previous track.
func (c *Controller) Previous() { c.do(c.previous) }

// Next skips to the next track.
func (c *Controller) Next() { c.do(c.next) }

// SeekPercent moves playback to a percentage of the track duration.
func (c *Controller) SeekPercent(percent int) {
	c.do(func() { c.seekPercent(percent) })
}

// SelectPlayer binds the given service, as picked from the player submenu.
func (c *Controller) SelectPlayer(service string) {
	c.do(func() { c.bind(service) })
}

func (c *Controller) playPause() {
	if c.player == nil {
		return
	}
	if c.state.Status == StatusPlaying {
		c.player.Call(MPRIS_METHOD_PAUSE)
	} else {
		c.player.Call(MPRIS_METHOD_PLAY)
	}
}

func (c *Controller) previous() {
	if c.player == nil {
		return
	}
	c.player.Call(MPRIS_METHOD_PREVIOUS)
}

func (c *Controller) next() {
	if c.player == nil {
		return
	}
	c.player.Call(MPRIS_METHOD_NEXT)
}

// seekPercent converts a slider percentage to microseconds and issues
// SetPosition with the current track id.
func (c *Controller) seekPercent(percent int) {
	if c.player == nil || !c.state.HasPosition {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	v, err := c.props.GetProperty(MPRIS_PLAYER_IFACE, PROP_METADATA)
	if err != nil {
		return
	}
	meta, ok := idbus.ExtractVariantMap(v)
	if !ok {
		return
	}
	trackVariant, ok := meta[META_TRACKID]
	if !ok {
		return
	}
	trackID, ok := idbus.ExtractObjectPath(trackVariant)
	if !ok {
		return
	}

	positionUs := int64(percent) * c.state.DurationMs * 1000 / 100
	c.player.Call(MPRIS_METHOD_SET_POSITION, trackID, positionUs)
}
