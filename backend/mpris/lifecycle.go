package mpris

import (
	"github.com/dockapps/go-media-dock/events"
	"github.com/dockapps/go-media-dock/logger"
	"github.com/dockapps/go-media-dock/ui"
)

// bind tears down any existing binding, then establishes a new one against
// service. If the new proxy fails its validity probe the controller is left
// unbound rather than half-bound.
func (c *Controller) bind(service string) {
	c.unbind()

	c.state.Service = service

	player, err := NewProxy(c.conn, service)
	if err != nil {
		logger.Debug("[mpris] cannot bind %s: %v", service, err)
		c.unbind()
		return
	}
	c.player = player
	c.props = newProxy(c.conn, service)

	logger.Info("[mpris] bound to %s", service)
	c.menu.SetTransportEnabled(true)

	// Refresh checkmarks, then pull initial state from the new player.
	c.refreshCandidates()
	c.refresh()

	c.publish(events.TypePlayerBound, service)
	c.host.RequestRedraw()
}

// unbind releases the bound proxies and clears all cached player state.
// Safe to call when nothing is bound.
func (c *Controller) unbind() {
	wasBound := c.state.Service != ""
	if wasBound {
		logger.Info("[mpris] unbinding %s", c.state.Service)
	}

	c.player = nil
	c.props = nil
	c.state.Reset()

	c.menu.SetTransportEnabled(false)
	c.menu.PlayPause.SetText(ui.PlayText)
	c.menu.Slider.SetEnabled(false)
	c.menu.Slider.SetValue(0)
	c.menu.TrackInfo.SetText(ui.NoMediaText)
	c.setLabel(buildLabel("", "", "", ""))

	if wasBound {
		c.publish(events.TypePlayerUnbound, nil)
	}
	c.host.RequestRedraw()
}
