package mpris

import (
	"github.com/godbus/dbus/v5"

	idbus "github.com/dockapps/go-media-dock/backend/internal/dbus"
	"github.com/dockapps/go-media-dock/events"
	"github.com/dockapps/go-media-dock/ui"
)

// refresh re-reads status, metadata and position from the bound player and
// updates the cached state. No-op when unbound. The three reads are
// independent: a failed read leaves the corresponding cached fields at
// their last good value until the next tick.
func (c *Controller) refresh() {
	if c.player == nil || c.props == nil {
		return
	}

	c.refreshStatus()
	c.refreshMetadata()
	c.refreshPosition()

	c.menu.TrackInfo.SetText(trackInfoText(c.state.Title, c.state.Artist))
	c.setLabel(buildLabel(c.state.Service, c.state.Title, c.state.Artist,
		c.displayName(c.state.Service)))

	c.host.RequestRedraw()
}

func (c *Controller) refreshStatus() {
	raw, ok := c.props.GetString(MPRIS_PLAYER_IFACE, PROP_PLAYBACK_STATUS)
	if !ok {
		return
	}

	status := ParsePlaybackStatus(raw)
	if status != c.state.Status {
		c.publish(events.TypeStatusChanged, status)
	}
	c.state.Status = status

	if status == StatusPlaying {
		c.menu.PlayPause.SetText(ui.PauseText)
	} else {
		c.menu.PlayPause.SetText(ui.PlayText)
	}
}

func (c *Controller) refreshMetadata() {
	v, err := c.props.GetProperty(MPRIS_PLAYER_IFACE, PROP_METADATA)
	if err != nil {
		return
	}
	meta, ok := idbus.ExtractVariantMap(v)
	if !ok {
		return
	}

	title := metaString(meta, META_TITLE)
	artist := metaArtists(meta)
	album := metaString(meta, META_ALBUM)

	if title != c.state.Title || artist != c.state.Artist {
		c.publish(events.TypeTrackChanged, title)
	}
	c.state.Title = title
	c.state.Artist = artist
	c.state.Album = album

	// mpris:length is in microseconds
	var durationUs int64
	if lv, ok := meta[META_LENGTH]; ok {
		durationUs, _ = idbus.ExtractInt64(lv)
	}
	c.state.DurationMs = durationUs / 1000
	c.state.HasPosition = c.state.DurationMs > 0
	c.menu.Slider.SetEnabled(c.state.HasPosition)
}

func (c *Controller) refreshPosition() {
	if !c.state.HasPosition {
		return
	}

	positionUs, ok := c.props.GetInt64(MPRIS_PLAYER_IFACE, PROP_POSITION)
	if !ok {
		return
	}

	positionMs := positionUs / 1000
	if positionMs != c.state.PositionMs {
		c.publish(events.TypePositionChanged, positionMs)
	}
	c.state.PositionMs = positionMs

	percentage := int(positionMs * 100 / c.state.DurationMs)
	if percentage < 0 {
		percentage = 0
	} else if percentage > 100 {
		percentage = 100
	}
	c.menu.Slider.SetValue(percentage)
}

func metaString(meta map[string]dbus.Variant, key string) string {
	if v, ok := meta[key]; ok {
		s, _ := idbus.ExtractString(v)
		return s
	}
	return ""
}

// metaArtists joins the artist list with ", ".
func metaArtists(meta map[string]dbus.Variant) string {
	v, ok := meta[META_ARTIST]
	if !ok {
		return ""
	}
	artists, ok := idbus.ExtractStrings(v)
	if !ok {
		return ""
	}
	joined := ""
	for i, artist := range artists {
		if i > 0 {
			joined += ", "
		}
		joined += artist
	}
	return joined
}
