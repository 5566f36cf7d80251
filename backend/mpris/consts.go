package mpris

const (
	// MPRIS D-Bus constants
	MPRIS_PREFIX       = "org.mpris.MediaPlayer2"
	MPRIS_PATH         = "/org/mpris/MediaPlayer2"
	MPRIS_INTERFACE    = "org.mpris.MediaPlayer2"
	MPRIS_PLAYER_IFACE = "org.mpris.MediaPlayer2.Player"

	// MPRIS Player methods
	MPRIS_METHOD_PLAY         = MPRIS_PLAYER_IFACE + ".Play"
	MPRIS_METHOD_PAUSE        = MPRIS_PLAYER_IFACE + ".Pause"
	MPRIS_METHOD_NEXT         = MPRIS_PLAYER_IFACE + ".Next"
	MPRIS_METHOD_PREVIOUS     = MPRIS_PLAYER_IFACE + ".Previous"
	MPRIS_METHOD_SET_POSITION = MPRIS_PLAYER_IFACE + ".SetPosition"

	// Properties read by the applet
	PROP_PLAYBACK_STATUS = "PlaybackStatus"
	PROP_METADATA        = "Metadata"
	PROP_POSITION        = "Position"
	PROP_IDENTITY        = "Identity"
	PROP_DESKTOP_ENTRY   = "DesktopEntry"

	// Metadata keys
	META_TITLE   = "xesam:title"
	META_ARTIST  = "xesam:artist"
	META_ALBUM   = "xesam:album"
	META_LENGTH  = "mpris:length"
	META_TRACKID = "mpris:trackid"
)

// PlaybackStatus represents the current playback state
type PlaybackStatus string

const (
	StatusPlaying PlaybackStatus = "Playing"
	StatusPaused  PlaybackStatus = "Paused"
	StatusStopped PlaybackStatus = "Stopped"
)

// ParsePlaybackStatus maps the remote PlaybackStatus string to a status.
// Anything unrecognized is Stopped.
func ParsePlaybackStatus(status string) PlaybackStatus {
	switch status {
	case "Playing":
		return StatusPlaying
	case "Paused":
		return StatusPaused
	default:
		return StatusStopped
	}
}
