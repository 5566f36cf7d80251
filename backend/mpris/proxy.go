package mpris

import (
	"github.com/godbus/dbus/v5"

	idbus "github.com/dockapps/go-media-dock/backend/internal/dbus"
	"github.com/dockapps/go-media-dock/logger"
)

// Proxy wraps one MPRIS service endpoint. The controller keeps two
// long-lived proxies for the bound player; selection creates short-lived
// probe proxies that are discarded within a single evaluation.
type Proxy struct {
	conn    idbus.Conn
	service string
	obj     dbus.BusObject
}

// newProxy constructs a proxy without probing the endpoint. Used for the
// properties view of an already-validated binding.
func newProxy(conn idbus.Conn, service string) *Proxy {
	return &Proxy{
		conn:    conn,
		service: service,
		obj:     idbus.GetObject(conn, service, MPRIS_PATH),
	}
}

// NewProxy constructs a proxy and verifies the service currently has an
// owner on the bus. A proxy that fails this probe is never used.
func NewProxy(conn idbus.Conn, service string) (*Proxy, error) {
	if _, err := idbus.GetNameOwner(conn, service); err != nil {
		return nil, &InvalidEndpointError{Service: service}
	}
	return newProxy(conn, service), nil
}

func (p *Proxy) Service() string {
	return p.service
}

// Call issues a fire-and-forget player command. Failures are absorbed:
// a command to a vanished player has no user-visible effect anyway.
func (p *Proxy) Call(method string, args ...interface{}) {
	if err := idbus.CallMethod(p.obj, method, args...); err != nil {
		logger.Debug("[mpris] %s failed for %s: %v", method, p.service, err)
	}
}

// GetProperty reads one property from the endpoint.
func (p *Proxy) GetProperty(iface, prop string) (dbus.Variant, error) {
	return idbus.GetProperty(p.obj, iface, prop)
}

// GetString reads a string property.
func (p *Proxy) GetString(iface, prop string) (string, bool) {
	v, err := p.GetProperty(iface, prop)
	if err != nil {
		return "", false
	}
	return idbus.ExtractString(v)
}

// GetInt64 reads an integer property.
func (p *Proxy) GetInt64(iface, prop string) (int64, bool) {
	v, err := p.GetProperty(iface, prop)
	if err != nil {
		return 0, false
	}
	return idbus.ExtractInt64(v)
}

// PlaybackStatus reads and parses the player's PlaybackStatus property.
func (p *Proxy) PlaybackStatus() (PlaybackStatus, error) {
	v, err := p.GetProperty(MPRIS_PLAYER_IFACE, PROP_PLAYBACK_STATUS)
	if err != nil {
		return StatusStopped, err
	}
	status, ok := idbus.ExtractString(v)
	if !ok {
		return StatusStopped, &InvalidReplyError{Property: PROP_PLAYBACK_STATUS}
	}
	return ParsePlaybackStatus(status), nil
}
