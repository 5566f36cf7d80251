package mpris

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	idbus "github.com/dockapps/go-media-dock/backend/internal/dbus"
	"github.com/dockapps/go-media-dock/config"
	"github.com/dockapps/go-media-dock/ui"
)

// fakeBus implements idbus.Conn in-memory: registered names, name owners
// and per-service properties, recording every property read and method call.
type fakeBus struct {
	names   []string
	listErr bool

	owners   map[string]string
	props    map[string]map[string]dbus.Variant
	propErrs map[string]map[string]bool

	getCalls []string // "<service> <iface>.<prop>"
	calls    []fakeCall
}

type fakeCall struct {
	service string
	method  string
	args    []interface{}
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		owners:   make(map[string]string),
		props:    make(map[string]map[string]dbus.Variant),
		propErrs: make(map[string]map[string]bool),
	}
}

// addPlayer registers an MPRIS service with an owner and a playback status.
func (f *fakeBus) addPlayer(service string, status PlaybackStatus) {
	f.names = append(f.names, service)
	f.owners[service] = fmt.Sprintf(":1.%d", 100+len(f.owners))
	f.setProp(service, MPRIS_PLAYER_IFACE, PROP_PLAYBACK_STATUS, dbus.MakeVariant(string(status)))
}

// removePlayer unregisters a service entirely.
func (f *fakeBus) removePlayer(service string) {
	names := f.names[:0]
	for _, n := range f.names {
		if n != service {
			names = append(names, n)
		}
	}
	f.names = names
	delete(f.owners, service)
	delete(f.props, service)
	delete(f.propErrs, service)
}

func (f *fakeBus) setProp(service, iface, prop string, v dbus.Variant) {
	if f.props[service] == nil {
		f.props[service] = make(map[string]dbus.Variant)
	}
	f.props[service][iface+"."+prop] = v
}

func (f *fakeBus) failProp(service, iface, prop string) {
	if f.propErrs[service] == nil {
		f.propErrs[service] = make(map[string]bool)
	}
	f.propErrs[service][iface+"."+prop] = true
}

func (f *fakeBus) setMetadata(service string, meta map[string]dbus.Variant) {
	f.setProp(service, MPRIS_PLAYER_IFACE, PROP_METADATA, dbus.MakeVariant(meta))
}

// metaVariants builds a minimal MPRIS metadata map.
func metaVariants(title string, artists []string, album string, lengthUs int64) map[string]dbus.Variant {
	meta := make(map[string]dbus.Variant)
	if title != "" {
		meta[META_TITLE] = dbus.MakeVariant(title)
	}
	if len(artists) > 0 {
		meta[META_ARTIST] = dbus.MakeVariant(artists)
	}
	if album != "" {
		meta[META_ALBUM] = dbus.MakeVariant(album)
	}
	meta[META_LENGTH] = dbus.MakeVariant(lengthUs)
	return meta
}

// statusProbes counts PlaybackStatus reads issued against a service.
func (f *fakeBus) statusProbes(service string) int {
	count := 0
	for _, call := range f.getCalls {
		if call == service+" "+MPRIS_PLAYER_IFACE+"."+PROP_PLAYBACK_STATUS {
			count++
		}
	}
	return count
}

// methodCalls returns the player methods invoked on a service.
func (f *fakeBus) methodCalls(service string) []string {
	var methods []string
	for _, call := range f.calls {
		if call.service == service {
			methods = append(methods, call.method)
		}
	}
	return methods
}

func (f *fakeBus) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	return &fakeObject{bus: f, dest: dest, path: path}
}

func (f *fakeBus) BusObject() dbus.BusObject {
	return &fakeObject{bus: f, dest: idbus.DBUS_INTERFACE, path: "/org/freedesktop/DBus"}
}

func (f *fakeBus) Signal(ch chan<- *dbus.Signal)       {}
func (f *fakeBus) RemoveSignal(ch chan<- *dbus.Signal) {}

type fakeObject struct {
	bus  *fakeBus
	dest string
	path dbus.ObjectPath
}

func okCall(body ...interface{}) *dbus.Call { return &dbus.Call{Body: body} }
func errCall(msg string) *dbus.Call         { return &dbus.Call{Err: errors.New(msg)} }

func (o *fakeObject) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	switch method {
	case idbus.BUS_LIST_NAMES:
		if o.bus.listErr {
			return errCall("bus unavailable")
		}
		return okCall(o.bus.names)
	case idbus.BUS_GET_NAME_OWNER:
		name := args[0].(string)
		if owner, ok := o.bus.owners[name]; ok {
			return okCall(owner)
		}
		return errCall("name has no owner")
	case idbus.BUS_ADD_MATCH, idbus.BUS_REMOVE_MATCH:
		return okCall()
	case idbus.PROP_GET:
		key := args[0].(string) + "." + args[1].(string)
		o.bus.getCalls = append(o.bus.getCalls, o.dest+" "+key)
		if o.bus.propErrs[o.dest][key] {
			return errCall("property read failed")
		}
		if v, ok := o.bus.props[o.dest][key]; ok {
			return okCall(v)
		}
		return errCall("no such property")
	default:
		o.bus.calls = append(o.bus.calls, fakeCall{service: o.dest, method: method, args: args})
		return okCall()
	}
}

func (o *fakeObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	return o.Call(method, flags, args...)
}

func (o *fakeObject) Go(method string, flags dbus.Flags, ch chan *dbus.Call, args ...interface{}) *dbus.Call {
	return o.Call(method, flags, args...)
}

func (o *fakeObject) GoWithContext(ctx context.Context, method string, flags dbus.Flags, ch chan *dbus.Call, args ...interface{}) *dbus.Call {
	return o.Call(method, flags, args...)
}

func (o *fakeObject) AddMatchSignal(iface, member string, options ...dbus.MatchOption) *dbus.Call {
	return okCall()
}

func (o *fakeObject) RemoveMatchSignal(iface, member string, options ...dbus.MatchOption) *dbus.Call {
	return okCall()
}

func (o *fakeObject) GetProperty(p string) (dbus.Variant, error) {
	i := strings.LastIndex(p, ".")
	return idbus.GetProperty(o, p[:i], p[i+1:])
}

func (o *fakeObject) StoreProperty(p string, value interface{}) error {
	return errors.New("not implemented")
}

func (o *fakeObject) SetProperty(p string, v interface{}) error {
	return errors.New("not implemented")
}

func (o *fakeObject) Destination() string   { return o.dest }
func (o *fakeObject) Path() dbus.ObjectPath { return o.path }

// fakeHost records what the panel would be asked to do.
type fakeHost struct {
	redraws    int
	popupShown int
	settings   int
}

func (h *fakeHost) RequestRedraw()              { h.redraws++ }
func (h *fakeHost) AddSettingsEntries(*ui.Menu) { h.settings++ }

func (h *fakeHost) SetPopupVisible(visible bool) {
	if visible {
		h.popupShown++
	}
}

func newTestController(bus *fakeBus) (*Controller, *fakeHost) {
	host := &fakeHost{}
	cfg := &config.MPRISConfig{
		Timeout:      time.Second,
		PollInterval: 10 * time.Millisecond,
	}
	return newController(bus, cfg, host), host
}

// drainEvents empties the controller event channel and counts per type.
func drainEvents(c *Controller) map[string]int {
	counts := make(map[string]int)
	for {
		select {
		case e := <-c.events:
			counts[e.Type]++
		default:
			return counts
		}
	}
}
