package dbus

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// DefaultTimeout is the timeout used for all D-Bus calls.
var DefaultTimeout = 5 * time.Second

// Conn is the subset of *dbus.Conn the applet uses. Tests substitute fakes.
type Conn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	BusObject() dbus.BusObject
	Signal(ch chan<- *dbus.Signal)
	RemoveSignal(ch chan<- *dbus.Signal)
}

// CallWithTimeout executes a D-Bus call with the default timeout.
func CallWithTimeout(call *dbus.Call) error {
	done := make(chan error, 1)
	go func() { done <- call.Err }()
	select {
	case err := <-done:
		return err
	case <-time.After(DefaultTimeout):
		return &TimeoutError{}
	}
}

// GetProperty retrieves a single property from a D-Bus object.
func GetProperty(obj dbus.BusObject, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	call := obj.Call(PROP_GET, 0, iface, prop)
	if err := CallWithTimeout(call); err != nil {
		return dbus.Variant{}, err
	}
	if err := call.Store(&v); err != nil {
		return dbus.Variant{}, err
	}
	return v, nil
}

// CallMethod calls a method on a D-Bus object with the default timeout.
func CallMethod(obj dbus.BusObject, method string, args ...interface{}) error {
	return CallWithTimeout(obj.Call(method, 0, args...))
}

// GetObject returns a D-Bus object for the given service and object path.
func GetObject(conn Conn, service, path string) dbus.BusObject {
	return conn.Object(service, dbus.ObjectPath(path))
}

// ListNames retrieves the list of all currently registered bus names.
func ListNames(conn Conn) ([]string, error) {
	var names []string
	call := conn.BusObject().Call(BUS_LIST_NAMES, 0)
	if err := CallWithTimeout(call); err != nil {
		return nil, err
	}
	if err := call.Store(&names); err != nil {
		return nil, err
	}
	return names, nil
}

// GetNameOwner resolves the unique connection name owning a bus name.
// An error means the name currently has no owner.
func GetNameOwner(conn Conn, busName string) (string, error) {
	var owner string
	call := conn.BusObject().Call(BUS_GET_NAME_OWNER, 0, busName)
	if err := CallWithTimeout(call); err != nil {
		return "", err
	}
	if err := call.Store(&owner); err != nil {
		return "", err
	}
	return owner, nil
}

// AddMatchRule subscribes to a D-Bus signal via a match rule.
func AddMatchRule(conn Conn, rule string) error {
	return conn.BusObject().Call(BUS_ADD_MATCH, 0, rule).Err
}

// RemoveMatchRule unsubscribes from a D-Bus signal match rule.
func RemoveMatchRule(conn Conn, rule string) error {
	return conn.BusObject().Call(BUS_REMOVE_MATCH, 0, rule).Err
}

// --- Variant extraction helpers ---

// ExtractString extracts a string from a dbus.Variant.
func ExtractString(v dbus.Variant) (string, bool) {
	val, ok := v.Value().(string)
	return val, ok
}

// ExtractStrings extracts a string slice from a dbus.Variant.
// Single-string variants are wrapped, matching how some players publish
// xesam:artist.
func ExtractStrings(v dbus.Variant) ([]string, bool) {
	switch val := v.Value().(type) {
	case []string:
		return val, true
	case string:
		return []string{val}, true
	default:
		return nil, false
	}
}

// ExtractInt64 extracts an int64 from a dbus.Variant, coercing the integer
// types players are known to publish mpris:length and Position as.
func ExtractInt64(v dbus.Variant) (int64, bool) {
	switch val := v.Value().(type) {
	case int64:
		return val, true
	case uint64:
		return int64(val), true
	case int32:
		return int64(val), true
	case uint32:
		return int64(val), true
	case float64:
		return int64(val), true
	default:
		return 0, false
	}
}

// ExtractObjectPath extracts an object path from a dbus.Variant.
func ExtractObjectPath(v dbus.Variant) (dbus.ObjectPath, bool) {
	val, ok := v.Value().(dbus.ObjectPath)
	return val, ok
}

// ExtractVariantMap extracts a map[string]dbus.Variant from a dbus.Variant.
func ExtractVariantMap(v dbus.Variant) (map[string]dbus.Variant, bool) {
	val, ok := v.Value().(map[string]dbus.Variant)
	return val, ok
}
