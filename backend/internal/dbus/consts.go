package dbus

// Standard D-Bus method and signal names
const (
	DBUS_INTERFACE = "org.freedesktop.DBus"

	BUS_LIST_NAMES     = DBUS_INTERFACE + ".ListNames"
	BUS_ADD_MATCH      = DBUS_INTERFACE + ".AddMatch"
	BUS_REMOVE_MATCH   = DBUS_INTERFACE + ".RemoveMatch"
	BUS_GET_NAME_OWNER = DBUS_INTERFACE + ".GetNameOwner"

	DBUS_PROP_IFACE = DBUS_INTERFACE + ".Properties"
	PROP_GET        = DBUS_PROP_IFACE + ".Get"

	NAME_OWNER_CHANGED = DBUS_INTERFACE + ".NameOwnerChanged"
)
