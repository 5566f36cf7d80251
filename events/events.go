package events

// Event types published by the applet core.
const (
	TypePlayerBound     = "player.bound"
	TypePlayerUnbound   = "player.unbound"
	TypePlayersUpdated  = "players.updated"
	TypeTrackChanged    = "track.changed"
	TypeStatusChanged   = "status.changed"
	TypePositionChanged = "position.changed"
)

type Event struct {
	Type string
	Data any
}

// FilterTypes returns a filter passing only the given event types.
// Returns nil (pass-all) for an empty list.
func FilterTypes(types []string) func(Event) bool {
	if len(types) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(types))
	for _, typ := range types {
		set[typ] = struct{}{}
	}
	return func(e Event) bool {
		_, ok := set[e.Type]
		return ok
	}
}
