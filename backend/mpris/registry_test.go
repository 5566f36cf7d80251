package mpris

import "testing"

func TestDiscoverFiltersAndPreservesOrder(t *testing.T) {
	bus := newFakeBus()
	bus.names = []string{
		"org.freedesktop.DBus",
		svcB,
		":1.42",
		"org.gnome.Shell",
		svcA,
		"org.mpris.MediaPlayer2", // bare prefix without trailing dot is not a player
	}
	c, _ := newTestController(bus)

	candidates := c.discover()

	if len(candidates) != 2 {
		t.Fatalf("discover returned %d candidates, want 2", len(candidates))
	}
	if candidates[0].Service != svcB || candidates[1].Service != svcA {
		t.Errorf("discover order = [%s %s], want bus enumeration order [%s %s]",
			candidates[0].Service, candidates[1].Service, svcB, svcA)
	}
}

func TestDiscoverBusFailureYieldsEmptySet(t *testing.T) {
	bus := newFakeBus()
	bus.addPlayer(svcA, StatusPlaying)
	bus.listErr = true
	c, _ := newTestController(bus)

	if candidates := c.discover(); len(candidates) != 0 {
		t.Errorf("bus failure should yield no candidates, got %d", len(candidates))
	}
}

func TestRefreshCandidatesUnbindsVanishedService(t *testing.T) {
	bus := newFakeBus()
	bus.addPlayer(svcA, StatusPlaying)
	c, _ := newTestController(bus)

	c.refreshCandidates()
	c.bind(svcA)
	if c.state.Service != svcA {
		t.Fatal("setup: bind failed")
	}

	// The service drops off the bus between two discovery passes
	bus.removePlayer(svcA)
	c.refreshCandidates()

	if c.state.Service != "" {
		t.Error("discovering the bound service vanished must unbind")
	}
}

func TestRefreshCandidatesBuildsMenu(t *testing.T) {
	bus := newFakeBus()
	bus.addPlayer(svcA, StatusPlaying)
	bus.addPlayer(svcB, StatusStopped)
	c, _ := newTestController(bus)

	c.refreshCandidates()
	c.bind(svcA)

	rows := c.menu.Players()
	if len(rows) != 2 {
		t.Fatalf("menu has %d rows, want 2", len(rows))
	}
	if !rows[0].Checked || rows[0].Service != svcA {
		t.Errorf("bound player row should be checked, got %+v", rows[0])
	}
	if rows[1].Checked {
		t.Errorf("unbound player row should not be checked, got %+v", rows[1])
	}
	if rows[1].DisplayName == "" {
		t.Error("rows should carry resolved display names")
	}
}
