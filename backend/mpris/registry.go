package mpris

import (
	"strings"

	idbus "github.com/dockapps/go-media-dock/backend/internal/dbus"
	"github.com/dockapps/go-media-dock/logger"
)

// discover lists all registered bus names and keeps MPRIS players,
// preserving bus enumeration order. A bus failure yields an empty set;
// callers treat that as "no players", not as an error.
func (c *Controller) discover() []Candidate {
	names, err := idbus.ListNames(c.conn)
	if err != nil {
		logger.Debug("[mpris] ListNames failed: %v", err)
		return nil
	}

	var candidates []Candidate
	for _, name := range names {
		if strings.HasPrefix(name, MPRIS_PREFIX+".") {
			candidates = append(candidates, Candidate{Service: name})
		}
	}
	return candidates
}

func containsService(candidates []Candidate, service string) bool {
	for _, cand := range candidates {
		if cand.Service == service {
			return true
		}
	}
	return false
}
