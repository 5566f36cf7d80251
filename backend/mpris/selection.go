package mpris

import "github.com/dockapps/go-media-dock/logger"

// probeStatus reads the playback status of a candidate through a
// short-lived probe proxy. A failed probe is indistinguishable from a
// stopped player to the selection heuristics.
func (c *Controller) probeStatus(service string) (PlaybackStatus, error) {
	probe, err := NewProxy(c.conn, service)
	if err != nil {
		return StatusStopped, err
	}
	return probe.PlaybackStatus()
}

// selectBest picks the candidate to bind to.
//
// A single candidate wins unconditionally, without probing. With several,
// candidates are probed in enumeration order: the first one found Playing
// wins immediately and no further probes are issued. Otherwise a Paused
// candidate beats a Stopped one (the running best is only ever upgraded
// from Stopped to Paused, never demoted), with the first probed candidate
// as the initial best. Probe failures skip the candidate.
func (c *Controller) selectBest(candidates []Candidate) (string, bool) {
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0].Service, true
	}

	best := ""
	bestStatus := StatusStopped

	for _, cand := range candidates {
		status, err := c.probeStatus(cand.Service)
		if err != nil {
			logger.Debug("[mpris] probe failed for %s: %v", cand.Service, err)
			continue
		}

		switch {
		case status == StatusPlaying:
			return cand.Service, true
		case status == StatusPaused && bestStatus == StatusStopped:
			best = cand.Service
			bestStatus = status
		case best == "":
			best = cand.Service
			bestStatus = status
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// checkForBetterPlayer rebinds to another candidate that started playing
// while the bound one is not. Paused candidates are deliberately ignored:
// switching on mere pause-state changes would make the binding flap.
func (c *Controller) checkForBetterPlayer() {
	if c.state.Status == StatusPlaying {
		return
	}

	for _, cand := range c.candidates {
		if cand.Service == c.state.Service {
			continue
		}

		status, err := c.probeStatus(cand.Service)
		if err != nil {
			continue
		}

		if status == StatusPlaying {
			logger.Debug("[mpris] switching to playing player %s", cand.Service)
			c.bind(cand.Service)
			return
		}
	}
}
