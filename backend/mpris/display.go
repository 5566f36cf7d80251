package mpris

import (
	"strings"

	"github.com/dockapps/go-media-dock/ui"
)

// Bus-name fragments of players that register per-instance service names.
var knownPlayers = []struct {
	prefix string
	name   string
}{
	{"firefox.instance", "Firefox"},
	{"chromium.instance", "Chromium"},
	{"chrome.instance", "Chrome"},
	{"spotify.instance", "Spotify"},
	{"vlc.instance", "VLC"},
}

// displayName resolves a human-readable name for a service, cached until
// the service unregisters.
func (c *Controller) displayName(service string) string {
	if name, ok := c.names.Get(service); ok {
		return name
	}
	name := c.resolveDisplayName(service)
	c.names.Set(service, name)
	return name
}

// resolveDisplayName resolves in priority order: configured override,
// Identity property, DesktopEntry property, then bus-name fallback.
func (c *Controller) resolveDisplayName(service string) string {
	suffix := strings.TrimPrefix(service, MPRIS_PREFIX+".")

	if override, ok := c.cfg.NameOverrides[suffix]; ok && override != "" {
		return override
	}

	if probe, err := NewProxy(c.conn, service); err == nil {
		if identity, ok := probe.GetString(MPRIS_INTERFACE, PROP_IDENTITY); ok && identity != "" {
			return identity
		}
		if desktop, ok := probe.GetString(MPRIS_INTERFACE, PROP_DESKTOP_ENTRY); ok && desktop != "" {
			return capitalize(desktop)
		}
	}

	return fallbackDisplayName(suffix)
}

// fallbackDisplayName derives a name from the bus-name suffix alone.
func fallbackDisplayName(suffix string) string {
	for _, known := range knownPlayers {
		if strings.HasPrefix(suffix, known.prefix) {
			return known.name
		}
	}
	if strings.Contains(suffix, ".instance") {
		base, _, _ := strings.Cut(suffix, ".instance")
		return capitalize(base)
	}
	return capitalize(suffix)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildLabel formats the applet label shown by the panel.
func buildLabel(service, title, artist, displayName string) string {
	if service == "" {
		return "Media Controls: No player"
	}
	if title != "" {
		if artist != "" {
			return title + " - " + artist
		}
		return title
	}
	return "Media Controls: " + displayName
}

// trackInfoText formats the popup's track-info widget text.
func trackInfoText(title, artist string) string {
	if title == "" {
		return ui.NoMediaText
	}
	if artist == "" {
		return title
	}
	return title + "\n" + artist
}
