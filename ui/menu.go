package ui

import "sync"

const (
	NoMediaText  = "No media playing"
	PlayText     = "Play"
	PauseText    = "Pause"
	NoPlayerText = "No players available"
)

// Entry is a single menu widget the core drives through the Control
// interface. Hosts read its state when rendering.
type Entry struct {
	mu      sync.Mutex
	text    string
	enabled bool
	value   int
}

func NewEntry(text string, enabled bool) *Entry {
	return &Entry{text: text, enabled: enabled}
}

func (e *Entry) SetEnabled(enabled bool) {
	e.mu.Lock()
	e.enabled = enabled
	e.mu.Unlock()
}

func (e *Entry) SetText(text string) {
	e.mu.Lock()
	e.text = text
	e.mu.Unlock()
}

func (e *Entry) SetValue(value int) {
	e.mu.Lock()
	e.value = value
	e.mu.Unlock()
}

func (e *Entry) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

func (e *Entry) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *Entry) Value() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// PlayerEntry is one checkable row of the player selection submenu.
type PlayerEntry struct {
	Service     string
	DisplayName string
	Checked     bool
}

// Menu models the applet popup: player submenu, track info, seek slider
// and transport entries. The core mutates it, the host renders it.
type Menu struct {
	mu      sync.Mutex
	players []PlayerEntry

	TrackInfo *Entry
	Slider    *Entry
	Previous  *Entry
	PlayPause *Entry
	Next      *Entry
}

// NewMenu returns a menu in its unbound state: transport and slider
// disabled, no track info.
func NewMenu() *Menu {
	return &Menu{
		TrackInfo: NewEntry(NoMediaText, true),
		Slider:    NewEntry("", false),
		Previous:  NewEntry("Previous", false),
		PlayPause: NewEntry(PlayText, false),
		Next:      NewEntry("Next", false),
	}
}

// SetPlayers replaces the player submenu rows.
func (m *Menu) SetPlayers(players []PlayerEntry) {
	m.mu.Lock()
	m.players = append([]PlayerEntry(nil), players...)
	m.mu.Unlock()
}

// Players returns a snapshot of the player submenu rows. An empty result
// means the host should render the disabled NoPlayerText placeholder.
func (m *Menu) Players() []PlayerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PlayerEntry(nil), m.players...)
}

// SetTransportEnabled flips the previous/play-pause/next entries together.
func (m *Menu) SetTransportEnabled(enabled bool) {
	m.Previous.SetEnabled(enabled)
	m.PlayPause.SetEnabled(enabled)
	m.Next.SetEnabled(enabled)
}
