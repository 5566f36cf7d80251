package ui

import "github.com/dockapps/go-media-dock/logger"

// ConsoleHost is a Host for running the applet core standalone, outside a
// panel. It only logs what a panel would render.
type ConsoleHost struct{}

func (ConsoleHost) RequestRedraw() {
	logger.Debug("[ui] redraw requested")
}

func (ConsoleHost) SetPopupVisible(visible bool) {
	logger.Debug("[ui] popup visible: %v", visible)
}

func (ConsoleHost) AddSettingsEntries(menu *Menu) {
	logger.Debug("[ui] settings entries requested")
}
