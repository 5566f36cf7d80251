package ui

// Button identifies a pointer button on the applet surface.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// Control is the capability a menu widget exposes to the applet core.
// The core only ever enables/disables widgets and pushes text or values;
// rendering belongs to the host toolkit.
type Control interface {
	SetEnabled(enabled bool)
	SetText(text string)
	SetValue(value int)
}

// Host is implemented by the panel embedding the applet.
type Host interface {
	// RequestRedraw asks the panel to repaint the applet surface.
	RequestRedraw()
	// SetPopupVisible shows or hides the applet popup menu.
	SetPopupVisible(visible bool)
	// AddSettingsEntries lets the panel inject its generic settings
	// entries at the bottom of the applet menu.
	AddSettingsEntries(menu *Menu)
}
