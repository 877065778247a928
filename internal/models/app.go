package models

import "strings"

// Bullet prefixes every application name for display.
const Bullet = "• "

// App represents one launchable application parsed from a desktop entry
type App struct {
	Name        string `json:"name"`                  // Display name, bullet-prefixed
	Exec        string `json:"exec"`                  // Command line with field codes stripped
	Icon        string `json:"icon,omitempty"`        // Resolved icon path, or raw name if unresolved
	Description string `json:"description,omitempty"` // Comment field, verbatim
	Category    string `json:"category,omitempty"`    // Categories joined for display
	Keywords    string `json:"keywords,omitempty"`    // Keywords joined for matching
	Terminal    bool   `json:"terminal"`              // Needs a terminal emulator
	Source      string `json:"source"`                // Originating .desktop file
	Hidden      bool   `json:"-"`                     // NoDisplay=true, never persisted
}

// Launchable reports whether the app carries enough data to enter the menu
func (a *App) Launchable() bool {
	return a.Name != "" && a.Exec != "" && !a.Hidden
}

// PlainName returns the name without the display bullet
func (a *App) PlainName() string {
	return strings.TrimPrefix(a.Name, Bullet)
}

// Menu is the full application list, in discovery order
type Menu struct {
	Apps []App `json:"apps"`
}
