// Package view holds the display state shared by every frontend.
package view

// Toggles is the frame loop's view state: what gets drawn and with which
// palette. Physics state, like bouncing, lives on the field instead.
type Toggles struct {
	Dual    bool
	Fill    bool
	Outline bool
	Centers bool
	Help    bool
	Palette int
}

// Defaults is the startup look: filled, outlined cells with the help menu
// open.
func Defaults() Toggles {
	return Toggles{Fill: true, Outline: true, Help: true}
}

// HelpLines is the help overlay text, rendered verbatim by each frontend.
var HelpLines = []string{
	"left-click to poke the centers",
	"right-click to create a new center",
	"w,a,s,d moves the color center",
	"space creates a poke at the color center's location",
	"----------------------------------",
	"Options:",
	"esc -- Toggles this menu",
	"r   -- Reset centers",
	"v   -- Toggle Voronoi dual",
	"b   -- Toggle bouncing (delete out-of-bound centers)",
	"f   -- Toggle fill of Voronoi cells",
	"o   -- Toggle outline of Voronoi cells",
	"h   -- Toggle showing centers of Voronoi cells",
	"up  -- Cycle through color palettes",
	"q   -- Quit",
}
