// Package palette maps region phases to colors: a sine-wave rainbow base
// plus a set of fixed channel remappings the user can cycle through.
package palette

import "math"

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// freq scales a phase (a distance or an area in arena units) onto the sine
// argument; one full hue cycle spans about 628 phase units.
const freq = 0.01

var channelOffsets = [3]float64{0, 2 * math.Pi / 3, 4 * math.Pi / 3}

// Rainbow maps a phase to its base color: each channel is a sine of the
// phase, offset a third of a turn from its neighbors, scaled into [1, 255].
func Rainbow(phase float64) RGB {
	var c [3]uint8
	for i, off := range channelOffsets {
		c[i] = uint8(math.Round(127*math.Sin(freq*phase+off) + 128))
	}
	return RGB{R: c[0], G: c[1], B: c[2]}
}

// Transform remaps a base rainbow color into one of the fixed looks.
type Transform struct {
	Name  string
	Apply func(RGB) RGB
}

// Transforms is the palette cycle, in order.
var Transforms = []Transform{
	{"rainbow", func(c RGB) RGB { return c }},
	{"ice", func(c RGB) RGB { return RGB{c.R, c.R, 255} }},
	{"dusk", func(c RGB) RGB { return RGB{c.R, c.G, 155} }},
	{"moss", func(c RGB) RGB { return RGB{c.R, c.G, c.G} }},
	{"mono", func(c RGB) RGB { return RGB{c.R, c.R, c.R} }},
	{"plum", func(c RGB) RGB { return RGB{c.R, c.R, c.B} }},
	{"ember", func(c RGB) RGB { return RGB{155, 100, c.R} }},
}

// Next advances a palette index with wraparound.
func Next(i int) int {
	return (i + 1) % len(Transforms)
}

// At returns the transform at index i; out-of-range indices fall back to
// the rainbow.
func At(i int) Transform {
	if i < 0 || i >= len(Transforms) {
		return Transforms[0]
	}
	return Transforms[i]
}

// ByName resolves a palette name to its cycle index; unknown names map to
// the rainbow.
func ByName(name string) int {
	for i, t := range Transforms {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// Names lists the palettes in cycle order.
func Names() []string {
	names := make([]string, len(Transforms))
	for i, t := range Transforms {
		names[i] = t.Name
	}
	return names
}
