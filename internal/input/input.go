// Package input resolves user gestures into tagged actions and applies
// them to the simulation. Frontends translate their raw key codes into a
// [Key] once at the boundary; everything downstream of [Bindings] is
// backend-agnostic.
package input

import (
	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/view"
)

// Key is a logical key identity.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyR
	KeyV
	KeyB
	KeyF
	KeyO
	KeyH
	KeyUp
	KeySpace
	KeyQ
)

// Action is a tagged state mutation. Every gesture resolves to exactly one
// Action before it touches the simulation.
type Action int

const (
	NoAction Action = iota
	Quit
	Reset
	ToggleDual
	ToggleBounce
	ToggleFill
	ToggleOutline
	ToggleCenters
	ToggleHelp
	CyclePalette
	PokeFocus
	PokeAt
	SpawnAt
)

// Bindings is the key dispatch table. Steering is not in here: held keys
// are sampled per frame as an [arena.Heading], not dispatched as events.
var Bindings = map[Key]Action{
	KeyEscape: ToggleHelp,
	KeyR:      Reset,
	KeyV:      ToggleDual,
	KeyB:      ToggleBounce,
	KeyF:      ToggleFill,
	KeyO:      ToggleOutline,
	KeyH:      ToggleCenters,
	KeyUp:     CyclePalette,
	KeySpace:  PokeFocus,
	KeyQ:      Quit,
}

// Event is one resolved gesture. At carries the cursor position for the
// mouse actions and is ignored otherwise.
type Event struct {
	Action Action
	At     r2.Point
}

// Apply runs one event against the field and view state. It reports
// whether the frontend should stop its loop.
func Apply(ev Event, f *arena.Field, t *view.Toggles) bool {
	switch ev.Action {
	case Quit:
		return true
	case Reset:
		f.Reset()
	case ToggleDual:
		t.Dual = !t.Dual
	case ToggleBounce:
		f.Bouncing = !f.Bouncing
	case ToggleFill:
		t.Fill = !t.Fill
	case ToggleOutline:
		t.Outline = !t.Outline
	case ToggleCenters:
		t.Centers = !t.Centers
	case ToggleHelp:
		t.Help = !t.Help
	case CyclePalette:
		t.Palette = palette.Next(t.Palette)
	case PokeFocus:
		f.Poke(f.Focus.Pos)
	case PokeAt:
		f.Poke(ev.At)
	case SpawnAt:
		f.Add(ev.At)
	}
	return false
}
