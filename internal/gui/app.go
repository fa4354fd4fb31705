package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/config"
	"github.com/salt-die/soap/internal/input"
	"github.com/salt-die/soap/internal/partition"
	"github.com/salt-die/soap/internal/view"
)

// Theme Colors (fixed toy look)
var (
	ColBg      = rl.NewColor(63, 63, 63, 255)    // Soap-film gray
	ColEdge    = rl.NewColor(255, 255, 255, 255) // Cell outlines
	ColCenter  = rl.NewColor(255, 255, 255, 255) // Center markers
	ColFocus   = rl.NewColor(0, 0, 0, 255)       // Focus marker
	ColHelpBg  = rl.NewColor(0, 0, 0, 140)       // Translucent help backdrop
	ColText    = rl.NewColor(255, 255, 255, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
)

// keyTable translates raylib key codes into logical keys exactly once, in a
// fixed order so same-frame presses resolve deterministically.
var keyTable = []struct {
	Code int32
	Key  input.Key
}{
	{rl.KeyEscape, input.KeyEscape},
	{rl.KeyR, input.KeyR},
	{rl.KeyV, input.KeyV},
	{rl.KeyB, input.KeyB},
	{rl.KeyF, input.KeyF},
	{rl.KeyO, input.KeyO},
	{rl.KeyH, input.KeyH},
	{rl.KeyUp, input.KeyUp},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyQ, input.KeyQ},
}

type App struct {
	Field   *arena.Field
	Toggles view.Toggles
	Regions []partition.Region

	FocusCell bool
	Bounds    r2.Rect
	Font      rl.Font
	Quit      bool
}

// initWindow opens the arena-sized window, sets the target FPS, and
// disables the default exit key so escape can drive the help menu instead.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "soap")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// loadFont loads the Liberation Mono font from the system path and enables
// bilinear texture filtering.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds the app from a validated config. The window must already
// be open, since the font loads into a texture.
func NewApp(cfg *config.Config) *App {
	field := arena.New(cfg.Params(), cfg.Seed)
	field.Bouncing = cfg.Bouncing
	return &App{
		Field:     field,
		Toggles:   cfg.Toggles(),
		FocusCell: cfg.FocusCell,
		Bounds:    cfg.Params().Bounds(),
		Font:      loadFont(),
	}
}

// Run opens the window and blocks in the frame loop until quit.
func Run(cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.Quit {
		a.Update()
		a.Draw()
	}
}

// Update drains this frame's input, steps the physics, and rebuilds the
// partition. Discrete events land first, then held steering keys, then
// motion.
func (a *App) Update() {
	for _, kb := range keyTable {
		if rl.IsKeyPressed(kb.Code) {
			ev := input.Event{Action: input.Bindings[kb.Key]}
			if input.Apply(ev, a.Field, &a.Toggles) {
				a.Quit = true
				return
			}
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		input.Apply(input.Event{Action: input.PokeAt, At: mousePoint()}, a.Field, &a.Toggles)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		input.Apply(input.Event{Action: input.SpawnAt, At: mousePoint()}, a.Field, &a.Toggles)
	}

	a.Field.Advance(heading())

	if a.Toggles.Fill || a.Toggles.Outline {
		sites := a.Field.Points()
		if a.FocusCell {
			sites = append(sites, a.Field.Focus.Pos)
		}
		mode := partition.ModeFor(a.Toggles.Dual)
		a.Regions = partition.Build(mode, sites, a.Field.Focus.Pos, a.Bounds)
	} else {
		a.Regions = nil
	}
}

// heading samples the held steering keys.
func heading() arena.Heading {
	var h arena.Heading
	if rl.IsKeyDown(rl.KeyW) {
		h |= arena.HeadUp
	}
	if rl.IsKeyDown(rl.KeyS) {
		h |= arena.HeadDown
	}
	if rl.IsKeyDown(rl.KeyA) {
		h |= arena.HeadLeft
	}
	if rl.IsKeyDown(rl.KeyD) {
		h |= arena.HeadRight
	}
	return h
}

func mousePoint() r2.Point {
	pos := rl.GetMousePosition()
	return r2.Point{X: float64(pos.X), Y: float64(pos.Y)}
}
