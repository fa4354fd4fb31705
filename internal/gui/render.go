package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/partition"
	"github.com/salt-die/soap/internal/view"
)

const (
	helpWidth  = 670
	helpHeight = 400
	helpInset  = 25
	helpStride = 25
	helpSize   = 20
	hudSize    = 14
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.Toggles.Fill {
		a.drawFill()
	}
	if a.Toggles.Outline {
		a.drawOutlines()
	}
	if a.Toggles.Centers {
		a.drawCenters()
	}
	a.drawHUD()
	if a.Toggles.Help {
		a.drawHelp()
	}

	rl.EndDrawing()
}

func (a *App) drawFill() {
	tr := palette.At(a.Toggles.Palette)
	for _, reg := range a.Regions {
		c := tr.Apply(palette.Rainbow(reg.Phase))
		rl.DrawTriangleFan(fanVerts(reg), rl.NewColor(c.R, c.G, c.B, 255))
	}
}

// fanVerts converts a region polygon for raylib, which only rasterizes
// fans wound counterclockwise in screen coordinates (y down). Polygons
// arriving clockwise get reversed.
func fanVerts(reg partition.Region) []rl.Vector2 {
	out := make([]rl.Vector2, len(reg.Verts))
	for i, v := range reg.Verts {
		out[i] = rl.NewVector2(float32(v.X), float32(v.Y))
	}
	if signedArea(reg.Verts) > 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// signedArea is the shoelace sum, positive when the polygon winds clockwise
// on screen.
func signedArea(verts []r2.Point) float64 {
	area := 0.0
	for i, p := range verts {
		area += p.Cross(verts[(i+1)%len(verts)])
	}
	return area
}

func (a *App) drawOutlines() {
	for _, reg := range a.Regions {
		n := len(reg.Verts)
		pts := make([]rl.Vector2, n+1)
		for i, v := range reg.Verts {
			pts[i] = rl.NewVector2(float32(v.X), float32(v.Y))
		}
		pts[n] = pts[0]
		rl.DrawLineStrip(pts, ColEdge)
	}
}

func (a *App) drawCenters() {
	for _, c := range a.Field.Centers {
		rl.DrawCircle(int32(c.Pos.X), int32(c.Pos.Y), 3, ColCenter)
	}
	f := a.Field.Focus.Pos
	rl.DrawCircle(int32(f.X), int32(f.Y), 5, ColFocus)
}

func (a *App) drawHelp() {
	w := int32(a.Field.Params.Width)
	h := int32(a.Field.Params.Height)
	x := (w - helpWidth) / 2
	y := (h - helpHeight) / 2
	rl.DrawRectangle(x, y, helpWidth, helpHeight, ColHelpBg)
	for i, line := range view.HelpLines {
		a.drawText(line, int(x)+helpInset, int(y)+16+helpStride*i, helpSize, ColText)
	}
}

func (a *App) drawHUD() {
	mode := partition.ModeFor(a.Toggles.Dual)
	pal := palette.At(a.Toggles.Palette)
	label := fmt.Sprintf("%d centers :: %s :: %s", len(a.Field.Centers), mode, pal.Name)
	bottom := int(a.Field.Params.Height) - 24

	a.drawText(label, 10, bottom, hudSize, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int(a.Field.Params.Width)-70, bottom, hudSize, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
