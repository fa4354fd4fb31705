// Package export renders a frame to a standalone SVG document.
package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/partition"
	"github.com/salt-die/soap/internal/view"
)

// WriteSVG draws one frame the way the GUI would: gray backdrop, filled
// and outlined regions per the toggles, then center and focus markers.
func WriteSVG(w io.Writer, regions []partition.Region, centers []r2.Point, focus r2.Point, t view.Toggles, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(63,63,63)")

	if t.Fill || t.Outline {
		tr := palette.At(t.Palette)
		for _, reg := range regions {
			xs := make([]int, len(reg.Verts))
			ys := make([]int, len(reg.Verts))
			for i, v := range reg.Verts {
				xs[i] = int(v.X)
				ys[i] = int(v.Y)
			}
			canvas.Polygon(xs, ys, regionStyle(reg, tr, t))
		}
	}

	if t.Centers {
		for _, c := range centers {
			canvas.Circle(int(c.X), int(c.Y), 3, "fill:white")
		}
		canvas.Circle(int(focus.X), int(focus.Y), 5, "fill:black")
	}

	canvas.End()
}

func regionStyle(reg partition.Region, tr palette.Transform, t view.Toggles) string {
	style := "fill:none"
	if t.Fill {
		c := tr.Apply(palette.Rainbow(reg.Phase))
		style = fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	if t.Outline {
		style += ";stroke:white;stroke-width:1"
	}
	return style
}
