package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/partition"
	"github.com/salt-die/soap/internal/view"
)

func testRegions() []partition.Region {
	sites := []r2.Point{
		{X: 100, Y: 100}, {X: 700, Y: 100}, {X: 700, Y: 700}, {X: 100, Y: 700}, {X: 400, Y: 400},
	}
	bounds := r2.RectFromPoints(r2.Point{}, r2.Point{X: 800, Y: 800})
	return partition.Build(partition.ModeVoronoi, sites, r2.Point{X: 400, Y: 400}, bounds)
}

func TestWriteSVGFrame(t *testing.T) {
	var buf bytes.Buffer
	tg := view.Defaults()
	tg.Centers = true

	WriteSVG(&buf, testRegions(), []r2.Point{{X: 10, Y: 20}}, r2.Point{X: 400, Y: 400}, tg, 800, 800)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an svg document")
	}
	if !strings.Contains(out, "fill:rgb(63,63,63)") {
		t.Error("missing the backdrop")
	}
	if got := strings.Count(out, "<polygon"); got != 5 {
		t.Errorf("expected 5 region polygons, got %d", got)
	}
	if !strings.Contains(out, "stroke:white") {
		t.Error("outline style missing")
	}
	// One white marker per center plus the black focus.
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("expected 2 markers, got %d", got)
	}
}

func TestWriteSVGHonorsToggles(t *testing.T) {
	var buf bytes.Buffer
	tg := view.Toggles{} // everything off

	WriteSVG(&buf, testRegions(), nil, r2.Point{}, tg, 800, 800)

	out := buf.String()
	if strings.Contains(out, "<polygon") {
		t.Error("expected no polygons with fill and outline off")
	}
	if strings.Contains(out, "<circle") {
		t.Error("expected no markers with centers off")
	}
}
