package partition

import (
	"github.com/golang/geo/r2"
)

// Mode selects which geometry a frame builds from its sites.
type Mode int

const (
	// ModeVoronoi partitions the arena into one convex cell per site.
	ModeVoronoi Mode = iota
	// ModeDelaunay triangulates the sites themselves, the Voronoi dual.
	ModeDelaunay
)

func (m Mode) String() string {
	if m == ModeDelaunay {
		return "delaunay"
	}
	return "voronoi"
}

// ModeFor maps the dual-view toggle to a Mode.
func ModeFor(dual bool) Mode {
	if dual {
		return ModeDelaunay
	}
	return ModeVoronoi
}

// Region is one drawable patch: an ordered convex polygon, the site that
// generated it (zero value in dual mode), and the scalar phase that keys
// its color. In Voronoi mode the phase is the site's distance to the focus;
// in dual mode it is the triangle's area.
type Region struct {
	Site  r2.Point
	Verts []r2.Point
	Phase float64
}

// Build produces the frame's regions, flattening degenerate-input errors
// into an empty list. Too few, coincident, or collinear sites are the
// expected recoverable case; the frame simply has nothing to draw.
func Build(mode Mode, sites []r2.Point, focus r2.Point, bounds r2.Rect) []Region {
	var (
		regions []Region
		err     error
	)
	if mode == ModeDelaunay {
		regions, err = BuildDelaunay(sites)
	} else {
		regions, err = BuildVoronoi(sites, focus, bounds)
	}
	if err != nil {
		return nil
	}
	return regions
}
