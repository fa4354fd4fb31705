package partition

import (
	"github.com/fogleman/delaunay"
	"github.com/golang/geo/r2"
)

// BuildDelaunay triangulates the sites directly. Every triangle becomes a
// region whose phase is its area, so similar-sized triangles share a hue.
// It needs at least three distinct, non-collinear sites.
func BuildDelaunay(sites []r2.Point) ([]Region, error) {
	if err := checkSites(sites, 3); err != nil {
		return nil, &BuildError{Mode: ModeDelaunay, Sites: len(sites), Wrapped: err}
	}

	pts := make([]delaunay.Point, len(sites))
	for i, p := range sites {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, &BuildError{Mode: ModeDelaunay, Sites: len(sites), Wrapped: ErrDegenerate}
	}

	regions := make([]Region, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		verts := []r2.Point{
			sites[tri.Triangles[i]],
			sites[tri.Triangles[i+1]],
			sites[tri.Triangles[i+2]],
		}
		regions = append(regions, Region{Verts: verts, Phase: HullArea(verts)})
	}
	return regions, nil
}
