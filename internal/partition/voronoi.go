package partition

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pzsz/voronoi"
)

// vertexEps collapses floating-point twins when deduplicating sites and
// polygon corners.
const vertexEps = 1e-9

// collinearEps bounds the cross product below which three sites count as
// collinear. Site coordinates are arena-sized, so genuine triangles have
// cross products orders of magnitude above this.
const collinearEps = 1e-9

// BuildVoronoi computes one convex cell per site, clipped and closed at the
// arena bounds so every returned polygon is finite. It needs at least four
// distinct sites spanning two dimensions; sparser input gets an error, not
// a crash.
func BuildVoronoi(sites []r2.Point, focus r2.Point, bounds r2.Rect) ([]Region, error) {
	if err := checkSites(sites, 4); err != nil {
		return nil, &BuildError{Mode: ModeVoronoi, Sites: len(sites), Wrapped: err}
	}

	vs := make([]voronoi.Vertex, len(sites))
	for i, p := range sites {
		vs[i] = voronoi.Vertex{X: p.X, Y: p.Y}
	}
	bbox := voronoi.NewBBox(bounds.X.Lo, bounds.X.Hi, bounds.Y.Lo, bounds.Y.Hi)
	diagram := voronoi.ComputeDiagram(vs, bbox, true)

	regions := make([]Region, 0, len(diagram.Cells))
	for _, cell := range diagram.Cells {
		verts := cellPolygon(cell)
		if len(verts) < 3 {
			continue
		}
		site := r2.Point{X: cell.Site.X, Y: cell.Site.Y}
		regions = append(regions, Region{
			Site:  site,
			Verts: verts,
			Phase: site.Sub(focus).Norm(),
		})
	}
	return regions, nil
}

// cellPolygon walks a cell's angle-sorted halfedges and collects their
// start points, dropping duplicate corners the clipping step can leave
// behind.
func cellPolygon(cell *voronoi.Cell) []r2.Point {
	verts := make([]r2.Point, 0, len(cell.Halfedges))
	for _, he := range cell.Halfedges {
		v := he.GetStartpoint()
		p := r2.Point{X: v.X, Y: v.Y}
		if n := len(verts); n > 0 && p.Sub(verts[n-1]).Norm() < vertexEps {
			continue
		}
		verts = append(verts, p)
	}
	if n := len(verts); n > 1 && verts[n-1].Sub(verts[0]).Norm() < vertexEps {
		verts = verts[:n-1]
	}
	return verts
}

// checkSites enforces the builder preconditions: at least minSites distinct
// points, not all on one line.
func checkSites(sites []r2.Point, minSites int) error {
	distinct := make([]r2.Point, 0, len(sites))
outer:
	for _, p := range sites {
		for _, q := range distinct {
			if p.Sub(q).Norm() < vertexEps {
				continue outer
			}
		}
		distinct = append(distinct, p)
	}
	if len(distinct) < minSites {
		return ErrTooFewSites
	}
	if collinear(distinct) {
		return ErrDegenerate
	}
	return nil
}

// collinear reports whether every point sits on the line through the first
// two.
func collinear(pts []r2.Point) bool {
	if len(pts) < 3 {
		return true
	}
	base := pts[1].Sub(pts[0])
	for _, p := range pts[2:] {
		if math.Abs(base.Cross(p.Sub(pts[0]))) > collinearEps {
			return false
		}
	}
	return true
}
