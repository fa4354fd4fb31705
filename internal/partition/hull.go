package partition

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// HullArea returns the area enclosed by the convex hull of pts. Fewer than
// three distinct points enclose nothing and yield zero.
func HullArea(pts []r2.Point) float64 {
	hull := convexHull(pts)
	if len(hull) < 3 {
		return 0
	}
	area := 0.0
	for i, p := range hull {
		area += p.Cross(hull[(i+1)%len(hull)])
	}
	return math.Abs(area) / 2
}

// convexHull is Andrew's monotone chain. The hull comes back in winding
// order without repeating the first point; collinear points are dropped.
func convexHull(pts []r2.Point) []r2.Point {
	if len(pts) < 3 {
		return nil
	}
	sorted := make([]r2.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var hull []r2.Point
	for _, p := range sorted {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], sorted[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, sorted[i])
	}
	return hull[:len(hull)-1]
}

// turn is the cross product of ab with ac, positive for a left turn.
func turn(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
