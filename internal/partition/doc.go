// Package partition turns a frame's point set into drawable regions:
// Voronoi cells clipped to the arena, or the dual Delaunay triangles of the
// points themselves.
//
// Degenerate input is a fact of life here, not a bug: the user can delete
// centers down to nothing or pile them onto one spot. The builders report
// [ErrTooFewSites] and [ErrDegenerate] through a [BuildError], and the
// [Build] wrapper flattens those into an empty region list so a frame loop
// can simply draw nothing.
package partition
