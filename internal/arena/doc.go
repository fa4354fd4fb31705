// Package arena holds the moving point set behind the picture: a flock of
// centers coasting around a rectangle with friction, a speed cap, and walls
// that either bounce or swallow, plus one user-steered focus point that
// wraps toroidally instead of bouncing.
//
// A [Field] is stepped once per frame with [Field.Advance] and disturbed
// with [Field.Poke], which shoves every center away from a point with an
// inverse-square impulse. The partition layer consumes [Field.Points] and
// never sees velocities.
package arena
