package arena

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Tuning defaults for an 800x800 arena. Friction must stay strictly inside
// (0, 1) or centers never settle.
const (
	DefaultSize     = 800.0
	DefaultMaxVel   = 15.0
	DefaultFriction = 0.97
	DefaultJitter   = 0.01
	DefaultSteer    = 0.5
	DefaultCenters  = 50

	DefaultPokeStrength = 1e5
	DefaultPokeCap      = 200.0

	// Distance floor for pokes, so a poke landing dead on a center stays
	// finite.
	pokeDistFloor = 0.001
)

// Params are the physics knobs for a Field. All lengths and speeds are in
// arena units per frame.
type Params struct {
	Width        float64
	Height       float64
	MaxVel       float64
	Friction     float64
	Jitter       float64
	Steer        float64
	PokeStrength float64
	PokeCap      float64
	Centers      int
}

func DefaultParams() Params {
	return Params{
		Width:        DefaultSize,
		Height:       DefaultSize,
		MaxVel:       DefaultMaxVel,
		Friction:     DefaultFriction,
		Jitter:       DefaultJitter,
		Steer:        DefaultSteer,
		PokeStrength: DefaultPokeStrength,
		PokeCap:      DefaultPokeCap,
		Centers:      DefaultCenters,
	}
}

// Bounds returns the arena rectangle, origin at the top left.
func (p Params) Bounds() r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: p.Width, Y: p.Height})
}

// Center is a point mass. Positions use screen convention, y growing down.
type Center struct {
	Pos r2.Point
	Vel r2.Point
}

// settle is one frame of damping: decay the velocity, zero any component
// below the jitter threshold, then cap the speed. The cap runs last so it
// always has the final word.
func (c *Center) settle(p Params) {
	c.Vel = c.Vel.Mul(p.Friction)
	if math.Abs(c.Vel.X) < p.Jitter {
		c.Vel.X = 0
	}
	if math.Abs(c.Vel.Y) < p.Jitter {
		c.Vel.Y = 0
	}
	c.Vel = clampVel(c.Vel, p.MaxVel)
}

// kick adds an impulse and re-applies the speed cap.
func (c *Center) kick(dv r2.Point, p Params) {
	c.Vel = clampVel(c.Vel.Add(dv), p.MaxVel)
}

// clampVel rescales v onto the speed cap when it exceeds it, preserving
// direction.
func clampVel(v r2.Point, max float64) r2.Point {
	if n := v.Norm(); n > max {
		return v.Mul(max / n)
	}
	return v
}

// Heading is the set of steering directions held during a frame.
type Heading uint8

const (
	HeadUp Heading = 1 << iota
	HeadDown
	HeadLeft
	HeadRight
)

// Field owns the moving centers and the user-steered focus.
type Field struct {
	Params   Params
	Centers  []Center
	Focus    Center
	Bouncing bool

	rng *rand.Rand
}

// New seeds the random source, rolls the initial centers and parks the
// focus at the arena midpoint.
func New(p Params, seed int64) *Field {
	f := &Field{
		Params:   p,
		Bouncing: true,
		Focus:    Center{Pos: r2.Point{X: p.Width / 2, Y: p.Height / 2}},
		rng:      rand.New(rand.NewSource(seed)),
	}
	f.Reset()
	return f
}

// Reset replaces the center set with freshly rolled ones at zero velocity.
// Spawn positions are inset from the walls by the speed cap so a newborn
// center cannot start out of bounds. The focus is left where it is.
func (f *Field) Reset() {
	p := f.Params
	f.Centers = make([]Center, p.Centers)
	for i := range f.Centers {
		f.Centers[i].Pos = r2.Point{
			X: p.MaxVel + f.rng.Float64()*(p.Width-2*p.MaxVel),
			Y: p.MaxVel + f.rng.Float64()*(p.Height-2*p.MaxVel),
		}
	}
}

// Add drops a new center at pos with zero velocity.
func (f *Field) Add(pos r2.Point) {
	f.Centers = append(f.Centers, Center{Pos: pos})
}

// Points returns the current center positions in order. The focus is not
// included.
func (f *Field) Points() []r2.Point {
	pts := make([]r2.Point, len(f.Centers))
	for i, c := range f.Centers {
		pts[i] = c.Pos
	}
	return pts
}

// MeanSpeed averages the center speeds. The focus is excluded since it is
// user-driven.
func (f *Field) MeanSpeed() float64 {
	if len(f.Centers) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range f.Centers {
		sum += c.Vel.Norm()
	}
	return sum / float64(len(f.Centers))
}

// Advance runs one frame of motion. With bouncing on, a center within one
// speed cap of a wall has that axis of its velocity reversed before it
// moves; anticipatory, not an exact collision test. With bouncing off,
// centers strictly outside the arena are deleted instead. Either way each
// survivor settles and then moves. The focus is stepped last.
func (f *Field) Advance(heading Heading) {
	p := f.Params
	if f.Bouncing {
		for i := range f.Centers {
			c := &f.Centers[i]
			if c.Pos.X < p.MaxVel || c.Pos.X > p.Width-p.MaxVel {
				c.Vel.X = -c.Vel.X
			}
			if c.Pos.Y < p.MaxVel || c.Pos.Y > p.Height-p.MaxVel {
				c.Vel.Y = -c.Vel.Y
			}
			c.settle(p)
			c.Pos = c.Pos.Add(c.Vel)
		}
	} else {
		kept := f.Centers[:0]
		for _, c := range f.Centers {
			if c.Pos.X < 0 || c.Pos.X > p.Width || c.Pos.Y < 0 || c.Pos.Y > p.Height {
				continue
			}
			c.settle(p)
			c.Pos = c.Pos.Add(c.Vel)
			kept = append(kept, c)
		}
		f.Centers = kept
	}

	f.moveFocus(heading)
}

// moveFocus steers or coasts the focus. Steering adds Steer per held
// direction and skips friction for the frame, so held keys accumulate
// speed up to the cap. A free focus settles like any other center. The
// position wraps toroidally on both axes.
func (f *Field) moveFocus(heading Heading) {
	p := f.Params
	if heading == 0 {
		f.Focus.settle(p)
	} else {
		var dv r2.Point
		if heading&HeadUp != 0 {
			dv.Y -= p.Steer
		}
		if heading&HeadDown != 0 {
			dv.Y += p.Steer
		}
		if heading&HeadLeft != 0 {
			dv.X -= p.Steer
		}
		if heading&HeadRight != 0 {
			dv.X += p.Steer
		}
		f.Focus.kick(dv, p)
	}
	f.Focus.Pos = f.Focus.Pos.Add(f.Focus.Vel)
	f.Focus.Pos.X = wrap(f.Focus.Pos.X, p.Width)
	f.Focus.Pos.Y = wrap(f.Focus.Pos.Y, p.Height)
}

// Poke shoves every center, and the focus, away from at. The impulse is
// inverse-square in the distance, capped at PokeCap, directed from the poke
// toward the center.
func (f *Field) Poke(at r2.Point) {
	for i := range f.Centers {
		f.Centers[i].kick(f.pokeImpulse(at, f.Centers[i].Pos), f.Params)
	}
	f.Focus.kick(f.pokeImpulse(at, f.Focus.Pos), f.Params)
}

func (f *Field) pokeImpulse(at, pos r2.Point) r2.Point {
	p := f.Params
	diff := pos.Sub(at)
	d := diff.Norm()
	if d < pokeDistFloor {
		d = pokeDistFloor
	}
	mag := p.PokeStrength / (d * d)
	if mag > p.PokeCap {
		mag = p.PokeCap
	}
	return diff.Mul(mag / d)
}

// wrap maps x into [0, limit) for either sign of x.
func wrap(x, limit float64) float64 {
	x = math.Mod(x, limit)
	if x < 0 {
		x += limit
	}
	return x
}
