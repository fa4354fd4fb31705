// Package experiment drives the frame pipeline without a window: physics,
// then partition, with scripted pokes standing in for the mouse. Runs are
// deterministic per seed, which makes them usable for benchmarks and for
// the spectrum analysis.
package experiment

import (
	"context"
	"math/rand"
	"time"

	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/partition"
)

// Config describes one headless run.
type Config struct {
	Frames int
	Seed   int64
	Params arena.Params
	Dual   bool

	// FocusCell adds the focus to the site set, as the GUI does.
	FocusCell bool

	// PokeEvery is the scripted poke cadence in frames; zero disables
	// pokes.
	PokeEvery int
}

// Result holds the per-frame telemetry, one entry per simulated frame, and
// the final field state.
type Result struct {
	MeanSpeed []float64
	Regions   []int
	BuildTime []time.Duration
	Field     *arena.Field
}

// Run simulates cfg.Frames frames. Scripted pokes land at seeded random
// arena positions, so a fixed seed replays the identical run. The context
// is checked between frames; a canceled run returns what it has alongside
// the context's error.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	field := arena.New(cfg.Params, cfg.Seed)
	// Pokes draw from their own stream so the spawn layout stays a pure
	// function of the seed.
	pokes := rand.New(rand.NewSource(cfg.Seed + 1))
	mode := partition.ModeFor(cfg.Dual)
	bounds := cfg.Params.Bounds()

	res := &Result{
		MeanSpeed: make([]float64, 0, cfg.Frames),
		Regions:   make([]int, 0, cfg.Frames),
		BuildTime: make([]time.Duration, 0, cfg.Frames),
	}

	for frame := 0; frame < cfg.Frames; frame++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if cfg.PokeEvery > 0 && frame%cfg.PokeEvery == 0 {
			field.Poke(r2.Point{
				X: pokes.Float64() * cfg.Params.Width,
				Y: pokes.Float64() * cfg.Params.Height,
			})
		}
		field.Advance(0)

		sites := field.Points()
		if cfg.FocusCell {
			sites = append(sites, field.Focus.Pos)
		}
		start := time.Now()
		regions := partition.Build(mode, sites, field.Focus.Pos, bounds)
		res.BuildTime = append(res.BuildTime, time.Since(start))

		res.Regions = append(res.Regions, len(regions))
		res.MeanSpeed = append(res.MeanSpeed, field.MeanSpeed())
	}

	res.Field = field
	return res, nil
}
