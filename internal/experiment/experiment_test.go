package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/salt-die/soap/internal/arena"
)

func testConfig() Config {
	p := arena.DefaultParams()
	p.Centers = 20
	return Config{
		Frames:    30,
		Seed:      42,
		Params:    p,
		FocusCell: true,
		PokeEvery: 10,
	}
}

func TestRunSeriesLengths(t *testing.T) {
	res, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.MeanSpeed) != 30 || len(res.Regions) != 30 || len(res.BuildTime) != 30 {
		t.Fatalf("expected 30 samples per series, got %d/%d/%d",
			len(res.MeanSpeed), len(res.Regions), len(res.BuildTime))
	}
	if res.Field == nil {
		t.Fatal("expected the final field state")
	}
	if len(res.Field.Centers) != 20 {
		t.Errorf("expected 20 centers to survive, got %d", len(res.Field.Centers))
	}
}

func TestRunBuildsRegions(t *testing.T) {
	res, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 20 centers plus the focus cell.
	for i, n := range res.Regions {
		if n != 21 {
			t.Errorf("frame %d built %d regions, want 21", i, n)
		}
	}
}

func TestRunPokesStirTheField(t *testing.T) {
	res, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.MeanSpeed[0] == 0 {
		t.Error("expected the frame-0 poke to move the centers")
	}
}

func TestRunWithoutPokesStaysStill(t *testing.T) {
	cfg := testConfig()
	cfg.PokeEvery = 0

	res, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, s := range res.MeanSpeed {
		if s != 0 {
			t.Fatalf("frame %d has mean speed %g with pokes disabled", i, s)
		}
	}
}

func TestRunDeterministicPerSeed(t *testing.T) {
	a, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := range a.MeanSpeed {
		if a.MeanSpeed[i] != b.MeanSpeed[i] {
			t.Fatalf("frame %d: speeds diverge between same-seed runs: %g vs %g",
				i, a.MeanSpeed[i], b.MeanSpeed[i])
		}
		if a.Regions[i] != b.Regions[i] {
			t.Fatalf("frame %d: region counts diverge: %d vs %d", i, a.Regions[i], b.Regions[i])
		}
	}
}

func TestRunDualMode(t *testing.T) {
	cfg := testConfig()
	cfg.Dual = true

	res, err := Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// A triangulation of n sites has at most 2n triangles; mostly it hugs
	// that bound from below.
	for i, n := range res.Regions {
		if n < 1 || n > 2*21 {
			t.Errorf("frame %d built %d triangles, outside (0, 42]", i, n)
		}
	}
}

func TestRunHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, testConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(res.MeanSpeed) != 0 {
		t.Errorf("expected no frames after immediate cancel, got %d", len(res.MeanSpeed))
	}
}
