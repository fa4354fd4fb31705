package input

import (
	"testing"

	"github.com/golang/geo/r2"

	"github.com/salt-die/soap/internal/arena"
	"github.com/salt-die/soap/internal/palette"
	"github.com/salt-die/soap/internal/view"
)

func newTestField() *arena.Field {
	return arena.New(arena.DefaultParams(), 1)
}

func TestEveryHelpKeyIsBound(t *testing.T) {
	keys := []Key{KeyEscape, KeyR, KeyV, KeyB, KeyF, KeyO, KeyH, KeyUp, KeySpace, KeyQ}
	for _, k := range keys {
		if _, ok := Bindings[k]; !ok {
			t.Errorf("key %d has no binding", k)
		}
	}
	if _, ok := Bindings[KeyNone]; ok {
		t.Error("KeyNone must stay unbound")
	}
}

func TestApplyTogglesFlipAndRestore(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		read   func(f *arena.Field, v *view.Toggles) bool
	}{
		{"dual", ToggleDual, func(_ *arena.Field, v *view.Toggles) bool { return v.Dual }},
		{"bounce", ToggleBounce, func(f *arena.Field, _ *view.Toggles) bool { return f.Bouncing }},
		{"fill", ToggleFill, func(_ *arena.Field, v *view.Toggles) bool { return v.Fill }},
		{"outline", ToggleOutline, func(_ *arena.Field, v *view.Toggles) bool { return v.Outline }},
		{"centers", ToggleCenters, func(_ *arena.Field, v *view.Toggles) bool { return v.Centers }},
		{"help", ToggleHelp, func(_ *arena.Field, v *view.Toggles) bool { return v.Help }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField()
			v := view.Defaults()
			before := tt.read(f, &v)

			if quit := Apply(Event{Action: tt.action}, f, &v); quit {
				t.Fatal("a toggle must not quit")
			}
			if tt.read(f, &v) == before {
				t.Fatal("flag did not flip")
			}
			Apply(Event{Action: tt.action}, f, &v)
			if tt.read(f, &v) != before {
				t.Error("second toggle did not restore the flag")
			}
		})
	}
}

func TestApplyQuit(t *testing.T) {
	f := newTestField()
	v := view.Defaults()
	if !Apply(Event{Action: Quit}, f, &v) {
		t.Error("expected Quit to stop the loop")
	}
	if Apply(Event{Action: NoAction}, f, &v) {
		t.Error("expected NoAction to keep running")
	}
}

func TestApplyReset(t *testing.T) {
	f := newTestField()
	v := view.Defaults()
	f.Centers = f.Centers[:5]

	Apply(Event{Action: Reset}, f, &v)

	if len(f.Centers) != arena.DefaultCenters {
		t.Errorf("expected %d centers after reset, got %d", arena.DefaultCenters, len(f.Centers))
	}
}

func TestApplySpawnAt(t *testing.T) {
	f := newTestField()
	v := view.Defaults()
	n := len(f.Centers)
	at := r2.Point{X: 5, Y: 6}

	Apply(Event{Action: SpawnAt, At: at}, f, &v)

	if len(f.Centers) != n+1 {
		t.Fatalf("expected %d centers, got %d", n+1, len(f.Centers))
	}
	if f.Centers[n].Pos != at {
		t.Errorf("spawned at %v, want %v", f.Centers[n].Pos, at)
	}
}

func TestApplyPokeAt(t *testing.T) {
	f := newTestField()
	v := view.Defaults()

	Apply(Event{Action: PokeAt, At: r2.Point{X: 400, Y: 400}}, f, &v)

	if f.MeanSpeed() == 0 {
		t.Error("expected the poke to move the centers")
	}
	for i, c := range f.Centers {
		if s := c.Vel.Norm(); s > arena.DefaultMaxVel+1e-9 {
			t.Errorf("center %d exceeds the speed cap: %g", i, s)
		}
	}
}

func TestApplyPokeFocus(t *testing.T) {
	f := newTestField()
	v := view.Defaults()
	f.Focus.Pos = r2.Point{X: 100, Y: 100}
	f.Centers = []arena.Center{{Pos: r2.Point{X: 110, Y: 100}}}

	Apply(Event{Action: PokeFocus}, f, &v)

	if f.Centers[0].Vel.X <= 0 {
		t.Errorf("expected the poke at the focus to push the center right, got %v", f.Centers[0].Vel)
	}
}

func TestCyclePaletteWraps(t *testing.T) {
	f := newTestField()
	v := view.Defaults()
	for i := 0; i < len(palette.Transforms); i++ {
		if v.Palette < 0 || v.Palette >= len(palette.Transforms) {
			t.Fatalf("palette index %d out of range", v.Palette)
		}
		Apply(Event{Action: CyclePalette}, f, &v)
	}
	if v.Palette != 0 {
		t.Errorf("expected a full cycle to land back on 0, got %d", v.Palette)
	}
}
