package main

import (
	"math"
	"testing"

	"github.com/milk9111/hurdles/motion"
	"github.com/milk9111/hurdles/prefabs"
	"github.com/milk9111/hurdles/scene"
)

func TestSceneToScreen(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"center", 0, 0, 600, 400},
		{"top_left", -1, 1, 0, 0},
		{"bottom_right", 1, -1, 1200, 800},
		{"ground_row", -0.7, -0.5, 180, 600},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			px, py := sceneToScreen(c.x, c.y, 1200, 800)
			if math.Abs(px-c.px) > 1e-9 || math.Abs(py-c.py) > 1e-9 {
				t.Fatalf("got (%v, %v), want (%v, %v)", px, py, c.px, c.py)
			}
		})
	}
}

func TestMotionParamsFromSpec(t *testing.T) {
	sc := scene.Build()

	t.Run("omitted_block_uses_defaults", func(t *testing.T) {
		p := motionParams(prefabs.MotionSpec{}, sc)
		want := motion.DefaultParams()
		if p.StartDelay != want.StartDelay || p.Cycle != want.Cycle || p.JumpHeight != want.JumpHeight {
			t.Fatalf("got %+v, want defaults", p)
		}
	})

	t.Run("explicit_block_wins", func(t *testing.T) {
		p := motionParams(prefabs.MotionSpec{
			StartDelay: 2, Cycle: 8, SpanMin: -1, SpanMax: 1,
			BaseY: 0.1, JumpHeight: 0.4, JumpRadius: 0.2,
		}, sc)
		if p.Cycle != 8 || p.StartDelay != 2 || p.BaseY != 0.1 {
			t.Fatalf("got %+v", p)
		}
	})

	t.Run("obstacles_come_from_scene", func(t *testing.T) {
		p := motionParams(prefabs.MotionSpec{}, sc)
		want := sc.ObstacleXs()
		if len(p.Obstacles) != len(want) {
			t.Fatalf("got %d obstacles, want %d", len(p.Obstacles), len(want))
		}
		for i := range want {
			if p.Obstacles[i] != want[i] {
				t.Fatalf("obstacle %d = %v, want %v", i, p.Obstacles[i], want[i])
			}
		}
	})
}

func TestBackgroundOscillator(t *testing.T) {
	bg := DefaultBackground()

	for _, tm := range []float64{0, 1.3, 7.9, 42.0} {
		c := bg.ColorAt(tm)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("channel %v out of [0, 1] at t=%v", v, tm)
			}
		}
	}

	// each channel stays inside base..base+amp
	o := Oscillator{Base: 0.15, Amp: 0.35, Speed: 0.5}
	for tm := 0.0; tm < 30; tm += 0.1 {
		v := o.At(tm)
		if v < o.Base-1e-9 || v > o.Base+o.Amp+1e-9 {
			t.Fatalf("oscillator %v outside [%v, %v]", v, o.Base, o.Base+o.Amp)
		}
	}
}

func TestBackgroundFromSpecFallback(t *testing.T) {
	got := backgroundFromSpec(prefabs.BackgroundSpec{})
	want := DefaultBackground()
	if got != want {
		t.Fatalf("zero spec should fall back to defaults: %+v", got)
	}

	custom := backgroundFromSpec(prefabs.BackgroundSpec{
		R: prefabs.OscillatorSpec{Base: 0.1, Amp: 0.2, Speed: 1},
	})
	if custom.R.Amp != 0.2 || custom.R.Speed != 1 {
		t.Fatalf("custom spec not applied: %+v", custom)
	}
}
