package main

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/hurdles/prefabs"
)

// Oscillator is one sine-driven channel of the clear color.
type Oscillator struct {
	Base, Amp, Speed, Phase float64
}

func (o Oscillator) At(t float64) float64 {
	return o.Base + o.Amp*(0.5+0.5*math.Sin(t*o.Speed+o.Phase))
}

// Background cycles the clear color with three phase-shifted oscillators
// so the scene never sits on a static backdrop.
type Background struct {
	R, G, B Oscillator
}

func DefaultBackground() Background {
	return Background{
		R: Oscillator{Base: 0.15, Amp: 0.35, Speed: 0.5},
		G: Oscillator{Base: 0.12, Amp: 0.35, Speed: 0.7, Phase: 2.0},
		B: Oscillator{Base: 0.2, Amp: 0.35, Speed: 0.9, Phase: 4.0},
	}
}

func backgroundFromSpec(spec prefabs.BackgroundSpec) Background {
	if spec.R.Amp == 0 && spec.G.Amp == 0 && spec.B.Amp == 0 {
		return DefaultBackground()
	}
	conv := func(o prefabs.OscillatorSpec) Oscillator {
		return Oscillator{Base: o.Base, Amp: o.Amp, Speed: o.Speed, Phase: o.Phase}
	}
	return Background{R: conv(spec.R), G: conv(spec.G), B: conv(spec.B)}
}

func (b Background) ColorAt(t float64) colorful.Color {
	return colorful.Color{R: b.R.At(t), G: b.G.At(t), B: b.B.At(t)}.Clamped()
}
