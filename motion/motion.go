// Package motion maps wall-clock time to moving rectangle positions. It has
// no graphics dependency so the animation model can be exercised headless.
package motion

import (
	"math"

	"github.com/milk9111/hurdles/common"
)

// Params describes one horizontal run cycle shared by every moving
// rectangle. Obstacles holds the stationary rectangles' x-coordinates in
// scene order; a moving rectangle jumps while it is within JumpRadius of
// the first matching obstacle.
type Params struct {
	StartDelay float64
	Cycle      float64
	SpanMin    float64
	SpanMax    float64
	BaseY      float64
	JumpHeight float64
	JumpRadius float64
	Obstacles  []float64
}

// DefaultParams returns the stock scenario: runners cross [-1.2, 1.2] every
// 6 seconds, launching 1.5 seconds apart, hopping over four hurdles.
func DefaultParams() Params {
	return Params{
		StartDelay: 1.5,
		Cycle:      6.0,
		SpanMin:    -1.2,
		SpanMax:    1.2,
		BaseY:      0.2,
		JumpHeight: 0.35,
		JumpRadius: 0.12,
		Obstacles:  []float64{-0.7, -0.25, 0.2, 0.65},
	}
}

// PositionAt returns the position of the movingIndex-th runner at time t
// (seconds since scene start). Pure and total: any movingIndex >= 0 and any
// t >= 0 yield a position. Runners that have not started yet sit parked at
// (SpanMin, BaseY).
func (p Params) PositionAt(movingIndex int, t float64) common.Vec3 {
	adjusted := t - float64(movingIndex)*p.StartDelay
	if adjusted < 0 {
		return common.Vec3{X: p.SpanMin, Y: p.BaseY}
	}
	adjusted = math.Mod(adjusted, p.Cycle)

	x := common.Lerp(p.SpanMin, p.SpanMax, adjusted/p.Cycle)
	if x > p.SpanMax {
		// rounding at the exact cycle boundary
		x = p.SpanMin
	}

	y := p.BaseY
	for _, ox := range p.Obstacles {
		d := math.Abs(x - ox)
		if d < p.JumpRadius {
			// Hop silhouette: zero at the radius edge, full height where
			// jumpFactor*pi crosses pi/2. Only the first obstacle in scene
			// order applies, so overlapping radii never stack.
			jumpFactor := 1 - d/p.JumpRadius
			y += p.JumpHeight * math.Sin(jumpFactor*math.Pi)
			break
		}
	}

	return common.Vec3{X: x, Y: y}
}

// Evaluator pairs motion params with an optional script modifier. The
// render loop calls PositionAt once per runner per frame, always with the
// same timestamp within a frame.
type Evaluator struct {
	params Params
	script *Script
}

func NewEvaluator(params Params, script *Script) *Evaluator {
	return &Evaluator{params: params, script: script}
}

func (e *Evaluator) PositionAt(movingIndex int, t float64) common.Vec3 {
	pos := e.params.PositionAt(movingIndex, t)
	if e.script != nil {
		pos.Y += e.script.Offset(movingIndex, t, pos.X, pos.Y)
	}
	return pos
}
