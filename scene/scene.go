// Package scene builds the static entity list the render loop draws each
// frame. A scene never changes after construction; moving entities store
// only their parked start position and the motion package computes their
// effective position per frame.
package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/hurdles/common"
	"github.com/milk9111/hurdles/prefabs"
)

// Entity is one rectangle. Width and height are in scene units (the view
// spans [-1, 1] on both axes). Immutable after construction.
type Entity struct {
	Position   common.Vec3
	Color      colorful.Color
	Width      float64
	Height     float64
	Stationary bool
}

// Scene is an ordered entity list: stationary rectangles first (left to
// right), then moving rectangles in spawn order. The order gives each
// moving entity the stable index that determines its start delay.
type Scene struct {
	Entities []Entity
}

// MovingCount returns the number of moving entities.
func (s Scene) MovingCount() int {
	n := 0
	for _, e := range s.Entities {
		if !e.Stationary {
			n++
		}
	}
	return n
}

// ObstacleXs returns the stationary entities' x-coordinates in scene
// order. This is the obstacle list the motion evaluator jumps over.
func (s Scene) ObstacleXs() []float64 {
	var xs []float64
	for _, e := range s.Entities {
		if e.Stationary {
			xs = append(xs, e.Position.X)
		}
	}
	return xs
}

// Build returns the stock scene: four hurdles on the ground and four
// runners parked off screen to the left. Deterministic, no failure modes.
func Build() Scene {
	stationaryColors := []colorful.Color{
		{R: 0.9, G: 0.1, B: 0.1},
		{R: 0.1, G: 0.9, B: 0.1},
		{R: 0.1, G: 0.2, B: 0.95},
		{R: 1.0, G: 0.8, B: 0.0},
	}
	movingColors := []colorful.Color{
		{R: 0.9, G: 0.0, B: 0.9},
		{R: 0.0, G: 0.9, B: 0.9},
		{R: 1.0, G: 0.45, B: 0.0},
		{R: 0.5, G: 0.0, B: 1.0},
	}

	var entities []Entity
	const spacing = 0.45
	for i, c := range stationaryColors {
		entities = append(entities, Entity{
			Position:   common.Vec3{X: -0.7 + float64(i)*spacing, Y: -0.5},
			Color:      c,
			Width:      0.12,
			Height:     0.18,
			Stationary: true,
		})
	}
	for _, c := range movingColors {
		entities = append(entities, Entity{
			Position: common.Vec3{X: -1.2, Y: 0.2},
			Color:    c,
			Width:    0.12,
			Height:   0.15,
		})
	}

	return Scene{Entities: entities}
}

// FromSpec builds a scene from a loaded spec so rectangle counts, colors,
// and geometry are data-driven rather than hardcoded.
func FromSpec(spec prefabs.SceneSpec) (Scene, error) {
	var entities []Entity

	add := func(r prefabs.RectSpec, stationary bool) error {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("scene: rectangle at (%g, %g) has non-positive size %gx%g", r.X, r.Y, r.Width, r.Height)
		}
		entities = append(entities, Entity{
			Position:   common.Vec3{X: r.X, Y: r.Y},
			Color:      r.Color.Color,
			Width:      r.Width,
			Height:     r.Height,
			Stationary: stationary,
		})
		return nil
	}

	for _, r := range spec.Stationary {
		if err := add(r, true); err != nil {
			return Scene{}, err
		}
	}
	for _, r := range spec.Moving {
		if err := add(r, false); err != nil {
			return Scene{}, err
		}
	}

	return Scene{Entities: entities}, nil
}
