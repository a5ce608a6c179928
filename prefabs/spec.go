// Package prefabs holds the yaml scene specs, their embedded defaults, and
// the file watcher that hot-reloads them while the demo is running.
package prefabs

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// SceneSpec is the top-level scene file schema.
type SceneSpec struct {
	Title      string         `yaml:"title"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Background BackgroundSpec `yaml:"background"`
	Stationary []RectSpec     `yaml:"stationary"`
	Moving     []RectSpec     `yaml:"moving"`
	Motion     MotionSpec     `yaml:"motion"`
}

type RectSpec struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
}

// MotionSpec mirrors motion.Params. Script optionally names a tengo
// modifier under prefabs/scripts.
type MotionSpec struct {
	StartDelay float64 `yaml:"start_delay"`
	Cycle      float64 `yaml:"cycle"`
	SpanMin    float64 `yaml:"span_min"`
	SpanMax    float64 `yaml:"span_max"`
	BaseY      float64 `yaml:"base_y"`
	JumpHeight float64 `yaml:"jump_height"`
	JumpRadius float64 `yaml:"jump_radius"`
	Script     string  `yaml:"script,omitempty"`
}

// OscillatorSpec is one sine channel of the background color:
// base + amp*(0.5 + 0.5*sin(t*speed + phase)).
type OscillatorSpec struct {
	Base  float64 `yaml:"base"`
	Amp   float64 `yaml:"amp"`
	Speed float64 `yaml:"speed"`
	Phase float64 `yaml:"phase"`
}

type BackgroundSpec struct {
	R OscillatorSpec `yaml:"r"`
	G OscillatorSpec `yaml:"g"`
	B OscillatorSpec `yaml:"b"`
}

// LoadSceneSpec loads and parses a scene file, honoring the disk override
// in Load.
func LoadSceneSpec(filename string) (SceneSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SceneSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	spec.applyDefaults()
	return spec, nil
}

func (s *SceneSpec) applyDefaults() {
	if s.Width <= 0 {
		s.Width = 1200
	}
	if s.Height <= 0 {
		s.Height = 800
	}
	if s.Title == "" {
		s.Title = "hurdles"
	}
}

// YAMLColor unmarshals a "#rrggbb" scalar into a colorful.Color.
type YAMLColor struct {
	colorful.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	parsed, err := colorful.Hex(value.Value)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", value.Value, err)
	}

	c.Color = parsed
	return nil
}
