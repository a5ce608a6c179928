package motion

import (
	"math"
	"testing"
)

func TestScriptOffset(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		index int
		time  float64
		x, y  float64
		want  float64
	}{
		{
			name: "constant",
			src:  `modify := func(index, t, x, y) { return 0.1 }`,
			want: 0.1,
		},
		{
			name:  "uses_all_inputs",
			src:   `modify := func(index, t, x, y) { return float(index) + t + x + y }`,
			index: 2,
			time:  1.5,
			x:     0.25,
			y:     0.2,
			want:  3.95,
		},
		{
			name: "integer_result",
			src:  `modify := func(index, t, x, y) { return 1 }`,
			want: 1.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := NewScript(c.name, []byte(c.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got := s.Offset(c.index, c.time, c.x, c.y)
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Offset = %v, want %v", got, c.want)
			}
		})
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript("bad", []byte(`modify := func(`)); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestScriptRuntimeErrorDisables(t *testing.T) {
	src := `
modify := func(index, t, x, y) {
	return 1 / int(t)
}
`
	s, err := NewScript("boom", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	// t=0 divides by zero; the script must be disabled, not crash the frame
	if got := s.Offset(0, 0, 0, 0); got != 0 {
		t.Fatalf("Offset after runtime error = %v, want 0", got)
	}
	if !s.disabled {
		t.Fatal("script should be disabled after a runtime error")
	}
	if got := s.Offset(0, 2, 0, 0); got != 0 {
		t.Fatalf("disabled script returned %v, want 0", got)
	}
}

func TestEvaluatorAppliesScript(t *testing.T) {
	s, err := NewScript("lift", []byte(`modify := func(index, t, x, y) { return 0.05 }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	p := DefaultParams()
	e := NewEvaluator(p, s)

	base := p.PositionAt(0, 3.0)
	got := e.PositionAt(0, 3.0)

	if math.Abs(got.X-base.X) > 1e-9 {
		t.Fatalf("script must not move x: %v != %v", got.X, base.X)
	}
	if math.Abs(got.Y-(base.Y+0.05)) > 1e-9 {
		t.Fatalf("y = %v, want %v", got.Y, base.Y+0.05)
	}
}
