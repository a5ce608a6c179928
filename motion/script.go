package motion

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Appended below the user script so a plain function definition is enough;
// the script only has to define modify(index, t, x, y).
const modifyDispatchScript = `
__offset = modify(__index, __time, __x, __y)
`

// Script is a compiled tengo motion modifier. Its modify function receives
// the runner index, the frame timestamp, and the evaluated position, and
// returns an extra vertical offset. A script that fails at runtime is
// logged once and disabled; the evaluator then behaves as if no script
// were configured.
type Script struct {
	name     string
	compiled *tengo.Compiled
	disabled bool
}

// NewScript compiles src as a motion modifier. The name is only used in
// log messages.
func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(modifyDispatchScript)...))
	_ = script.Add("__index", 0)
	_ = script.Add("__time", 0.0)
	_ = script.Add("__x", 0.0)
	_ = script.Add("__y", 0.0)
	_ = script.Add("__offset", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("motion: compile script %s: %w", name, err)
	}

	return &Script{name: name, compiled: compiled}, nil
}

// Offset runs the modifier for one runner at one timestamp.
func (s *Script) Offset(movingIndex int, t, x, y float64) float64 {
	if s == nil || s.disabled {
		return 0
	}

	c := s.compiled.Clone()
	_ = c.Set("__index", movingIndex)
	_ = c.Set("__time", t)
	_ = c.Set("__x", x)
	_ = c.Set("__y", y)

	if err := c.Run(); err != nil {
		log.Printf("motion: script %s: %v (disabling modifier)", s.name, err)
		s.disabled = true
		return 0
	}

	return c.Get("__offset").Float()
}
