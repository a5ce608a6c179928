package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/hurdles/common"
	"github.com/milk9111/hurdles/motion"
	"github.com/milk9111/hurdles/prefabs"
	"github.com/milk9111/hurdles/scene"
)

// Game owns the scene and drives the motion evaluator. The clock is read
// once per Update and the same timestamp is used for every runner in the
// frame, so the runners stay visually in sync.
type Game struct {
	sceneFile string
	debug     bool

	spec      prefabs.SceneSpec
	scene     scene.Scene
	evaluator *motion.Evaluator
	renderer  *Renderer
	bg        Background

	watcher *prefabs.Watcher
	start   time.Time
	now     float64

	// per-frame evaluated runner positions, indexed by moving index
	positions []common.Vec3
}

func NewGame(sceneFile string, debug bool) (*Game, error) {
	g := &Game{
		sceneFile: sceneFile,
		debug:     debug,
		renderer:  NewRenderer(),
		start:     time.Now(),
	}

	spec, err := prefabs.LoadSceneSpec(sceneFile)
	if err != nil {
		return nil, err
	}
	if err := g.apply(spec); err != nil {
		return nil, err
	}

	if w, err := prefabs.NewWatcher("prefabs"); err == nil {
		g.watcher = w
	} else {
		log.Printf("hurdles: scene hot reload disabled: %v", err)
	}

	return g, nil
}

func (g *Game) WindowSize() (int, int) {
	return g.spec.Width, g.spec.Height
}

func (g *Game) Title() string {
	return g.spec.Title
}

func (g *Game) apply(spec prefabs.SceneSpec) error {
	sc, err := scene.FromSpec(spec)
	if err != nil {
		return err
	}

	var script *motion.Script
	if spec.Motion.Script != "" {
		src, err := prefabs.LoadScript(spec.Motion.Script)
		if err != nil {
			log.Printf("hurdles: motion script %s: %v (continuing without)", spec.Motion.Script, err)
		} else if s, err := motion.NewScript(spec.Motion.Script, src); err != nil {
			log.Printf("hurdles: %v (continuing without)", err)
		} else {
			script = s
		}
	}

	g.spec = spec
	g.scene = sc
	g.evaluator = motion.NewEvaluator(motionParams(spec.Motion, sc), script)
	g.bg = backgroundFromSpec(spec.Background)
	g.positions = make([]common.Vec3, sc.MovingCount())
	return nil
}

// motionParams maps the yaml motion block to evaluator params. A zero
// cycle means the block was omitted; fall back to the stock scenario. The
// obstacle list always comes from the scene's stationary rectangles.
func motionParams(spec prefabs.MotionSpec, sc scene.Scene) motion.Params {
	p := motion.DefaultParams()
	if spec.Cycle > 0 {
		p = motion.Params{
			StartDelay: spec.StartDelay,
			Cycle:      spec.Cycle,
			SpanMin:    spec.SpanMin,
			SpanMax:    spec.SpanMax,
			BaseY:      spec.BaseY,
			JumpHeight: spec.JumpHeight,
			JumpRadius: spec.JumpRadius,
		}
	}
	p.Obstacles = sc.ObstacleXs()
	return p
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollReload()

	g.now = time.Since(g.start).Seconds()
	for i := range g.positions {
		g.positions[i] = g.evaluator.PositionAt(i, g.now)
	}

	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			spec, err := prefabs.LoadSceneSpec(g.sceneFile)
			if err != nil {
				log.Printf("hurdles: reload after %s: %v (keeping current scene)", name, err)
				continue
			}
			if err := g.apply(spec); err != nil {
				log.Printf("hurdles: reload after %s: %v (keeping current scene)", name, err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("hurdles: scene watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg.ColorAt(g.now))

	movingIndex := 0
	for _, e := range g.scene.Entities {
		pos := e.Position
		if !e.Stationary {
			pos = g.positions[movingIndex]
			movingIndex++
		}
		g.renderer.DrawRect(screen, pos, e.Color, e.Width, e.Height)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Width, g.spec.Height
}
