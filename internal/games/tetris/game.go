package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game adapts the Engine to the platform: it loads the configuration,
// applies difficulty scaling and draws the engine's View onto a screen.
type Game struct {
	engine     *Engine
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	ticks      int    // Steps spent playing since the last start
	steps      uint64 // Steps since Reset, frozen ones excluded

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level settings applied on the next Reset, set from CLI flags.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads the configuration and builds a fresh engine on the title screen.
// An unreadable config falls back to the defaults; callers that care about
// the error validate with config.LoadTetris beforehand.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	if preset, err := config.ParsePreset(difficultyPreset); err == nil {
		config.ApplyTetrisPreset(&tc, preset)
	}

	g.cfg = tc
	g.difficulty = config.NewDifficultyManager(tc.Difficulty)
	g.ticks = 0
	g.steps = 0
	g.engine = NewEngine(OptionsFromConfig(tc, cfg.Seed))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// OptionsFromConfig converts a loaded configuration into engine options.
func OptionsFromConfig(tc config.TetrisConfig, seed int64) Options {
	return Options{
		Width:         tc.Board.Width,
		Height:        tc.Board.Height,
		DropInterval:  tc.Timing.DropInterval(),
		BlinkInterval: tc.Timing.BlinkInterval(),
		ClearDuration: tc.Timing.ClearDuration(),
		LinePoints:    tc.Scoring.LinePoints,
		Seed:          seed,
	}
}

// Resize records the new screen size. The game in progress is kept; it is
// only frozen while the screen cannot fit the layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.engine == nil {
		return
	}
	lay := newLayout(g.engine.Board().Width(), g.engine.Board().Height(), w, h)
	g.tooSmall = !lay.fits
}

// Step advances the engine by dt with the frame's actions.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.steps++

	if g.engine.State() == StatePlaying {
		g.ticks++
		g.engine.SetDropInterval(g.difficulty.Interval(g.cfg.Timing.DropInterval(), g.engine.Score(), g.ticks))
	}

	g.engine.Tick(dt, in)
	events := g.engine.Events()
	for _, ev := range events {
		if ev.Kind == EventStart {
			g.ticks = 0
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.State() == StateGameOver,
		Paused:   g.tooSmall,
	}
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
