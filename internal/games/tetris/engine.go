package tetris

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event kinds reported through Engine.Events.
const (
	EventStart    = "start"
	EventLock     = "lock"
	EventLines    = "lines"     // Value: rows cleared
	EventGameOver = "game_over" // Value: final score
)

// Options configures an Engine.
type Options struct {
	Width         int           // Board columns
	Height        int           // Board rows
	DropInterval  time.Duration // Gravity period
	BlinkInterval time.Duration // Clear flash half-period
	ClearDuration time.Duration // Time between detecting and removing full rows
	LinePoints    int           // Points for the first row of a clear
	Seed          int64         // Piece bag seed
}

// DefaultOptions returns the classic 10x20 setup.
func DefaultOptions() Options {
	return Options{
		Width:         10,
		Height:        20,
		DropInterval:  1000 * time.Millisecond,
		BlinkInterval: 100 * time.Millisecond,
		ClearDuration: 400 * time.Millisecond,
		LinePoints:    10,
	}
}

// Engine is the falling-block game state machine. It is driven entirely by
// Tick and never touches a terminal, clock or keyboard itself.
type Engine struct {
	opts  Options
	rng   *rand.Rand
	board *Board

	player *Piece
	next   PieceType
	score  int
	state  State

	clock        time.Duration // Time spent in StatePlaying since the last start
	dropCounter  time.Duration
	dropInterval time.Duration
	clear        clearAnimation

	events []core.Event
}

// NewEngine creates an engine waiting on the title screen.
func NewEngine(opts Options) *Engine {
	return &Engine{
		opts:         opts,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		board:        NewBoard(opts.Width, opts.Height),
		state:        StateTitle,
		dropInterval: opts.DropInterval,
	}
}

// Start zeroes the board, score and timers and spawns the first piece.
func (e *Engine) Start() {
	e.board.Reset()
	e.score = 0
	e.clock = 0
	e.dropCounter = 0
	e.clear = clearAnimation{}
	e.state = StatePlaying
	e.emit(EventStart, 0)

	e.next = e.drawPiece()
	e.spawn()
}

// Tick advances the game by dt and applies the frame's actions in order.
//
// On the title and game-over screens only ActionConfirm does anything: it
// starts a new game. While playing, actions are ignored during a line clear;
// afterwards either the clear animation or gravity advances.
func (e *Engine) Tick(dt time.Duration, in core.InputFrame) View {
	if e.state != StatePlaying {
		if in.Has(core.ActionConfirm) {
			e.Start()
		}
		return e.View()
	}

	e.clock += dt

	for _, a := range in.Actions {
		e.apply(a)
	}

	if e.state != StatePlaying {
		return e.View()
	}

	if e.clear.active {
		e.updateClear()
	} else {
		e.dropCounter += dt
		if e.dropCounter > e.dropInterval {
			e.drop()
		}
	}

	return e.View()
}

// apply handles one player action. Nothing moves while rows are clearing
// or once the game has ended mid-frame.
func (e *Engine) apply(a core.Action) {
	if e.state != StatePlaying || e.clear.active {
		return
	}

	switch a {
	case core.ActionLeft:
		e.move(-1)
	case core.ActionRight:
		e.move(1)
	case core.ActionDown:
		e.drop()
	case core.ActionRotateCW:
		e.rotate(1)
	case core.ActionRotateCCW:
		e.rotate(-1)
	}
}

// emit records an event for the host.
func (e *Engine) emit(kind string, value int) {
	e.events = append(e.events, core.Event{Kind: kind, Value: value})
}

// Events returns the events recorded since the last call and forgets them.
func (e *Engine) Events() []core.Event {
	ev := e.events
	e.events = nil
	return ev
}

// State returns the current top-level state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Next returns the queued piece letter, 0 before the first start.
func (e *Engine) Next() PieceType {
	return e.next
}

// Board returns the engine's board.
func (e *Engine) Board() *Board {
	return e.board
}

// Clearing reports whether a line-clear animation is running.
func (e *Engine) Clearing() bool {
	return e.clear.active
}

// DropInterval returns the current gravity period.
func (e *Engine) DropInterval() time.Duration {
	return e.dropInterval
}

// SetDropInterval changes the gravity period. Non-positive values are ignored.
func (e *Engine) SetDropInterval(d time.Duration) {
	if d > 0 {
		e.dropInterval = d
	}
}

// View returns a copy of everything needed to draw the current frame.
func (e *Engine) View() View {
	v := View{
		State: e.state,
		Board: e.board.Cells(),
		Next:  e.next,
		Score: e.score,
	}

	if e.clear.active {
		v.Clearing = true
		v.ClearRows = slices.Clone(e.clear.rows)
		v.BlinkOn = e.clear.blinkOn(e.clock, e.opts.BlinkInterval)
		return v
	}

	if e.state == StatePlaying && e.player != nil {
		v.Piece = &Piece{
			Matrix: e.player.Matrix.Clone(),
			Pos:    e.player.Pos,
		}
	}
	return v
}
