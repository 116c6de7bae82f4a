// Package simon implements the Simon memory game: a growing sequence of
// colored signals is played back and the operator must repeat it in time.
//
// Engine holds the state machine and runs on a virtual clock (Timers).
// Board is the terminal Display it drives. Game adapts both to the
// platform's tick-based game contract.
package simon

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

// Game implements the platform game contract for Simon.
type Game struct {
	cfg    config.SimonConfig
	logger *log.Logger

	timers *Timers
	board  *Board
	engine *Engine

	highScore int           // carried across Reset for the process lifetime
	tick      time.Duration // virtual time per Step
	ticks     uint64

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	pending []core.Event
}

// New creates a Simon game using the given layout and key labels.
func New(cfg config.SimonConfig) *Game {
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger sets the logger handed to the engine.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	g.logger = l
	if g.engine != nil {
		g.engine.SetLogger(l)
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon"
}

// Reset builds a fresh engine and board. The high score is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.engine != nil {
		g.highScore = g.engine.HighScore()
	}

	g.timers = NewTimers()
	g.board = NewBoard(g.timers.Now)
	g.engine = NewEngine(g.board, NewRandomSource(cfg.Seed), g.timers)
	g.engine.highScore = g.highScore
	g.engine.SetLogger(g.logger)
	g.engine.OnGameOver(g.recordResult)
	g.board.RenderScore(ScoreHigh, g.highScore)

	g.tick = cfg.TickDuration()
	g.ticks = 0
	g.paused = false
	g.pending = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new terminal size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step applies this tick's input in arrival order, then advances time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++

	for _, a := range in.Actions() {
		g.apply(a)
	}

	if !g.paused && !g.tooSmall {
		g.engine.Advance(g.tick)
	}

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) apply(a core.Action) {
	if a == core.ActionPause {
		g.paused = !g.paused
		return
	}
	if g.paused || g.tooSmall {
		return
	}

	if a == core.ActionStart {
		g.engine.Start()
		return
	}
	if i, ok := a.PadIndex(); ok {
		g.engine.Input(Signal(i))
	}
}

func (g *Game) recordResult(r Result) {
	g.pending = append(g.pending, core.Event{
		Type:     core.EventGameOver,
		Score:    r.Score,
		Reason:   string(r.Reason),
		Duration: r.Duration,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  g.engine.Phase() == PhaseGameOver,
		Paused:    g.paused || g.tooSmall,
	}
}

// HighScore returns the session best. Safe to call before the first Reset.
func (g *Game) HighScore() int {
	if g.engine == nil {
		return g.highScore
	}
	return g.engine.HighScore()
}

// Engine exposes the underlying state machine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Board exposes the display state.
func (g *Game) Board() *Board {
	return g.board
}
