package simon

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Reference timings.
const (
	ArmingDelay       = 3000 * time.Millisecond
	TickInterval      = 1000 * time.Millisecond
	HighlightDuration = 500 * time.Millisecond
	ResponseDeadline  = 5000 * time.Millisecond
	RoundDelay        = 1000 * time.Millisecond
	ResetDelay        = 2500 * time.Millisecond
	FlashTimes        = 5
	FlashInterval     = 250 * time.Millisecond
)

// Phase is the engine's position in the game state machine.
type Phase int

const (
	PhaseIdle          Phase = iota
	PhaseArmed                // started, waiting for the arming delay
	PhasePlayback             // replaying the sequence, input disabled
	PhaseAwaitingInput        // operator's turn, deadline running
	PhaseEvaluating           // round complete, waiting to grow the sequence
	PhaseGameOver             // failure animation, reset pending
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhasePlayback:
		return "playback"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason tells why a game ended.
type Reason string

const (
	ReasonMismatch Reason = "mismatch"
	ReasonTimeout  Reason = "timeout"
)

// Result summarizes one finished game.
type Result struct {
	Score       int           // rounds completed
	SequenceLen int           // length of the sequence that was failed
	Reason      Reason
	Duration    time.Duration // from Start to failure, virtual time
}

// Engine owns all game state: sequence, progress, phase, scores and timers.
// It is single-threaded: Start, Input and Advance must be called from one
// goroutine.
type Engine struct {
	display Display
	rng     RandomSource
	timers  *Timers
	logger  *log.Logger

	phase     Phase
	started   bool
	sequence  []Signal
	progress  []Signal
	playIndex int
	score     int
	highScore int
	startedAt time.Duration

	onGameOver func(Result)
}

// NewEngine creates an idle engine drawing on display.
func NewEngine(display Display, rng RandomSource, timers *Timers) *Engine {
	if timers == nil {
		timers = NewTimers()
	}
	return &Engine{
		display: display,
		rng:     rng,
		timers:  timers,
		logger:  log.New(io.Discard),
	}
}

// SetLogger replaces the engine logger.
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// OnGameOver registers a hook called once per failed game.
func (e *Engine) OnGameOver(fn func(Result)) {
	e.onGameOver = fn
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Started reports whether a game is running.
func (e *Engine) Started() bool { return e.started }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// HighScore returns the best score seen by this engine.
func (e *Engine) HighScore() int { return e.highScore }

// Now returns the engine's virtual time.
func (e *Engine) Now() time.Duration { return e.timers.Now() }

// Sequence returns a copy of the target sequence.
func (e *Engine) Sequence() []Signal {
	return append([]Signal(nil), e.sequence...)
}

// Progress returns a copy of the operator's input this round.
func (e *Engine) Progress() []Signal {
	return append([]Signal(nil), e.progress...)
}

// Advance moves virtual time forward, running every transition that
// falls due.
func (e *Engine) Advance(d time.Duration) {
	e.timers.Advance(d)
}

// Start begins a new game. It does nothing while a game is running.
func (e *Engine) Start() {
	if e.started {
		return
	}

	e.reset()
	e.started = true
	e.startedAt = e.timers.Now()
	e.score = 0
	e.display.RenderScore(ScoreCurrent, e.score)
	e.display.SetStatus(StatusGo)
	e.setPhase(PhaseArmed)
	e.timers.Schedule(RoleRound, ArmingDelay, e.extend)
}

// Input feeds one operator selection. It is ignored outside the
// operator's turn and once the round's input is complete.
func (e *Engine) Input(sig Signal) {
	if !e.started || e.phase != PhaseAwaitingInput || !sig.Valid() {
		return
	}
	if len(e.progress) >= len(e.sequence) {
		return
	}

	e.timers.Cancel(RoleDeadline)
	e.progress = append(e.progress, sig)

	i := len(e.progress) - 1
	if e.progress[i] != e.sequence[i] {
		e.logger.Debug("wrong signal", "index", i, "want", e.sequence[i], "got", sig)
		e.gameOver(ReasonMismatch)
		return
	}

	if len(e.progress) == len(e.sequence) {
		e.completeRound()
		return
	}
	e.armDeadline()
}

// extend appends a random signal and replays the sequence.
func (e *Engine) extend() {
	e.timers.Cancel(RoleDeadline)
	next := Signal(e.rng.Intn(SignalCount))
	e.sequence = append(e.sequence, next)
	e.logger.Debug("sequence extended", "length", len(e.sequence), "signal", next)
	e.playback()
}

func (e *Engine) playback() {
	e.setPhase(PhasePlayback)
	e.progress = e.progress[:0]
	e.playIndex = 0
	e.timers.Schedule(RolePlayback, TickInterval, e.playbackTick)
}

func (e *Engine) playbackTick() {
	if e.phase != PhasePlayback {
		return
	}
	if e.playIndex >= len(e.sequence) {
		e.setPhase(PhaseAwaitingInput)
		e.armDeadline()
		return
	}

	e.display.Highlight(e.sequence[e.playIndex], HighlightDuration)
	e.playIndex++
	e.timers.Schedule(RolePlayback, TickInterval, e.playbackTick)
}

func (e *Engine) armDeadline() {
	e.timers.Schedule(RoleDeadline, ResponseDeadline, e.deadlineExpired)
}

func (e *Engine) deadlineExpired() {
	if e.phase != PhaseAwaitingInput {
		return
	}
	e.gameOver(ReasonTimeout)
}

func (e *Engine) completeRound() {
	e.setPhase(PhaseEvaluating)
	e.score = len(e.sequence)
	if e.score > e.highScore {
		e.highScore = e.score
	}
	e.renderScores()
	e.timers.Schedule(RoleRound, RoundDelay, e.extend)
}

func (e *Engine) gameOver(reason Reason) {
	e.started = false
	e.timers.Cancel(RoleRound)
	e.timers.Cancel(RolePlayback)
	e.timers.Cancel(RoleDeadline)
	e.setPhase(PhaseGameOver)

	e.display.SetStatus(StatusStop)
	e.renderScores()
	e.display.FlashAll(FlashTimes, FlashInterval)

	result := Result{
		Score:       e.score,
		SequenceLen: len(e.sequence),
		Reason:      reason,
		Duration:    e.timers.Now() - e.startedAt,
	}
	e.logger.Info("game over", "reason", reason, "score", result.Score, "high", e.highScore)
	if e.onGameOver != nil {
		e.onGameOver(result)
	}

	e.timers.Schedule(RoleReset, ResetDelay, e.reset)
}

// reset returns to Idle. Scores are kept.
func (e *Engine) reset() {
	e.timers.CancelAll()
	e.sequence = e.sequence[:0]
	e.progress = e.progress[:0]
	e.playIndex = 0
	e.started = false
	e.setPhase(PhaseIdle)
	e.display.SetStatus(StatusStop)
}

func (e *Engine) renderScores() {
	e.display.RenderScore(ScoreCurrent, e.score)
	e.display.RenderScore(ScoreHigh, e.highScore)
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
}
