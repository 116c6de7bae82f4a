package simon

import "time"

// Board is the terminal Display. It holds presentation state only and
// reads time from the engine's clock, so highlights and the failure flash
// expire without timers of their own.
type Board struct {
	clock  func() time.Duration
	status Status
	litTil [SignalCount]time.Duration
	flash  flash
	scores [2]string
}

type flash struct {
	start    time.Duration
	toggles  int
	interval time.Duration
}

// NewBoard creates a dark board with both scores at "00".
func NewBoard(clock func() time.Duration) *Board {
	b := &Board{clock: clock}
	b.scores[ScoreCurrent] = FormatScore(0)
	b.scores[ScoreHigh] = FormatScore(0)
	return b
}

// SetStatus implements Display. Going to Go starts a fresh game, so any
// leftover failure flash and highlights are dropped.
func (b *Board) SetStatus(s Status) {
	b.status = s
	if s == StatusGo {
		b.flash = flash{}
		b.litTil = [SignalCount]time.Duration{}
	}
}

// Highlight implements Display.
func (b *Board) Highlight(sig Signal, d time.Duration) {
	if !sig.Valid() {
		return
	}
	b.litTil[sig] = b.clock() + d
}

// FlashAll implements Display.
func (b *Board) FlashAll(times int, interval time.Duration) {
	b.flash = flash{start: b.clock(), toggles: times * 2, interval: interval}
}

// RenderScore implements Display.
func (b *Board) RenderScore(kind ScoreKind, value int) {
	if kind != ScoreCurrent && kind != ScoreHigh {
		return
	}
	b.scores[kind] = FormatScore(value)
}

// Status returns the indicator state.
func (b *Board) Status() Status {
	return b.status
}

// Score returns the rendered text of a score.
func (b *Board) Score(kind ScoreKind) string {
	if kind != ScoreCurrent && kind != ScoreHigh {
		return ""
	}
	return b.scores[kind]
}

// Lit reports whether a pad is currently shown active.
func (b *Board) Lit(sig Signal) bool {
	if !sig.Valid() {
		return false
	}
	if b.flashOn() {
		return true
	}
	return b.clock() < b.litTil[sig]
}

// Flashing reports whether the failure animation is still running.
func (b *Board) Flashing() bool {
	if b.flash.toggles <= 0 || b.flash.interval <= 0 {
		return false
	}
	return b.clock()-b.flash.start < time.Duration(b.flash.toggles)*b.flash.interval
}

// flashOn is true after an odd number of toggles.
func (b *Board) flashOn() bool {
	f := b.flash
	if f.toggles <= 0 || f.interval <= 0 {
		return false
	}
	n := int((b.clock() - f.start) / f.interval)
	if n > f.toggles {
		n = f.toggles
	}
	return n%2 == 1
}
