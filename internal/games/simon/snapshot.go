package simon

import "time"

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick        uint64
	Now         time.Duration
	Phase       Phase
	Started     bool
	Sequence    []Signal
	ProgressLen int
	Score       int
	HighScore   int
	Status      Status
	Lit         [SignalCount]bool
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.ticks,
		Now:         g.engine.Now(),
		Phase:       g.engine.Phase(),
		Started:     g.engine.Started(),
		Sequence:    g.engine.Sequence(),
		ProgressLen: len(g.engine.Progress()),
		Score:       g.engine.Score(),
		HighScore:   g.engine.HighScore(),
		Status:      g.board.Status(),
		Paused:      g.paused,
	}
	for _, sig := range Signals() {
		s.Lit[sig] = g.board.Lit(sig)
	}
	return s
}
