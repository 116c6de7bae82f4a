package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var _ tui.Game = (*simon.Game)(nil)

// session holds what play and menu share: the game, its store and options.
type session struct {
	game  *simon.Game
	store *storage.Store
	cfg   core.RuntimeConfig
	opts  tui.Options
}

// newSession loads config, opens the history store and sizes the screen.
// A store that cannot be opened is only a warning.
func newSession() (*session, error) {
	simonCfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("could not open history database", "error", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := simon.New(simonCfg)
	game.SetLogger(logger)

	return &session{
		game:  game,
		store: store,
		cfg: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		opts: tui.Options{
			Keys:   tui.NewKeyMap(simonCfg.Keys),
			Logger: logger,
		},
	}, nil
}

// gameSeed gives each game of a session its own sequence. A zero base
// stays zero so every game picks a time-based seed.
func gameSeed(base int64, played int) int64 {
	if base == 0 {
		return 0
	}
	return base + int64(played)
}

// saver returns the store as a tui.ResultSaver, or a nil interface.
func (s *session) saver() tui.ResultSaver {
	if s.store == nil {
		return nil
	}
	return s.store
}

// history returns the store as a tui.HistorySource, or a nil interface.
func (s *session) history() tui.HistorySource {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
}
