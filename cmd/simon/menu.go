package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Simon with a title menu",
	Long: `Start Simon in interactive menu mode.

Pick Play to start a game; Esc in the game returns to the menu. The best
score carries over between games until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - History
  Q            - Quit

Examples:
  simon menu
  simon menu --fps 30
  simon menu --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	cfg := s.cfg
	played := 0

	// One game instance for the whole loop keeps the session high score.
	for {
		menuResult, err := tui.RunMenu(s.history(), s.game.HighScore(), cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceHistory:
			goBack, sbErr := tui.RunScoreboard(s.history(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			cfg.Seed = gameSeed(s.cfg.Seed, played)
			played++
			res, err := tui.Run(s.game, s.saver(), cfg, s.opts)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			cfg.ScreenW, cfg.ScreenH = res.Config.ScreenW, res.Config.ScreenH
			if !res.Back {
				return nil
			}

		default:
			return nil
		}
	}
}
