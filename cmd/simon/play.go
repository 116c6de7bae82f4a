package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start Simon directly.

Press Enter to start. After a three second countdown the pads light up
one by one; repeat the sequence before five seconds pass between presses.

Controls (defaults, see --config):
  1/G 2/R 3/Y 4/B  - Green, red, yellow, blue pads
  Enter/S          - Start
  P                - Pause
  ?                - All keys
  Ctrl+S           - Screenshot
  Esc/Q/Ctrl+C     - Quit

Examples:
  simon play
  simon play --seed 42
  simon play --config ./my-keys.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	if _, err := tui.Run(s.game, s.saver(), s.cfg, s.opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
